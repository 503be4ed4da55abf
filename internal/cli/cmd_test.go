package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/reframe/internal/config"
	"github.com/alexanderramin/reframe/internal/knowledge"
	"github.com/alexanderramin/reframe/internal/layout"
	"github.com/alexanderramin/reframe/internal/repository"
	"github.com/alexanderramin/reframe/internal/service"
	"github.com/alexanderramin/reframe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const procrastination = "I keep procrastinating on this big project and feel like a failure"

// testApp wires a full App over the built-in catalog and an in-memory
// session store.
func testApp(t *testing.T) *App {
	t.Helper()
	eng := testutil.NewDefaultEngine(t)
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t), 5)
	return &App{
		Reframe:  service.NewReframeService(eng, repo),
		Sessions: service.NewSessionService(repo),
		Catalog:  service.NewCatalogService(eng.KnowledgeBase()),
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func executeCmdWithInput(t *testing.T, app *App, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- run ---

func TestRunCmd_PlainLayoutParses(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "run", "--name", "Sam", procrastination)
	require.NoError(t, err)

	r, err := layout.Parse(out)
	require.NoError(t, err, "output:\n%s", out)
	assert.Equal(t, "control", string(r.Theme))
	require.NotNil(t, r.Chemical)
	assert.Equal(t, "dopamine", string(r.Chemical.Mechanism))
	assert.True(t, strings.HasPrefix(r.Affirmation, "I, Sam, will "))
}

func TestRunCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "run", "--json", "--explain", procrastination)
	require.NoError(t, err)

	var doc layout.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "control", doc.Theme)
	assert.NotEmpty(t, doc.Matches)
	assert.Equal(t, "goals-procrastination", doc.Matches[0].EntryID)
}

func TestRunCmd_ExplainPlain(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "run", "--explain", procrastination)
	require.NoError(t, err)
	assert.Contains(t, out, "MATCHES")
	assert.Contains(t, out, "KEYWORD_OVERLAP")
}

func TestRunCmd_Stdin(t *testing.T) {
	out, err := executeCmdWithInput(t, testApp(t), "my partner and I had a fight\n", "run", "-")
	require.NoError(t, err)
	_, err = layout.Parse(out)
	require.NoError(t, err)
}

func TestRunCmd_EmptyTextFallsBack(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "run", "--json", "   ")
	require.NoError(t, err)

	var doc layout.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.Fallback)
	assert.NotEmpty(t, doc.Pairs)
}

func TestRunCmd_JSONAndPlainExclusive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "run", "--json", "--plain", "x")
	assert.Error(t, err)
}

func TestRunCmd_SessionVariesCloser(t *testing.T) {
	app := testApp(t)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		out, err := executeCmd(t, app, "run", "--session", "cli", procrastination)
		require.NoError(t, err)
		r, err := layout.Parse(out)
		require.NoError(t, err)
		assert.False(t, seen[r.Closer], "closer repeated: %q", r.Closer)
		seen[r.Closer] = true
	}
}

// --- batch ---

func TestBatchCmd_RendersEachLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	content := "# comment\n" + procrastination + "\n\nI feel lonely since the breakup\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := executeCmd(t, testApp(t), "batch", "--concurrency", "2", path)
	require.NoError(t, err)

	parts := strings.Split(out, "---\n")
	require.Len(t, parts, 2)
	for _, p := range parts {
		_, err := layout.Parse(p)
		assert.NoError(t, err)
	}
}

func TestBatchCmd_JSONLines(t *testing.T) {
	out, err := executeCmdWithInput(t, testApp(t), "a fight with my friend\nmoney and debt\n", "batch", "--json", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		var doc layout.Document
		assert.NoError(t, json.Unmarshal([]byte(l), &doc))
	}
}

func TestBatchCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "batch", "/nonexistent/file.txt")
	assert.Error(t, err)
}

// --- catalog ---

func TestCatalogListCmd_FilterByTheme(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog", "list", "--theme", "Temporary")
	require.NoError(t, err)
	assert.Contains(t, out, "work-stuck")
	assert.NotContains(t, out, "money-bad")
}

func TestCatalogListCmd_InvalidTheme(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "catalog", "list", "--theme", "bogus")
	assert.Error(t, err)
}

func TestCatalogValidateCmd_Active(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "active catalog")
	assert.Contains(t, out, "3 fallback")
}

func TestCatalogValidateCmd_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: x\nentries:\n  - id: a\n    themes: [nope]\n"), 0644))

	out, err := executeCmd(t, testApp(t), "catalog", "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "unknown theme")
	assert.Contains(t, out, "category is required")
}

// --- session ---

func TestSessionCmds(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "run", "--session", "s1", procrastination)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "s1")

	out, err = executeCmd(t, app, "session", "show", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "1. ")

	out, err = executeCmd(t, app, "session", "clear", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared session s1")

	_, err = executeCmd(t, app, "session", "show", "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no session "s1"`)
}

// --- ask ---

func TestAskCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "ask")
	assert.ErrorIs(t, err, errNotInteractive)
}

// --- root wiring ---

func TestRootCmd_SetupReceivesFlagOverrides(t *testing.T) {
	var got config.Config
	app := &App{Config: config.DefaultConfig()}
	app.Setup = func(cfg config.Config) error {
		got = cfg
		kb, err := knowledge.Default()
		require.NoError(t, err)
		wired := testApp(t)
		app.Reframe, app.Sessions = wired.Reframe, wired.Sessions
		app.Catalog = service.NewCatalogService(kb)
		return nil
	}

	_, err := executeCmd(t, app, "--backend", "memory", "--db", "/tmp/other.db", "catalog", "list")
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, got.Backend)
	assert.Equal(t, "/tmp/other.db", got.DBPath)
}

func TestRootCmd_RejectsUnknownBackend(t *testing.T) {
	app := &App{Config: config.DefaultConfig(), Setup: func(config.Config) error { return nil }}
	_, err := executeCmd(t, app, "--backend", "postgres", "session", "list")
	assert.Error(t, err)
}
