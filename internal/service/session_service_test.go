package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/repository"
	"github.com/alexanderramin/reframe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_ShowClearList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t), 5)
	obs := &recordingObserver{}
	reframes := newTestReframeService(t, repo)
	sessions := NewSessionService(repo, obs)

	res, err := reframes.Reframe(ctx, domain.Situation{Text: procrastination, SessionID: "abc"})
	require.NoError(t, err)

	state, err := sessions.Show(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{res.Closer}, state.RecentClosers)

	ids, err := sessions.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, ids)

	require.NoError(t, sessions.Clear(ctx, "abc"))
	_, err = sessions.Show(ctx, "abc")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = sessions.Clear(ctx, "abc")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	events := obs.byName("clear-session")
	require.Len(t, events, 2)
	assert.True(t, events[0].Success)
	assert.False(t, events[1].Success)
}

func TestCatalogService_FiltersByTheme(t *testing.T) {
	kb := testutil.NewTestKnowledgeBase(t, testutil.NewTestSchema(
		testutil.NewTestEntry("alpha", "Work", testutil.WithThemes(domain.ThemeTemporary)),
		testutil.NewTestEntry("beta", "Work", testutil.WithThemes(domain.ThemeControl, domain.ThemeTemporary)),
		testutil.NewTestEntry("gamma", "Work", testutil.WithThemes(domain.ThemeGrayAreas)),
	))
	svc := NewCatalogService(kb)

	theme := domain.ThemeTemporary
	var ids []string
	for _, e := range svc.Entries(&theme) {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"alpha", "beta"}, ids)
	assert.Len(t, svc.Entries(nil), 4)
	assert.Equal(t, "test", svc.Version())
}

func TestCatalogService_ValidateMissingFile(t *testing.T) {
	kb := testutil.NewTestKnowledgeBase(t, testutil.NewTestSchema(testutil.NewTestEntry("alpha", "Work")))
	_, err := NewCatalogService(kb).Validate("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}
