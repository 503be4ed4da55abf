package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/cli/formatter"
	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned by ask when stdout is not a terminal.
var errNotInteractive = errors.New("ask needs an interactive terminal; use `reframe run` instead")

func reframeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// situationForm asks for the situation text, and for a name on the first round.
func situationForm(text, name *string, askName bool) *huh.Form {
	fields := []huh.Field{
		huh.NewText().
			Title("What's weighing on you?").
			Description("Describe the situation in your own words.").
			Value(text).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("tell me a little about it")
				}
				return nil
			}),
	}
	if askName {
		fields = append(fields, huh.NewInput().
			Title("Your name").
			Description("Used in the affirmation. Leave blank to skip.").
			Value(name))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(reframeHuhTheme())
}

func newAskCmd(app *App) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Reframe situations interactively, one after another",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			if session == "" {
				session = uuid.New().String()
			}
			out := cmd.OutOrStdout()

			var name string
			for round := 0; ; round++ {
				var text string
				if err := situationForm(&text, &name, round == 0).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}

				r, err := app.Reframe.Reframe(cmd.Context(), domain.Situation{
					Text: text, Name: name, SessionID: session,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatReframe(r))

				again := true
				confirm := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().Title("Reframe something else?").Value(&again),
				)).WithTheme(reframeHuhTheme())
				if err := confirm.Run(); err != nil || !again {
					fmt.Fprintln(out, formatter.Dim("Session "+session+" saved."))
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "continue an existing session (default: a new one)")
	return cmd
}
