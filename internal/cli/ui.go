package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Justice-Caban/QuickQuotes/internal/storage"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/Justice-Caban/QuickQuotes/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTTY = errors.New("the gallery requires an interactive terminal; use the quote and theme subcommands instead")

// runTUI opens the interactive gallery
func (a *app) runTUI(cmd *cobra.Command) error {
	if !hasTTY() {
		return errNoTTY
	}

	// The gallery still opens without storage and reports the failure
	var st *storage.Storage
	if s, err := a.openStorage(); err != nil {
		a.logger.Error().Err(err).Msg("storage unavailable")
	} else {
		st = s
		defer st.Close()
	}

	ctrl := a.newController(st)
	m := tui.NewAppModel(tui.Options{
		Config:     a.cfg,
		Storage:    st,
		Controller: ctrl,
		UserID:     a.cfg.User.ID,
		Logger:     a.logger,
		SaveTheme:  func(p theme.Preference) { a.saveTheme(st, p) },
	})
	defer m.Close()

	a.logger.Info().Str("theme", string(ctrl.CurrentMode())).Msg("starting gallery")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running QuickQuotes: %w", err)
	}

	// Keeps a previewed color the user quit on
	a.saveTheme(st, ctrl.Preference())

	return nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
