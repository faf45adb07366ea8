package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
	"github.com/spf13/cobra"

	"github.com/rshade/sheetboard/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Browse projects in the interactive terminal dashboard",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{terminalUIAnnotation: "true"},
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, a)
		}),
	}
}

// runTUI runs the dashboard until the user quits.
func runTUI(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()

	// The browser launcher echoes its helper's output, which would corrupt the screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	model := tui.NewDashboardModel(ctx, a.newLoader(), tui.WithOpener(browser.OpenURL))
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
