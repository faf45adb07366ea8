package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/web"
)

// stdoutPath selects standard output for --out.
const stdoutPath = "-"

func newRenderCmd(a *app) *cobra.Command {
	var (
		out      string
		selected int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dashboard page to a static HTML file",
		Long: `Loads the sheet once and writes the dashboard page. With --select the page
also shows the details of that card. A failed load still writes the page with
the failure message, then exits non-zero.`,
		Example: `  sheetboard render --out dashboard.html
  sheetboard render --select 0 > dashboard.html`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, a, out, selected)
		}),
	}
	cmd.Flags().StringVarP(&out, "out", "o", stdoutPath, "output file, - for stdout")
	cmd.Flags().IntVar(&selected, "select", web.NoSelection, "index of the card whose details are shown")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, out string, selected int) error {
	var snap board.Snapshot
	_, loadErr := a.newLoader().Load(cmd.Context(), &snap)

	if loadErr == nil && selected != web.NoSelection {
		if _, err := board.Select(snap.Cards, selected); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := web.WritePage(&buf, web.NewPage(snap, selected, board.DateLabel(time.Now()))); err != nil {
		return err
	}

	if out == stdoutPath {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
	} else if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // Published page.
		return fmt.Errorf("writing page to %s: %w", out, err)
	}

	return loadErr
}
