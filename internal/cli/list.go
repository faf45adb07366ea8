package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/markup"
)

// errLoadFailed is returned after the fallback message has been printed.
var errLoadFailed = errors.New("loading projects failed")

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print one line per project",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, a)
		}),
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show INDEX",
		Short:   "Print the details of one project",
		Example: `  sheetboard show 0`,
		Args:    cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project index %q: %w", args[0], err)
			}
			return runShow(cmd, a, index)
		}),
	}
}

// loadCards runs one load. On failure the fallback message goes to stderr.
func loadCards(cmd *cobra.Command, a *app) ([]board.Card, error) {
	var snap board.Snapshot
	if _, err := a.newLoader().Load(cmd.Context(), &snap); err != nil {
		cmd.PrintErrln(snap.Failure)
		return nil, fmt.Errorf("%w: %w", errLoadFailed, err)
	}
	return snap.Cards, nil
}

func runList(cmd *cobra.Command, a *app) error {
	cards, err := loadCards(cmd, a)
	if err != nil {
		return err
	}
	return writeCardList(cmd.OutOrStdout(), cards)
}

func runShow(cmd *cobra.Command, a *app, index int) error {
	cards, err := loadCards(cmd, a)
	if err != nil {
		return err
	}
	card, err := board.Select(cards, index)
	if err != nil {
		return err
	}
	return writePlainDetail(cmd.OutOrStdout(), board.BuildDetail(card))
}

// writeCardList prints index, color and title columns.
func writeCardList(w io.Writer, cards []board.Card) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.Index, c.Color.Name, c.Title())
	}
	return tw.Flush()
}

// writePlainDetail prints a detail in the order the other surfaces use.
func writePlainDetail(w io.Writer, d board.Detail) error {
	f := markup.NewFormatter(markup.Plain{})

	var b []byte
	b = fmt.Appendf(b, "%s\n", d.Title)
	if d.HasOpen {
		b = fmt.Appendf(b, "%s: %s\n", board.OpenActionLabel, d.OpenURL)
	}
	b = fmt.Appendf(b, "%s\n", d.Description)
	b = append(b, "----\n"...)
	b = fmt.Appendf(b, "%s %s\n", board.DeadlineLabel, d.Deadline)
	b = fmt.Appendf(b, "%s %s\n", board.TaskLabel, d.Task)
	for _, line := range f.FormatAll(d.Lines) {
		b = fmt.Appendf(b, "\n%s\n", line)
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing detail: %w", err)
	}
	return nil
}
