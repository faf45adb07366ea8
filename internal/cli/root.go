// Package cli wires the sheetboard commands: the terminal dashboard, the HTML
// server and static renderer, and the plain listing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/config"
	"github.com/rshade/sheetboard/internal/logging"
	"github.com/rshade/sheetboard/internal/sheet"
)

// terminalUIAnnotation marks commands that take over the terminal.
const terminalUIAnnotation = "sheetboard/terminal-ui"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// app holds what every subcommand needs once the root pre-run has finished.
type app struct {
	lookupEnv func(string) (string, bool)
	stdoutTTY func() bool

	configPath string
	sourceURL  string

	cfg       *config.Config
	logResult *logging.Result
}

// newLoader builds the loader for the configured sheet.
func (a *app) newLoader() *board.Loader {
	client := sheet.NewClient(a.cfg.Source.URL, sheet.WithTimeout(a.cfg.Source.Timeout))
	return board.NewLoader(client, client.URL())
}

// NewRootCmd creates the root command for the sheetboard CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	return newRootCmd(ver, &app{
		lookupEnv: lookupEnv,
		stdoutTTY: func() bool { return isTerminal(os.Stdout) },
	})
}

func newRootCmd(ver string, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sheetboard",
		Short:   "Project dashboard backed by a spreadsheet",
		Long:    "sheetboard: Browse the projects of a published spreadsheet in the terminal or the browser",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, a, a.wantsTerminalUI(cmd))
			a.logResult = &result
			return nil
		},
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			if a.stdoutTTY() {
				return runTUI(cmd, a)
			}
			return runList(cmd, a)
		}),
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/sheetboard/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.sourceURL, "source", "", "URL of the TSV export, overrides config and env")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newTUICmd(a), newServeCmd(a), newRenderCmd(a),
		newListCmd(a), newShowCmd(a), newConfigCmd(a),
	)
	return cmd
}

// runE wraps a command body so the log file is closed when it returns,
// including when it fails and cobra skips the post-run hooks.
func (a *app) runE(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := cleanupLogging(a); cerr != nil && err == nil {
				err = fmt.Errorf("closing log file: %w", cerr)
			}
		}()
		return fn(cmd, args)
	}
}

// loadConfig resolves defaults, file, env and flags, in that order.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.lookupEnv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("source") {
		cfg.Source.URL = a.sourceURL
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// wantsTerminalUI reports whether cmd will run the full-screen dashboard.
func (a *app) wantsTerminalUI(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[terminalUIAnnotation]; ok {
		return true
	}
	return !cmd.HasParent() && a.stdoutTTY()
}

const rootCmdExample = `  # Browse projects in the terminal
  sheetboard

  # Use another published sheet
  sheetboard --source "https://example.com/sheet.tsv"

  # Serve the dashboard page
  sheetboard serve --addr 127.0.0.1:8080

  # Write a static page with the first project expanded
  sheetboard render --out dashboard.html --select 0

  # Print the projects, then the details of one
  sheetboard list
  sheetboard show 2

  # Print the effective configuration
  sheetboard config show`
