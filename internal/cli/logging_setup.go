package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/sheetboard/internal/logging"
)

// setupLogging configures logging from the resolved config and the --debug
// flag, and stores the logger and a fresh trace id in the command context.
// The terminal UI always logs to a file so nothing is written over the screen.
func setupLogging(cmd *cobra.Command, a *app, terminalUI bool) logging.Result {
	loggingCfg := a.cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !terminalUI {
			loggingCfg.Format = "console"
			loggingCfg.File = ""
		}
	}
	if terminalUI {
		loggingCfg = loggingCfg.ForTerminalUI()
	}

	cfg := loggingCfg.ToLoggingConfig()
	cfg.Caller = debug
	result := logging.NewLoggerTo(cfg, cmd.ErrOrStderr())
	logger := logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
		if terminalUI {
			logger = zerolog.Nop()
		}
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	logger = logger.With().Str("trace_id", traceID).Logger()
	ctx = logging.ContextWithLogger(ctx, logger)
	cmd.SetContext(ctx)

	logger.Debug().
		Str("command", cmd.Name()).
		Str("source", a.cfg.Source.URL).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file, if any, and forgets it.
func cleanupLogging(a *app) error {
	result := a.logResult
	a.logResult = nil
	return result.Close()
}
