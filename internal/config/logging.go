package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/sheetboard/internal/logging"
)

// defaultLogFileName is used when the TUI needs a log file and none is configured.
const defaultLogFileName = "sheetboard.log"

// DefaultLogFile returns the log file used by the TUI when logging.file is unset.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), defaultLogFileName)
}

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// If File is set, Output becomes "file"; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ForTerminalUI returns a copy that never writes to the terminal: stderr
// output is redirected to DefaultLogFile.
func (lc LoggingConfig) ForTerminalUI() LoggingConfig {
	if lc.File == "" {
		lc.File = DefaultLogFile()
	}
	return lc
}
