// Command sheetboard shows the projects of a published spreadsheet as a
// terminal dashboard, an HTML page or a plain listing.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/sheetboard/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}
