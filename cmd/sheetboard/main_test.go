package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheetboard/internal/cli"
)

func TestRun(t *testing.T) {
	t.Run("run function exists", func(_ *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version)
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version)
		require.NotNil(t, root)
		assert.Equal(t, "sheetboard", root.Use)
		assert.Equal(t, version, root.Version)

		for _, name := range []string{"tui", "serve", "render", "list", "show", "config"} {
			cmd, _, err := root.Find([]string{name})
			require.NoError(t, err, name)
			assert.Equal(t, name, cmd.Name())
		}
	})
}
