package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRerootCommand(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "in.nwk")
	require.NoError(t, os.WriteFile(input, []byte("((A,B),(C,D));\n"), 0644))

	t.Run("reroots a four leaf tree", func(t *testing.T) {
		output := filepath.Join(tmpDir, "out.nwk")
		require.NoError(t, runCommand(t, "reroot", input, output))

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "((A,B),(C,D));\n", string(data))
	})

	t.Run("weighted tree balances root", func(t *testing.T) {
		weighted := filepath.Join(tmpDir, "weighted.nwk")
		require.NoError(t, os.WriteFile(weighted, []byte("((A:1,B:2):1,(C:3,D:4):1);\n"), 0644))

		output := filepath.Join(tmpDir, "weighted-out.nwk")
		require.NoError(t, runCommand(t, "reroot", weighted, output))

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "((C:3,D:4):0,(A:1,B:2):2);\n", string(data))
	})

	t.Run("missing input produces no output", func(t *testing.T) {
		output := filepath.Join(tmpDir, "never.nwk")
		err := runCommand(t, "reroot", filepath.Join(tmpDir, "missing.nwk"), output)
		require.Error(t, err)

		_, statErr := os.Stat(output)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing output directory", func(t *testing.T) {
		output := filepath.Join(tmpDir, "no-such-dir", "out.nwk")
		err := runCommand(t, "reroot", input, output)
		require.Error(t, err)

		_, statErr := os.Stat(output)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("out of range format code fails before writing", func(t *testing.T) {
		output := filepath.Join(tmpDir, "badformat.nwk")
		err := runCommand(t, "reroot", "-f", "42", input, output)
		require.Error(t, err)

		_, statErr := os.Stat(output)
		assert.True(t, os.IsNotExist(statErr))
	})
}
