package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a freshly built root command with args.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// TestRootCommandSmallRun tests an end-to-end CLI invocation.
func TestRootCommandSmallRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.dat")
	err := execute(t,
		"--cpus", "2",
		"--length", "4096",
		"--rounds", "4",
		"--format", "none",
		"--file-out", out,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 4096)
}

// TestRootCommandRejectsBadFlags tests that validation failures surface as
// command errors.
func TestRootCommandRejectsBadFlags(t *testing.T) {
	err := execute(t, "--cpus", "0", "--length", "4096", "--format", "none")
	assert.Error(t, err)
}

// TestVersionCommand tests the version subcommand's output.
func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "cvemu version")
}

// TestConfigFileWithFlagOverride tests precedence: explicit flags win over
// the YAML file, file values win over defaults.
func TestConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cv.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"cpus: 2\nlength: 4096\nrounds: 8\nformat: none\nfile-out: "+
			filepath.Join(dir, "from_file.dat")+"\n",
	), 0o644))

	out := filepath.Join(dir, "from_flag.dat")
	err := execute(t, "--config", cfg, "--file-out", out, "--rounds", "4")
	require.NoError(t, err)

	// The flag-supplied path was used, not the file's.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 4096)
	_, err = os.Stat(filepath.Join(dir, "from_file.dat"))
	assert.True(t, os.IsNotExist(err))
}
