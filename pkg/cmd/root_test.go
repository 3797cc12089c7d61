package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	writeFile(t, filepath.Join(tmpDir, "query.cst"), selectTree)

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "fmt", "query.cst"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, selectSQL, stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := filepath.Join(tmpDir, "custom.yaml")
	writeFile(t, cfg, "format:\n  indent_size: 4\nexclude:\n  - \"skip/**\"\n")
	writeFile(t, filepath.Join(tmpDir, "query.cst"), selectTree)
	writeFile(t, filepath.Join(tmpDir, "skip", "other.cst"), `select { exprs: [2] }`)

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "-c", cfg, "fmt", tmpDir}, &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    1\n;\n", stdout.String())
}

func TestRun_EmptyConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := filepath.Join(tmpDir, consts.DefaultConfigFile)
	writeFile(t, cfg, "")
	writeFile(t, filepath.Join(tmpDir, "query.cst"), selectTree)

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "-c", cfg, "fmt", tmpDir}, &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, selectSQL, stdout.String())
}

func TestRun_Diff(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	writeFile(t, filepath.Join(tmpDir, "query.cst"), selectTree)
	writeFile(t, filepath.Join(tmpDir, "query.sql"), "select 1;\n")

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "fmt", "-d", "query.cst"}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 file(s) are not formatted")
	require.Contains(t, stdout.String(), "--- query.sql")
	require.Contains(t, stdout.String(), "+SELECT")
}

func TestRun_MissingConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "query.cst"), selectTree)

	missing := filepath.Join(tmpDir, consts.DefaultConfigFile)

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "--config", missing, "fmt", tmpDir}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access config file")
}

func TestRun_InvalidConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := filepath.Join(tmpDir, consts.DefaultConfigFile)
	writeFile(t, cfg, "format:\n  print_width: -10\n")

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "-c", cfg, "fmt", tmpDir}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "print_width must not be negative")
}

func TestRun_Verbose(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	writeFile(t, filepath.Join(tmpDir, "query.cst"), selectTree)

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{}, []string{"bqfmt", "--verbose", "fmt", "-w", "query.cst"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stderr.String(), "level=DEBUG")
	require.Contains(t, stderr.String(), "Formatted file")
	require.Contains(t, stderr.String(), "Wrote file")
	require.FileExists(t, filepath.Join(tmpDir, "query.sql"))
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), Version{Version: "v1.2.3"}, []string{"bqfmt", "--version"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "v1.2.3")
}
