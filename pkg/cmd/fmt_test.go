package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/bqfmt/pkg/config"
	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const (
	selectTree = `select { exprs: [1], semicolon: ";" }`
	selectSQL  = "SELECT\n  1\n;\n"
)

func testSession() *session {
	return &session{
		config: config.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func runFmt(t *testing.T, s *session, args ...string) (string, error) {
	t.Helper()

	command := fmtCmd(s)

	// Create a test CLI app
	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
}

func TestFmtCommand_RequiresPath(t *testing.T) {
	_, err := runFmt(t, testSession())
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_MultipleArguments(t *testing.T) {
	_, err := runFmt(t, testSession(), "a.cst", "b.cst")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "query.cst")
	writeFile(t, file, selectTree)

	output, err := runFmt(t, testSession(), file)
	require.NoError(t, err)
	require.Equal(t, selectSQL, output)

	// nothing is written without -w
	require.NoFileExists(t, filepath.Join(tmpDir, "query.sql"))
}

func TestFmtCommand_JSONFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "query.json")
	writeFile(t, file, `[
		{
			"token": {"line": 1, "column": 1, "literal": "select"},
			"children": {
				"exprs": {"NodeVec": [{"token": {"line": 1, "column": 8, "literal": "1"}}]},
				"semicolon": {"Node": {"token": {"line": 1, "column": 9, "literal": ";"}}}
			}
		}
	]`)

	output, err := runFmt(t, testSession(), file)
	require.NoError(t, err)
	require.Equal(t, selectSQL, output)
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "query.cst")
	writeFile(t, file, selectTree)

	output, err := runFmt(t, testSession(), "-w", file)
	require.NoError(t, err)
	require.Empty(t, output)

	content, err := os.ReadFile(filepath.Join(tmpDir, "query.sql"))
	require.NoError(t, err)
	require.Equal(t, selectSQL, string(content))
}

func TestFmtCommand_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.cst"), `select { exprs: [a] }`)
	writeFile(t, filepath.Join(tmpDir, "nested", "deep", "b.cst"), `select { exprs: [b] }`)
	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "not a tree")

	output, err := runFmt(t, testSession(), tmpDir)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  a\nSELECT\n  b\n", output)
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.cst"), `select { exprs: [a] }`)
	writeFile(t, filepath.Join(tmpDir, "nested", "b.cst"), `select { exprs: [b] }`)

	_, err := runFmt(t, testSession(), "-w", tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tmpDir, "a.sql"))
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  a\n", string(content))

	content, err = os.ReadFile(filepath.Join(tmpDir, "nested", "b.sql"))
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  b\n", string(content))
}

func TestFmtCommand_Exclude(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.cst"), `select { exprs: [a] }`)
	writeFile(t, filepath.Join(tmpDir, "generated", "b.cst"), `select { exprs: [b] }`)

	s := testSession()
	s.config.Exclude = []string{"generated/**"}

	output, err := runFmt(t, s, tmpDir)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  a\n", output)
}

func TestFmtCommand_Diff(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "query.cst")
	writeFile(t, file, selectTree)
	writeFile(t, filepath.Join(tmpDir, "query.sql"), "select 1;\n")

	output, err := runFmt(t, testSession(), "-d", file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 file(s) are not formatted")
	require.Contains(t, output, "+++ "+filepath.Join(tmpDir, "query.sql")+" (formatted)")
	require.Contains(t, output, "-select 1;")
	require.Contains(t, output, "+SELECT")

	_, err = runFmt(t, testSession(), "-w", file)
	require.NoError(t, err)

	output, err = runFmt(t, testSession(), "-d", file)
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestFmtCommand_DiffMissingOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "query.cst")
	writeFile(t, file, selectTree)

	output, err := runFmt(t, testSession(), "-d", file)
	require.Error(t, err)
	require.Contains(t, output, "+SELECT")
}

func TestFmtCommand_WriteAndDiff(t *testing.T) {
	file := filepath.Join(t.TempDir(), "query.cst")
	writeFile(t, file, selectTree)

	_, err := runFmt(t, testSession(), "-w", "-d", file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mutually exclusive")
}

func TestFmtCommand_FlagOverrides(t *testing.T) {
	file := filepath.Join(t.TempDir(), "query.cst")
	writeFile(t, file, `select {
		exprs: [x]
		from: from {
			expr: "(" {
				stmt: select { exprs: [alpha { comma: "," }, beta], from: from { expr: t } }
				rparen: ")"
			}
		}
	}`)

	output, err := runFmt(t, testSession(), file)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  x\nFROM\n  (SELECT alpha, beta FROM t)\n", output)

	output, err = runFmt(t, testSession(), "--indent", "4", "--width", "20", file)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    x\nFROM\n    (\n        SELECT\n            alpha,\n            beta\n        FROM t\n    )\n", output)
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	command := fmtCmd(testSession())

	names := make([]string, 0, len(command.Flags))
	for _, flag := range command.Flags {
		names = append(names, flag.Names()...)
	}

	require.ElementsMatch(t, []string{"write", "w", "diff", "d", "width", "indent"}, names)
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	_, err := runFmt(t, testSession(), "/nonexistent/path.cst")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	_, err := runFmt(t, testSession(), t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no tree files found in directory")
}

func TestFmtCommand_InvalidTree(t *testing.T) {
	file := filepath.Join(t.TempDir(), "query.cst")
	writeFile(t, file, `select {`)

	_, err := runFmt(t, testSession(), file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to format file")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestFmtCommand_MalformedTree(t *testing.T) {
	file := filepath.Join(t.TempDir(), "query.cst")
	writeFile(t, file, `select { exprs: [when { expr: a, result: 1 }] }`)

	_, err := runFmt(t, testSession(), file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to format file")
	require.Contains(t, err.Error(), `malformed tree: node "when" at line 1 has no "then" field`)
}
