package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/pseudomuto/bqfmt/pkg/config"
	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// fmtCmd creates a CLI command that prints SQL from syntax tree files.
// This command provides gofmt-like functionality for bq2cst output, allowing
// users to format individual trees or entire directory trees recursively.
//
// The command supports three output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Formatted SQL is written to <name>.sql beside each tree
//   - Diff mode (-d flag): A unified diff against the existing <name>.sql is
//     printed, and the command fails when any file differs
//
// Path handling:
//   - File paths: Format the specified tree file directly
//   - Directory paths: Recursively find and format all .json and .cst files,
//     skipping those matched by the config's exclude patterns
//
// Flags:
//   - -w: Write formatted results beside the source files instead of stdout
//   - -d: Show a diff instead of writing anything
//   - --width: Override the configured print width
//   - --indent: Override the configured indent size
//
// Examples:
//
//	# Format single tree to stdout
//	bqfmt fmt query.json
//
//	# Write query.sql beside query.json
//	bqfmt fmt -w query.json
//
//	# Check that every query under queries/ is up to date
//	bqfmt fmt -d queries/
func fmtCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL syntax trees",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to <name>.sql instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Display diffs against <name>.sql instead of the formatted SQL",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "The preferred maximum line width",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "The number of spaces per indentation level",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			if cmd.Bool("write") && cmd.Bool("diff") {
				return errors.New("the write and diff flags are mutually exclusive")
			}

			options := s.config.FormatterOptions()
			options.Logger = s.logger
			if cmd.IsSet("width") {
				options.MaxWidth = cmd.Int("width")
			}
			if cmd.IsSet("indent") {
				options.IndentSize = cmd.Int("indent")
			}

			files, err := collectFiles(cmd.Args().First(), s.config)
			if err != nil {
				return err
			}

			results, err := formatFiles(ctx, files, options)
			if err != nil {
				return err
			}

			switch {
			case cmd.Bool("write"):
				return writeResults(files, results, s)
			case cmd.Bool("diff"):
				return diffResults(files, results, cmd.Root().Writer)
			default:
				for _, formatted := range results {
					if _, err := io.WriteString(cmd.Root().Writer, formatted); err != nil {
						return errors.Wrap(err, "failed to write formatted content to output")
					}
				}
				return nil
			}
		},
	}
}

// collectFiles resolves path to the tree files to format. A file path is
// returned as is. Directories are walked in lexical order.
func collectFiles(path string, cfg *config.Config) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !isTreeFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(path, file)
		if err != nil {
			return err
		}

		if !cfg.Excluded(rel) {
			files = append(files, file)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no tree files found in directory: %s", path)
	}

	return files, nil
}

// formatFiles formats every file concurrently. Results are returned in the
// order of files.
func formatFiles(ctx context.Context, files []string, options format.FormatterOptions) ([]string, error) {
	results := make([]string, len(files))
	formatter := format.New(options)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			formatted, err := formatFile(formatter, file)
			if err != nil {
				return errors.Wrapf(err, "failed to format file: %s", file)
			}

			options.Logger.Debug("Formatted file", "path", file, "bytes", len(formatted))
			results[i] = formatted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// formatFile reads the tree at path and prints it. A malformed tree is
// reported as an error rather than a crash.
func formatFile(formatter *format.Formatter, path string) (formatted string, err error) {
	script, err := cst.ReadFile(path)
	if err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			violation, ok := r.(cst.ContractViolation)
			if !ok {
				panic(r)
			}
			err = violation
		}
	}()

	var buf bytes.Buffer
	if err := formatter.Format(&buf, script...); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func writeResults(files, results []string, s *session) error {
	for i, file := range files {
		out := outputPath(file)
		if err := os.WriteFile(out, []byte(results[i]), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", out)
		}

		s.logger.Debug("Wrote file", "path", out)
	}

	return nil
}

// diffResults prints a unified diff for every file whose <name>.sql differs
// from the formatted output. A missing <name>.sql is diffed as empty.
func diffResults(files, results []string, w io.Writer) error {
	var changed int
	for i, file := range files {
		out := outputPath(file)

		existing, err := os.ReadFile(out)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to read file: %s", out)
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(existing)),
			B:        difflib.SplitLines(results[i]),
			FromFile: out,
			ToFile:   out + " (formatted)",
			Context:  3,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to diff file: %s", out)
		}

		if diff == "" {
			continue
		}

		changed++
		if _, err := fmt.Fprint(w, diff); err != nil {
			return errors.Wrap(err, "failed to write diff to output")
		}
	}

	if changed > 0 {
		return errors.Errorf("%d file(s) are not formatted", changed)
	}

	return nil
}

// outputPath is the path formatted SQL is written to: query.json -> query.sql.
func outputPath(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + consts.FormattedExt
}

func isTreeFile(name string) bool {
	return slices.Contains(consts.TreeExts, strings.ToLower(filepath.Ext(name)))
}
