package format

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// MaxWidth is the preferred maximum line length (0 = no limit)
		MaxWidth int
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int
		// Logger receives diagnostics. Defaults to slog.Default().
		Logger *slog.Logger
	}

	// Formatter handles SQL statement formatting with configurable options
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{
	MaxWidth:   consts.DefaultPrintWidth,
	IndentSize: consts.DefaultIndentSize,
}

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	return &Formatter{options: options}
}

// Format writes the formatted script to w using the given options.
func Format(w io.Writer, options FormatterOptions, script ...*cst.Node) error {
	return New(options).Format(w, script...)
}

// Format writes the formatted script to w. The script is the ordered list of
// top-level statements, optionally terminated by the EOF node that carries
// comments found after the last statement. Nil entries are ignored.
//
// When the blank lines between two statements cannot be determined, the
// offending node is written as JSON instead of formatted SQL and a warning is
// logged.
func (f *Formatter) Format(w io.Writer, script ...*cst.Node) error {
	stmts := make([]*cst.Node, 0, len(script))
	for _, n := range script {
		if n != nil {
			stmts = append(stmts, n)
		}
	}

	if len(stmts) == 0 {
		return nil
	}

	gaps, err := Gaps(stmts)
	if err != nil {
		var gapErr *GapError
		if !errors.As(err, &gapErr) {
			return err
		}

		f.logger().Warn("writing raw tree instead of formatted SQL",
			"line", gapErr.Node.Line(),
			"literal", gapErr.Node.Literal(),
			"error", err,
		)
		return writeTree(w, gapErr.Node)
	}

	_, err = io.WriteString(w, f.render(stmts, gaps))
	return errors.Wrap(err, "failed to write formatted SQL")
}

func (f *Formatter) render(stmts []*cst.Node, gaps []int) string {
	p := &printer{
		kinds: cst.ClassifyTree(stmts),
		gaps:  make(map[*cst.Node]int, len(stmts)),
	}

	for i, n := range stmts {
		p.gaps[n] = gaps[i]
	}

	docs := make([]doc.Doc, 0, len(stmts)*2)
	for i, n := range stmts {
		docs = append(docs, p.print(n, printContext{}))

		// statements without a terminator still start on their own line
		if !n.Has("semicolon") && i+1 < len(stmts) && !stmts[i+1].IsEOF() {
			docs = append(docs, doc.HardLine)
		}
	}

	out := doc.Render(doc.Concat(docs...), doc.Options{
		MaxWidth:    f.options.MaxWidth,
		IndentWidth: f.options.IndentSize,
	})

	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return out
}

func (f *Formatter) logger() *slog.Logger {
	if f.options.Logger != nil {
		return f.options.Logger
	}

	return slog.Default()
}

func writeTree(w io.Writer, n *cst.Node) error {
	data, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "failed to encode tree")
	}

	_, err = w.Write(append(data, '\n'))
	return errors.Wrap(err, "failed to write tree")
}
