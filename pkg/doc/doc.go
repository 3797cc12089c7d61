// Package doc implements a width-aware document layout engine.
//
// A Doc describes text together with hints about where it may be broken
// across lines. Render lays a Doc out for a maximum line width: every Group is
// printed flat when it fits in the remaining space and broken otherwise, with
// nested groups re-evaluated independently once their parent breaks.
//
// The model follows Wadler's "prettier printer" as popularised by prettier:
//
//	d := doc.Group(doc.Concat(
//		doc.Text("SELECT"),
//		doc.Indent(doc.Concat(doc.Line, doc.Text("a,"), doc.Line, doc.Text("b"))),
//	))
//
//	doc.Render(d, doc.Options{MaxWidth: 80, IndentWidth: 2}) // "SELECT a, b"
//	doc.Render(d, doc.Options{MaxWidth: 8, IndentWidth: 2})  // "SELECT\n  a,\n  b"
//
// Line comes in three flavours. Line renders as a space when flat, SoftLine
// renders as nothing, and HardLine always breaks and forces every enclosing
// group to break as well. LineSuffix defers its content until just before the
// next line break, which keeps trailing comments at the end of their line.
//
// Widths are display widths: grapheme clusters count once and east-asian wide
// characters count twice.
package doc

// Doc is a layout document. Values are built with the constructors in this
// package and are immutable.
type Doc interface {
	isDoc()
}

// LineMode selects how a line behaves when its group is flat.
type LineMode int

const (
	// Normal lines render as a single space when flat.
	Normal LineMode = iota
	// Soft lines render as nothing when flat.
	Soft
	// Hard lines always break.
	Hard
)

type (
	text       string
	concat     []Doc
	group      struct{ contents Doc }
	indent     struct{ contents Doc }
	line       struct{ mode LineMode }
	lineSuffix struct{ contents Doc }
)

type join struct {
	sep  Doc
	docs []Doc
}

func (text) isDoc() {}
func (concat) isDoc() {}
func (*group) isDoc() {}
func (indent) isDoc() {}
func (line) isDoc() {}
func (join) isDoc() {}
func (lineSuffix) isDoc() {}

var (
	// Line is a space when flat and a newline when broken.
	Line Doc = line{mode: Normal}
	// SoftLine is nothing when flat and a newline when broken.
	SoftLine Doc = line{mode: Soft}
	// HardLine is always a newline.
	HardLine Doc = line{mode: Hard}
	// Empty renders nothing.
	Empty Doc = concat(nil)
)

// Text is a literal string. It should not contain newlines except for
// multi-line comments, whose width is measured from the last line.
func Text(s string) Doc {
	return text(s)
}

// Concat joins docs without separators. Nil docs are skipped.
func Concat(docs ...Doc) Doc {
	out := make(concat, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			out = append(out, d)
		}
	}

	return out
}

// Group marks d as a unit that is printed flat when it fits.
func Group(d Doc) Doc {
	return &group{contents: d}
}

// Indent raises the indentation of line breaks inside d by one level.
func Indent(d Doc) Doc {
	return indent{contents: d}
}

// Join places sep between consecutive docs. Nil docs are skipped.
func Join(sep Doc, docs ...Doc) Doc {
	kept := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			kept = append(kept, d)
		}
	}

	return join{sep: sep, docs: kept}
}

// LineSuffix defers d until the next line break.
func LineSuffix(d Doc) Doc {
	return lineSuffix{contents: d}
}

// NewLine returns a line of the given mode.
func NewLine(mode LineMode) Doc {
	return line{mode: mode}
}
