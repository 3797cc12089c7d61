package format

import (
	"strings"

	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
	"github.com/pseudomuto/bqfmt/pkg/keywords"
)

// function prints a call. Builtin names are upper cased, arguments are
// indented one per line when the call does not fit, and a single nested call
// hugs the parentheses: COUNT(DISTINCT(x)).
func (p *printer) function(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	fn := n.MustChild("func")

	nc := c
	nc.funcName = true
	nc.dottedRHS = ctx.dottedRHS
	if ctx.upperFunc || ctx.datePart {
		nc = nc.withUpper()
	}

	var sep doc.Doc
	if strings.EqualFold(fn.Literal(), "exists") {
		sep = space
	}

	var distinct doc.Doc
	if d := n.Child("distinct"); d != nil {
		distinct = doc.Concat(p.print(d, c.withUpper()), space)
	}

	var args, closing doc.Doc = nil, doc.SoftLine
	if n.Has("args") {
		nodes := n.Vec("args")
		datePart, hasDatePart := keywords.DatePartArg(fn.Literal(), len(nodes))

		docs := make([]doc.Doc, len(nodes))
		for i, arg := range nodes {
			ac := c
			switch {
			case hasDatePart && i == datePart:
				ac = datePartContext(arg, c)
			case ctx.datePart && i == 0:
				ac = ac.withUpper()
			}
			docs[i] = doc.Group(p.print(arg, ac))
		}

		if len(nodes) == 1 && nodes[0].Has("func") {
			args, closing = docs[0], nil
		} else {
			args = doc.Indent(doc.Concat(doc.SoftLine, doc.Join(doc.Line, docs...)))
		}
	}

	return doc.Group(doc.Concat(
		p.print(fn, nc),
		sep,
		p.self(n, ctx),
		distinct,
		args,
		spaced(p.optional(n, "ignore_nulls", c)),
		spaced(p.optional(n, "orderby", c)),
		spaced(p.optional(n, "limit", c)),
		closing,
		p.must(n, "rparen", c),
		spaced(p.optional(n, "over", c)),
		p.modifiers(n, c),
	))
}

// datePartContext cases a date-part argument: WEEK, or WEEK(MONDAY) when the
// part takes an argument of its own.
func datePartContext(arg *cst.Node, ctx printContext) printContext {
	if arg.Literal() == "(" && arg.Has("func") {
		ctx.datePart = true
		return ctx
	}

	return ctx.withUpper()
}

// castArgument prints the x AS INT64 inside CAST.
func (p *printer) castArgument(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Join(space,
		p.must(n, "cast_from", c),
		p.selfWithModifiers(n, ctx),
		p.must(n, "cast_to", c.withUpper()),
	)
}

// extractArgument prints the DAY FROM ts inside EXTRACT.
func (p *printer) extractArgument(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	part := n.MustChild("extract_datepart")

	return doc.Concat(
		p.print(part, datePartContext(part, c)),
		space,
		p.selfWithModifiers(n, ctx),
		space,
		p.must(n, "extract_from", c),
	)
}
