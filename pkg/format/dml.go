package format

import (
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

// insertStatement prints INSERT [INTO] t [(cols)] followed by its VALUES or
// query input.
func (p *printer) insertStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "into", c)),
			spaced(p.optional(n, "target_name", c)),
			spaced(p.optional(n, "columns", c)),
			lineFor(ctx.top()),
			p.must(n, "input", ctx.clause()),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

func (p *printer) updateStatement(n *cst.Node, ctx printContext) doc.Doc {
	top := ctx.top()
	sep := lineFor(top)
	c := ctx.nested()
	cl := ctx.clause()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "target_name", c)),
			sep,
			p.must(n, "set", cl),
			prefixed(sep, p.optional(n, "from", cl)),
			prefixed(sep, p.optional(n, "where", cl)),
			prefixed(softLineFor(top), p.semicolon(n, ctx)),
		)),
		p.terminate(n, ctx),
	)
}

func (p *printer) deleteStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "from", c)),
			spaced(p.optional(n, "target_name", c)),
			prefixed(lineFor(ctx.top()), p.optional(n, "where", ctx.clause())),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

// truncateStatement prints TRUNCATE TABLE t.
func (p *printer) truncateStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()

	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.must(n, "table", c.withUpper()),
		space,
		p.must(n, "target_name", c),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

// mergeStatement prints MERGE [INTO] t USING s ON cond followed by one WHEN
// clause per line.
func (p *printer) mergeStatement(n *cst.Node, ctx printContext) doc.Doc {
	top := ctx.top()
	sep := lineFor(top)
	c := ctx.nested()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "into", c)),
			space,
			p.must(n, "target_name", c),
			space,
			p.must(n, "using", c),
			space,
			p.must(n, "on", c),
			sep,
			p.mustJoin(n, "whens", sep, c),
			prefixed(softLineFor(top), p.semicolon(n, ctx)),
		)),
		p.terminate(n, ctx),
	)
}

// whenClause prints WHEN [NOT] MATCHED [BY TARGET|SOURCE] [AND cond] THEN
// with its action indented below.
func (p *printer) whenClause(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	var byTarget doc.Doc
	if by := n.Vec("by_target"); len(by) > 0 {
		docs := make([]doc.Doc, len(by))
		for i, b := range by {
			// TARGET and SOURCE are not reserved
			docs[i] = p.print(b, c.withUpper())
		}
		byTarget = spaced(doc.Join(space, docs...))
	}

	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx.withUpper()),
		spaced(p.optional(n, "not", c)),
		space,
		p.must(n, "matched", c.withUpper()),
		byTarget,
		spaced(p.optional(n, "and", c)),
		space,
		p.must(n, "then", c),
		doc.Indent(doc.Concat(doc.Line, p.must(n, "stmt", ctx.nested()))),
	))
}
