package format

import (
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

// windowSpecification prints (name PARTITION BY ... ORDER BY ... frame).
func (p *printer) windowSpecification(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	var contents []doc.Doc
	if name := p.optional(n, "name", c); name != nil {
		contents = append(contents, name)
	}
	if by := p.optional(n, "partitionby", c); by != nil {
		contents = append(contents, doc.Group(by))
	}
	if by := p.optional(n, "orderby", c); by != nil {
		contents = append(contents, doc.Group(by))
	}
	if frame := p.optional(n, "frame", c); frame != nil {
		contents = append(contents, frame)
	}

	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx),
		doc.Indent(doc.Concat(doc.SoftLine, doc.Join(doc.Line, contents...))),
		doc.SoftLine,
		p.optional(n, "rparen", c),
	))
}

// windowFrameClause prints ROWS BETWEEN start AND end.
func (p *printer) windowFrameClause(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Group(doc.Join(space,
		p.selfWithModifiers(n, ctx),
		p.optional(n, "between", c),
		p.must(n, "start", c),
		p.optional(n, "and", c),
		p.optional(n, "end", c),
	))
}

// frameStartOrEnd prints a frame bound. The bound expression is printed as
// whatever it would be without its PRECEDING or FOLLOWING keyword.
func (p *printer) frameStartOrEnd(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	kind := cst.ClassifyWithout(n, "preceding", "following")

	return doc.Concat(
		p.printKind(n, kind, ctx),
		spaced(p.optional(n, "preceding", c)),
		spaced(p.optional(n, "following", c)),
	)
}

// windowClause prints WINDOW w AS (...), v AS (...).
func (p *printer) windowClause(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		p.selfWithModifiers(n, ctx.withUpper()),
		doc.Indent(doc.Concat(ctx.line(), p.mustJoin(n, "window_exprs", doc.Line, ctx.child()))),
	)
}

func (p *printer) windowExprs(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.self(n, ctx),
		space,
		p.must(n, "as", c),
		space,
		p.must(n, "window", c),
		p.optional(n, "comma", c),
	)
}

// nullOrder prints NULLS FIRST and NULLS LAST.
func (p *printer) nullOrder(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		space,
		p.must(n, "first", ctx.child().withUpper()),
	)
}
