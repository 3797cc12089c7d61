package format

import (
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

// body indents the statements in field below their block keyword. Statements
// inside a block are always one per line.
func (p *printer) body(n *cst.Node, field string, sep doc.Doc, ctx printContext) doc.Doc {
	stmts := p.join(n, field, doc.HardLine, ctx)
	if stmts == nil {
		return nil
	}

	return doc.Indent(doc.Concat(sep, stmts))
}

// declareStatement prints DECLARE x, y INT64 DEFAULT 0.
func (p *printer) declareStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()

	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.mustJoin(n, "idents", space, c),
		spaced(p.optional(n, "variable_type", c.withUpper())),
		spaced(p.optional(n, "default", c)),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

func (p *printer) setStatement(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.must(n, "expr", ctx.nested()),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

// executeStatement prints EXECUTE IMMEDIATE sql [INTO vars] [USING args].
func (p *printer) executeStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()

	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.must(n, "immediate", c.withUpper()),
		space,
		p.must(n, "sql_expr", c),
		spaced(p.optional(n, "into", c)),
		spaced(p.optional(n, "using", c)),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

// beginStatement prints BEGIN ... [EXCEPTION WHEN ERROR THEN ...] END.
func (p *printer) beginStatement(n *cst.Node, ctx printContext) doc.Doc {
	sep := lineFor(ctx.top())
	c := ctx.nested()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			p.body(n, "stmts", sep, c),
			prefixed(sep, p.join(n, "exception_when_error_then", space, c.withUpper())),
			p.body(n, "exception_stmts", sep, c),
			sep,
			p.must(n, "end", c),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

// ifStatement prints IF cond THEN ... [ELSEIF cond THEN ...] [ELSE ...] END IF.
func (p *printer) ifStatement(n *cst.Node, ctx printContext) doc.Doc {
	sep := lineFor(ctx.top())
	c := ctx.nested()
	// the THEN and ELSE blocks break like the statement they belong to
	blocks := c
	blocks.hard = ctx.top()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			space,
			p.must(n, "condition", c),
			space,
			p.must(n, "then", blocks),
			prefixed(sep, p.join(n, "elseifs", doc.HardLine, blocks)),
			prefixed(sep, p.optional(n, "else", blocks)),
			sep,
			p.mustJoin(n, "end", space, c.withUpper()),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

func (p *printer) elseIfClause(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	then := c
	then.hard = ctx.hard

	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.must(n, "condition", c),
		space,
		p.must(n, "then", then),
	)
}

// blockStatement prints LOOP ... END LOOP and WHILE cond DO ... END WHILE.
func (p *printer) blockStatement(n *cst.Node, end string, ctx printContext) doc.Doc {
	sep := lineFor(ctx.top())
	c := ctx.nested()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "condition", c)),
			spaced(p.optional(n, "do", c.withUpper())),
			p.body(n, "stmts", sep, c),
			sep,
			p.mustJoin(n, end, space, c.withUpper()),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

// singleWordStatement prints BREAK, LEAVE, CONTINUE and ITERATE.
func (p *printer) singleWordStatement(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		p.self(n, ctx.withUpper()),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

// raiseStatement prints RAISE [USING MESSAGE = msg].
func (p *printer) raiseStatement(n *cst.Node, ctx printContext) doc.Doc {
	var using doc.Doc
	if u := n.Child("using"); u != nil {
		expr := ctx.nested()
		expr.upperLeft = true
		using = doc.Concat(
			space,
			p.selfWithModifiers(u, ctx.nested().withUpper()),
			space,
			p.must(u, "expr", expr),
		)
	}

	return doc.Concat(
		p.self(n, ctx.withUpper()),
		using,
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

func (p *printer) callStatement(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.must(n, "expr", ctx.nested()),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

// keywordWithStatement prints a keyword followed by one nested statement,
// such as the AS body of CREATE VIEW.
func (p *printer) keywordWithStatement(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx),
		doc.Indent(doc.Concat(ctx.line(), p.must(n, "stmt", ctx.nested()))),
	))
}

// keywordWithStatements prints a keyword followed by a block of nested
// statements, such as THEN and ELSE of an IF statement.
func (p *printer) keywordWithStatements(n *cst.Node, ctx printContext) doc.Doc {
	n.MustVec("stmts")

	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx.withUpper()),
		p.body(n, "stmts", ctx.line(), ctx.nested()),
	))
}
