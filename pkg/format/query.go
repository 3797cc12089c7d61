package format

import (
	"strings"

	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

// selectClauses lists the optional clauses of a SELECT in print order. The
// grouped clauses collapse onto one line independently of the statement.
var selectClauses = []struct {
	field   string
	grouped bool
}{
	{"from", true},
	{"where", false},
	{"groupby", true},
	{"having", true},
	{"qualify", true},
	{"window", false},
	{"orderby", true},
	{"limit", true},
}

func (p *printer) selectStatement(n *cst.Node, ctx printContext) doc.Doc {
	top := ctx.top()
	sep := lineFor(top)
	c := ctx.nested()
	cl := ctx.clause()

	var with doc.Doc
	if w := n.Child("with"); w != nil {
		with = doc.Concat(p.print(w, cl), sep)
	}

	exprs := n.MustVec("exprs")
	columns := make([]doc.Doc, 0, len(exprs)*2)
	for _, e := range exprs {
		columns = append(columns, sep, doc.Group(p.print(e, c)))
	}

	parts := []doc.Doc{
		with,
		p.self(n, ctx),
		spaced(p.optional(n, "as", c)),
		spaced(p.optional(n, "distinct", c)),
		doc.Indent(doc.Concat(columns...)),
	}

	for _, clause := range selectClauses {
		child := p.optional(n, clause.field, cl)
		if child == nil {
			continue
		}

		if clause.grouped {
			child = doc.Group(child)
		}
		parts = append(parts, sep, child)
	}

	parts = append(parts, prefixed(softLineFor(top), p.semicolon(n, ctx)))

	return doc.Concat(doc.Group(doc.Concat(parts...)), p.terminate(n, ctx))
}

// setOperator prints UNION, INTERSECT and EXCEPT. Both operands belong to the
// same statement, so they share its depth.
func (p *printer) setOperator(n *cst.Node, ctx printContext) doc.Doc {
	top := ctx.top()
	sep := lineFor(top)
	c := ctx.child()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.must(n, "left", c),
			sep,
			p.self(n, ctx),
			spaced(p.optional(n, "distinct", c)),
			sep,
			p.must(n, "right", c),
			prefixed(softLineFor(top), p.semicolon(n, ctx)),
		)),
		p.terminate(n, ctx),
	)
}

// groupedStatement prints a parenthesized query. Its alias and comma follow
// the closing parenthesis.
func (p *printer) groupedStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx),
			doc.Indent(doc.Concat(doc.SoftLine, p.must(n, "stmt", ctx.nested()))),
			doc.SoftLine,
			p.must(n, "rparen", c),
			p.modifiers(n, c),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

func (p *printer) withQueries(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		p.selfWithModifiers(n, ctx.withUpper()),
		doc.Indent(doc.Concat(ctx.line(), p.mustJoin(n, "queries", doc.Line, ctx.child()))),
	)
}

func (p *printer) withQuery(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.self(n, ctx),
		space,
		p.must(n, "as", c),
		space,
		p.must(n, "stmt", c),
		p.optional(n, "comma", c),
	)
}

// keywordWithExpr prints clauses such as FROM and WHERE: the keyword, then the
// expression indented on the next line when the clause does not fit.
func (p *printer) keywordWithExpr(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	switch strings.ToUpper(n.Literal()) {
	case "WHERE", "HAVING", "QUALIFY":
		c = c.withWhere()
	}

	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx.withUpper()),
		doc.Indent(doc.Concat(ctx.line(), p.must(n, "expr", c))),
	))
}

func (p *printer) keywordWithExprs(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx.withUpper()),
		doc.Indent(doc.Concat(ctx.line(), p.mustJoin(n, "exprs", doc.Line, ctx.child()))),
	))
}

// keywordByExpr prints PARTITION BY x.
func (p *printer) keywordByExpr(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		space,
		p.must(n, "by", c),
		space,
		p.must(n, "expr", c),
	)
}

// keywordByExprs prints GROUP BY a, b and ORDER BY a, b.
func (p *printer) keywordByExprs(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		space,
		p.must(n, "by", c),
		space,
		doc.Indent(p.mustJoin(n, "exprs", doc.Line, c)),
	)
}

func (p *printer) limitClause(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Group(doc.Concat(
		p.keywordWithExpr(n, ctx),
		doc.Line,
		p.must(n, "offset", ctx.child()),
	))
}

// as prints an alias. Implicit aliases have no AS keyword of their own.
func (p *printer) as(n *cst.Node, ctx printContext) doc.Doc {
	var kw doc.Doc
	if n.HasSelf() || len(n.LeadingComments) > 0 {
		kw = doc.Concat(p.selfWithModifiers(n, ctx), space)
	}

	return doc.Concat(kw, p.must(n, "alias", ctx.child()))
}

func (p *printer) tableName(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		spaced(p.optional(n, "for_system_time_as_of", c)),
		spaced(p.optional(n, "tablesample", c)),
	)
}

// forSystemTimeAsOf prints FOR SYSTEM_TIME AS OF ts.
func (p *printer) forSystemTimeAsOf(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Join(space,
		p.selfWithModifiers(n, ctx),
		p.mustJoin(n, "system_time_as_of", space, c.withUpper()),
		p.must(n, "expr", c),
	)
}

// tablesampleClause prints TABLESAMPLE SYSTEM (n PERCENT).
func (p *printer) tablesampleClause(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		space,
		p.must(n, "system", c.withUpper()),
		space,
		p.must(n, "group", c),
	)
}

func (p *printer) tablesampleRatio(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		p.optional(n, "expr", c),
		space,
		p.must(n, "percent", c.withUpper()),
		p.optional(n, "rparen", c),
	)
}

// unnestWithOffset prints UNNEST(arr) WITH OFFSET.
func (p *printer) unnestWithOffset(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(p.function(n, ctx), space, p.must(n, "with", ctx.child()))
}

func (p *printer) withOffset(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.self(n, ctx),
		space,
		p.must(n, "unnest_offset", c.withUpper()),
		p.modifiers(n, c),
	)
}
