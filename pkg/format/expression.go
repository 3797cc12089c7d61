package format

import (
	"strings"

	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
	"github.com/pseudomuto/bqfmt/pkg/keywords"
)

// unary operators printed without a space before their operand
var tightUnaryOperators = map[string]bool{
	"+":      true,
	"-":      true,
	"~":      true,
	"br":     true,
	"r":      true,
	"rb":     true,
	"b":      true,
	"array":  true,
	"struct": true,
}

func (p *printer) binaryOperator(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	op := strings.ToUpper(n.Literal())
	left, right := n.MustChild("left"), n.MustChild("right")

	lc, rc := c, c
	if ctx.upperLeft {
		lc = lc.withUpper()
	}

	var before, after doc.Doc = space, space
	switch op {
	case ".":
		before, after = nil, nil
		if keywords.IsNamespace(left.Literal()) {
			lc = lc.withUpper()
			rc.upperFunc = true
		} else {
			rc.dottedRHS = true
		}
	case "AND", "OR":
		if ctx.inWhere && !ctx.inBetween {
			before = doc.Line
		}
	case ",":
		before = doc.SoftLine
	case "JOIN":
		before = doc.Line
	}

	var operator doc.Doc
	if op == "IS" {
		operator = doc.Concat(p.self(n, ctx), spaced(p.optional(n, "not", c)))
	} else {
		operator = doc.Concat(suffixed(p.optional(n, "not", c)), p.self(n, ctx))
	}

	return doc.Concat(
		p.print(left, lc),
		before,
		doc.Concat(
			suffixed(p.optional(n, "join_type", c)),
			suffixed(p.optional(n, "outer", c)),
			operator,
			after,
			p.print(right, rc),
			spaced(p.optional(n, "on", c)),
			spaced(p.optional(n, "using", c)),
			p.modifiers(n, c),
		),
	)
}

func (p *printer) unaryOperator(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	lit := n.Literal()

	sc := ctx
	switch {
	case keywords.IsTypedLiteral(lit):
		sc = sc.withUpper()
	case keywords.IsStringPrefix(lit):
		sc = sc.withLower()
	}

	op := p.self(n, sc)
	if !tightUnaryOperators[strings.ToLower(lit)] {
		op = doc.Concat(op, space)
	}

	return doc.Concat(
		op,
		p.optional(n, "type_declaration", c),
		p.must(n, "right", c),
		p.modifiers(n, c),
	)
}

// betweenOperator prints x [NOT] BETWEEN min AND max.
func (p *printer) betweenOperator(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	bounds := n.MustVec("right")
	if len(bounds) != 2 {
		panic(cst.ContractViolation{Literal: n.Literal(), Line: n.Line(), Field: "right"})
	}

	bc := c.withBetween()
	return doc.Concat(
		p.must(n, "left", c),
		spaced(p.optional(n, "not", c)),
		space,
		p.self(n, ctx),
		space,
		p.print(bounds[0], bc),
		space,
		p.must(n, "and", c),
		space,
		p.print(bounds[1], bc),
		p.modifiers(n, c),
	)
}

// intervalLiteral prints INTERVAL 1 DAY.
func (p *printer) intervalLiteral(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.self(n, ctx),
		space,
		p.must(n, "right", c),
		space,
		p.must(n, "date_part", c.withUpper()),
		p.modifiers(n, c),
	)
}

func (p *printer) groupedExpr(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()
	expr := n.MustChild("expr")

	// nested parentheses hug each other
	if expr.Literal() == "(" {
		return doc.Group(doc.Concat(
			p.self(n, ctx),
			doc.Group(p.print(expr, c)),
			p.must(n, "rparen", c),
			p.modifiers(n, c),
		))
	}

	return doc.Group(doc.Concat(
		p.self(n, ctx),
		doc.Group(doc.Indent(doc.Concat(doc.SoftLine, p.print(expr, c)))),
		doc.SoftLine,
		p.must(n, "rparen", c),
		p.modifiers(n, c),
	))
}

// groupedExprs prints a parenthesized list such as the right side of IN.
func (p *printer) groupedExprs(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Group(doc.Concat(
		p.self(n, ctx),
		doc.Indent(doc.Concat(doc.SoftLine, p.mustJoin(n, "exprs", doc.Line, c))),
		doc.SoftLine,
		p.must(n, "rparen", c),
		p.modifiers(n, c),
	))
}

// arrayAccess prints arr[OFFSET(1)].
func (p *printer) arrayAccess(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.must(n, "left", c),
		p.self(n, ctx),
		p.must(n, "right", c),
		p.must(n, "rparen", c),
		p.modifiers(n, c),
	)
}

// caseExpr prints CASE [expr] WHEN ... THEN ... [ELSE ...] END with one arm
// per line when the expression does not fit.
func (p *printer) caseExpr(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Group(doc.Concat(
		p.self(n, ctx),
		spaced(p.optional(n, "expr", c)),
		doc.Indent(doc.Concat(doc.Line, p.mustJoin(n, "arms", doc.Line, c))),
		doc.Line,
		p.must(n, "end", c),
		p.modifiers(n, c),
	))
}

func (p *printer) caseArm(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	// ELSE has no condition
	if !n.Has("expr") {
		return doc.Concat(p.self(n, ctx), space, p.must(n, "result", c))
	}

	return doc.Concat(
		p.self(n, ctx),
		space,
		p.must(n, "expr", c),
		space,
		p.must(n, "then", c),
		space,
		p.must(n, "result", c),
	)
}

// typeDeclaration prints the element list of a type, <INT64> or
// <a INT64, b STRING>, and the column list of a table. Column lists break one
// column per line when they do not fit.
func (p *printer) typeDeclaration(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	var body doc.Doc
	if t := n.Child("type"); t != nil {
		body = p.print(t, c.withUpper())
	}

	if n.Literal() == "(" {
		return doc.Group(doc.Concat(
			p.selfWithModifiers(n, ctx),
			doc.Indent(doc.Concat(doc.SoftLine, body, p.join(n, "declarations", doc.Line, c))),
			doc.SoftLine,
			p.must(n, "rparen", c),
		))
	}

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		body,
		p.join(n, "declarations", space, c),
		p.must(n, "rparen", c),
	)
}

// identAndType prints a name followed by its type, as in a column or struct
// field declaration. Anonymous struct fields have no name.
func (p *printer) identAndType(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	var ident doc.Doc
	if n.HasSelf() {
		ident = doc.Concat(p.self(n, ctx), space)
	}

	return doc.Concat(
		ident,
		p.must(n, "type", c.withUpper()),
		p.optional(n, "comma", c),
	)
}

func (p *printer) namedParameter(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		p.mustJoin(n, "args", space, c),
		p.optional(n, "rparen", c),
	)
}
