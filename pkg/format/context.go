package format

import (
	"github.com/pseudomuto/bqfmt/pkg/doc"
	"github.com/pseudomuto/bqfmt/pkg/keywords"
)

// printContext is the state threaded through every print call. It is passed
// by value; rules derive the context of their children with child or nested
// and never modify a context they received.
type printContext struct {
	// depth is the number of statements enclosing the node.
	depth int

	// hard renders clause separators as hard lines. Set by top-level
	// statements on their clauses.
	hard bool

	// inWhere is set below WHERE, HAVING and QUALIFY, where AND/OR may break.
	inWhere bool
	// inBetween is set on the bounds of a BETWEEN range.
	inBetween bool

	// The fields below apply to the node's own literal only.
	upper     bool
	lower     bool
	literal   string
	funcName  bool
	dottedRHS bool
	// upperFunc upper cases the name of a called function.
	upperFunc bool
	// datePart marks a date-part argument given as a call, WEEK(MONDAY).
	datePart bool
	// upperLeft upper cases the left operand of a binary operator.
	upperLeft bool
}

// top reports whether the node belongs to a top-level statement.
func (c printContext) top() bool {
	return c.depth == 0
}

// child is the context for the children of a node.
func (c printContext) child() printContext {
	return printContext{
		depth:     c.depth,
		inWhere:   c.inWhere,
		inBetween: c.inBetween,
	}
}

// nested is the context for the children of a statement.
func (c printContext) nested() printContext {
	return printContext{depth: c.depth + 1}
}

// clause is the context for the clauses of a statement.
func (c printContext) clause() printContext {
	n := c.nested()
	n.hard = c.top()
	return n
}

func (c printContext) withUpper() printContext {
	c.upper = true
	return c
}

func (c printContext) withLower() printContext {
	c.lower = true
	return c
}

func (c printContext) withLiteral(s string) printContext {
	c.literal = s
	return c
}

func (c printContext) withWhere() printContext {
	c.inWhere = true
	return c
}

func (c printContext) withBetween() printContext {
	c.inBetween = true
	return c
}

// line separates a keyword from its body.
func (c printContext) line() doc.Doc {
	return lineFor(c.hard)
}

// casing returns lit cased for this position.
func (c printContext) casing(lit string) string {
	if c.literal != "" {
		return c.literal
	}

	return keywords.Case(lit, keywords.Context{
		Upper:        c.upper,
		Lower:        c.lower,
		FunctionName: c.funcName,
		DottedRHS:    c.dottedRHS,
	})
}

// lineFor returns the separator between the parts of a statement.
func lineFor(top bool) doc.Doc {
	if top {
		return doc.HardLine
	}

	return doc.Line
}

// softLineFor returns the separator before a statement terminator.
func softLineFor(top bool) doc.Doc {
	if top {
		return doc.HardLine
	}

	return doc.SoftLine
}
