package format

import (
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

// createTableStatement prints CREATE TABLE and CREATE VIEW, including
// materialized views and external tables.
func (p *printer) createTableStatement(n *cst.Node, ctx printContext) doc.Doc {
	sep := lineFor(ctx.top())
	c := ctx.nested()
	upper := c.withUpper()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx),
			spaced(p.join(n, "or_replace", space, upper)),
			spaced(p.optional(n, "temp", c.withLiteral("TEMPORARY"))),
			spaced(p.optional(n, "materialized", upper)),
			spaced(p.optional(n, "external", upper)),
			space,
			p.must(n, "what", upper),
			spaced(p.join(n, "if_not_exists", space, c)),
			space,
			p.must(n, "ident", c),
			spaced(p.optional(n, "column_schema_group", c)),
			prefixed(sep, p.optional(n, "partitionby", c)),
			prefixed(sep, p.optional(n, "clusterby", upper)),
			prefixed(sep, p.optional(n, "with_partition_columns", c)),
			prefixed(sep, p.optional(n, "options", upper)),
			spaced(p.optional(n, "as", c)),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

// createFunctionStatement prints SQL and JavaScript UDFs and table functions.
func (p *printer) createFunctionStatement(n *cst.Node, ctx printContext) doc.Doc {
	sep := lineFor(ctx.top())
	c := ctx.nested()
	upper := c.withUpper()

	var determinism doc.Doc
	if d := n.Child("determinism"); d != nil {
		// NOT DETERMINISTIC is a unary operator
		if r := d.Child("right"); r != nil {
			determinism = doc.Concat(p.self(d, upper), space, p.print(r, upper))
		} else {
			determinism = p.print(d, upper)
		}
	}

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx),
			spaced(p.join(n, "or_replace", space, upper)),
			spaced(p.optional(n, "temp", c.withLiteral("TEMPORARY"))),
			space,
			p.must(n, "what", upper),
			spaced(p.join(n, "if_not_exists", space, upper)),
			space,
			p.must(n, "ident", c),
			p.must(n, "group", c),
			prefixed(sep, p.optional(n, "returns", upper)),
			spaced(determinism),
			prefixed(sep, p.optional(n, "language", c)),
			spaced(p.optional(n, "options", upper)),
			spaced(p.optional(n, "as", c)),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

// createProcedureStatement prints CREATE PROCEDURE with its BEGIN ... END body
// on the following line.
func (p *printer) createProcedureStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()
	upper := c.withUpper()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx),
			spaced(p.join(n, "or_replace", space, upper)),
			space,
			p.must(n, "what", upper),
			spaced(p.join(n, "if_not_exists", space, c)),
			space,
			p.must(n, "ident", c),
			p.must(n, "group", c),
			spaced(p.optional(n, "options", upper)),
			lineFor(ctx.top()),
			p.must(n, "stmt", c),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

func (p *printer) createSchemaStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()
	upper := c.withUpper()

	return doc.Concat(
		p.self(n, ctx),
		space,
		p.must(n, "what", upper),
		spaced(p.join(n, "if_not_exists", space, c)),
		space,
		p.must(n, "ident", c),
		spaced(p.optional(n, "options", upper)),
		p.semicolon(n, ctx),
		p.terminate(n, ctx),
	)
}

// alterStatement prints ALTER TABLE/VIEW/SCHEMA with SET OPTIONS or a list of
// ADD COLUMN and DROP COLUMN actions, one per line when they do not fit.
func (p *printer) alterStatement(n *cst.Node, ctx printContext) doc.Doc {
	sep := lineFor(ctx.top())
	c := ctx.nested()
	upper := c.withUpper()

	var actions []doc.Doc
	for _, field := range []string{"add_columns", "drop_columns"} {
		if d := p.join(n, field, doc.Line, c); d != nil {
			actions = append(actions, d)
		}
	}

	var body doc.Doc
	if len(actions) > 0 {
		body = doc.Indent(doc.Concat(sep, doc.Join(doc.Line, actions...)))
	}

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "materialized", upper)),
			space,
			p.must(n, "what", upper),
			space,
			p.must(n, "ident", c),
			spaced(p.optional(n, "set", c)),
			spaced(p.optional(n, "options", upper)),
			body,
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

func (p *printer) dropStatement(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.nested()
	upper := c.withUpper()

	return doc.Concat(
		doc.Group(doc.Concat(
			p.self(n, ctx.withUpper()),
			spaced(p.optional(n, "materialized", upper)),
			spaced(p.optional(n, "external", upper)),
			space,
			p.must(n, "what", upper),
			spaced(p.join(n, "if_exists", space, c)),
			space,
			p.must(n, "ident", c),
			spaced(p.optional(n, "cascade_or_restrict", upper)),
			p.semicolon(n, ctx),
		)),
		p.terminate(n, ctx),
	)
}

// columnClause prints ADD COLUMN [IF NOT EXISTS] def and
// DROP COLUMN [IF EXISTS] name.
func (p *printer) columnClause(n *cst.Node, guard, target string, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.self(n, ctx.withUpper()),
		space,
		p.must(n, "column", c.withUpper()),
		spaced(p.join(n, guard, space, c)),
		space,
		p.must(n, target, c),
		p.optional(n, "comma", c),
	)
}

func (p *printer) columnDefinitions(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Group(doc.Concat(
		p.selfWithModifiers(n, ctx),
		doc.Indent(doc.Concat(doc.SoftLine, p.mustJoin(n, "column_definitions", doc.Line, c))),
		doc.SoftLine,
		p.must(n, "rparen", c),
	))
}

// schema prints a column type with its NOT NULL and OPTIONS attributes.
func (p *printer) schema(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		spaced(p.join(n, "not_null", space, c)),
		spaced(p.optional(n, "options", c.withUpper())),
	)
}

// withPartitionColumns prints WITH PARTITION COLUMNS [(cols)] of an external
// table.
func (p *printer) withPartitionColumns(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.selfWithModifiers(n, ctx),
		space,
		p.mustJoin(n, "partition_columns", space, c.withUpper()),
		spaced(p.optional(n, "column_schema_group", c)),
	)
}

// procedureArgument prints [IN|OUT|INOUT] name type.
func (p *printer) procedureArgument(n *cst.Node, ctx printContext) doc.Doc {
	c := ctx.child()

	return doc.Concat(
		p.must(n, "in_out", c.withUpper()),
		space,
		p.self(n, ctx),
		space,
		p.must(n, "type", c.withUpper()),
		p.optional(n, "comma", c),
	)
}
