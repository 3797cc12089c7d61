package format

import (
	"github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/pseudomuto/bqfmt/pkg/doc"
)

var space = doc.Text(" ")

type printer struct {
	kinds cst.Kinds
	// blank lines to emit after each top-level statement
	gaps map[*cst.Node]int
}

func (p *printer) print(n *cst.Node, ctx printContext) doc.Doc {
	if n == nil {
		return nil
	}

	return p.printKind(n, p.kinds.Of(n), ctx)
}

func (p *printer) printKind(n *cst.Node, kind cst.Kind, ctx printContext) doc.Doc {
	switch kind {
	// queries
	case cst.KindSelectStatement:
		return p.selectStatement(n, ctx)
	case cst.KindSetOperator:
		return p.setOperator(n, ctx)
	case cst.KindGroupedStatement:
		return p.groupedStatement(n, ctx)
	case cst.KindWithQueries:
		return p.withQueries(n, ctx)
	case cst.KindWithQuery:
		return p.withQuery(n, ctx)
	case cst.KindAsStructOrValue:
		return p.keywordWithField(n, "struct_value", ctx)
	case cst.KindKeywordWithExpr:
		return p.keywordWithExpr(n, ctx)
	case cst.KindKeywordWithExprs:
		return p.keywordWithExprs(n, ctx)
	case cst.KindKeywordWithGroupedExprs:
		return p.keywordWithField(n, "group", ctx)
	case cst.KindKeywordByExpr:
		return p.keywordByExpr(n, ctx)
	case cst.KindKeywordByExprs:
		return p.keywordByExprs(n, ctx)
	case cst.KindLimitClause:
		return p.limitClause(n, ctx)
	case cst.KindAs:
		return p.as(n, ctx)
	case cst.KindTableName:
		return p.tableName(n, ctx)
	case cst.KindForSystemTimeAsOfClause:
		return p.forSystemTimeAsOf(n, ctx)
	case cst.KindTablesampleClause:
		return p.tablesampleClause(n, ctx)
	case cst.KindTablesampleRatio:
		return p.tablesampleRatio(n, ctx)
	case cst.KindUnnestWithOffset:
		return p.unnestWithOffset(n, ctx)
	case cst.KindWithOffset:
		return p.withOffset(n, ctx)
	case cst.KindJoinType:
		return p.keywordWithField(n, "outer", ctx)

	// expressions
	case cst.KindBinaryOperator:
		return p.binaryOperator(n, ctx)
	case cst.KindUnaryOperator:
		return p.unaryOperator(n, ctx)
	case cst.KindBetweenOperator:
		return p.betweenOperator(n, ctx)
	case cst.KindIntervalLiteral:
		return p.intervalLiteral(n, ctx)
	case cst.KindGroupedExpr:
		return p.groupedExpr(n, ctx)
	case cst.KindGroupedExprs:
		return p.groupedExprs(n, ctx)
	case cst.KindArrayAccess:
		return p.arrayAccess(n, ctx)
	case cst.KindCaseExpr:
		return p.caseExpr(n, ctx)
	case cst.KindCaseArm:
		return p.caseArm(n, ctx)
	case cst.KindTypeDeclaration:
		return p.typeDeclaration(n, ctx)
	case cst.KindIdentAndType:
		return p.identAndType(n, ctx)
	case cst.KindStructOrArrayType:
		return doc.Concat(p.self(n, ctx), p.must(n, "type_declaration", ctx.child()))
	case cst.KindNamedParameter:
		return p.namedParameter(n, ctx)

	// functions
	case cst.KindFunc:
		return p.function(n, ctx)
	case cst.KindCastArgument:
		return p.castArgument(n, ctx)
	case cst.KindExtractArgument:
		return p.extractArgument(n, ctx)
	case cst.KindIgnoreOrRespectNulls:
		return p.keywordWithField(n, "nulls", ctx)

	// windows
	case cst.KindOverClause:
		return doc.Group(p.keywordWithField(n, "window", ctx))
	case cst.KindWindowSpecification:
		return p.windowSpecification(n, ctx)
	case cst.KindWindowFrameClause:
		return p.windowFrameClause(n, ctx)
	case cst.KindFrameStartOrEnd:
		return p.frameStartOrEnd(n, ctx)
	case cst.KindWindowClause:
		return p.windowClause(n, ctx)
	case cst.KindWindowExprs:
		return p.windowExprs(n, ctx)
	case cst.KindNullOrder:
		return p.nullOrder(n, ctx)

	// DML
	case cst.KindInsertStatement:
		return p.insertStatement(n, ctx)
	case cst.KindUpdateStatement:
		return p.updateStatement(n, ctx)
	case cst.KindDeleteStatement:
		return p.deleteStatement(n, ctx)
	case cst.KindTruncateStatement:
		return p.truncateStatement(n, ctx)
	case cst.KindMergeStatement:
		return p.mergeStatement(n, ctx)
	case cst.KindWhenClause:
		return p.whenClause(n, ctx)

	// DDL
	case cst.KindCreateTableStatement, cst.KindCreateViewStatement:
		return p.createTableStatement(n, ctx)
	case cst.KindCreateFunctionStatement:
		return p.createFunctionStatement(n, ctx)
	case cst.KindCreateProcedureStatement:
		return p.createProcedureStatement(n, ctx)
	case cst.KindCreateSchemaStatement:
		return p.createSchemaStatement(n, ctx)
	case cst.KindAlterStatement:
		return p.alterStatement(n, ctx)
	case cst.KindDropStatement:
		return p.dropStatement(n, ctx)
	case cst.KindAddColumnClause:
		return p.columnClause(n, "if_not_exists", "column_definition", ctx)
	case cst.KindDropColumnClause:
		return p.columnClause(n, "if_exists", "column_name", ctx)
	case cst.KindColumnDefinitions:
		return p.columnDefinitions(n, ctx)
	case cst.KindSchema:
		return p.schema(n, ctx)
	case cst.KindWithPartitionColumnsClause:
		return p.withPartitionColumns(n, ctx)
	case cst.KindProcedureArgument:
		return p.procedureArgument(n, ctx)
	case cst.KindLanguage:
		return p.keywordWithField(n, "language", ctx.withUpper())

	// scripting
	case cst.KindDeclareStatement:
		return p.declareStatement(n, ctx)
	case cst.KindSetStatement:
		return p.setStatement(n, ctx)
	case cst.KindExecuteStatement:
		return p.executeStatement(n, ctx)
	case cst.KindBeginStatement:
		return p.beginStatement(n, ctx)
	case cst.KindIfStatement:
		return p.ifStatement(n, ctx)
	case cst.KindElseIfClause:
		return p.elseIfClause(n, ctx)
	case cst.KindLoopStatement:
		return p.blockStatement(n, "end_loop", ctx)
	case cst.KindWhileStatement:
		return p.blockStatement(n, "end_while", ctx)
	case cst.KindSingleWordStatement:
		return p.singleWordStatement(n, ctx)
	case cst.KindRaiseStatement:
		return p.raiseStatement(n, ctx)
	case cst.KindCallStatement:
		return p.callStatement(n, ctx)
	case cst.KindKeywordWithStatement:
		return p.keywordWithStatement(n, ctx)
	case cst.KindKeywordWithStatements:
		return p.keywordWithStatements(n, ctx)

	default:
		return p.selfWithModifiers(n, ctx)
	}
}

// self prints the node's comments and cased literal along with the except
// and replace modifiers of a star expression.
func (p *printer) self(n *cst.Node, ctx printContext) doc.Doc {
	return p.selfWith(n, ctx, false)
}

// selfWithModifiers is self followed by the node's sort order, alias and comma.
func (p *printer) selfWithModifiers(n *cst.Node, ctx printContext) doc.Doc {
	return p.selfWith(n, ctx, true)
}

func (p *printer) selfWith(n *cst.Node, ctx printContext, modifiers bool) doc.Doc {
	c := ctx.child()

	var replace doc.Doc
	if r := n.Child("replace"); r != nil {
		replace = spaced(p.print(r, c.withUpper()))
	}

	var mods doc.Doc
	if modifiers {
		mods = p.modifiers(n, c)
	}

	return doc.Concat(
		leadingComments(n),
		doc.Text(ctx.casing(n.Literal())),
		spaced(p.optional(n, "except", c)),
		replace,
		mods,
		followingComments(n),
	)
}

// modifiers prints the cross-cutting trailers a node may carry: sort order,
// null order, alias and the comma that separates it from its next sibling.
func (p *printer) modifiers(n *cst.Node, ctx printContext) doc.Doc {
	return doc.Concat(
		spaced(p.optional(n, "order", ctx)),
		spaced(p.optional(n, "null_order", ctx)),
		spaced(p.optional(n, "as", ctx)),
		p.optional(n, "comma", ctx),
	)
}

func leadingComments(n *cst.Node) doc.Doc {
	if len(n.LeadingComments) == 0 {
		return nil
	}

	docs := make([]doc.Doc, 0, len(n.LeadingComments)*2)
	for _, c := range n.LeadingComments {
		docs = append(docs, doc.Text(c.Text), doc.HardLine)
	}

	return doc.Concat(docs...)
}

func followingComments(n *cst.Node) doc.Doc {
	if len(n.FollowingComments) == 0 {
		return nil
	}

	docs := make([]doc.Doc, 0, len(n.FollowingComments)*2)
	for _, c := range n.FollowingComments {
		docs = append(docs, space, doc.Text(c.Text))
	}

	return doc.LineSuffix(doc.Concat(docs...))
}

// optional prints the single child in field, or returns nil when it is absent.
func (p *printer) optional(n *cst.Node, field string, ctx printContext) doc.Doc {
	return p.print(n.Child(field), ctx)
}

// must prints the single child in field and panics when it is absent.
func (p *printer) must(n *cst.Node, field string, ctx printContext) doc.Doc {
	return p.print(n.MustChild(field), ctx)
}

// list prints every child in field. It returns nil when the field is absent.
func (p *printer) list(n *cst.Node, field string, ctx printContext) []doc.Doc {
	nodes := n.Vec(field)
	if nodes == nil {
		return nil
	}

	docs := make([]doc.Doc, len(nodes))
	for i, child := range nodes {
		docs[i] = p.print(child, ctx)
	}

	return docs
}

// join prints every child in field separated by sep, or returns nil when the
// field is absent.
func (p *printer) join(n *cst.Node, field string, sep doc.Doc, ctx printContext) doc.Doc {
	if !n.Has(field) {
		return nil
	}

	return doc.Join(sep, p.list(n, field, ctx)...)
}

// mustJoin is join for fields the production requires.
func (p *printer) mustJoin(n *cst.Node, field string, sep doc.Doc, ctx printContext) doc.Doc {
	n.MustVec(field)
	return p.join(n, field, sep, ctx)
}

// keywordWithField prints "SELF field".
func (p *printer) keywordWithField(n *cst.Node, field string, ctx printContext) doc.Doc {
	return doc.Concat(p.selfWithModifiers(n, ctx), space, p.must(n, field, ctx.child()))
}

// semicolon prints the statement terminator, if any.
func (p *printer) semicolon(n *cst.Node, ctx printContext) doc.Doc {
	return p.optional(n, "semicolon", ctx.child())
}

// terminate ends a top-level statement: one line break, or two when the
// source separated it from the next statement with blank lines.
func (p *printer) terminate(n *cst.Node, ctx printContext) doc.Doc {
	if !ctx.top() || !n.Has("semicolon") {
		return nil
	}

	if p.gaps[n] > 0 {
		return doc.Concat(doc.HardLine, doc.HardLine)
	}

	return doc.HardLine
}

// spaced prefixes d with a space. Nil stays nil.
func spaced(d doc.Doc) doc.Doc {
	if d == nil {
		return nil
	}

	return doc.Concat(space, d)
}

// prefixed places before ahead of d. Nil stays nil.
func prefixed(before, d doc.Doc) doc.Doc {
	if d == nil {
		return nil
	}

	return doc.Concat(before, d)
}

// suffixed follows d with a space. Nil stays nil.
func suffixed(d doc.Doc) doc.Doc {
	if d == nil {
		return nil
	}

	return doc.Concat(d, space)
}
