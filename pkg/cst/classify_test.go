package cst_test

import (
	"testing"

	. "github.com/pseudomuto/bqfmt/pkg/cst"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		node     string
		expected Kind
	}{
		{name: "plain identifier", node: `col`, expected: KindUnclassified},
		{name: "identifier with modifiers", node: `col { comma: "," as: as { alias: c } }`, expected: KindUnclassified},
		{name: "tablesample", node: `TABLESAMPLE { system: SYSTEM, group: "(" }`, expected: KindTablesampleClause},
		{name: "tablesample ratio", node: `10 { percent: PERCENT }`, expected: KindTablesampleRatio},
		{name: "add column", node: `ADD { column: COLUMN, ident: c }`, expected: KindAddColumnClause},
		{name: "drop column", node: `drop { column: COLUMN, ident: c }`, expected: KindDropColumnClause},
		{name: "drop statement", node: `drop { what: TABLE, ident: t }`, expected: KindDropStatement},
		{name: "procedure argument", node: `x { in_out: INOUT, type: INT64 }`, expected: KindProcedureArgument},
		{name: "unnest with offset", node: `"(" { func: UNNEST, args: [arr], rparen: ")", with: WITH }`, expected: KindUnnestWithOffset},
		{name: "cast argument", node: `AS { cast_from: x, cast_to: INT64 }`, expected: KindCastArgument},
		{name: "function", node: `"(" { func: date_trunc, args: [d, week], rparen: ")" }`, expected: KindFunc},
		{name: "function with over", node: `"(" { func: sum, args: [x], rparen: ")", over: OVER { window: w } }`, expected: KindFunc},
		{name: "extract", node: `FROM { extract_datepart: day, extract_from: ts }`, expected: KindExtractArgument},
		{name: "named parameter", node: `a { args: [x] }`, expected: KindNamedParameter},
		{name: "join type", node: `LEFT { outer: OUTER }`, expected: KindJoinType},
		{name: "null order", node: `NULLS { first: FIRST }`, expected: KindNullOrder},
		{name: "create table", node: `create { what: table, ident: t }`, expected: KindCreateTableStatement},
		{name: "create function", node: `CREATE { what: FUNCTION, ident: f }`, expected: KindCreateFunctionStatement},
		{name: "create view", node: `CREATE { what: VIEW, ident: v, as: AS { stmt: select } }`, expected: KindCreateViewStatement},
		{name: "create procedure", node: `CREATE { what: PROCEDURE, ident: p }`, expected: KindCreateProcedureStatement},
		{name: "create schema", node: `CREATE { what: SCHEMA, ident: s }`, expected: KindCreateSchemaStatement},
		{name: "create unknown", node: `CREATE { what: MODEL, ident: m }`, expected: KindUnclassified},
		{name: "type declaration", node: `"<" { type: x, rparen: ">" }`, expected: KindTypeDeclaration},
		{name: "ident and type", node: `x { type: INT64 }`, expected: KindIdentAndType},
		{name: "alias", node: `AS { alias: x }`, expected: KindAs},
		{name: "frame bound", node: `UNBOUNDED { preceding: PRECEDING }`, expected: KindFrameStartOrEnd},
		{name: "select", node: `SELECT { exprs: [1] }`, expected: KindSelectStatement},
		{name: "set statement", node: `SET { expr: "=" { left: x, right: 1 } }`, expected: KindSetStatement},
		{name: "set without expr", node: `SET { exprs: [x] }`, expected: KindKeywordWithExprs},
		{name: "if statement", node: `IF { condition: c, then: THEN, end: [END, IF] }`, expected: KindIfStatement},
		{name: "single word", node: `LEAVE`, expected: KindSingleWordStatement},
		{name: "between", node: `BETWEEN { left: x, right: [a, b], and: AND }`, expected: KindBetweenOperator},
		{name: "array access", node: `"[" { left: arr, right: 1, rparen: "]" }`, expected: KindArrayAccess},
		{name: "set operator", node: `UNION { left: select, right: select, distinct: ALL }`, expected: KindSetOperator},
		{name: "binary operator", node: `"=" { left: a, right: 1 }`, expected: KindBinaryOperator},
		{name: "interval", node: `INTERVAL { right: 1, date_part: DAY }`, expected: KindIntervalLiteral},
		{name: "unary", node: `NOT { right: x }`, expected: KindUnaryOperator},
		{name: "grouped expr", node: `"(" { expr: a, rparen: ")" }`, expected: KindGroupedExpr},
		{name: "grouped exprs", node: `"(" { exprs: [a, b], rparen: ")" }`, expected: KindGroupedExprs},
		{name: "grouped statement", node: `"(" { stmt: select, rparen: ")" }`, expected: KindGroupedStatement},
		{name: "merge when", node: `WHEN { matched: MATCHED, then: THEN, stmt: DELETE }`, expected: KindWhenClause},
		{name: "cte", node: `q { as: AS, stmt: "(" }`, expected: KindWithQuery},
		{name: "named window", node: `w { as: AS, window: "(" }`, expected: KindWindowExprs},
		{name: "window specification", node: `"(" { partitionby: PARTITION, rparen: ")" }`, expected: KindWindowSpecification},
		{name: "case", node: `CASE { arms: [], end: END }`, expected: KindCaseExpr},
		{name: "case arm", node: `WHEN { expr: a, then: THEN, result: 1 }`, expected: KindCaseArm},
		{name: "limit", node: `LIMIT { expr: 10, offset: OFFSET { expr: 5 } }`, expected: KindLimitClause},
		{name: "over", node: `OVER { window: w }`, expected: KindOverClause},
		{name: "table name", node: `t { tablesample: TABLESAMPLE }`, expected: KindTableName},
		{name: "group by", node: `GROUP { by: BY, exprs: [a] }`, expected: KindKeywordByExprs},
		{name: "partition by", node: `PARTITION { by: BY, expr: d }`, expected: KindKeywordByExpr},
		{name: "column schema", node: `INT64 { not_null: [NOT, NULL] }`, expected: KindSchema},
		{name: "where", node: `WHERE { expr: x }`, expected: KindKeywordWithExpr},
		{name: "keyword with statements", node: `ELSE { stmts: [] }`, expected: KindKeywordWithStatements},
		{name: "keyword with statement", node: `AS { stmt: select }`, expected: KindKeywordWithStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := MustParseNotation(tt.node)[0]
			require.Equal(t, tt.expected, Classify(n), "classified as %s", Classify(n))
		})
	}
}

func TestClassifyWithout(t *testing.T) {
	n := MustParseNotation(`"+" { left: x, right: 1, following: FOLLOWING }`)[0]

	require.Equal(t, KindFrameStartOrEnd, Classify(n))
	require.Equal(t, KindBinaryOperator, ClassifyWithout(n, "preceding", "following"))
}

func TestClassifyTree(t *testing.T) {
	script := MustParseNotation(`
		SELECT { exprs: ["(" { func: f, args: [1], rparen: ")" }], semicolon: ";" }
		""
	`)

	kinds := ClassifyTree(script)
	require.Equal(t, 7, kinds.Len())
	require.Equal(t, KindSelectStatement, kinds.Of(script[0]))
	require.Equal(t, KindFunc, kinds.Of(script[0].Vec("exprs")[0]))
	require.Equal(t, KindUnclassified, kinds.Of(script[1]))

	// nodes outside the tree are classified on demand
	other := MustParseNotation(`NOT { right: x }`)[0]
	require.Equal(t, KindUnaryOperator, kinds.Of(other))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "SelectStatement", KindSelectStatement.String())
	require.Equal(t, "Unclassified", KindUnclassified.String())
	require.Equal(t, "Kind(?)", Kind(-1).String())
	require.True(t, KindSetOperator.IsStatement())
	require.False(t, KindFunc.IsStatement())
}
