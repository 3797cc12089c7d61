package cst

import (
	"slices"
	"strings"
)

type (
	// Kinds caches classification results for a tree, keyed by node identity.
	Kinds struct {
		kinds map[*Node]Kind
	}

	shape struct {
		node *Node
		skip []string
	}

	rule struct {
		kind  Kind
		match func(shape) bool
	}
)

// The order of this list matters: the first matching rule wins, so more
// specific shapes come before the generic ones they overlap with.
var rules = []rule{
	{KindTablesampleClause, fields("system")},
	{KindTablesampleRatio, fields("percent")},
	{KindAddColumnClause, selfWith("add", "column")},
	{KindDropColumnClause, selfWith("drop", "column")},
	{KindColumnDefinitions, fields("column_definitions")},
	{KindProcedureArgument, fields("in_out")},
	{KindWithPartitionColumnsClause, fields("partition_columns")},
	{KindUnnestWithOffset, fields("with", "func")},
	{KindCastArgument, fields("cast_from")},
	{KindIgnoreOrRespectNulls, fields("nulls")},
	{KindFunc, fields("func")},
	{KindExtractArgument, fields("extract_datepart")},
	{KindNamedParameter, fields("args")},
	{KindWindowClause, fields("window_exprs")},
	{KindJoinType, fields("outer")},
	{KindNullOrder, fields("first")},
	{KindCreateFunctionStatement, create("function")},
	{KindCreateTableStatement, create("table")},
	{KindCreateViewStatement, create("view")},
	{KindCreateProcedureStatement, create("procedure")},
	{KindCreateSchemaStatement, create("schema")},
	{KindKeywordWithGroupedExprs, fields("group")},
	{KindAsStructOrValue, fields("struct_value")},
	{KindTypeDeclaration, func(s shape) bool { return s.any("type", "declarations") && s.has("rparen") }},
	{KindIdentAndType, fields("type")},
	{KindAs, fields("alias")},
	{KindWindowFrameClause, fields("start")},
	{KindFrameStartOrEnd, func(s shape) bool { return s.any("preceding", "following") }},
	{KindInsertStatement, selfIs("insert")},
	{KindSelectStatement, selfIs("select")},
	{KindTruncateStatement, selfIs("truncate")},
	{KindUpdateStatement, selfIs("update")},
	{KindDeleteStatement, selfIs("delete")},
	{KindMergeStatement, selfIs("merge")},
	{KindDeclareStatement, selfIs("declare")},
	{KindSetStatement, selfWith("set", "expr")},
	{KindExecuteStatement, selfIs("execute")},
	{KindBeginStatement, selfIs("begin")},
	{KindIfStatement, selfWith("if", "condition")},
	{KindElseIfClause, selfWith("elseif", "condition")},
	{KindLoopStatement, selfWith("loop", "end_loop")},
	{KindWhileStatement, selfWith("while", "end_while")},
	{KindSingleWordStatement, selfIs("iterate", "break", "leave", "continue")},
	{KindRaiseStatement, selfIs("raise")},
	{KindCallStatement, selfIs("call")},
	{KindAlterStatement, selfIs("alter")},
	{KindDropStatement, selfIs("drop")},
	{KindBetweenOperator, fields("right", "left", "and")},
	{KindArrayAccess, selfWith("[", "right", "left")},
	{KindLanguage, fields("language")},
	{KindSetOperator, fields("right", "left", "distinct")},
	{KindBinaryOperator, fields("right", "left")},
	{KindIntervalLiteral, fields("right", "date_part")},
	{KindUnaryOperator, fields("right")},
	{KindGroupedExpr, fields("rparen", "expr")},
	{KindGroupedExprs, fields("rparen", "exprs")},
	{KindGroupedStatement, fields("rparen", "stmt")},
	{KindWhenClause, fields("then", "stmt")},
	{KindWithQuery, fields("as", "stmt")},
	{KindWindowExprs, fields("as", "window")},
	{KindWithQueries, fields("queries")},
	{KindWindowSpecification, fields("rparen")},
	{KindCaseExpr, fields("arms")},
	{KindStructOrArrayType, fields("type_declaration")},
	{KindCaseArm, fields("result")},
	{KindWithOffset, fields("unnest_offset")},
	{KindLimitClause, fields("offset")},
	{KindOverClause, fields("window")},
	{KindTableName, func(s shape) bool { return s.any("for_system_time_as_of", "tablesample") }},
	{KindForSystemTimeAsOfClause, fields("system_time_as_of")},
	{KindKeywordByExpr, fields("by", "expr")},
	{KindKeywordByExprs, fields("by", "exprs")},
	{KindSchema, func(s shape) bool { return s.any("options", "not_null") }},
	{KindKeywordWithExpr, fields("expr")},
	{KindKeywordWithExprs, fields("exprs")},
	{KindKeywordWithStatements, fields("stmts")},
	{KindKeywordWithStatement, fields("stmt")},
}

// Classify infers the production n represents from the fields it carries.
func Classify(n *Node) Kind {
	return classify(shape{node: n})
}

// ClassifyWithout classifies n as though the named fields were absent. Frame
// bounds use it to find the production of the expression before PRECEDING or
// FOLLOWING.
func ClassifyWithout(n *Node, fields ...string) Kind {
	return classify(shape{node: n, skip: fields})
}

func classify(s shape) Kind {
	for _, r := range rules {
		if r.match(s) {
			return r.kind
		}
	}

	return KindUnclassified
}

// ClassifyTree classifies every node reachable from script exactly once.
func ClassifyTree(script []*Node) Kinds {
	k := Kinds{kinds: make(map[*Node]Kind)}
	for _, n := range script {
		Walk(n, func(n *Node) {
			k.kinds[n] = Classify(n)
		})
	}

	return k
}

// Of returns the cached kind of n. Nodes the tree walk did not visit are
// classified on demand.
func (k Kinds) Of(n *Node) Kind {
	if kind, ok := k.kinds[n]; ok {
		return kind
	}

	return Classify(n)
}

// Len is the number of classified nodes.
func (k Kinds) Len() int {
	return len(k.kinds)
}

func (s shape) has(names ...string) bool {
	for _, name := range names {
		if slices.Contains(s.skip, name) || !s.node.Has(name) {
			return false
		}
	}

	return true
}

func (s shape) any(names ...string) bool {
	for _, name := range names {
		if s.has(name) {
			return true
		}
	}

	return false
}

func (s shape) self() string {
	return strings.ToLower(s.node.Token.Literal)
}

func fields(names ...string) func(shape) bool {
	return func(s shape) bool { return s.has(names...) }
}

func selfIs(literals ...string) func(shape) bool {
	return func(s shape) bool { return s.node.HasSelf() && slices.Contains(literals, s.self()) }
}

func selfWith(literal string, names ...string) func(shape) bool {
	return func(s shape) bool { return s.self() == literal && s.has(names...) }
}

func create(what string) func(shape) bool {
	return func(s shape) bool {
		if s.self() != "create" || !s.has("what") {
			return false
		}

		w := s.node.Child("what")
		return w != nil && strings.EqualFold(w.Token.Literal, what)
	}
}
