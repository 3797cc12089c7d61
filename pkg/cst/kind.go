package cst

// Kind is the grammar production a node represents.
type Kind int

const (
	KindUnclassified Kind = iota

	// clauses and fragments
	KindTablesampleClause
	KindTablesampleRatio
	KindAddColumnClause
	KindDropColumnClause
	KindColumnDefinitions
	KindProcedureArgument
	KindWithPartitionColumnsClause
	KindUnnestWithOffset
	KindCastArgument
	KindIgnoreOrRespectNulls
	KindFunc
	KindExtractArgument
	KindNamedParameter
	KindWindowClause
	KindJoinType
	KindNullOrder
	KindKeywordWithGroupedExprs
	KindAsStructOrValue
	KindTypeDeclaration
	KindIdentAndType
	KindAs
	KindWindowFrameClause
	KindFrameStartOrEnd

	// DDL
	KindCreateFunctionStatement
	KindCreateTableStatement
	KindCreateViewStatement
	KindCreateProcedureStatement
	KindCreateSchemaStatement
	KindAlterStatement
	KindDropStatement

	// DML and queries
	KindInsertStatement
	KindSelectStatement
	KindTruncateStatement
	KindUpdateStatement
	KindDeleteStatement
	KindMergeStatement

	// scripting
	KindDeclareStatement
	KindSetStatement
	KindExecuteStatement
	KindBeginStatement
	KindIfStatement
	KindElseIfClause
	KindLoopStatement
	KindWhileStatement
	KindSingleWordStatement
	KindRaiseStatement
	KindCallStatement

	// expressions
	KindBetweenOperator
	KindArrayAccess
	KindLanguage
	KindSetOperator
	KindBinaryOperator
	KindIntervalLiteral
	KindUnaryOperator
	KindGroupedExpr
	KindGroupedExprs
	KindGroupedStatement
	KindWhenClause
	KindWithQuery
	KindWindowExprs
	KindWithQueries
	KindWindowSpecification
	KindCaseExpr
	KindStructOrArrayType
	KindCaseArm
	KindWithOffset
	KindLimitClause
	KindOverClause
	KindTableName
	KindForSystemTimeAsOfClause
	KindKeywordByExpr
	KindKeywordByExprs
	KindSchema
	KindKeywordWithExpr
	KindKeywordWithExprs
	KindKeywordWithStatements
	KindKeywordWithStatement
)

var kindNames = map[Kind]string{
	KindUnclassified:               "Unclassified",
	KindTablesampleClause:          "TablesampleClause",
	KindTablesampleRatio:           "TablesampleRatio",
	KindAddColumnClause:            "AddColumnClause",
	KindDropColumnClause:           "DropColumnClause",
	KindColumnDefinitions:          "ColumnDefinitions",
	KindProcedureArgument:          "ProcedureArgument",
	KindWithPartitionColumnsClause: "WithPartitionColumnsClause",
	KindUnnestWithOffset:           "UnnestWithOffset",
	KindCastArgument:               "CastArgument",
	KindIgnoreOrRespectNulls:       "IgnoreOrRespectNulls",
	KindFunc:                       "Func",
	KindExtractArgument:            "ExtractArgument",
	KindNamedParameter:             "NamedParameter",
	KindWindowClause:               "WindowClause",
	KindJoinType:                   "JoinType",
	KindNullOrder:                  "NullOrder",
	KindKeywordWithGroupedExprs:    "KeywordWithGroupedExprs",
	KindAsStructOrValue:            "AsStructOrValue",
	KindTypeDeclaration:            "TypeDeclaration",
	KindIdentAndType:               "IdentAndType",
	KindAs:                         "As",
	KindWindowFrameClause:          "WindowFrameClause",
	KindFrameStartOrEnd:            "FrameStartOrEnd",
	KindCreateFunctionStatement:    "CreateFunctionStatement",
	KindCreateTableStatement:       "CreateTableStatement",
	KindCreateViewStatement:        "CreateViewStatement",
	KindCreateProcedureStatement:   "CreateProcedureStatement",
	KindCreateSchemaStatement:      "CreateSchemaStatement",
	KindAlterStatement:             "AlterStatement",
	KindDropStatement:              "DropStatement",
	KindInsertStatement:            "InsertStatement",
	KindSelectStatement:            "SelectStatement",
	KindTruncateStatement:          "TruncateStatement",
	KindUpdateStatement:            "UpdateStatement",
	KindDeleteStatement:            "DeleteStatement",
	KindMergeStatement:             "MergeStatement",
	KindDeclareStatement:           "DeclareStatement",
	KindSetStatement:               "SetStatement",
	KindExecuteStatement:           "ExecuteStatement",
	KindBeginStatement:             "BeginStatement",
	KindIfStatement:                "IfStatement",
	KindElseIfClause:               "ElseIfClause",
	KindLoopStatement:              "LoopStatement",
	KindWhileStatement:             "WhileStatement",
	KindSingleWordStatement:        "SingleWordStatement",
	KindRaiseStatement:             "RaiseStatement",
	KindCallStatement:              "CallStatement",
	KindBetweenOperator:            "BetweenOperator",
	KindArrayAccess:                "ArrayAccess",
	KindLanguage:                   "Language",
	KindSetOperator:                "SetOperator",
	KindBinaryOperator:             "BinaryOperator",
	KindIntervalLiteral:            "IntervalLiteral",
	KindUnaryOperator:              "UnaryOperator",
	KindGroupedExpr:                "GroupedExpr",
	KindGroupedExprs:               "GroupedExprs",
	KindGroupedStatement:           "GroupedStatement",
	KindWhenClause:                 "WhenClause",
	KindWithQuery:                  "WithQuery",
	KindWindowExprs:                "WindowExprs",
	KindWithQueries:                "WithQueries",
	KindWindowSpecification:        "WindowSpecification",
	KindCaseExpr:                   "CaseExpr",
	KindStructOrArrayType:          "StructOrArrayType",
	KindCaseArm:                    "CaseArm",
	KindWithOffset:                 "WithOffset",
	KindLimitClause:                "LimitClause",
	KindOverClause:                 "OverClause",
	KindTableName:                  "TableName",
	KindForSystemTimeAsOfClause:    "ForSystemTimeAsOfClause",
	KindKeywordByExpr:              "KeywordByExpr",
	KindKeywordByExprs:             "KeywordByExprs",
	KindSchema:                     "Schema",
	KindKeywordWithExpr:            "KeywordWithExpr",
	KindKeywordWithExprs:           "KeywordWithExprs",
	KindKeywordWithStatements:      "KeywordWithStatements",
	KindKeywordWithStatement:       "KeywordWithStatement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Kind(?)"
}

// IsStatement reports whether the kind is a statement that may carry a
// terminator.
func (k Kind) IsStatement() bool {
	switch k {
	case KindCreateFunctionStatement, KindCreateTableStatement, KindCreateViewStatement,
		KindCreateProcedureStatement, KindCreateSchemaStatement, KindAlterStatement,
		KindDropStatement, KindInsertStatement, KindSelectStatement, KindTruncateStatement,
		KindUpdateStatement, KindDeleteStatement, KindMergeStatement, KindDeclareStatement,
		KindSetStatement, KindExecuteStatement, KindBeginStatement, KindIfStatement,
		KindLoopStatement, KindWhileStatement, KindSingleWordStatement, KindRaiseStatement,
		KindCallStatement, KindSetOperator, KindGroupedStatement:
		return true
	default:
		return false
	}
}
