// Package cst models the BigQuery concrete syntax tree consumed by the formatter.
//
// Trees are produced by the bq2cst parser, which emits every node as its own
// token plus a set of named child slots. A slot holds either a single node or
// an ordered vector of nodes. The parser does not tag nodes with the grammar
// production they represent, so this package also provides the shape-based
// classifier used to recover it.
//
// Two input forms are supported:
//   - bq2cst JSON output (DecodeJSON, ReadJSONFile)
//   - a compact tree notation intended for fixtures and hand-written trees
//     (ParseNotation, ParseNotationString)
//
// The notation mirrors the JSON structure:
//
//	select@1 {
//	  exprs: [a@1 { comma: ","@1 }, b@1]
//	  from: from@2 { expr: t@2 }
//	  semicolon: ";"@2
//	}
//
// Each node is a literal (identifier, number or Go-quoted string, or ~ for a
// node without its own token), an optional @line[:column] position and an
// optional brace-delimited list of fields. Nodes without a position inherit the
// line of their parent. The leading_comments and following_comments fields are
// lifted into Node.LeadingComments and Node.FollowingComments in both forms.
//
// Classification:
//
//	kinds := cst.ClassifyTree(script)
//	for _, stmt := range script {
//		fmt.Println(kinds.Of(stmt))
//	}
//
// Trees are treated as immutable once decoded. Nothing in this package or in
// the formatter writes to a Node after construction.
package cst
