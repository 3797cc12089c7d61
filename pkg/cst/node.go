package cst

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// LeadingComments is the field name bq2cst uses for comments before a node.
	LeadingComments = "leading_comments"
	// FollowingComments is the field name bq2cst uses for comments after a node.
	FollowingComments = "following_comments"
	// SelfField holds a node's own token in older bq2cst output.
	SelfField = "self"
)

type (
	// Token is a single source token.
	Token struct {
		Line    int
		Column  int
		Literal string
	}

	// Comment is a source comment attached to a node.
	Comment struct {
		Text string
		Line int
	}

	// Ref is a child slot. Exactly one of Node or Vec is meaningful; IsVec
	// distinguishes an empty vector from a missing single child.
	Ref struct {
		Node  *Node
		Vec   []*Node
		IsVec bool
	}

	// Node is a tree node: its own token plus named child slots.
	Node struct {
		Token             Token
		Fields            map[string]Ref
		LeadingComments   []Comment
		FollowingComments []Comment
	}

	// ContractViolation is the panic value raised when a node lacks a child its
	// classification requires.
	ContractViolation struct {
		Literal string
		Line    int
		Field   string
	}
)

func (c ContractViolation) Error() string {
	return fmt.Sprintf("malformed tree: node %q at line %d has no %q field", c.Literal, c.Line, c.Field)
}

// Single returns a Ref holding one node.
func Single(n *Node) Ref {
	return Ref{Node: n}
}

// Vector returns a Ref holding an ordered list of nodes.
func Vector(nodes ...*Node) Ref {
	return Ref{Vec: nodes, IsVec: true}
}

// Literal returns the node's own token text.
func (n *Node) Literal() string {
	return n.Token.Literal
}

// Line returns the line of the node's own token.
func (n *Node) Line() int {
	return n.Token.Line
}

// HasSelf reports whether the node carries its own token. Implicit aliases
// (select a b) are represented by an "as" node without one.
func (n *Node) HasSelf() bool {
	return n.Token.Literal != ""
}

// IsEOF reports whether n is the end-of-input marker that terminates a script.
func (n *Node) IsEOF() bool {
	return n.Token.Literal == "" && len(n.Fields) == 0
}

// StartLine is the line of the first leading comment, or the node's own line.
func (n *Node) StartLine() int {
	if len(n.LeadingComments) > 0 {
		return n.LeadingComments[0].Line
	}

	return n.Token.Line
}

// Has reports whether the field is present.
func (n *Node) Has(field string) bool {
	_, ok := n.Fields[field]
	return ok
}

// Child returns the single child stored in field, or nil.
func (n *Node) Child(field string) *Node {
	ref, ok := n.Fields[field]
	if !ok || ref.IsVec {
		return nil
	}

	return ref.Node
}

// Vec returns the children stored in a vector field. A single-node field is
// returned as a one element slice.
func (n *Node) Vec(field string) []*Node {
	ref, ok := n.Fields[field]
	if !ok {
		return nil
	}

	if ref.IsVec {
		return ref.Vec
	}

	if ref.Node == nil {
		return nil
	}

	return []*Node{ref.Node}
}

// MustChild returns the single child stored in field and panics with a
// ContractViolation when it is missing.
func (n *Node) MustChild(field string) *Node {
	child := n.Child(field)
	if child == nil {
		panic(ContractViolation{Literal: n.Token.Literal, Line: n.Token.Line, Field: field})
	}

	return child
}

// MustVec is the vector counterpart of MustChild.
func (n *Node) MustVec(field string) []*Node {
	if !n.Has(field) {
		panic(ContractViolation{Literal: n.Token.Literal, Line: n.Token.Line, Field: field})
	}

	return n.Vec(field)
}

// FieldNames returns the node's field names in sorted order.
func (n *Node) FieldNames() []string {
	names := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Walk calls fn for n and every descendant, depth first, in field-name order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}

	fn(n)
	for _, name := range n.FieldNames() {
		for _, child := range n.Vec(name) {
			Walk(child, fn)
		}
	}
}

// String renders the node in tree notation on a single line. It is meant for
// debugging and test failure output.
func (n *Node) String() string {
	var sb strings.Builder
	writeNotation(&sb, n)
	return sb.String()
}

func writeNotation(sb *strings.Builder, n *Node) {
	if n.HasSelf() {
		sb.WriteString(fmt.Sprintf("%q@%d", n.Token.Literal, n.Token.Line))
	} else {
		sb.WriteString("~")
	}

	if len(n.Fields) == 0 && len(n.LeadingComments) == 0 && len(n.FollowingComments) == 0 {
		return
	}

	sb.WriteString(" {")
	writeComments(sb, LeadingComments, n.LeadingComments)
	for _, name := range n.FieldNames() {
		ref := n.Fields[name]
		sb.WriteString(" " + name + ": ")
		if !ref.IsVec {
			writeNotation(sb, ref.Node)
			continue
		}

		sb.WriteString("[")
		for i, child := range ref.Vec {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNotation(sb, child)
		}
		sb.WriteString("]")
	}
	writeComments(sb, FollowingComments, n.FollowingComments)
	sb.WriteString(" }")
}

func writeComments(sb *strings.Builder, name string, comments []Comment) {
	if len(comments) == 0 {
		return
	}

	sb.WriteString(" " + name + ": [")
	for i, c := range comments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%q@%d", c.Text, c.Line))
	}
	sb.WriteString("]")
}
