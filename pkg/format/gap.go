package format

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/bqfmt/pkg/cst"
)

// GapError reports a statement whose first token could not be located.
type GapError struct {
	Node *cst.Node
}

func (e *GapError) Error() string {
	return fmt.Sprintf("failed to locate the start of %q at line %d", e.Node.Literal(), e.Node.Line())
}

// Gaps returns, for each statement, the number of blank lines to print after
// it: 1 when the source separated it from the next statement by at least one
// blank line, 0 otherwise. Statements without a terminator and the statement
// before the EOF node always get 0.
func Gaps(stmts []*cst.Node) ([]int, error) {
	gaps := make([]int, len(stmts))

	for i := 0; i+1 < len(stmts); i++ {
		semicolon := stmts[i].Child("semicolon")
		next := stmts[i+1]
		if semicolon == nil || next.IsEOF() {
			continue
		}

		start, err := startLine(next)
		if err != nil {
			return nil, err
		}

		if start-endLine(semicolon)-1 > 0 {
			gaps[i] = 1
		}
	}

	return gaps, nil
}

// endLine is the last line occupied by a terminator and its trailing comments.
func endLine(semicolon *cst.Node) int {
	comments := semicolon.FollowingComments
	if len(comments) == 0 {
		return semicolon.Line()
	}

	last := comments[len(comments)-1]
	return last.Line + strings.Count(last.Text, "\n")
}

// startLine is the first line of a statement, descending into set operators
// and parenthesized queries to find the first token.
func startLine(n *cst.Node) (int, error) {
	for {
		switch strings.ToUpper(n.Literal()) {
		case "UNION", "INTERSECT", "EXCEPT", "(":
			switch {
			case n.Child("left") != nil:
				n = n.Child("left")
			case n.Child("stmt") != nil:
				n = n.Child("stmt")
			default:
				return 0, &GapError{Node: n}
			}
			continue
		}

		return n.StartLine(), nil
	}
}
