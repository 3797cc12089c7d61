package cst

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type (
	notationFile struct {
		Nodes []*notationNode `parser:"@@*"`
	}

	notationNode struct {
		Pos lexer.Position

		NoSelf  bool             `parser:"( @'~'"`
		Literal *string          `parser:"| @(Ident | Number | String) )"`
		Line    *int             `parser:"( '@' @Number"`
		Column  *int             `parser:"  ( ':' @Number )? )?"`
		Fields  []*notationField `parser:"( '{' @@* '}' )?"`
	}

	notationField struct {
		Pos lexer.Position

		Name  string          `parser:"@Ident ':'"`
		IsVec bool            `parser:"( @'['"`
		Vec   []*notationNode `parser:"  ( @@ ','? )* ']'"`
		Node  *notationNode   `parser:"| @@ ) ','?"`
	}
)

var (
	notationLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\r\n]*`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Number", Pattern: `\d+(\.\d+)?([eE][+-]?\d+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[@:{}\[\],~]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	notationParser = participle.MustBuild[notationFile](
		participle.Lexer(notationLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

// ParseNotation parses a script written in tree notation.
func ParseNotation(r io.Reader) ([]*Node, error) {
	file, err := notationParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse tree notation")
	}

	return file.build()
}

// ParseNotationString parses a script written in tree notation.
func ParseNotationString(s string) ([]*Node, error) {
	file, err := notationParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse tree notation")
	}

	return file.build()
}

// MustParseNotation is like ParseNotationString but panics on error. It is
// intended for tests and package-level fixtures.
func MustParseNotation(s string) []*Node {
	nodes, err := ParseNotationString(s)
	if err != nil {
		panic(err)
	}

	return nodes
}

// ReadFile loads a tree from path, picking the decoder by extension: .json
// files are bq2cst output, anything else is tree notation.
func ReadFile(path string) ([]*Node, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSONFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	nodes, err := ParseNotation(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse file: %s", path)
	}

	return nodes, nil
}

func (f *notationFile) build() ([]*Node, error) {
	nodes := make([]*Node, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		node, err := n.build(1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (n *notationNode) build(parentLine int) (*Node, error) {
	node := &Node{Token: Token{Line: parentLine}}
	if n.Literal != nil {
		node.Token.Literal = *n.Literal
	}
	if n.Line != nil {
		node.Token.Line = *n.Line
	}
	if n.Column != nil {
		node.Token.Column = *n.Column
	}

	for _, field := range n.Fields {
		switch field.Name {
		case SelfField:
			return nil, errors.Errorf("%s: the self field is implied by the node literal", field.Pos)
		case LeadingComments, FollowingComments:
			comments, err := field.comments(node.Token.Line)
			if err != nil {
				return nil, err
			}

			if field.Name == LeadingComments {
				node.LeadingComments = comments
			} else {
				node.FollowingComments = comments
			}
			continue
		}

		if node.Has(field.Name) {
			return nil, errors.Errorf("%s: duplicate field %q", field.Pos, field.Name)
		}

		ref, err := field.ref(node.Token.Line)
		if err != nil {
			return nil, err
		}

		if node.Fields == nil {
			node.Fields = make(map[string]Ref, len(n.Fields))
		}
		node.Fields[field.Name] = ref
	}

	return node, nil
}

func (f *notationField) ref(line int) (Ref, error) {
	if !f.IsVec {
		child, err := f.Node.build(line)
		if err != nil {
			return Ref{}, err
		}

		return Single(child), nil
	}

	children := make([]*Node, 0, len(f.Vec))
	for _, n := range f.Vec {
		child, err := n.build(line)
		if err != nil {
			return Ref{}, err
		}
		children = append(children, child)
	}

	return Vector(children...), nil
}

func (f *notationField) comments(line int) ([]Comment, error) {
	nodes := f.Vec
	if !f.IsVec {
		nodes = []*notationNode{f.Node}
	}

	comments := make([]Comment, 0, len(nodes))
	for _, n := range nodes {
		if n.Literal == nil || len(n.Fields) > 0 {
			return nil, errors.Errorf("%s: comments must be plain literals", n.Pos)
		}

		c := Comment{Text: *n.Literal, Line: line}
		if n.Line != nil {
			c.Line = *n.Line
		}
		comments = append(comments, c)
	}

	return comments, nil
}
