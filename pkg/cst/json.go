package cst

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

type (
	jsonToken struct {
		Line    int    `json:"line"`
		Column  int    `json:"column"`
		Literal string `json:"literal"`
	}

	jsonRef struct {
		Node    *jsonNode    `json:"Node,omitempty"`
		NodeVec *[]*jsonNode `json:"NodeVec,omitempty"`
	}

	jsonNode struct {
		Token    *jsonToken         `json:"token"`
		Children map[string]jsonRef `json:"children,omitempty"`
	}
)

// DecodeJSON reads bq2cst output from r. The input is either an array of
// top-level nodes or a single node.
func DecodeJSON(r io.Reader) ([]*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tree")
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty tree input")
	}

	if data[0] != '[' {
		var n Node
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, errors.Wrap(err, "failed to decode tree")
		}

		return []*Node{&n}, nil
	}

	var nodes []*Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, errors.Wrap(err, "failed to decode tree")
	}

	script := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			script = append(script, n)
		}
	}

	return script, nil
}

// ReadJSONFile decodes the bq2cst output stored at path.
func ReadJSONFile(path string) ([]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	nodes, err := DecodeJSON(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode file: %s", path)
	}

	return nodes, nil
}

// UnmarshalJSON implements json.Unmarshaler for the bq2cst node shape.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = *raw.node()
	return nil
}

// MarshalJSON implements json.Marshaler, writing the bq2cst node shape.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(fromNode(n))
}

func (j *jsonNode) node() *Node {
	n := new(Node)
	if j == nil {
		return n
	}

	if j.Token != nil {
		n.Token = Token{Line: j.Token.Line, Column: j.Token.Column, Literal: j.Token.Literal}
	}

	for name, ref := range j.Children {
		switch name {
		case SelfField:
			if ref.Node != nil && ref.Node.Token != nil {
				t := ref.Node.Token
				n.Token = Token{Line: t.Line, Column: t.Column, Literal: t.Literal}
			}
		case LeadingComments:
			n.LeadingComments = ref.comments()
		case FollowingComments:
			n.FollowingComments = ref.comments()
		default:
			if n.Fields == nil {
				n.Fields = make(map[string]Ref, len(j.Children))
			}
			n.Fields[name] = ref.ref()
		}
	}

	return n
}

func (r jsonRef) ref() Ref {
	if r.NodeVec == nil {
		return Single(r.Node.node())
	}

	nodes := make([]*Node, len(*r.NodeVec))
	for i, child := range *r.NodeVec {
		nodes[i] = child.node()
	}

	return Vector(nodes...)
}

func (r jsonRef) comments() []Comment {
	var nodes []*jsonNode
	switch {
	case r.NodeVec != nil:
		nodes = *r.NodeVec
	case r.Node != nil:
		nodes = []*jsonNode{r.Node}
	}

	comments := make([]Comment, 0, len(nodes))
	for _, c := range nodes {
		if c == nil || c.Token == nil {
			continue
		}
		comments = append(comments, Comment{Text: c.Token.Literal, Line: c.Token.Line})
	}

	return comments
}

func fromNode(n *Node) *jsonNode {
	j := &jsonNode{}
	if n.HasSelf() || n.Token.Line > 0 {
		j.Token = &jsonToken{Line: n.Token.Line, Column: n.Token.Column, Literal: n.Token.Literal}
	}

	if len(n.Fields) > 0 || len(n.LeadingComments) > 0 || len(n.FollowingComments) > 0 {
		j.Children = make(map[string]jsonRef, len(n.Fields)+2)
	}

	for name, ref := range n.Fields {
		if !ref.IsVec {
			j.Children[name] = jsonRef{Node: fromNode(ref.Node)}
			continue
		}

		vec := make([]*jsonNode, len(ref.Vec))
		for i, child := range ref.Vec {
			vec[i] = fromNode(child)
		}
		j.Children[name] = jsonRef{NodeVec: &vec}
	}

	if len(n.LeadingComments) > 0 {
		j.Children[LeadingComments] = commentRef(n.LeadingComments)
	}
	if len(n.FollowingComments) > 0 {
		j.Children[FollowingComments] = commentRef(n.FollowingComments)
	}

	return j
}

func commentRef(comments []Comment) jsonRef {
	vec := make([]*jsonNode, len(comments))
	for i, c := range comments {
		vec[i] = &jsonNode{Token: &jsonToken{Line: c.Line, Literal: c.Text}}
	}

	return jsonRef{NodeVec: &vec}
}
