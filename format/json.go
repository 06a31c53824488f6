package format

import (
	"encoding/json"
	"io"

	"github.com/ahi-dev/brack/bracket"
)

type JSONEncoder struct {
	w    io.Writer
	node bracket.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node bracket.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildNode(e.node), "", "  ")
}

type jsonNode struct {
	Kind    string      `json:"kind"`
	Content *string     `json:"content,omitempty"`
	Inner   *jsonNode   `json:"inner,omitempty"`
	Items   []*jsonNode `json:"items,omitempty"`
}

// buildNode mirrors the tree into the wire structs. Content is a
// pointer so that empty text still serializes as "content": "".
func buildNode(node bracket.Node) *jsonNode {
	switch n := node.(type) {
	case bracket.Text:
		return &jsonNode{Kind: "Text", Content: &n.Content}
	case bracket.Parenthesis:
		return &jsonNode{Kind: "Parenthesis", Inner: buildNode(n.Inner)}
	case bracket.Curly:
		return &jsonNode{Kind: "Curly", Inner: buildNode(n.Inner)}
	case bracket.Square:
		return &jsonNode{Kind: "Square", Inner: buildNode(n.Inner)}
	case bracket.Sequence:
		items := make([]*jsonNode, len(n.Items))
		for i, item := range n.Items {
			items[i] = buildNode(item)
		}
		return &jsonNode{Kind: "Sequence", Items: items}
	}
	return nil
}
