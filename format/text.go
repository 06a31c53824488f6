package format

import (
	"io"

	"github.com/ahi-dev/brack/bracket"
)

// TextEncoder writes the one-line diagnostic rendering of a tree.
type TextEncoder struct {
	w    io.Writer
	node bracket.Node
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node bracket.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.node.String() + "\n"), nil
}
