// Package format renders bracket parse trees in the output formats of
// the command line tool.
package format

import (
	"encoding"

	"github.com/ahi-dev/brack/bracket"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(node bracket.Node) error
}
