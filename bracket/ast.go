// Package bracket parses flat text containing nested round, curly, and
// square brackets into a tree of bracket groups and the text runs
// between them.
package bracket

import "strings"

// Node is the interface implemented by all parse-tree nodes.
type Node interface {
	node()

	// String returns the diagnostic rendering of the node: the variant
	// name wrapping the nested content, e.g. Parenthesis(Text(bar)).
	// The rendering is for display only and cannot be parsed back.
	String() string
}

// Text represents a literal run of non-bracket characters.
type Text struct {
	Content string
}

func (Text) node() {}

func (t Text) String() string {
	return "Text(" + t.Content + ")"
}

// Parenthesis represents a ( ) group wrapping the parse of its interior.
type Parenthesis struct {
	Inner Node
}

func (Parenthesis) node() {}

func (p Parenthesis) String() string {
	return "Parenthesis(" + p.Inner.String() + ")"
}

// Curly represents a { } group wrapping the parse of its interior.
type Curly struct {
	Inner Node
}

func (Curly) node() {}

func (c Curly) String() string {
	return "Curly(" + c.Inner.String() + ")"
}

// Square represents a [ ] group wrapping the parse of its interior.
type Square struct {
	Inner Node
}

func (Square) node() {}

func (s Square) String() string {
	return "Square(" + s.Inner.String() + ")"
}

// Sequence represents consecutive sibling nodes in left-to-right scan
// order. Parse never returns a Sequence with fewer than two items.
type Sequence struct {
	Items []Node
}

func (Sequence) node() {}

func (s Sequence) String() string {
	var b strings.Builder
	b.WriteString("Sequence([ ")
	for _, item := range s.Items {
		b.WriteString(item.String())
		b.WriteString(", ")
	}
	b.WriteString("])")
	return b.String()
}

// Kind identifies one of the three bracket pairs.
type Kind int

const (
	KindParen Kind = iota
	KindCurly
	KindSquare
)

// Open returns the opening byte of the pair.
func (k Kind) Open() byte {
	switch k {
	case KindCurly:
		return '{'
	case KindSquare:
		return '['
	default:
		return '('
	}
}

// Close returns the closing byte of the pair.
func (k Kind) Close() byte {
	switch k {
	case KindCurly:
		return '}'
	case KindSquare:
		return ']'
	default:
		return ')'
	}
}

func (k Kind) String() string {
	switch k {
	case KindCurly:
		return "Curly"
	case KindSquare:
		return "Square"
	default:
		return "Paren"
	}
}

// kindOf maps an opening bracket byte to its Kind.
func kindOf(ch byte) (Kind, bool) {
	switch ch {
	case '(':
		return KindParen, true
	case '{':
		return KindCurly, true
	case '[':
		return KindSquare, true
	}
	return 0, false
}

// wrap encloses the parse of a bracket interior in the node for kind.
func wrap(kind Kind, inner Node) Node {
	switch kind {
	case KindCurly:
		return Curly{Inner: inner}
	case KindSquare:
		return Square{Inner: inner}
	default:
		return Parenthesis{Inner: inner}
	}
}
