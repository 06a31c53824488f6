package bracket

// DefaultMaxDepth bounds bracket nesting when no WithMaxDepth option
// is given. Parse recurses once per nesting level, so the limit keeps
// adversarial input from exhausting the stack.
const DefaultMaxDepth = 1000

// Option configures a single Parse call.
type Option func(*parser)

// WithMaxDepth sets the maximum bracket nesting depth. Non-positive
// values are ignored.
func WithMaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithAbsoluteOffsets makes error offsets index into the whole input
// instead of the substring being scanned at the failing nesting level.
func WithAbsoluteOffsets() Option {
	return func(p *parser) {
		p.absolute = true
	}
}

type parser struct {
	maxDepth int
	absolute bool
}

// Parse converts text into a tree of nodes. Runs of non-bracket bytes
// become Text nodes; each bracketed region becomes a Parenthesis,
// Curly, or Square node wrapping the parse of its strict interior. A
// lone resulting node is returned directly, two or more become a
// Sequence, and the empty input parses to an empty Text.
//
// Text nodes slice the input rather than copying it. Brackets are
// single ASCII bytes, so multi-byte runes in the input pass through
// text runs untouched.
//
// Parsing fails with *UnclosedBracketError when an opening bracket has
// no matching close, and with *DepthLimitError when nesting exceeds
// the configured limit. The first failure aborts the whole parse.
func Parse(text string, opts ...Option) (Node, error) {
	p := &parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse(text, 0, 0)
}

// parse handles one nesting level. base is the offset of text within
// the original input, used only for absolute error offsets; depth
// counts enclosing brackets.
func (p *parser) parse(text string, base, depth int) (Node, error) {
	if len(text) == 0 {
		return Text{}, nil
	}

	var items []Node
	runStart := 0
	i := 0
	for i < len(text) {
		kind, ok := kindOf(text[i])
		if !ok {
			i++
			continue
		}

		if runStart != i {
			items = append(items, Text{Content: text[runStart:i]})
		}

		end, ok := findClose(text[i:], kind)
		if !ok {
			return nil, &UnclosedBracketError{Offset: p.offset(base, i)}
		}
		if depth+1 > p.maxDepth {
			return nil, &DepthLimitError{Offset: p.offset(base, i), Limit: p.maxDepth}
		}

		inner, err := p.parse(text[i+1:i+end], base+i+1, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, wrap(kind, inner))

		i += end + 1
		runStart = i
	}

	if runStart < len(text) {
		items = append(items, Text{Content: text[runStart:]})
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return Sequence{Items: items}, nil
}

func (p *parser) offset(base, i int) int {
	if p.absolute {
		return base + i
	}
	return i
}
