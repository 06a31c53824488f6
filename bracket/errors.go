package bracket

import "fmt"

// UnclosedBracketError reports an opening bracket with no matching
// closing bracket. Offset is the byte offset of the opening bracket,
// relative to the substring being scanned at the nesting level where
// the failure occurred; WithAbsoluteOffsets switches it to the
// coordinate space of the whole input.
type UnclosedBracketError struct {
	Offset int
}

func (e *UnclosedBracketError) Error() string {
	return fmt.Sprintf("unclosed bracket at offset %d", e.Offset)
}

// DepthLimitError reports an opening bracket whose group would nest
// deeper than the configured limit. Offset follows the same coordinate
// rules as UnclosedBracketError.
type DepthLimitError struct {
	Offset int
	Limit  int
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("bracket nesting at offset %d exceeds depth limit %d", e.Offset, e.Limit)
}
