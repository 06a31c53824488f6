package bracket

import "testing"

func TestErrorMessages(t *testing.T) {
	unclosed := &UnclosedBracketError{Offset: 4}
	if got, want := unclosed.Error(), "unclosed bracket at offset 4"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	depth := &DepthLimitError{Offset: 2, Limit: 8}
	if got, want := depth.Error(), "bracket nesting at offset 2 exceeds depth limit 8"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
