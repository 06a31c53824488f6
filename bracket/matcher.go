package bracket

// findClose locates the closing bracket matching the opening bracket
// that text starts with. Only brackets of the given kind adjust the
// nesting count; the other two kinds and everything else are passed
// over. The returned offset indexes the closing byte relative to the
// start of text. ok is false when text runs out before the count
// returns to zero.
func findClose(text string, kind Kind) (offset int, ok bool) {
	opener, closer := kind.Open(), kind.Close()
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
