package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/ahi-dev/brack/bracket"
)

const diagnosticSource = "brack"

// Diagnose parses text and maps a parse failure to LSP diagnostics.
// Offsets are requested in absolute coordinates so the failing bracket
// can be located in the document regardless of its nesting level. A
// clean document yields nil.
func Diagnose(text string) []protocol.Diagnostic {
	_, err := bracket.Parse(text, bracket.WithAbsoluteOffsets())
	if err == nil {
		return nil
	}

	offset := 0
	var unclosed *bracket.UnclosedBracketError
	var depth *bracket.DepthLimitError
	switch {
	case errors.As(err, &unclosed):
		offset = unclosed.Offset
	case errors.As(err, &depth):
		offset = depth.Offset
	}

	start := positionAt(text, offset)
	end := start
	end.Character++

	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}}
}

// positionAt converts a byte offset into a zero-based line and column.
// Columns count bytes, matching the offsets reported by the parser.
func positionAt(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	var line, col protocol.UInteger
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return protocol.Position{Line: line, Character: col}
}
