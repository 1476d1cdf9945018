package lexer

import "strconv"

// Position represents a location in source code.
//
// Every token carries the Position of its first character, and every
// LexicalError carries the Position where the offending lexeme starts.
// Position is a small value type: it is copied into tokens and errors, never
// shared, and its zero value means "no position" (see IsValid).
type Position struct {
	// Filename is the path the source was read from, as given to New.
	// It is empty for in-memory buffers, and String then starts with ':'.
	Filename string

	// Line is the 1-based line number, matching what editors display.
	// Newlines inside string literals advance it like any other newline.
	// Zero means the position is unset.
	Line int

	// Column is the 1-based column, counted in bytes from the start of the
	// line. A tab counts as one column, and a multi-byte UTF-8 character
	// counts once per byte, so "é" followed by "x" puts x at column 3.
	Column int

	// Offset is the 0-based byte offset from the start of the buffer.
	// The buffer is the source after literal backslash-n sequences were
	// replaced by newlines, so offsets index that text and can differ from
	// offsets in the file on disk.
	Offset int
}

// String returns a human-readable representation of the position.
// Format: "filename:line:column"
func (p Position) String() string {
	return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid returns true if this is a valid position.
// A position is valid if it has a line number > 0.
func (p Position) IsValid() bool {
	return p.Line > 0
}
