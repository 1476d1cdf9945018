package lexer

import "fmt"

// LexicalError reports a malformed character stream: an unknown character,
// an unterminated string literal or a malformed character literal.
type LexicalError struct {
	// Char is the offending character, or 0 when input ended.
	Char rune

	// Pos is where the offending lexeme starts. For unterminated strings
	// this is the opening quote.
	Pos Position

	Msg string
}

// Line returns the line the error refers to.
func (e *LexicalError) Line() int {
	return e.Pos.Line
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: lexical error: %s", e.Pos, e.Msg)
}
