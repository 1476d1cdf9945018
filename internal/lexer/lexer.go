// Package lexer provides lexical analysis for sci source text. It turns the
// raw characters of a file into tokens that the parser pulls one at a time.
//
// Scanning happens on demand: every NextToken call skips whitespace and
// comments, then reads exactly one token. Nothing is buffered ahead, so the
// whole state of a lexer is its cursor, which callers can capture with
// Checkpoint and rewind with Restore.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = '#'

// Lexer performs lexical analysis on source code, converting it into a stream
// of tokens one call at a time.
//
// The lexer is driven entirely by its caller: there is no separate
// tokenization pass. The cursor only moves forward, except when a caller
// rewinds it with Restore.
//
// Cursor fields:
//
//	start      byte offset where the token being scanned begins
//	current    byte offset of the next unread character
//	line       line of the next unread character, starting at 1
//	lineStart  byte offset of the first character of that line
//
// The column of the next character is always current - lineStart + 1, so
// only these three values (current, line, lineStart) are needed to resume
// scanning anywhere in the buffer. start and startPos are rewritten at the
// beginning of every NextToken call and never need restoring.
//
// A Lexer is not safe for concurrent use. The keyword table it consults is
// shared but never written.
type Lexer struct {
	// source is the complete source text being lexed, after literal "\n"
	// sequences were substituted with real newlines.
	source string

	// filename is the name of the source file (for error reporting).
	filename string

	// start is the byte offset of the token being scanned.
	start int

	// startPos is the position of the token being scanned.
	startPos Position

	// current is the byte offset we're currently examining.
	current int

	// line is the current line number (1-based).
	line int

	// lineStart is the byte offset where the current line started.
	// column = current - lineStart + 1
	lineStart int
}

// Checkpoint is a snapshot of the lexer cursor. It is used by the parser to
// rewind after a speculative parse that did not match.
//
// A checkpoint holds the byte offset of the next unread character, the line
// counter, and the offset where that line began. Restoring it puts the lexer
// back exactly where it was: the next NextToken call returns the same token,
// at the same position, that it returned after the checkpoint was taken.
// Line numbers stay correct even when the rewound section spans newlines,
// because the line counter is part of the snapshot.
//
// Checkpoints are plain values. Taking one costs nothing, and a checkpoint
// may be restored any number of times, but only on the Lexer that produced
// it.
type Checkpoint struct {
	offset    int
	line      int
	lineStart int
}

// New creates a new Lexer for the given source code.
//
// Every two-character backslash-n sequence in source is replaced with an
// actual newline once, before scanning begins.
func New(source, filename string) *Lexer {
	return &Lexer{
		source:   strings.ReplaceAll(source, `\n`, "\n"),
		filename: filename,
		line:     1,
	}
}

// Line returns the current line number.
func (l *Lexer) Line() int {
	return l.line
}

// Checkpoint captures the cursor offset, line counter and line start.
func (l *Lexer) Checkpoint() Checkpoint {
	return Checkpoint{
		offset:    l.current,
		line:      l.line,
		lineStart: l.lineStart,
	}
}

// Restore rewinds the lexer to a checkpoint previously taken on it.
func (l *Lexer) Restore(c Checkpoint) {
	l.current = c.offset
	l.line = c.line
	l.lineStart = c.lineStart
}

// NextToken returns the next token from the source.
//
// Once the input is exhausted it returns a TokenEOF token, and keeps doing so
// on every further call. Malformed input yields a *LexicalError.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	l.start = l.current
	l.startPos = l.currentPosition()

	if l.isAtEnd() {
		return l.makeToken(TokenEOF, "", nil), nil
	}

	ch := l.advance()

	if isLetter(ch) {
		return l.scanIdentifier(), nil
	}

	if isDigit(ch) {
		return l.scanNumber()
	}

	switch ch {
	case '"':
		return l.scanString()
	case '\'':
		return l.scanChar()

	// Operators that can be single or double characters.
	// The two-character form always wins when its second character matches.
	case '-':
		if l.match('>') {
			return l.makeToken(TokenArrow, "->", nil), nil
		}
		return l.makeToken(TokenMinus, "-", nil), nil
	case '*':
		if l.match('*') {
			return l.makeToken(TokenStarStar, "**", nil), nil
		}
		return l.makeToken(TokenStar, "*", nil), nil
	case '<':
		if l.match('=') {
			return l.makeToken(TokenLessEqual, "<=", nil), nil
		}
		return l.makeToken(TokenLess, "<", nil), nil
	case '>':
		if l.match('=') {
			return l.makeToken(TokenGreaterEqual, ">=", nil), nil
		}
		return l.makeToken(TokenGreater, ">", nil), nil
	case '=':
		if l.match('=') {
			return l.makeToken(TokenEqual, "==", nil), nil
		}
		return l.makeToken(TokenAssign, "=", nil), nil
	case '!':
		if l.match('=') {
			return l.makeToken(TokenNotEqual, "!=", nil), nil
		}

	// Single-character tokens
	case '+':
		return l.makeToken(TokenPlus, "+", nil), nil
	case '/':
		return l.makeToken(TokenSlash, "/", nil), nil
	case '%':
		return l.makeToken(TokenPercent, "%", nil), nil
	case '(':
		return l.makeToken(TokenLeftParen, "(", nil), nil
	case ')':
		return l.makeToken(TokenRightParen, ")", nil), nil
	case ';':
		return l.makeToken(TokenSemicolon, ";", nil), nil
	case ':':
		return l.makeToken(TokenColon, ":", nil), nil
	case ',':
		return l.makeToken(TokenComma, ",", nil), nil
	case '.':
		return l.makeToken(TokenDot, ".", nil), nil
	}

	return Token{}, l.errorf(ch, "invalid char %q", ch)
}

// Tokens drains the lexer and returns every token up to, but not including,
// the end of input.
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// advance reads and returns the next character, advancing the current position.
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	ch, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	if ch == '\n' {
		l.line++
		l.lineStart = l.current
	}
	return ch
}

// peek returns the current character without advancing.
// Returns 0 if at end of file.
func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return ch
}

// peekNext returns the character after the current one without advancing.
// Returns 0 if not enough characters remain.
func (l *Lexer) peekNext() rune {
	if l.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+size >= len(l.source) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.source[l.current+size:])
	return ch
}

// match advances past the current character if it equals expected.
func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

// isAtEnd returns true if we've consumed all the source code.
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// skipWhitespaceAndComments skips whitespace and '#' comments. A comment is
// consumed through its terminating newline. advance keeps the line counter
// up to date.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		ch := l.peek()
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == commentMarker:
			for !l.isAtEnd() {
				if l.advance() == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

// scanIdentifier scans a maximal run of letters and digits and classifies it
// as a keyword or an identifier.
func (l *Lexer) scanIdentifier() Token {
	for !l.isAtEnd() {
		ch := l.peek()
		if !isLetter(ch) && !unicode.IsDigit(ch) {
			break
		}
		l.advance()
	}

	text := l.source[l.start:l.current]

	tokenType := LookupKeyword(text)
	if tokenType == TokenIdentifier {
		return l.makeToken(tokenType, text, text)
	}
	return l.makeToken(tokenType, text, nil)
}

// scanNumber scans an integer or float literal.
//
// A float is digits '.' digits; there is no exponent notation. A '.' that is
// not followed by a digit ends the integer and is scanned as DOT next.
func (l *Lexer) scanNumber() (Token, error) {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}

		text := l.source[l.start:l.current]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, l.errorf(0, "invalid float literal %s", text)
		}
		return l.makeToken(TokenFloat, text, value), nil
	}

	text := l.source[l.start:l.current]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, l.errorf(0, "integer literal %s out of range", text)
	}
	return l.makeToken(TokenInteger, text, value), nil
}

// scanString scans a string literal. The opening quote has been consumed.
// Characters are taken verbatim up to the closing quote.
func (l *Lexer) scanString() (Token, error) {
	for !l.isAtEnd() {
		if l.peek() == '"' {
			text := l.source[l.start+1 : l.current]
			l.advance() // closing quote
			return l.makeToken(TokenString, text, text), nil
		}
		l.advance()
	}

	return Token{}, &LexicalError{
		Char: '"',
		Pos:  l.startPos,
		Msg:  fmt.Sprintf("unfinished string with '\"' at line %d", l.startPos.Line),
	}
}

// scanChar scans a character literal: exactly one character followed by a
// closing single quote. The opening quote has been consumed.
func (l *Lexer) scanChar() (Token, error) {
	if l.isAtEnd() {
		return Token{}, l.errorf('\'', "unclosed char constant at line %d", l.startPos.Line)
	}

	ch := l.advance()

	if l.peek() != '\'' {
		return Token{}, l.errorf(l.peek(), "unclosed char constant at line %d", l.startPos.Line)
	}
	l.advance() // closing quote

	return l.makeToken(TokenChar, string(ch), ch), nil
}

// makeToken creates a token positioned at the start of the current lexeme.
func (l *Lexer) makeToken(tokenType TokenType, lexeme string, value interface{}) Token {
	return Token{
		Type:     tokenType,
		Lexeme:   lexeme,
		Value:    value,
		Position: l.startPos,
	}
}

// currentPosition returns the current position in the source.
func (l *Lexer) currentPosition() Position {
	return Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.current - l.lineStart + 1,
		Offset:   l.current,
	}
}

// errorf creates a LexicalError at the start of the current lexeme.
func (l *Lexer) errorf(ch rune, format string, args ...interface{}) error {
	return &LexicalError{
		Char: ch,
		Pos:  l.startPos,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// isLetter returns true for alphabetic characters. Underscore is not a
// letter in this language.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isDigit returns true if the rune is a decimal digit (0-9).
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
