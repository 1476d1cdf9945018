package lexer

// TokenType represents the type of a token.
type TokenType int

// Token type enumeration.
//
// Tokens are grouped logically: the end marker, literals, identifiers and
// keywords, operators, then delimiters.
const (
	// TokenEOF marks the end of the input. The lexer keeps returning it once
	// the buffer is exhausted.
	TokenEOF TokenType = iota

	// Literals

	// TokenInteger is a decimal integer literal. Token.Value holds an int64.
	TokenInteger

	// TokenFloat is a literal of the form digits '.' digits.
	// Token.Value holds a float64.
	TokenFloat

	// TokenString is a double quoted string. Token.Value holds the raw text
	// between the quotes; escapes are not processed.
	TokenString

	// TokenChar is a single quoted character. Token.Value holds its rune.
	TokenChar

	// TokenIdentifier is any name that is not a keyword.
	// Token.Value holds the identifier text.
	TokenIdentifier

	// Keywords

	TokenDef
	TokenBegin
	TokenEnd

	// Type names
	TokenCharType
	TokenIntType
	TokenFloatType
	TokenVoidType
	TokenBoolType

	TokenTrue
	TokenFalse

	// Control flow
	TokenIf
	TokenElif
	TokenElse
	TokenFor
	TokenWhile
	TokenDo
	TokenReturn
	TokenBreak
	TokenContinue

	// Logical operators spelled as words
	TokenNot
	TokenAnd
	TokenOr

	// Operators

	TokenPlus     // +
	TokenMinus    // -
	TokenStar     // *
	TokenSlash    // /
	TokenPercent  // %
	TokenStarStar // **

	TokenEqual        // ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenLessEqual    // <=
	TokenGreater      // >
	TokenGreaterEqual // >=

	TokenAssign // =
	TokenArrow  // ->

	// Delimiters

	TokenLeftParen  // (
	TokenRightParen // )
	TokenSemicolon  // ;
	TokenColon      // :
	TokenComma      // ,
	TokenDot        // .
)

// Token represents a lexical token.
type Token struct {
	// Type is the kind of token.
	Type TokenType

	// Lexeme is the source text the token was scanned from.
	// For string literals this excludes the quotes.
	Lexeme string

	// Value is the literal payload: nil, int64, float64, string or rune,
	// depending on Type.
	Value interface{}

	// Position is where the token starts in the source.
	Position Position
}

// Line returns the source line the token starts on.
func (t Token) Line() int {
	return t.Position.Line
}

// String returns a human-readable representation of the token.
// Format: "TYPE(lexeme) at file:line:col"
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ") at " + t.Position.String()
}

var tokenNames = [...]string{
	TokenEOF:          "EOF",
	TokenInteger:      "INTEGER_CONST",
	TokenFloat:        "FLOAT_CONST",
	TokenString:       "STRING",
	TokenChar:         "CHAR_CONST",
	TokenIdentifier:   "ID",
	TokenDef:          "DEF",
	TokenBegin:        "BEGIN",
	TokenEnd:          "END",
	TokenCharType:     "CHAR",
	TokenIntType:      "INT",
	TokenFloatType:    "FLOAT",
	TokenVoidType:     "VOID",
	TokenBoolType:     "BOOL",
	TokenTrue:         "TRUE",
	TokenFalse:        "FALSE",
	TokenIf:           "IF",
	TokenElif:         "ELIF",
	TokenElse:         "ELSE",
	TokenFor:          "FOR",
	TokenWhile:        "WHILE",
	TokenDo:           "DO",
	TokenReturn:       "RETURN",
	TokenBreak:        "BREAK",
	TokenContinue:     "CONTINUE",
	TokenNot:          "NOT",
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenPlus:         "PLUS",
	TokenMinus:        "MINUS",
	TokenStar:         "STAR",
	TokenSlash:        "SLASH",
	TokenPercent:      "PERCENT",
	TokenStarStar:     "POWER",
	TokenEqual:        "EQ",
	TokenNotEqual:     "NE",
	TokenLess:         "LT",
	TokenLessEqual:    "LE",
	TokenGreater:      "GT",
	TokenGreaterEqual: "GE",
	TokenAssign:       "ASSIGN",
	TokenArrow:        "ARROW",
	TokenLeftParen:    "LPAREN",
	TokenRightParen:   "RPAREN",
	TokenSemicolon:    "SEMICOLON",
	TokenColon:        "COLON",
	TokenComma:        "COMMA",
	TokenDot:          "DOT",
}

// String returns the name of the token type, used in error messages.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) && tokenNames[tt] != "" {
		return tokenNames[tt]
	}
	return "UNKNOWN"
}

// keywords maps reserved words to their token types.
// It is built once at package initialization and only ever read.
var keywords = map[string]TokenType{
	"def":   TokenDef,
	"begin": TokenBegin,
	"end":   TokenEnd,

	"char":  TokenCharType,
	"int":   TokenIntType,
	"float": TokenFloatType,
	"void":  TokenVoidType,
	"bool":  TokenBoolType,
	"True":  TokenTrue,
	"False": TokenFalse,

	"if":       TokenIf,
	"elif":     TokenElif,
	"else":     TokenElse,
	"for":      TokenFor,
	"while":    TokenWhile,
	"do":       TokenDo,
	"return":   TokenReturn,
	"break":    TokenBreak,
	"continue": TokenContinue,

	"not": TokenNot,
	"and": TokenAnd,
	"or":  TokenOr,
}

// LookupKeyword returns the token type for an identifier.
// If the identifier is a keyword, returns the keyword's token type.
// Otherwise, returns TokenIdentifier.
func LookupKeyword(identifier string) TokenType {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType
	}
	return TokenIdentifier
}

// IsKeyword returns true if the token type is a reserved word.
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenDef && tt <= TokenOr
}

// IsLiteral returns true if the token type carries a literal value.
func (tt TokenType) IsLiteral() bool {
	switch tt {
	case TokenInteger, TokenFloat, TokenString, TokenChar, TokenTrue, TokenFalse:
		return true
	}
	return false
}

// IsTypeName returns true for the built-in type keywords.
func (tt TokenType) IsTypeName() bool {
	return tt >= TokenCharType && tt <= TokenBoolType
}

// IsBinaryOperator returns true if the token can join two operands.
func (tt TokenType) IsBinaryOperator() bool {
	switch tt {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenStarStar,
		TokenEqual, TokenNotEqual, TokenLess, TokenLessEqual,
		TokenGreater, TokenGreaterEqual, TokenAnd, TokenOr:
		return true
	}
	return false
}
