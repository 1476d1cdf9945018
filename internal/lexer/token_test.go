package lexer

import (
	"testing"
)

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name: "identifier token",
			token: Token{
				Type:     TokenIdentifier,
				Lexeme:   "foo",
				Value:    "foo",
				Position: Position{Filename: "test.sci", Line: 1, Column: 1},
			},
			expected: "ID(foo) at test.sci:1:1",
		},
		{
			name: "integer token",
			token: Token{
				Type:     TokenInteger,
				Lexeme:   "42",
				Value:    int64(42),
				Position: Position{Filename: "test.sci", Line: 5, Column: 10},
			},
			expected: "INTEGER_CONST(42) at test.sci:5:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.token.String()
			if result != tt.expected {
				t.Errorf("Token.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tt       TokenType
		expected string
	}{
		{TokenEOF, "EOF"},
		{TokenIdentifier, "ID"},
		{TokenDef, "DEF"},
		{TokenIntType, "INT"},
		{TokenFloat, "FLOAT_CONST"},
		{TokenArrow, "ARROW"},
		{TokenStarStar, "POWER"},
		{TokenEnd, "END"},
		{TokenDot, "DOT"},
		{TokenType(-1), "UNKNOWN"},
		{TokenType(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tt.String(); got != tt.expected {
				t.Errorf("TokenType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTokenType_EveryTypeIsNamed(t *testing.T) {
	for tt := TokenEOF; tt <= TokenDot; tt++ {
		if tt.String() == "UNKNOWN" {
			t.Errorf("token type %d has no name", int(tt))
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"def", TokenDef},
		{"begin", TokenBegin},
		{"True", TokenTrue},
		{"void", TokenVoidType},
		{"elif", TokenElif},
		{"true", TokenIdentifier},
		{"DEF", TokenIdentifier},
		{"x", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := LookupKeyword(tt.input); got != tt.expected {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenType_Predicates(t *testing.T) {
	for word, tt := range keywords {
		if !tt.IsKeyword() {
			t.Errorf("%q: IsKeyword() = false", word)
		}
	}

	typeNames := []TokenType{TokenCharType, TokenIntType, TokenFloatType, TokenBoolType, TokenVoidType}
	for _, tt := range typeNames {
		if !tt.IsTypeName() {
			t.Errorf("%v: IsTypeName() = false", tt)
		}
	}
	if TokenIdentifier.IsTypeName() {
		t.Error("ID: IsTypeName() = true")
	}

	literals := []TokenType{TokenInteger, TokenFloat, TokenString, TokenChar, TokenTrue, TokenFalse}
	for _, tt := range literals {
		if !tt.IsLiteral() {
			t.Errorf("%v: IsLiteral() = false", tt)
		}
	}

	if !TokenAnd.IsBinaryOperator() || !TokenStarStar.IsBinaryOperator() {
		t.Error("expected AND and POWER to be binary operators")
	}
	if TokenAssign.IsBinaryOperator() || TokenNot.IsBinaryOperator() {
		t.Error("ASSIGN and NOT must not be binary operators")
	}
}
