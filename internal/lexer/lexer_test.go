package lexer

import (
	"errors"
	"testing"
)

func collect(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := New(source, "test.sci").Tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tokens
}

func TestLexer_Keywords(t *testing.T) {
	source := "def begin end char int float void bool True False if elif else for while do return break continue not and or"
	l := New(source, "test.sci")

	expectedTypes := []TokenType{
		TokenDef, TokenBegin, TokenEnd,
		TokenCharType, TokenIntType, TokenFloatType, TokenVoidType, TokenBoolType,
		TokenTrue, TokenFalse,
		TokenIf, TokenElif, TokenElse, TokenFor, TokenWhile, TokenDo,
		TokenReturn, TokenBreak, TokenContinue,
		TokenNot, TokenAnd, TokenOr,
		TokenEOF,
	}

	for i, expected := range expectedTypes {
		token, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if token.Type != expected {
			t.Errorf("token %d: expected %v, got %v", i, expected, token.Type)
		}
	}
}

func TestLexer_Identifiers(t *testing.T) {
	tokens := collect(t, "foo bar myVar123 Begin true")
	expected := []string{"foo", "bar", "myVar123", "Begin", "true"}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, name := range expected {
		if tokens[i].Type != TokenIdentifier {
			t.Errorf("token %d: expected ID, got %v", i, tokens[i].Type)
		}
		if tokens[i].Value != name {
			t.Errorf("token %d: expected value %q, got %v", i, name, tokens[i].Value)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		source string
		want   TokenType
		value  interface{}
	}{
		{"123", TokenInteger, int64(123)},
		{"0", TokenInteger, int64(0)},
		{"1.5", TokenFloat, 1.5},
		{"3.14159", TokenFloat, 3.14159},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := collect(t, tt.source)
			if len(tokens) != 1 {
				t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tokens[0].Type)
			}
			if tokens[0].Value != tt.value {
				t.Errorf("expected value %v, got %v", tt.value, tokens[0].Value)
			}
		})
	}
}

func TestLexer_IntegerFollowedByDot(t *testing.T) {
	tokens := collect(t, "1.x")
	want := []TokenType{TokenInteger, TokenDot, TokenIdentifier}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i].Type != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], tokens[i].Type)
		}
	}
}

func TestLexer_Strings(t *testing.T) {
	tokens := collect(t, `"hello" "with # hash" "raw\t"`)
	expected := []string{"hello", "with # hash", `raw\t`}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != TokenString {
			t.Errorf("token %d: expected STRING, got %v", i, tokens[i].Type)
		}
		if tokens[i].Value != want {
			t.Errorf("token %d: expected %q, got %v", i, want, tokens[i].Value)
		}
	}
}

func TestLexer_Chars(t *testing.T) {
	tokens := collect(t, `'a' 'Z' ' '`)
	expected := []rune{'a', 'Z', ' '}

	for i, want := range expected {
		if tokens[i].Type != TokenChar {
			t.Errorf("token %d: expected CHAR_CONST, got %v", i, tokens[i].Type)
		}
		if tokens[i].Value != want {
			t.Errorf("token %d: expected %d, got %v", i, want, tokens[i].Value)
		}
	}
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		source string
		want   TokenType
	}{
		{"<=", TokenLessEqual},
		{"<", TokenLess},
		{">=", TokenGreaterEqual},
		{">", TokenGreater},
		{"==", TokenEqual},
		{"=", TokenAssign},
		{"!=", TokenNotEqual},
		{"->", TokenArrow},
		{"-", TokenMinus},
		{"**", TokenStarStar},
		{"*", TokenStar},
		{"+", TokenPlus},
		{"/", TokenSlash},
		{"%", TokenPercent},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := collect(t, tt.source)
			if len(tokens) != 1 {
				t.Fatalf("expected exactly 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tokens[0].Type)
			}
		})
	}
}

func TestLexer_Punctuation(t *testing.T) {
	tokens := collect(t, "( ) ; : , .")
	want := []TokenType{TokenLeftParen, TokenRightParen, TokenSemicolon, TokenColon, TokenComma, TokenDot}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i].Type != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], tokens[i].Type)
		}
	}
}

func TestLexer_GreedyOperatorsWithoutSpaces(t *testing.T) {
	tokens := collect(t, "a<=b==c->d**e")
	want := []TokenType{
		TokenIdentifier, TokenLessEqual, TokenIdentifier, TokenEqual,
		TokenIdentifier, TokenArrow, TokenIdentifier, TokenStarStar, TokenIdentifier,
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i].Type != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], tokens[i].Type)
		}
	}
}

func TestLexer_OnlyWhitespaceAndComments(t *testing.T) {
	sources := []string{
		"",
		"   \t\n\n  ",
		"# just a comment",
		"# one\n   # two\n\n",
	}

	for _, source := range sources {
		l := New(source, "test.sci")
		token, err := l.NextToken()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", source, err)
		}
		if token.Type != TokenEOF {
			t.Errorf("%q: expected EOF, got %v", source, token.Type)
		}
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	l := New("x", "test.sci")
	if _, err := l.NextToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		token, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token.Type != TokenEOF {
			t.Errorf("call %d: expected EOF, got %v", i, token.Type)
		}
	}
}

func TestLexer_CommentsAndLines(t *testing.T) {
	source := "# header\nfoo # trailing\n\nbar"
	tokens := collect(t, source)

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Line() != 2 {
		t.Errorf("foo: expected line 2, got %d", tokens[0].Line())
	}
	if tokens[1].Line() != 4 {
		t.Errorf("bar: expected line 4, got %d", tokens[1].Line())
	}
}

func TestLexer_EscapedNewlineSubstitution(t *testing.T) {
	tokens := collect(t, `foo\nbar`)

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[1].Line() != 2 {
		t.Errorf("expected bar on line 2, got %d", tokens[1].Line())
	}
}

func TestLexer_PositionTracking(t *testing.T) {
	l := New("foo\n  bar", "test.sci")

	token1, _ := l.NextToken()
	if token1.Position.Line != 1 || token1.Position.Column != 1 {
		t.Errorf("foo: expected 1:1, got %d:%d", token1.Position.Line, token1.Position.Column)
	}

	token2, _ := l.NextToken()
	if token2.Position.Line != 2 || token2.Position.Column != 3 {
		t.Errorf("bar: expected 2:3, got %d:%d", token2.Position.Line, token2.Position.Column)
	}
}

func TestLexer_ColumnsCountBytes(t *testing.T) {
	l := New("\"é\" x", "test.sci")

	if _, err := l.NextToken(); err != nil {
		t.Fatalf("string: %v", err)
	}
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("identifier: %v", err)
	}
	if tok.Position.Column != 6 || tok.Position.Offset != 5 {
		t.Errorf("x: expected column 6 offset 5, got column %d offset %d", tok.Position.Column, tok.Position.Offset)
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantChar rune
		wantLine int
	}{
		{"invalid char", "x = @", '@', 1},
		{"invalid char later line", "x\n\n$", '$', 3},
		{"bang alone", "!x", '!', 1},
		{"underscore", "_x", '_', 1},
		{"unterminated string", "\n\"abc", '"', 2},
		{"unterminated multi-line string", "x\n\"abc\ndef\nghi", '"', 2},
		{"unclosed char", "'ab'", 'b', 1},
		{"char at end", "'a", 0, 1},
		{"empty char at end", "'", '\'', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.source, "test.sci").Tokens()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var lexErr *LexicalError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexicalError, got %T", err)
			}
			if lexErr.Char != tt.wantChar {
				t.Errorf("expected char %q, got %q", tt.wantChar, lexErr.Char)
			}
			if lexErr.Line() != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, lexErr.Line())
			}
		})
	}
}

func TestLexer_IntegerOutOfRange(t *testing.T) {
	_, err := New("99999999999999999999", "test.sci").Tokens()
	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexicalError, got %v", err)
	}
}

func TestLexer_CheckpointRestore(t *testing.T) {
	l := New("a\nb c", "test.sci")

	if _, err := l.NextToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cp := l.Checkpoint()

	first, _ := l.NextToken()
	second, _ := l.NextToken()
	if l.Line() != 2 {
		t.Fatalf("expected line 2, got %d", l.Line())
	}

	l.Restore(cp)
	if l.Line() != 1 {
		t.Errorf("expected line 1 after restore, got %d", l.Line())
	}

	again, _ := l.NextToken()
	if again != first {
		t.Errorf("expected %v after restore, got %v", first, again)
	}
	if next, _ := l.NextToken(); next != second {
		t.Errorf("expected %v after restore, got %v", second, next)
	}
}
