package driver

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AlexanderOnbysh/compilers-course/internal/lexer"
	"github.com/AlexanderOnbysh/compilers-course/internal/parser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.sci"), "")
	writeFile(t, filepath.Join(dir, "a.sci"), "")
	writeFile(t, filepath.Join(dir, "notes.md"), "")
	writeFile(t, filepath.Join(dir, "nested", "c.SCI"), "")
	writeFile(t, filepath.Join(dir, ".hidden", "d.sci"), "")
	single := filepath.Join(dir, "notes.md")

	got, err := Discover([]string{single, dir}, []string{".sci"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		single,
		filepath.Join(dir, "a.sci"),
		filepath.Join(dir, "b.sci"),
		filepath.Join(dir, "nested", "c.SCI"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.sci")
	writeFile(t, file, "")

	got, err := Discover([]string{file, dir, file}, []string{".sci"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Errorf("Discover() = %v, want [%s]", got, file)
	}
}

func TestDiscover_Missing(t *testing.T) {
	_, err := Discover([]string{filepath.Join(t.TempDir(), "nope.sci")}, []string{".sci"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.sci")
	writeFile(t, path, "x: int = 42")

	tokens, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []lexer.TokenType{
		lexer.TokenIdentifier, lexer.TokenColon, lexer.TokenIntType,
		lexer.TokenAssign, lexer.TokenInteger,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
		if tok.Position.Filename != path {
			t.Errorf("token %d: filename %q, want %q", i, tok.Position.Filename, path)
		}
	}
}

func TestTokenize_CommentOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sci")
	writeFile(t, path, "# nothing here\n\n")

	tokens, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("got %d tokens, want none: %v", len(tokens), tokens)
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sci")
	bad := filepath.Join(dir, "bad.sci")
	writeFile(t, good, "def main() -> void begin\n  x: int = 1;\nend\n")
	writeFile(t, bad, "def main() -> void begin\n  x: int = ;\nend\n")

	prog, err := Parse(good)
	if err != nil {
		t.Fatalf("Parse(good): %v", err)
	}
	if len(prog.Decls) != 1 {
		t.Errorf("got %d declarations, want 1", len(prog.Decls))
	}

	_, err = Parse(bad)
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if syntaxErr.Line != 2 {
		t.Errorf("Line = %d, want 2", syntaxErr.Line)
	}
}

func TestReadErrorsAreWrapped(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.sci")

	if _, err := Tokenize(missing); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Tokenize: expected ErrNotExist, got %v", err)
	}
	if _, err := Parse(missing); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Parse: expected ErrNotExist, got %v", err)
	}
}
