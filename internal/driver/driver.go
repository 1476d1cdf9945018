// Package driver connects the front end to the file system: it finds source
// files and runs the lexer or parser over each of them.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlexanderOnbysh/compilers-course/internal/lexer"
	"github.com/AlexanderOnbysh/compilers-course/internal/parser"
	"github.com/AlexanderOnbysh/compilers-course/internal/parser/ast"
)

// Discover expands paths into a list of source files. Plain files are kept
// as given, whatever their extension. Directories are walked recursively and
// contribute the files whose extension is in exts; hidden directories are
// skipped. The result keeps argument order, with each directory's files
// sorted, and lists every file once.
func Discover(paths []string, exts []string) ([]string, error) {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		var found []string
		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != root && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if allowed[strings.ToLower(filepath.Ext(path))] {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}

		sort.Strings(found)
		for _, f := range found {
			add(f)
		}
	}

	return files, nil
}

// Tokenize reads path and returns every token in it. The end of input is not
// part of the result, so an empty or comment-only file yields no tokens.
func Tokenize(path string) ([]lexer.Token, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return lexer.New(string(source), path).Tokens()
}

// Parse reads path and returns its syntax tree.
func Parse(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return parser.ParseSource(path, string(source))
}
