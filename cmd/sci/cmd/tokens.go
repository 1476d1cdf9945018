package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexanderOnbysh/compilers-course/internal/driver"
	"github.com/AlexanderOnbysh/compilers-course/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [paths...]",
	Short: "Print the token stream of each source file",
	Long: `Tokenize each source file and print one token per line with its
position, type and text. Keywords are highlighted. The end of input is not
printed, so a file holding only comments prints the header alone.

Tokenizing stops at the first lexical error in a file; remaining files are
still processed.`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	files, err := inputs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return eachFile(cmd, files, func(path string) error {
		tokens, err := driver.Tokenize(path)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, styles.header.Render(path))
		fmt.Fprintf(out, "%-20s %-16s %s\n", "POSITION", "TOKEN", "TEXT")
		fmt.Fprintf(out, "%-20s %-16s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 16), strings.Repeat("-", 20))
		for _, tok := range tokens {
			text := styles.muted.Render(tokenText(tok))
			if tok.Type.IsKeyword() {
				text = styles.emph.Render(tokenText(tok))
			}
			fmt.Fprintf(out, "%-20s %-16s %s\n", tok.Position.String(), tok.Type.String(), text)
		}
		logger.Debug("tokenized", "file", path, "tokens", len(tokens))
		return nil
	})
}

// tokenText renders the source text of a token for display.
func tokenText(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokenString:
		return strconv.Quote(tok.Lexeme)
	case lexer.TokenChar:
		return strconv.QuoteRune(tok.Value.(rune))
	default:
		return tok.Lexeme
	}
}
