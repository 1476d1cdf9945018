package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AlexanderOnbysh/compilers-course/internal/config"
	"github.com/AlexanderOnbysh/compilers-course/internal/driver"
	"github.com/AlexanderOnbysh/compilers-course/internal/lexer"
	"github.com/AlexanderOnbysh/compilers-course/internal/parser"
)

var (
	cfgFile string
	verbose bool

	cfg    = config.Default()
	logger = log.New(os.Stderr)
	styles = newPalette(false)
)

var rootCmd = &cobra.Command{
	Use:   "sci",
	Short: "sci - lexer and parser for the sci language",
	Long: `sci reads sci source files and runs the front end over them.

Commands:
  tokens  - print the token stream of each file
  parse   - print the syntax tree of each file (text, json or yaml)

Directories are expanded to the files they contain with one of the
configured extensions (default .sci).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SCI_CONFIG or ./sci.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup resolves the configuration and builds the logger and styles before
// any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "sci",
	})
	styles = newPalette(cfg.Output.Color)

	if path := cfg.Path(); path != "" {
		logger.Debug("loaded config", "path", path)
	} else {
		logger.Debug("using default config")
	}
	return nil
}

// errReported marks a failure whose details were already printed per file.
var errReported = errors.New("one or more files failed")

// inputs returns the source files named by args, falling back to the
// configured paths when args is empty.
func inputs(args []string) ([]string, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}
	if len(paths) == 0 {
		return nil, errors.New("no input files: pass paths or set source.paths in the config")
	}

	files, err := driver.Discover(paths, cfg.Source.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no source files with extensions %v found", cfg.Source.Extensions)
	}
	logger.Debug("discovered sources", "count", len(files))
	return files, nil
}

// eachFile runs fn over every file, reporting failures and continuing.
func eachFile(cmd *cobra.Command, files []string, fn func(path string) error) error {
	failed := 0
	for _, path := range files {
		logger.Debug("processing", "file", path)
		if err := fn(path); err != nil {
			failed++
			printError(cmd.ErrOrStderr(), err)
		}
	}
	if failed > 0 {
		logger.Error("finished with errors", "failed", failed, "total", len(files))
		return errReported
	}
	return nil
}

// printError writes a styled diagnostic. Lexical and syntax errors get their
// position highlighted.
func printError(w io.Writer, err error) {
	var (
		lexErr    *lexer.LexicalError
		syntaxErr *parser.SyntaxError
	)

	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintf(w, "%s %s%s\n", styles.err.Render("lexical error:"),
			location(lexErr.Pos), lexErr.Msg)
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(w, "%s %sexpected %s, found %s\n", styles.err.Render("syntax error:"),
			location(syntaxErr.Found.Position),
			styles.emph.Render(syntaxErr.Expected),
			styles.emph.Render(syntaxErr.Found.Type.String()))
	default:
		fmt.Fprintf(w, "%s %v\n", styles.err.Render("error:"), err)
	}
}

// location renders pos followed by a space, or nothing when the error
// carries no position.
func location(pos lexer.Position) string {
	if !pos.IsValid() {
		return ""
	}
	return styles.pos.Render(pos.String()) + " "
}

// palette holds the lipgloss styles used for terminal output.
type palette struct {
	err    lipgloss.Style
	pos    lipgloss.Style
	emph   lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{err: plain, pos: plain, emph: plain, header: plain, muted: plain}
	}
	return palette{
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		pos:    lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		emph:   lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}
