package parser

import (
	"fmt"

	"github.com/AlexanderOnbysh/compilers-course/internal/lexer"
)

// SyntaxError reports a token stream that does not satisfy the grammar at
// the current position, including trailing tokens after a complete program.
type SyntaxError struct {
	// Expected describes what the grammar required. When a single token
	// kind was required it is that kind's name, as returned by
	// lexer.TokenType.String ("COLON", "END", "EOF"). When any of several
	// tokens would do it is one of the categories ExpectedType,
	// ExpectedExpression or ExpectedStatement.
	Expected string

	// Found is the token actually present.
	Found lexer.Token

	// Line is the line of the found token.
	Line int
}

// Categories reported in SyntaxError.Expected when no single token kind was
// required.
const (
	// ExpectedType is reported where one of the built-in type names was required.
	ExpectedType = "type"
	// ExpectedExpression is reported where an expression could not start.
	ExpectedExpression = "expression"
	// ExpectedStatement is reported where a statement keyword was required.
	ExpectedStatement = "statement"
)

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: expected token <%s> but found <%s> at line %d",
		e.Found.Position, e.Expected, e.Found.Type, e.Line)
}

// bailout carries an error up through the recursive descent. It is raised
// with panic and recovered in Parse and in speculative trials.
type bailout struct {
	err error
}
