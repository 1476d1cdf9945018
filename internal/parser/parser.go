// Package parser implements a recursive descent parser that turns the token
// stream of a Lexer into an ast.Program.
//
// The parser pulls tokens from the lexer one at a time and keeps exactly one
// token of lookahead. Where one token is not enough to pick a production
// (assignment versus expression, call versus variable, declaration versus
// expression inside a block) it takes a checkpoint of the lexer cursor and
// the buffered token, tries the pattern, and restores the checkpoint if the
// pattern does not match.
//
// Binary operators have no precedence: an atom followed by an operator takes
// the whole rest of the expression as its right operand, so every chain
// groups to the right.
//
// The first lexical or syntax error aborts the parse. No partial tree is
// returned.
package parser

import (
	"github.com/AlexanderOnbysh/compilers-course/internal/lexer"
	"github.com/AlexanderOnbysh/compilers-course/internal/parser/ast"
)

// Parser converts a stream of tokens into an abstract syntax tree.
type Parser struct {
	// lexer is the source of tokens
	lexer *lexer.Lexer

	// current is the buffered lookahead token
	current lexer.Token
}

// checkpoint is everything needed to rewind a speculative parse.
type checkpoint struct {
	lexer   lexer.Checkpoint
	current lexer.Token
}

// binaryOps maps operator tokens to AST operators.
var binaryOps = map[lexer.TokenType]ast.Operator{
	lexer.TokenPlus:         ast.OpAdd,
	lexer.TokenMinus:        ast.OpSub,
	lexer.TokenStar:         ast.OpMul,
	lexer.TokenSlash:        ast.OpDiv,
	lexer.TokenPercent:      ast.OpMod,
	lexer.TokenStarStar:     ast.OpPow,
	lexer.TokenLess:         ast.OpLess,
	lexer.TokenLessEqual:    ast.OpLessEqual,
	lexer.TokenGreater:      ast.OpGreater,
	lexer.TokenGreaterEqual: ast.OpGreaterEqual,
	lexer.TokenEqual:        ast.OpEqual,
	lexer.TokenNotEqual:     ast.OpNotEqual,
	lexer.TokenAnd:          ast.OpAnd,
	lexer.TokenOr:           ast.OpOr,
}

// typeKinds maps type name tokens to AST type kinds.
var typeKinds = map[lexer.TokenType]ast.TypeKind{
	lexer.TokenCharType:  ast.TypeChar,
	lexer.TokenIntType:   ast.TypeInt,
	lexer.TokenFloatType: ast.TypeFloat,
	lexer.TokenBoolType:  ast.TypeBool,
	lexer.TokenVoidType:  ast.TypeVoid,
}

// New creates a parser reading from l. No token is read until Parse.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lexer: l}
}

// ParseSource lexes and parses src in one call.
func ParseSource(filename, src string) (*ast.Program, error) {
	return New(lexer.New(src, filename)).Parse()
}

// Parse consumes the whole token stream and returns the program.
// The error is a *lexer.LexicalError or a *SyntaxError.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	p.advance()
	prog = p.parseProgram()
	if !p.check(lexer.TokenEOF) {
		p.fail(lexer.TokenEOF.String())
	}
	return prog, nil
}

// ============================================================================
// DECLARATIONS
// ============================================================================

// parseProgram parses declarations until neither an identifier nor 'def'
// is ahead.
//
// program → ( varDecl | funcDecl )*
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{
		BaseNode: ast.At(p.current.Line()),
		Decls:    make([]ast.Decl, 0),
	}

	for {
		switch p.current.Type {
		case lexer.TokenIdentifier:
			prog.Decls = append(prog.Decls, p.parseVarDecl())
		case lexer.TokenDef:
			prog.Decls = append(prog.Decls, p.parseFunctionDecl())
		default:
			return prog
		}
	}
}

// parseFunctionDecl parses a function declaration.
//
// funcDecl → 'def' ID '(' params ')' '->' type block
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	line := p.current.Line()
	p.eat(lexer.TokenDef)

	name := p.current
	p.eat(lexer.TokenIdentifier)

	p.eat(lexer.TokenLeftParen)
	params := p.parseParams()
	p.eat(lexer.TokenRightParen)
	p.eat(lexer.TokenArrow)
	returnType := p.parseTypeSpec()

	return &ast.FunctionDecl{
		BaseNode:   ast.At(line),
		Name:       name.Lexeme,
		Params:     params,
		ReturnType: returnType,
		Body:       p.parseBlock(),
	}
}

// parseParams parses a possibly empty parameter list.
//
// params → ( ID ':'? type ( ',' ID ':'? type )* )?
func (p *Parser) parseParams() []*ast.Param {
	params := make([]*ast.Param, 0)
	if p.check(lexer.TokenRightParen) {
		return params
	}

	for {
		line := p.current.Line()
		variable := p.parseVariable()
		p.match(lexer.TokenColon)
		params = append(params, &ast.Param{
			BaseNode: ast.At(line),
			Type:     p.parseTypeSpec(),
			Var:      variable,
		})

		if !p.match(lexer.TokenComma) {
			return params
		}
	}
}

// parseVarDecl parses a variable declaration.
//
// varDecl → ID ':' type ( '=' expression )?
func (p *Parser) parseVarDecl() *ast.VarDecl {
	name := p.current
	p.eat(lexer.TokenIdentifier)
	return p.finishVarDecl(name)
}

// finishVarDecl parses the rest of a declaration whose name has already been
// consumed.
func (p *Parser) finishVarDecl(name lexer.Token) *ast.VarDecl {
	p.eat(lexer.TokenColon)
	decl := &ast.VarDecl{
		BaseNode: ast.At(name.Line()),
		Var:      &ast.VariableRef{BaseNode: ast.At(name.Line()), Name: name.Lexeme},
		Type:     p.parseTypeSpec(),
	}
	if p.match(lexer.TokenAssign) {
		decl.Init = p.parseExpression()
	}
	return decl
}

// tryDeclarationName consumes an identifier if it starts a declaration,
// that is, if it is followed by ':'. Otherwise nothing is consumed.
func (p *Parser) tryDeclarationName() (lexer.Token, bool) {
	name := p.current
	ok := p.speculate(func() bool {
		p.eat(lexer.TokenIdentifier)
		return p.check(lexer.TokenColon)
	})
	return name, ok
}

// parseTypeSpec parses one of the built-in type names.
func (p *Parser) parseTypeSpec() *ast.TypeSpec {
	if !p.current.Type.IsTypeName() {
		p.fail(ExpectedType)
	}

	spec := &ast.TypeSpec{BaseNode: ast.At(p.current.Line()), Kind: typeKinds[p.current.Type]}
	p.advance()
	return spec
}

func (p *Parser) parseVariable() *ast.VariableRef {
	node := &ast.VariableRef{BaseNode: ast.At(p.current.Line()), Name: p.current.Lexeme}
	p.eat(lexer.TokenIdentifier)
	return node
}

// ============================================================================
// BLOCKS AND STATEMENTS
// ============================================================================

// parseBlock parses a begin/end block. Each item may be followed by one
// optional ';'. A ';' that starts an item is an empty statement.
//
// block → 'begin' ( item ';'? )* 'end'
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{
		BaseNode: ast.At(p.current.Line()),
		Items:    make([]ast.Node, 0),
	}
	p.eat(lexer.TokenBegin)

	for !p.check(lexer.TokenEnd) {
		if p.check(lexer.TokenEOF) {
			p.fail(lexer.TokenEnd.String())
		}

		item := p.parseBlockItem()
		block.Items = append(block.Items, item)
		if _, empty := item.(*ast.NoOp); !empty {
			p.match(lexer.TokenSemicolon)
		}
	}

	p.eat(lexer.TokenEnd)
	return block
}

// parseBlockItem dispatches on the lookahead to a declaration, statement,
// empty statement or expression.
func (p *Parser) parseBlockItem() ast.Node {
	switch p.current.Type {
	case lexer.TokenSemicolon:
		node := &ast.NoOp{BaseNode: ast.At(p.current.Line())}
		p.advance()
		return node

	case lexer.TokenDef:
		return p.parseFunctionDecl()

	case lexer.TokenIf, lexer.TokenFor, lexer.TokenWhile,
		lexer.TokenReturn, lexer.TokenBreak, lexer.TokenContinue:
		return p.parseStatement()

	case lexer.TokenIdentifier:
		if name, ok := p.tryDeclarationName(); ok {
			return p.finishVarDecl(name)
		}
	}

	return p.parseExpression()
}

// parseStatement parses a statement introduced by a keyword.
func (p *Parser) parseStatement() ast.Node {
	line := p.current.Line()

	switch p.current.Type {
	case lexer.TokenIf:
		p.advance()
		return p.parseIfRest(line)

	case lexer.TokenWhile:
		return p.parseWhileStmt()

	case lexer.TokenFor:
		return p.parseForStmt()

	case lexer.TokenReturn:
		p.advance()
		stmt := &ast.ReturnStmt{BaseNode: ast.At(line)}
		if !p.check(lexer.TokenSemicolon) && !p.check(lexer.TokenEnd) {
			stmt.Value = p.parseExpression()
		}
		return stmt

	case lexer.TokenBreak:
		p.advance()
		return &ast.BreakStmt{BaseNode: ast.At(line)}

	case lexer.TokenContinue:
		p.advance()
		return &ast.ContinueStmt{BaseNode: ast.At(line)}
	}

	p.fail(ExpectedStatement)
	return nil
}

// parseIfRest parses an if statement after its 'if' or 'elif' keyword.
// The 'else' keyword is consumed before its block. An 'elif' becomes an
// else block holding the nested if statement.
//
// ifStmt → 'if' expression ':' block ( 'elif' expression ':' block )* ( 'else' block )?
func (p *Parser) parseIfRest(line int) *ast.IfStmt {
	stmt := &ast.IfStmt{BaseNode: ast.At(line)}
	stmt.Cond = p.parseExpression()
	p.eat(lexer.TokenColon)
	stmt.Then = p.parseBlock()

	elseLine := p.current.Line()
	switch {
	case p.match(lexer.TokenElif):
		stmt.Else = &ast.Block{
			BaseNode: ast.At(elseLine),
			Items:    []ast.Node{p.parseIfRest(elseLine)},
		}
	case p.match(lexer.TokenElse):
		stmt.Else = p.parseBlock()
	}
	return stmt
}

// whileStmt → 'while' expression ':' block
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	line := p.current.Line()
	p.eat(lexer.TokenWhile)
	cond := p.parseExpression()
	p.eat(lexer.TokenColon)
	return &ast.WhileStmt{
		BaseNode: ast.At(line),
		Cond:     cond,
		Body:     p.parseBlock(),
	}
}

// parseForStmt parses a for loop. The setup is a declaration when it starts
// with "ID :", otherwise an expression.
//
// forStmt → 'for' ( varDecl | expression ) ';' expression ';' expression block
func (p *Parser) parseForStmt() *ast.ForStmt {
	stmt := &ast.ForStmt{BaseNode: ast.At(p.current.Line())}
	p.eat(lexer.TokenFor)

	if name, ok := p.tryDeclarationName(); ok {
		stmt.Setup = p.finishVarDecl(name)
	} else {
		stmt.Setup = p.parseExpression()
	}
	p.eat(lexer.TokenSemicolon)

	stmt.Cond = p.parseExpression()
	p.eat(lexer.TokenSemicolon)

	stmt.Incr = p.parseExpression()
	stmt.Body = p.parseBlock()
	return stmt
}

// ============================================================================
// EXPRESSIONS
// ============================================================================

// parseExpression parses an expression.
//
// expression → 'not' expression
//            | '-' expression
//            | '(' expression ')' ( binop expression )?
//            | ID '=' expression
//            | atom ( binop expression )?
func (p *Parser) parseExpression() ast.Expr {
	line := p.current.Line()

	switch p.current.Type {
	case lexer.TokenNot:
		p.advance()
		return &ast.UnaryOp{BaseNode: ast.At(line), Op: ast.OpNot, Operand: p.parseExpression()}

	case lexer.TokenMinus:
		p.advance()
		return &ast.UnaryOp{BaseNode: ast.At(line), Op: ast.OpNeg, Operand: p.parseExpression()}

	case lexer.TokenLeftParen:
		p.advance()
		inner := p.parseExpression()
		p.eat(lexer.TokenRightParen)
		return p.parseBinaryTail(inner)

	case lexer.TokenIdentifier:
		name := p.current
		isAssignment := p.speculate(func() bool {
			p.eat(lexer.TokenIdentifier)
			return p.check(lexer.TokenAssign)
		})
		if isAssignment {
			p.eat(lexer.TokenAssign)
			return &ast.Assignment{
				BaseNode: ast.At(line),
				Target:   &ast.VariableRef{BaseNode: ast.At(line), Name: name.Lexeme},
				Op:       ast.OpAssign,
				Value:    p.parseExpression(),
			}
		}
	}

	return p.parseBinaryTail(p.parseAtom())
}

// parseBinaryTail builds a BinaryOp if an operator follows left. The right
// operand is the whole remaining expression.
func (p *Parser) parseBinaryTail(left ast.Expr) ast.Expr {
	if !p.current.Type.IsBinaryOperator() {
		return left
	}
	op := binaryOps[p.current.Type]
	p.advance()
	return &ast.BinaryOp{
		BaseNode: ast.At(left.Line()),
		Left:     left,
		Op:       op,
		Right:    p.parseExpression(),
	}
}

// parseAtom parses a literal, a function call or a variable reference.
func (p *Parser) parseAtom() ast.Expr {
	tok := p.current

	if tok.Type.IsLiteral() {
		p.advance()
		return literal(tok)
	}

	if tok.Type == lexer.TokenIdentifier {
		isCall := p.speculate(func() bool {
			p.eat(lexer.TokenIdentifier)
			return p.check(lexer.TokenLeftParen)
		})
		if isCall {
			return p.finishFunctionCall(tok)
		}
		return p.parseVariable()
	}

	p.fail(ExpectedExpression)
	return nil
}

// literal converts a literal token into its node.
func literal(tok lexer.Token) ast.Expr {
	base := ast.At(tok.Line())

	switch tok.Type {
	case lexer.TokenInteger:
		return &ast.NumberLiteral{BaseNode: base, Kind: ast.LitInt, Value: tok.Value}
	case lexer.TokenFloat:
		return &ast.NumberLiteral{BaseNode: base, Kind: ast.LitFloat, Value: tok.Value}
	case lexer.TokenChar:
		return &ast.NumberLiteral{BaseNode: base, Kind: ast.LitChar, Value: tok.Value}
	case lexer.TokenTrue, lexer.TokenFalse:
		return &ast.NumberLiteral{BaseNode: base, Kind: ast.LitBool, Value: tok.Type == lexer.TokenTrue}
	default:
		return &ast.StringLiteral{BaseNode: base, Text: tok.Lexeme}
	}
}

// finishFunctionCall parses the argument list of a call whose name has
// already been consumed.
//
// call → ID '(' ( expression ( ',' expression )* )? ')'
func (p *Parser) finishFunctionCall(name lexer.Token) *ast.FunctionCall {
	call := &ast.FunctionCall{
		BaseNode: ast.At(name.Line()),
		Name:     name.Lexeme,
		Args:     make([]ast.Expr, 0),
	}
	p.eat(lexer.TokenLeftParen)

	if !p.check(lexer.TokenRightParen) {
		for {
			call.Args = append(call.Args, p.parseExpression())
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}

	p.eat(lexer.TokenRightParen)
	return call
}

// ============================================================================
// TOKEN HELPERS
// ============================================================================

// advance moves to the next token. Lexical errors abort the parse.
func (p *Parser) advance() {
	token, err := p.lexer.NextToken()
	if err != nil {
		panic(bailout{err: err})
	}
	p.current = token
}

// check returns true if the lookahead has the given type.
func (p *Parser) check(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

// match consumes the lookahead if it has the given type.
func (p *Parser) match(tokenType lexer.TokenType) bool {
	if !p.check(tokenType) {
		return false
	}
	p.advance()
	return true
}

// eat consumes a token of the given type or aborts with a SyntaxError.
func (p *Parser) eat(tokenType lexer.TokenType) {
	if !p.check(tokenType) {
		p.fail(tokenType.String())
	}
	p.advance()
}

// fail aborts the parse with a SyntaxError at the lookahead token.
func (p *Parser) fail(expected string) {
	panic(bailout{err: &SyntaxError{
		Expected: expected,
		Found:    p.current,
		Line:     p.current.Line(),
	}})
}

func (p *Parser) save() checkpoint {
	return checkpoint{lexer: p.lexer.Checkpoint(), current: p.current}
}

func (p *Parser) restore(c checkpoint) {
	p.lexer.Restore(c.lexer)
	p.current = c.current
}

// speculate runs trial from a checkpoint. If trial reports a match, the
// tokens it consumed stay consumed. If it reports no match, or aborts with
// a lexical or syntax error, the checkpoint is restored and the error is
// discarded.
func (p *Parser) speculate(trial func() bool) (matched bool) {
	cp := p.save()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.restore(cp)
			matched = false
		}
	}()

	if trial() {
		return true
	}
	p.restore(cp)
	return false
}
