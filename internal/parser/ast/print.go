package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented textual representation of the tree to w.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	return p.print(node)
}

// printer is a Visitor that writes one line per node.
type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) error {
	if isNil(node) {
		return p.err
	}
	if err := node.Accept(p); err != nil {
		return err
	}
	return p.err
}

// child prints node one level deeper under a label line.
func (p *printer) child(label string, node Node) error {
	p.printf("%s:", label)
	p.indent++
	defer func() { p.indent-- }()
	if isNil(node) {
		p.printf("<none>")
		return p.err
	}
	return p.print(node)
}

func (p *printer) VisitNoOp(n *NoOp) error {
	p.printf("NoOp line %d", n.Line())
	return p.err
}

func (p *printer) VisitNumberLiteral(n *NumberLiteral) error {
	p.printf("NumberLiteral %s line %d", formatLiteral(n), n.Line())
	return p.err
}

func (p *printer) VisitStringLiteral(n *StringLiteral) error {
	p.printf("StringLiteral %q line %d", n.Text, n.Line())
	return p.err
}

func (p *printer) VisitTypeSpec(n *TypeSpec) error {
	p.printf("TypeSpec %s line %d", n.Kind, n.Line())
	return p.err
}

func (p *printer) VisitVariableRef(n *VariableRef) error {
	p.printf("VariableRef %s line %d", n.Name, n.Line())
	return p.err
}

func (p *printer) VisitBinaryOp(n *BinaryOp) error {
	p.printf("BinaryOp %s line %d", n.Op, n.Line())
	p.indent++
	defer func() { p.indent-- }()
	if err := p.print(n.Left); err != nil {
		return err
	}
	return p.print(n.Right)
}

func (p *printer) VisitUnaryOp(n *UnaryOp) error {
	p.printf("UnaryOp %s line %d", n.Op, n.Line())
	p.indent++
	defer func() { p.indent-- }()
	return p.print(n.Operand)
}

func (p *printer) VisitAssignment(n *Assignment) error {
	p.printf("Assignment %s %s line %d", n.Target.Name, n.Op, n.Line())
	p.indent++
	defer func() { p.indent-- }()
	return p.print(n.Value)
}

func (p *printer) VisitFunctionCall(n *FunctionCall) error {
	p.printf("FunctionCall %s line %d", n.Name, n.Line())
	p.indent++
	defer func() { p.indent-- }()
	for _, arg := range n.Args {
		if err := p.print(arg); err != nil {
			return err
		}
	}
	return p.err
}

func (p *printer) VisitIfStmt(n *IfStmt) error {
	p.printf("IfStmt line %d", n.Line())
	p.indent++
	defer func() { p.indent-- }()
	if err := p.child("Cond", n.Cond); err != nil {
		return err
	}
	if err := p.child("Then", n.Then); err != nil {
		return err
	}
	if n.Else != nil {
		return p.child("Else", n.Else)
	}
	return p.err
}

func (p *printer) VisitWhileStmt(n *WhileStmt) error {
	p.printf("WhileStmt line %d", n.Line())
	p.indent++
	defer func() { p.indent-- }()
	if err := p.child("Cond", n.Cond); err != nil {
		return err
	}
	return p.child("Body", n.Body)
}

func (p *printer) VisitForStmt(n *ForStmt) error {
	p.printf("ForStmt line %d", n.Line())
	p.indent++
	defer func() { p.indent-- }()
	if err := p.child("Setup", n.Setup); err != nil {
		return err
	}
	if err := p.child("Cond", n.Cond); err != nil {
		return err
	}
	if err := p.child("Incr", n.Incr); err != nil {
		return err
	}
	return p.child("Body", n.Body)
}

func (p *printer) VisitReturnStmt(n *ReturnStmt) error {
	p.printf("ReturnStmt line %d", n.Line())
	p.indent++
	defer func() { p.indent-- }()
	return p.print(n.Value)
}

func (p *printer) VisitBreakStmt(n *BreakStmt) error {
	p.printf("BreakStmt line %d", n.Line())
	return p.err
}

func (p *printer) VisitContinueStmt(n *ContinueStmt) error {
	p.printf("ContinueStmt line %d", n.Line())
	return p.err
}

func (p *printer) VisitBlock(n *Block) error {
	p.printf("Block line %d", n.Line())
	p.indent++
	defer func() { p.indent-- }()
	for _, item := range n.Items {
		if err := p.print(item); err != nil {
			return err
		}
	}
	return p.err
}

func (p *printer) VisitVarDecl(n *VarDecl) error {
	p.printf("VarDecl %s %s line %d", n.Var.Name, n.Type.Kind, n.Line())
	if n.Init == nil {
		return p.err
	}
	p.indent++
	defer func() { p.indent-- }()
	return p.print(n.Init)
}

func (p *printer) VisitParam(n *Param) error {
	p.printf("Param %s %s line %d", n.Var.Name, n.Type.Kind, n.Line())
	return p.err
}

func (p *printer) VisitFunctionDecl(n *FunctionDecl) error {
	p.printf("FunctionDecl %s -> %s line %d", n.Name, n.ReturnType.Kind, n.Line())
	p.indent++
	defer func() { p.indent-- }()
	for _, param := range n.Params {
		if err := p.print(param); err != nil {
			return err
		}
	}
	return p.print(n.Body)
}

func (p *printer) VisitProgram(n *Program) error {
	p.printf("Program")
	p.indent++
	defer func() { p.indent-- }()
	for _, d := range n.Decls {
		if err := p.print(d); err != nil {
			return err
		}
	}
	return p.err
}

// formatLiteral renders a literal value the way it is written in source.
func formatLiteral(n *NumberLiteral) string {
	switch v := n.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case rune:
		return strconv.QuoteRune(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(v)
	}
}
