package ast

// IfStmt is "if cond : block [else block]". Else is nil when absent.
// An elif chain is represented as an Else block holding a single IfStmt.
type IfStmt struct {
	BaseNode
	Cond Expr
	Then *Block
	Else *Block
}

func (n *IfStmt) Accept(v Visitor) error { return v.VisitIfStmt(n) }

// WhileStmt is "while cond : block".
type WhileStmt struct {
	BaseNode
	Cond Expr
	Body *Block
}

func (n *WhileStmt) Accept(v Visitor) error { return v.VisitWhileStmt(n) }

// ForStmt is "for setup ; cond ; incr block".
// Setup is either a *VarDecl or an Expr.
type ForStmt struct {
	BaseNode
	Setup Node
	Cond  Expr
	Incr  Expr
	Body  *Block
}

func (n *ForStmt) Accept(v Visitor) error { return v.VisitForStmt(n) }

// ReturnStmt returns Value, which is nil for a bare return.
type ReturnStmt struct {
	BaseNode
	Value Expr
}

func (n *ReturnStmt) Accept(v Visitor) error { return v.VisitReturnStmt(n) }

type BreakStmt struct {
	BaseNode
}

func (n *BreakStmt) Accept(v Visitor) error { return v.VisitBreakStmt(n) }

type ContinueStmt struct {
	BaseNode
}

func (n *ContinueStmt) Accept(v Visitor) error { return v.VisitContinueStmt(n) }

// Block is "begin ... end". Items holds declarations, statements and
// expressions in source order.
type Block struct {
	BaseNode
	Items []Node
}

func (n *Block) Accept(v Visitor) error { return v.VisitBlock(n) }

// VarDecl is "name : type [= init]". Init is nil when absent.
type VarDecl struct {
	BaseNode
	Var  *VariableRef
	Type *TypeSpec
	Init Expr
}

func (n *VarDecl) declNode()              {}
func (n *VarDecl) Accept(v Visitor) error { return v.VisitVarDecl(n) }

// Param is one entry of a function's parameter list.
type Param struct {
	BaseNode
	Type *TypeSpec
	Var  *VariableRef
}

func (n *Param) Accept(v Visitor) error { return v.VisitParam(n) }

// FunctionDecl is "def name ( params ) -> type block".
type FunctionDecl struct {
	BaseNode
	Name       string
	Params     []*Param
	ReturnType *TypeSpec
	Body       *Block
}

func (n *FunctionDecl) declNode()              {}
func (n *FunctionDecl) Accept(v Visitor) error { return v.VisitFunctionDecl(n) }

// Program is the root of every tree.
type Program struct {
	BaseNode
	Decls []Decl
}

func (n *Program) Accept(v Visitor) error { return v.VisitProgram(n) }
