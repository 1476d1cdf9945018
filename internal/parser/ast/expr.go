package ast

// NoOp is an empty statement, produced for a lone ';' inside a block.
type NoOp struct {
	BaseNode
}

func (n *NoOp) Accept(v Visitor) error { return v.VisitNoOp(n) }

// NumberLiteral is an integer, float, character or boolean constant.
type NumberLiteral struct {
	BaseNode
	Kind  LiteralKind
	Value interface{}
}

func (n *NumberLiteral) exprNode()              {}
func (n *NumberLiteral) Accept(v Visitor) error { return v.VisitNumberLiteral(n) }

// StringLiteral is a double quoted string. Text holds the raw characters
// between the quotes.
type StringLiteral struct {
	BaseNode
	Text string
}

func (n *StringLiteral) exprNode()              {}
func (n *StringLiteral) Accept(v Visitor) error { return v.VisitStringLiteral(n) }

// TypeSpec names one of the built-in types.
type TypeSpec struct {
	BaseNode
	Kind TypeKind
}

func (n *TypeSpec) Accept(v Visitor) error { return v.VisitTypeSpec(n) }

// VariableRef is a use of a name.
type VariableRef struct {
	BaseNode
	Name string
}

func (n *VariableRef) exprNode()              {}
func (n *VariableRef) Accept(v Visitor) error { return v.VisitVariableRef(n) }

// BinaryOp joins two operands. Chains group to the right:
// a + b * c is BinaryOp(a, +, BinaryOp(b, *, c)).
type BinaryOp struct {
	BaseNode
	Left  Expr
	Op    Operator
	Right Expr
}

func (n *BinaryOp) exprNode()              {}
func (n *BinaryOp) Accept(v Visitor) error { return v.VisitBinaryOp(n) }

// UnaryOp applies OpNot or OpNeg to the rest of the expression.
type UnaryOp struct {
	BaseNode
	Op      Operator
	Operand Expr
}

func (n *UnaryOp) exprNode()              {}
func (n *UnaryOp) Accept(v Visitor) error { return v.VisitUnaryOp(n) }

// Assignment stores Value into Target. Op is always OpAssign.
type Assignment struct {
	BaseNode
	Target *VariableRef
	Op     Operator
	Value  Expr
}

func (n *Assignment) exprNode()              {}
func (n *Assignment) Accept(v Visitor) error { return v.VisitAssignment(n) }

// FunctionCall invokes Name with Args in source order.
type FunctionCall struct {
	BaseNode
	Name string
	Args []Expr
}

func (n *FunctionCall) exprNode()              {}
func (n *FunctionCall) Accept(v Visitor) error { return v.VisitFunctionCall(n) }
