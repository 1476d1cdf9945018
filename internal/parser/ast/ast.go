// Package ast defines the Abstract Syntax Tree produced by the parser.
//
// The node set is closed: every node type lives in this package and carries
// an unexported marker method, so a type switch over Node can list every
// variant. Each node records the source line it originated from.
//
// Trees are built once by the parser and handed to the caller; nothing in
// this package mutates a node after construction. Every node is owned by
// exactly one parent, and Program is the root.
package ast

// Node is the base interface for all AST nodes.
type Node interface {
	// Line returns the source line (1-based) the node originates from.
	Line() int

	// Accept dispatches to the matching Visit method of v.
	Accept(v Visitor) error

	node()
}

// Expr is the interface for nodes that produce a value:
// literals, variable references, operators, assignments and calls.
type Expr interface {
	Node
	exprNode()
}

// Decl is the interface for nodes allowed at the top level of a Program.
// Only *VarDecl and *FunctionDecl implement it.
type Decl interface {
	Node
	declNode()
}

// Visitor has one method per node variant. Adding a variant to the package
// breaks every Visitor implementation until it handles the new node.
type Visitor interface {
	VisitNoOp(n *NoOp) error
	VisitNumberLiteral(n *NumberLiteral) error
	VisitStringLiteral(n *StringLiteral) error
	VisitTypeSpec(n *TypeSpec) error
	VisitVariableRef(n *VariableRef) error
	VisitBinaryOp(n *BinaryOp) error
	VisitUnaryOp(n *UnaryOp) error
	VisitAssignment(n *Assignment) error
	VisitFunctionCall(n *FunctionCall) error

	VisitIfStmt(n *IfStmt) error
	VisitWhileStmt(n *WhileStmt) error
	VisitForStmt(n *ForStmt) error
	VisitReturnStmt(n *ReturnStmt) error
	VisitBreakStmt(n *BreakStmt) error
	VisitContinueStmt(n *ContinueStmt) error
	VisitBlock(n *Block) error

	VisitVarDecl(n *VarDecl) error
	VisitParam(n *Param) error
	VisitFunctionDecl(n *FunctionDecl) error
	VisitProgram(n *Program) error
}

// BaseNode holds the source line shared by every node.
type BaseNode struct {
	SourceLine int
}

// Line returns the source line of the node.
func (b BaseNode) Line() int { return b.SourceLine }

func (BaseNode) node() {}

// At returns a BaseNode for the given line.
func At(line int) BaseNode { return BaseNode{SourceLine: line} }

// Operator is the fixed set of operators that can appear in BinaryOp,
// UnaryOp and Assignment nodes.
type Operator int

const (
	OpAdd Operator = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpMod                 // %
	OpPow                 // **

	OpLess         // <
	OpLessEqual    // <=
	OpGreater      // >
	OpGreaterEqual // >=
	OpEqual        // ==
	OpNotEqual     // !=

	OpAnd // and
	OpOr  // or

	// Unary operators
	OpNot // not
	OpNeg // prefix -

	OpAssign // =
)

var operatorSymbols = [...]string{
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpMod:          "%",
	OpPow:          "**",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpAnd:          "and",
	OpOr:           "or",
	OpNot:          "not",
	OpNeg:          "-",
	OpAssign:       "=",
}

// String returns the operator as written in source.
func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}
	return "?"
}

// TypeKind is one of the built-in types.
type TypeKind int

const (
	TypeChar TypeKind = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeVoid
)

func (k TypeKind) String() string {
	switch k {
	case TypeChar:
		return "char"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// LiteralKind distinguishes the payloads of a NumberLiteral.
type LiteralKind int

const (
	LitInt   LiteralKind = iota // Value is int64
	LitFloat                    // Value is float64
	LitChar                     // Value is rune (the character code)
	LitBool                     // Value is bool
)

func (k LiteralKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitChar:
		return "char"
	case LitBool:
		return "bool"
	default:
		return "unknown"
	}
}
