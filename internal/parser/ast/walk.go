package ast

// Inspector is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Inspector func(node Node) bool

// Walk traverses a tree in depth-first order, visiting children in source
// order. Nil children (absent else block, initializer, return value) are
// skipped.
func Walk(node Node, f Inspector) {
	if isNil(node) || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(d, f)
		}

	case *FunctionDecl:
		for _, p := range n.Params {
			Walk(p, f)
		}
		Walk(n.ReturnType, f)
		Walk(n.Body, f)

	case *Param:
		Walk(n.Type, f)
		Walk(n.Var, f)

	case *VarDecl:
		Walk(n.Var, f)
		Walk(n.Type, f)
		Walk(n.Init, f)

	case *Block:
		for _, item := range n.Items {
			Walk(item, f)
		}

	case *IfStmt:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		Walk(n.Else, f)

	case *WhileStmt:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *ForStmt:
		Walk(n.Setup, f)
		Walk(n.Cond, f)
		Walk(n.Incr, f)
		Walk(n.Body, f)

	case *ReturnStmt:
		Walk(n.Value, f)

	case *BinaryOp:
		Walk(n.Left, f)
		Walk(n.Right, f)

	case *UnaryOp:
		Walk(n.Operand, f)

	case *Assignment:
		Walk(n.Target, f)
		Walk(n.Value, f)

	case *FunctionCall:
		for _, arg := range n.Args {
			Walk(arg, f)
		}

	case *NoOp, *NumberLiteral, *StringLiteral, *TypeSpec, *VariableRef,
		*BreakStmt, *ContinueStmt:
		// leaves
	}
}

// isNil reports whether node is nil or a typed nil pointer stored in the
// interface, as happens for an absent *Block or *TypeSpec.
func isNil(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *Block:
		return n == nil
	case *TypeSpec:
		return n == nil
	case *VariableRef:
		return n == nil
	case *Param:
		return n == nil
	}
	return false
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	count := 0
	Walk(node, func(Node) bool {
		count++
		return true
	})
	return count
}
