package ast

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToMap(node))
}

// FprintYAML writes a YAML representation of the tree to w.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToMap(node)); err != nil {
		return err
	}
	return enc.Close()
}

// ToMap converts a tree into nested maps and slices keyed by field name.
// Every map carries "node" (the variant name) and "line".
func ToMap(node Node) map[string]interface{} {
	if isNil(node) {
		return nil
	}

	m := map[string]interface{}{"line": node.Line()}

	switch n := node.(type) {
	case *Program:
		m["node"] = "Program"
		decls := make([]interface{}, 0, len(n.Decls))
		for _, d := range n.Decls {
			decls = append(decls, ToMap(d))
		}
		m["declarations"] = decls

	case *FunctionDecl:
		m["node"] = "FunctionDecl"
		m["name"] = n.Name
		params := make([]interface{}, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, ToMap(p))
		}
		m["params"] = params
		m["return_type"] = n.ReturnType.Kind.String()
		m["body"] = ToMap(n.Body)

	case *Param:
		m["node"] = "Param"
		m["name"] = n.Var.Name
		m["type"] = n.Type.Kind.String()

	case *VarDecl:
		m["node"] = "VarDecl"
		m["name"] = n.Var.Name
		m["type"] = n.Type.Kind.String()
		if n.Init != nil {
			m["init"] = ToMap(n.Init)
		}

	case *Block:
		m["node"] = "Block"
		items := make([]interface{}, 0, len(n.Items))
		for _, item := range n.Items {
			items = append(items, ToMap(item))
		}
		m["items"] = items

	case *IfStmt:
		m["node"] = "IfStmt"
		m["cond"] = ToMap(n.Cond)
		m["then"] = ToMap(n.Then)
		if n.Else != nil {
			m["else"] = ToMap(n.Else)
		}

	case *WhileStmt:
		m["node"] = "WhileStmt"
		m["cond"] = ToMap(n.Cond)
		m["body"] = ToMap(n.Body)

	case *ForStmt:
		m["node"] = "ForStmt"
		m["setup"] = ToMap(n.Setup)
		m["cond"] = ToMap(n.Cond)
		m["incr"] = ToMap(n.Incr)
		m["body"] = ToMap(n.Body)

	case *ReturnStmt:
		m["node"] = "ReturnStmt"
		if n.Value != nil {
			m["value"] = ToMap(n.Value)
		}

	case *BreakStmt:
		m["node"] = "BreakStmt"

	case *ContinueStmt:
		m["node"] = "ContinueStmt"

	case *NoOp:
		m["node"] = "NoOp"

	case *BinaryOp:
		m["node"] = "BinaryOp"
		m["op"] = n.Op.String()
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)

	case *UnaryOp:
		m["node"] = "UnaryOp"
		m["op"] = n.Op.String()
		m["operand"] = ToMap(n.Operand)

	case *Assignment:
		m["node"] = "Assignment"
		m["target"] = n.Target.Name
		m["op"] = n.Op.String()
		m["value"] = ToMap(n.Value)

	case *FunctionCall:
		m["node"] = "FunctionCall"
		m["name"] = n.Name
		args := make([]interface{}, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, ToMap(arg))
		}
		m["args"] = args

	case *NumberLiteral:
		m["node"] = "NumberLiteral"
		m["kind"] = n.Kind.String()
		if n.Kind == LitChar {
			code := n.Value.(rune)
			m["value"] = string(code)
			m["code"] = int(code)
		} else {
			m["value"] = n.Value
		}

	case *StringLiteral:
		m["node"] = "StringLiteral"
		m["text"] = n.Text

	case *VariableRef:
		m["node"] = "VariableRef"
		m["name"] = n.Name

	case *TypeSpec:
		m["node"] = "TypeSpec"
		m["kind"] = n.Kind.String()
	}

	return m
}
