package ast

import (
	"fmt"
	"io"
	"strings"
)

// Children returns the direct child nodes of n in source order. Conditions
// and operands come before nested statement lists.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return stmtNodes(n.Statements)
	case *ConstExpr, *VarExpr:
		return nil
	case *ListExpr:
		return exprNodes(n.Items)
	case *CallExpr:
		return exprNodes(n.Args)
	case *PrefixExpr:
		return []Node{n.Operand}
	case *InfixExpr:
		return []Node{n.Left, n.Right}
	case *DeclareStmt:
		return []Node{n.Init}
	case *AssignStmt:
		return []Node{n.Value}
	case *IfStmt:
		out := []Node{n.Cond}
		out = append(out, stmtNodes(n.Then.Statements)...)
		if n.Else != nil {
			out = append(out, stmtNodes(n.Else.Statements)...)
		}
		return out
	case *WhileStmt:
		return append([]Node{n.Cond}, stmtNodes(n.Body.Statements)...)
	case *FunctionStmt:
		return stmtNodes(n.Body.Statements)
	case *CallStmt:
		return exprNodes(n.Args)
	case *ReturnStmt:
		return []Node{n.Value}
	default:
		return nil
	}
}

// Inspect traverses the tree depth-first in source order. If f returns false
// the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// Fdump writes an indented outline of the tree, one node per line. The
// optional pos callback renders node ranges, e.g. as line:column.
func Fdump(w io.Writer, n Node, pos func(Range) string) error {
	return dump(w, n, pos, 0)
}

func dump(w io.Writer, n Node, pos func(Range) string, depth int) error {
	label := n.NodeType().String()
	r := n.NodeRange()
	where := fmt.Sprintf("%d..%d", r.Start, r.End)
	if pos != nil {
		where = pos(r)
	}

	detail := ""
	switch n := n.(type) {
	case *ConstExpr:
		detail = fmt.Sprintf(" %d", n.Value)
	case *VarExpr:
		detail = " " + n.Name
	case *CallExpr:
		detail = " " + n.Name.Value
	case *PrefixExpr:
		detail = " " + n.Op
	case *InfixExpr:
		detail = " " + n.Op
	case *DeclareStmt:
		detail = " " + n.Name.Value
	case *AssignStmt:
		detail = " " + n.Name.Value
	case *FunctionStmt:
		detail = " " + n.Name.Value
	case *CallStmt:
		detail = " " + n.Name.Value
	}

	if _, err := fmt.Fprintf(w, "%s%s%s [%s]\n", strings.Repeat("  ", depth), label, detail, where); err != nil {
		return err
	}
	for _, child := range Children(n) {
		if err := dump(w, child, pos, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func stmtNodes(stmts []Stmt) []Node {
	out := make([]Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func exprNodes(exprs []Expr) []Node {
	out := make([]Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}
