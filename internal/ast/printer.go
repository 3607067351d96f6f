package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, stmt := range p.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}

	return b.String()
}

func (i Ident) String() string {
	return i.Value
}

func (bl Block) String() string {
	if len(bl.Statements) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range bl.Statements {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (e *ConstExpr) String() string {
	return fmt.Sprintf("%d", e.Value)
}

func (e *VarExpr) String() string {
	return e.Name
}

func (e *ListExpr) String() string {
	return "[" + joinExprs(e.Items) + "]"
}

func (e *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Name.Value, joinExprs(e.Args))
}

func (e *PrefixExpr) String() string {
	return e.Op + e.Operand.String()
}

func (e *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (s *DeclareStmt) String() string {
	return fmt.Sprintf("var %s = %s;", s.Name.Value, s.Init)
}

func (s *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", s.Name.Value, s.Value)
}

func (s *IfStmt) String() string {
	out := fmt.Sprintf("if (%s) %s", s.Cond, s.Then)
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

func (s *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", s.Cond, s.Body)
}

func (s *FunctionStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Value
	}
	return fmt.Sprintf("function %s(%s) %s", s.Name.Value, strings.Join(params, ", "), s.Body)
}

func (s *CallStmt) String() string {
	return fmt.Sprintf("%s(%s);", s.Name.Value, joinExprs(s.Args))
}

func (s *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", s.Value)
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
