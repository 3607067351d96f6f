package ast

// Declaration records a variable introduced by a declare statement.
type Declaration struct {
	Name  string
	Range Range // the name
	Site  Range // the whole statement
}

// PathAt returns the chain of nodes whose ranges contain offset, outermost
// first. Sub-expressions are tried before nested statement lists, and the
// first matching child in source order wins. The result is empty when no
// top-level statement contains offset.
func PathAt(prog *Program, offset int) []Node {
	if prog == nil {
		return nil
	}

	var path []Node
	candidates := Children(prog)
	for {
		var next Node
		for _, c := range candidates {
			if c.NodeRange().Contains(offset) {
				next = c
				break
			}
		}
		if next == nil {
			return path
		}
		path = append(path, next)
		candidates = Children(next)
	}
}

// NodeAt returns the innermost node whose range contains offset.
func NodeAt(prog *Program, offset int) (Node, bool) {
	path := PathAt(prog, offset)
	if len(path) == 0 {
		return nil, false
	}
	return path[len(path)-1], true
}

// Declarations lists every declare statement in source order, including those
// nested in if, while and function bodies.
func Declarations(prog *Program) []Declaration {
	if prog == nil {
		return nil
	}
	var out []Declaration
	collectDeclarations(prog.Statements, &out)
	return out
}

func collectDeclarations(stmts []Stmt, out *[]Declaration) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *DeclareStmt:
			*out = append(*out, Declaration{Name: s.Name.Value, Range: s.Name.Range, Site: s.Range})
		case *IfStmt:
			collectDeclarations(s.Then.Statements, out)
			if s.Else != nil {
				collectDeclarations(s.Else.Statements, out)
			}
		case *WhileStmt:
			collectDeclarations(s.Body.Statements, out)
		case *FunctionStmt:
			collectDeclarations(s.Body.Statements, out)
		}
	}
}

// Functions lists every function definition in source order.
func Functions(prog *Program) []*FunctionStmt {
	var out []*FunctionStmt
	if prog == nil {
		return out
	}
	Inspect(prog, func(n Node) bool {
		if fn, ok := n.(*FunctionStmt); ok {
			out = append(out, fn)
		}
		return true
	})
	return out
}

// IdentAt returns the name under offset, if any: a variable reference, the
// callee of a call, or the name part of a declaration, assignment, function
// or parameter.
func IdentAt(prog *Program, offset int) (Ident, bool) {
	node, ok := NodeAt(prog, offset)
	if !ok {
		return Ident{}, false
	}

	switch n := node.(type) {
	case *VarExpr:
		return Ident{Range: n.Range, Value: n.Name}, true
	case *CallExpr:
		if n.Name.Range.Contains(offset) {
			return n.Name, true
		}
	case *CallStmt:
		if n.Name.Range.Contains(offset) {
			return n.Name, true
		}
	case *DeclareStmt:
		if n.Name.Range.Contains(offset) {
			return n.Name, true
		}
	case *AssignStmt:
		if n.Name.Range.Contains(offset) {
			return n.Name, true
		}
	case *FunctionStmt:
		if n.Name.Range.Contains(offset) {
			return n.Name, true
		}
		for _, p := range n.Params {
			if p.Range.Contains(offset) {
				return p, true
			}
		}
	}
	return Ident{}, false
}

// Resolve finds the definition of the name under offset. Calls resolve to
// function definitions; other names resolve to the nearest enclosing
// parameter, else the last declaration that starts before the use, else the
// first declaration of that name anywhere.
func Resolve(prog *Program, offset int) (Ident, bool) {
	id, ok := IdentAt(prog, offset)
	if !ok {
		return Ident{}, false
	}

	path := PathAt(prog, offset)
	if isCallee(path, offset) {
		for _, fn := range Functions(prog) {
			if fn.Name.Value == id.Value {
				return fn.Name, true
			}
		}
		return Ident{}, false
	}

	for i := len(path) - 1; i >= 0; i-- {
		fn, ok := path[i].(*FunctionStmt)
		if !ok {
			continue
		}
		for _, p := range fn.Params {
			if p.Value == id.Value {
				return p, true
			}
		}
	}

	var best *Declaration
	decls := Declarations(prog)
	for i := range decls {
		d := &decls[i]
		if d.Name != id.Value {
			continue
		}
		if d.Site.Start <= offset {
			best = d
		} else if best == nil {
			best = d
			break
		}
	}
	if best == nil {
		return Ident{}, false
	}
	return Ident{Range: best.Range, Value: best.Name}, true
}

func isCallee(path []Node, offset int) bool {
	if len(path) == 0 {
		return false
	}
	switch n := path[len(path)-1].(type) {
	case *CallExpr:
		return n.Name.Range.Contains(offset)
	case *CallStmt:
		return n.Name.Range.Contains(offset)
	case *FunctionStmt:
		return n.Name.Range.Contains(offset)
	}
	return false
}
