package ast

// Range is a half-open [Start, End) span of byte offsets into the text the
// tree was parsed from.
type Range struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

// Covers reports whether other lies entirely within r.
func (r Range) Covers(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Overlaps reports whether the two ranges share at least one offset.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r Range) Len() int {
	return r.End - r.Start
}

type Node interface {
	NodeRange() Range
	NodeType() NodeType
	String() string
}

// Expr is implemented by the closed set of expression nodes.
type Expr interface {
	Node
	isExpr()
}

// Stmt is implemented by the closed set of statement nodes.
type Stmt interface {
	Node
	isStmt()
}

func (p *Program) NodeRange() Range { return p.Range }
func (*Program) NodeType() NodeType { return PROGRAM }

func (e *ConstExpr) NodeRange() Range { return e.Range }
func (*ConstExpr) NodeType() NodeType { return CONST_EXPR }

func (e *VarExpr) NodeRange() Range { return e.Range }
func (*VarExpr) NodeType() NodeType { return VAR_EXPR }

func (e *ListExpr) NodeRange() Range { return e.Range }
func (*ListExpr) NodeType() NodeType { return LIST_EXPR }

func (e *CallExpr) NodeRange() Range { return e.Range }
func (*CallExpr) NodeType() NodeType { return CALL_EXPR }

func (e *PrefixExpr) NodeRange() Range { return e.Range }
func (*PrefixExpr) NodeType() NodeType { return PREFIX_EXPR }

func (e *InfixExpr) NodeRange() Range { return e.Range }
func (*InfixExpr) NodeType() NodeType { return INFIX_EXPR }

func (s *DeclareStmt) NodeRange() Range { return s.Range }
func (*DeclareStmt) NodeType() NodeType { return DECLARE_STMT }

func (s *AssignStmt) NodeRange() Range { return s.Range }
func (*AssignStmt) NodeType() NodeType { return ASSIGN_STMT }

func (s *IfStmt) NodeRange() Range { return s.Range }
func (*IfStmt) NodeType() NodeType { return IF_STMT }

func (s *WhileStmt) NodeRange() Range { return s.Range }
func (*WhileStmt) NodeType() NodeType { return WHILE_STMT }

func (s *FunctionStmt) NodeRange() Range { return s.Range }
func (*FunctionStmt) NodeType() NodeType { return FUNCTION_STMT }

func (s *CallStmt) NodeRange() Range { return s.Range }
func (*CallStmt) NodeType() NodeType { return CALL_STMT }

func (s *ReturnStmt) NodeRange() Range { return s.Range }
func (*ReturnStmt) NodeType() NodeType { return RETURN_STMT }

func (*ConstExpr) isExpr() {}
func (*VarExpr) isExpr() {}
func (*ListExpr) isExpr() {}
func (*CallExpr) isExpr() {}
func (*PrefixExpr) isExpr() {}
func (*InfixExpr) isExpr() {}

func (*DeclareStmt) isStmt() {}
func (*AssignStmt) isStmt() {}
func (*IfStmt) isStmt() {}
func (*WhileStmt) isStmt() {}
func (*FunctionStmt) isStmt() {}
func (*CallStmt) isStmt() {}
func (*ReturnStmt) isStmt() {}
