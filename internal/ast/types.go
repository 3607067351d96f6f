package ast

type NodeType int

const (
	ILLEGAL NodeType = iota
	PROGRAM

	// Expressions
	CONST_EXPR
	VAR_EXPR
	LIST_EXPR
	CALL_EXPR
	PREFIX_EXPR
	INFIX_EXPR

	// Statements
	DECLARE_STMT
	ASSIGN_STMT
	IF_STMT
	WHILE_STMT
	FUNCTION_STMT
	CALL_STMT
	RETURN_STMT
)

var nodeTypeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	PROGRAM:       "PROGRAM",
	CONST_EXPR:    "CONST_EXPR",
	VAR_EXPR:      "VAR_EXPR",
	LIST_EXPR:     "LIST_EXPR",
	CALL_EXPR:     "CALL_EXPR",
	PREFIX_EXPR:   "PREFIX_EXPR",
	INFIX_EXPR:    "INFIX_EXPR",
	DECLARE_STMT:  "DECLARE_STMT",
	ASSIGN_STMT:   "ASSIGN_STMT",
	IF_STMT:       "IF_STMT",
	WHILE_STMT:    "WHILE_STMT",
	FUNCTION_STMT: "FUNCTION_STMT",
	CALL_STMT:     "CALL_STMT",
	RETURN_STMT:   "RETURN_STMT",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "ILLEGAL"
	}
	return nodeTypeNames[t]
}

// Describe returns a short human-readable name for the node kind.
func (t NodeType) Describe() string {
	switch t {
	case PROGRAM:
		return "program"
	case CONST_EXPR:
		return "constant"
	case VAR_EXPR:
		return "variable"
	case LIST_EXPR:
		return "list"
	case CALL_EXPR:
		return "call"
	case PREFIX_EXPR:
		return "prefix operation"
	case INFIX_EXPR:
		return "infix operation"
	case DECLARE_STMT:
		return "declaration"
	case ASSIGN_STMT:
		return "assignment"
	case IF_STMT:
		return "if statement"
	case WHILE_STMT:
		return "while loop"
	case FUNCTION_STMT:
		return "function definition"
	case CALL_STMT:
		return "call statement"
	case RETURN_STMT:
		return "return statement"
	default:
		return "unknown"
	}
}

// Program is the statement sequence of a successfully parsed document.
type Program struct {
	Range      Range
	Statements []Stmt
}

// Ident is a name together with the range it was read from.
// Example: "a" in "var a = 3;"
type Ident struct {
	Range Range
	Value string
}

// Block is a statement list: a braced body or a single bare statement.
type Block struct {
	Range      Range
	Statements []Stmt
}

// ConstExpr is an integer literal.
// Example: "42"
type ConstExpr struct {
	Range Range
	Value int64
}

// VarExpr is a reference to a variable.
// Example: "a"
type VarExpr struct {
	Range Range
	Name  string
}

// ListExpr is a list literal.
// Example: "[1, a, f(b)]"
type ListExpr struct {
	Range Range
	Items []Expr
}

// CallExpr is a function call used as a value.
// Example: "max(a, 3)"
type CallExpr struct {
	Range Range
	Name  Ident
	Args  []Expr
}

// PrefixExpr applies a prefix operator; only logical not is produced.
// Example: "!done"
type PrefixExpr struct {
	Range   Range
	Op      string
	Operand Expr
}

// InfixExpr is reserved for arithmetic operators. The grammar does not
// produce it yet.
type InfixExpr struct {
	Range Range
	Left  Expr
	Op    string
	Right Expr
}

// DeclareStmt introduces a variable.
// Example: "var a = 3;"
type DeclareStmt struct {
	Range Range
	Name  Ident
	Init  Expr
}

// AssignStmt assigns to an existing variable.
// Example: "a = 4;"
type AssignStmt struct {
	Range Range
	Name  Ident
	Value Expr
}

// IfStmt is a conditional with an optional else branch.
// Example: "if (a) { print(a); } else { print(b); }"
type IfStmt struct {
	Range Range
	Cond  Expr
	Then  Block
	Else  *Block
}

// WhileStmt is a loop.
// Example: "while (running) { step(); }"
type WhileStmt struct {
	Range Range
	Cond  Expr
	Body  Block
}

// FunctionStmt defines a named function.
// Example: "function add(a, b) { return sum(a, b); }"
type FunctionStmt struct {
	Range  Range
	Name   Ident
	Params []Ident
	Body   Block
}

// CallStmt is a call used as a statement.
// Example: "print(a);"
type CallStmt struct {
	Range Range
	Name  Ident
	Args  []Expr
}

// ReturnStmt returns a value from a function.
// Example: "return a;"
type ReturnStmt struct {
	Range Range
	Value Expr
}
