// Package grammar is the declarative reference grammar of leek. The
// hand-written parser in internal/parser is what the tools use; this one
// documents the language (leek grammar prints it as EBNF) and serves as an
// oracle for the parser tests.
package grammar

type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Declare  *Declare  `  @@`
	Function *Function `| @@`
	Return   *Return   `| @@`
	While    *While    `| @@`
	If       *If       `| @@`
	Assign   *Assign   `| @@`
	Call     *Call     `| @@ ";"`
}

type Declare struct {
	Name string `"var" @Ident "="`
	Init *Expr  `@@ ";"`
}

type Function struct {
	Name   string   `"function" @Ident "("`
	Params []string `(@Ident ("," @Ident)*)? ")"`
	Body   *Block   `@@`
}

type Return struct {
	Value *Expr `"return" @@ ";"`
}

type While struct {
	Cond *Expr  `"while" "(" @@ ")"`
	Body *Block `@@`
}

type If struct {
	Cond *Expr  `"if" "(" @@ ")"`
	Then *Block `@@`
	Else *Block `("else" @@)?`
}

type Assign struct {
	Name  string `@Ident "="`
	Value *Expr  `@@ ";"`
}

// Block is either a braced statement list or a single statement.
type Block struct {
	Braced     bool         `( @"{"`
	Statements []*Statement `  @@* "}" )`
	Single     *Statement   `| @@`
}

type Expr struct {
	Not   *Expr   `  "!" @@`
	List  *List   `| @@`
	Const *string `| @Int`
	Call  *Call   `| @@`
	Var   *string `| @Ident`
}

type List struct {
	Open  bool    `@"["`
	Items []*Expr `(@@ ("," @@)*)? "]"`
}

type Call struct {
	Name string  `@Ident "("`
	Args []*Expr `(@@ ("," @@)*)? ")"`
}
