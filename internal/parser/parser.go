package parser

import (
	"fmt"
	"os"

	"leek/internal/ast"
)

// Parser is a backtracking recursive-descent parser over a token slice.
// Alternatives are tried in order; the first that succeeds wins. When the
// whole parse fails the error points at the farthest token any rule reached.
type Parser struct {
	source  string
	tokens  []Token
	current int

	farthest int
	expected []string
	fatal    *ParseError
}

func NewParser(source string, tokens []Token) *Parser {
	significant := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != COMMENT {
			significant = append(significant, tok)
		}
	}
	if len(significant) == 0 || significant[len(significant)-1].Type != EOF {
		significant = append(significant, Token{Type: EOF, Offset: len(source)})
	}
	return &Parser{source: source, tokens: significant, farthest: -1}
}

// Parse parses a complete document.
func Parse(source string) (*ast.Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return NewParser(source, tokens).ParseProgram()
}

// ParseFile reads and parses the file at path. The source text is returned
// even when parsing fails so callers can render the error in context.
func ParseFile(path string) (*ast.Program, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	source := string(data)

	prog, err := Parse(source)
	if perr, ok := err.(*ParseError); ok {
		perr.Filename = path
	}
	return prog, source, err
}

// ParseProgram parses statement* followed by end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, ok := p.parseStatement()
		if !ok {
			p.expect(EOF.describe())
			return nil, p.failure()
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Program{Range: ast.Range{Start: 0, End: len(p.source)}, Statements: stmts}, nil
}

func (p *Parser) failure() *ParseError {
	if p.fatal != nil {
		return p.fatal
	}

	index := max(p.farthest, 0)
	tok := p.tokens[index]
	kind := SYNTAX_ERROR
	if tok.Type == ILLEGAL {
		kind = INVALID_TOKEN
	}
	perr := newParseError(p.source, kind, tok.Offset, len(tok.Lexeme), tok.Lexeme, expectation(p.expected))
	if index > 0 {
		perr.Previous = p.tokens[index-1].Lexeme
	}
	return perr
}

func (p *Parser) parseStatement() (ast.Stmt, bool) {
	return labeled(p, "statement", func() (ast.Stmt, bool) {
		alternatives := []func() (ast.Stmt, bool){
			p.parseDeclaration,
			p.parseFunction,
			p.parseReturn,
			p.parseWhile,
			p.parseIfElse,
			p.parseAssignment,
			p.parseCallStatement,
		}
		for _, alt := range alternatives {
			if stmt, ok := alt(); ok {
				return stmt, true
			}
		}
		return nil, false
	})
}

// var name = expression;
func (p *Parser) parseDeclaration() (ast.Stmt, bool) {
	mark := p.current
	if _, ok := p.consume(VAR); !ok {
		return nil, false
	}
	name, ok := p.consumeIdent()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	if _, ok := p.consume(EQUAL); !ok {
		p.reset(mark)
		return nil, false
	}
	init, ok := p.parseExpression()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	if _, ok := p.consume(SEMICOLON); !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.DeclareStmt{Range: p.span(mark), Name: name, Init: init}, true
}

// name = expression;
func (p *Parser) parseAssignment() (ast.Stmt, bool) {
	mark := p.current
	name, ok := p.consumeIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(EQUAL); !ok {
		p.reset(mark)
		return nil, false
	}
	value, ok := p.parseExpression()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	if _, ok := p.consume(SEMICOLON); !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.AssignStmt{Range: p.span(mark), Name: name, Value: value}, true
}

// function name(a, b) block
func (p *Parser) parseFunction() (ast.Stmt, bool) {
	mark := p.current
	if _, ok := p.consume(FUNCTION); !ok {
		return nil, false
	}
	name, ok := p.consumeIdent()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	if _, ok := p.consume(LEFT_PAREN); !ok {
		p.reset(mark)
		return nil, false
	}
	params, ok := separated(p, RIGHT_PAREN, func() (ast.Ident, bool) {
		return labeled(p, "identifier", p.consumeIdent)
	})
	if !ok {
		p.reset(mark)
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.FunctionStmt{Range: p.span(mark), Name: name, Params: params, Body: body}, true
}

// return expression;
func (p *Parser) parseReturn() (ast.Stmt, bool) {
	mark := p.current
	if _, ok := p.consume(RETURN); !ok {
		return nil, false
	}
	value, ok := p.parseExpression()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	if _, ok := p.consume(SEMICOLON); !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.ReturnStmt{Range: p.span(mark), Value: value}, true
}

// while (expression) block
func (p *Parser) parseWhile() (ast.Stmt, bool) {
	mark := p.current
	if _, ok := p.consume(WHILE); !ok {
		return nil, false
	}
	cond, ok := p.parseCondition()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.WhileStmt{Range: p.span(mark), Cond: cond, Body: body}, true
}

// if (expression) block (else block)?
func (p *Parser) parseIfElse() (ast.Stmt, bool) {
	mark := p.current
	if _, ok := p.consume(IF); !ok {
		return nil, false
	}
	cond, ok := p.parseCondition()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		p.reset(mark)
		return nil, false
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.check(ELSE) {
		elseMark := p.current
		p.advance()
		alt, ok := p.parseBlock()
		if !ok {
			// The optional else group fails as a unit.
			p.reset(elseMark)
		} else {
			stmt.Else = &alt
		}
	} else {
		p.expect(ELSE.describe())
	}

	stmt.Range = p.span(mark)
	return stmt, true
}

// name(args);
func (p *Parser) parseCallStatement() (ast.Stmt, bool) {
	mark := p.current
	name, args, ok := p.parseCall()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(SEMICOLON); !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.CallStmt{Range: p.span(mark), Name: name, Args: args}, true
}

// (expression)
func (p *Parser) parseCondition() (ast.Expr, bool) {
	mark := p.current
	if _, ok := p.consume(LEFT_PAREN); !ok {
		return nil, false
	}
	cond, ok := p.parseExpression()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	if _, ok := p.consume(RIGHT_PAREN); !ok {
		p.reset(mark)
		return nil, false
	}
	return cond, true
}

// "{" statement* "}" | statement
func (p *Parser) parseBlock() (ast.Block, bool) {
	return labeled(p, "block", func() (ast.Block, bool) {
		mark := p.current
		if p.check(LEFT_BRACE) {
			p.advance()
			var stmts []ast.Stmt
			for {
				if p.check(RIGHT_BRACE) {
					p.advance()
					return ast.Block{Range: p.span(mark), Statements: stmts}, true
				}
				stmt, ok := p.parseStatement()
				if !ok {
					p.expect(RIGHT_BRACE.describe())
					break
				}
				stmts = append(stmts, stmt)
			}
			p.reset(mark)
		} else {
			p.expect(LEFT_BRACE.describe())
		}

		stmt, ok := p.parseStatement()
		if !ok {
			return ast.Block{}, false
		}
		return ast.Block{Range: stmt.NodeRange(), Statements: []ast.Stmt{stmt}}, true
	})
}
