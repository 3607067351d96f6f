package parser

import (
	"strconv"

	"leek/internal/ast"
)

// expression := not | list | const | call | variable
func (p *Parser) parseExpression() (ast.Expr, bool) {
	return labeled(p, "expression", func() (ast.Expr, bool) {
		alternatives := []func() (ast.Expr, bool){
			p.parseNot,
			p.parseList,
			p.parseConst,
			p.parseCallExpr,
			p.parseVariable,
		}
		for _, alt := range alternatives {
			if expr, ok := alt(); ok {
				return expr, true
			}
		}
		return nil, false
	})
}

// "!" expression
func (p *Parser) parseNot() (ast.Expr, bool) {
	mark := p.current
	op, ok := p.consume(BANG)
	if !ok {
		return nil, false
	}
	operand, ok := p.parseExpression()
	if !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.PrefixExpr{Range: p.span(mark), Op: op.Lexeme, Operand: operand}, true
}

// "[" (expression ("," expression)*)? "]"
func (p *Parser) parseList() (ast.Expr, bool) {
	mark := p.current
	if _, ok := p.consume(LEFT_BRACKET); !ok {
		return nil, false
	}
	items, ok := separated(p, RIGHT_BRACKET, p.parseExpression)
	if !ok {
		p.reset(mark)
		return nil, false
	}
	return &ast.ListExpr{Range: p.span(mark), Items: items}, true
}

func (p *Parser) parseConst() (ast.Expr, bool) {
	tok, ok := p.consume(NUMBER)
	if !ok {
		return nil, false
	}
	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		if p.fatal == nil {
			p.fatal = newParseError(p.source, INTEGER_RANGE, tok.Offset, len(tok.Lexeme), tok.Lexeme, "integer literal out of range")
		}
		p.reset(p.current - 1)
		return nil, false
	}
	return &ast.ConstExpr{Range: ast.Range{Start: tok.Offset, End: tok.End()}, Value: value}, true
}

func (p *Parser) parseCallExpr() (ast.Expr, bool) {
	mark := p.current
	name, args, ok := p.parseCall()
	if !ok {
		return nil, false
	}
	return &ast.CallExpr{Range: p.span(mark), Name: name, Args: args}, true
}

func (p *Parser) parseVariable() (ast.Expr, bool) {
	tok, ok := p.consume(IDENTIFIER)
	if !ok {
		return nil, false
	}
	return &ast.VarExpr{Range: ast.Range{Start: tok.Offset, End: tok.End()}, Name: tok.Lexeme}, true
}

// ident "(" (expression ("," expression)*)? ")"
func (p *Parser) parseCall() (ast.Ident, []ast.Expr, bool) {
	mark := p.current
	name, ok := p.consumeIdent()
	if !ok {
		return ast.Ident{}, nil, false
	}
	if _, ok := p.consume(LEFT_PAREN); !ok {
		p.reset(mark)
		return ast.Ident{}, nil, false
	}
	args, ok := separated(p, RIGHT_PAREN, p.parseExpression)
	if !ok {
		p.reset(mark)
		return ast.Ident{}, nil, false
	}
	return name, args, true
}
