package parser

import (
	"slices"

	"leek/internal/ast"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

// consume advances over a token of type tt. Otherwise it records tt as
// expected at the current token and leaves the cursor where it is.
func (p *Parser) consume(tt TokenType) (Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	p.expect(tt.describe())
	return Token{}, false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// reset rewinds the cursor for backtracking.
func (p *Parser) reset(mark int) {
	p.current = mark
}

// expect records that what would have been accepted at the current token.
// Only the farthest failure point is kept.
func (p *Parser) expect(what string) {
	p.expectAt(p.current, what)
}

func (p *Parser) expectAt(index int, what string) {
	switch {
	case index > p.farthest:
		p.farthest = index
		p.expected = []string{what}
	case index == p.farthest:
		if !slices.Contains(p.expected, what) {
			p.expected = append(p.expected, what)
		}
	}
}

// span returns the range from the token at mark to the last consumed token.
func (p *Parser) span(mark int) ast.Range {
	return ast.Range{Start: p.tokens[mark].Offset, End: p.previous().End()}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Range: ast.Range{Start: tok.Offset, End: tok.End()},
		Value: tok.Lexeme,
	}
}

func (p *Parser) consumeIdent() (ast.Ident, bool) {
	tok, ok := p.consume(IDENTIFIER)
	if !ok {
		return ast.Ident{}, false
	}
	return p.makeIdent(tok), true
}

// labeled runs rule and, when it fails without getting past its first
// token, replaces whatever its alternatives expected with name.
func labeled[T any](p *Parser, name string, rule func() (T, bool)) (T, bool) {
	mark := p.current
	farthest, expected := p.farthest, slices.Clone(p.expected)

	node, ok := rule()
	if ok {
		return node, true
	}
	if p.farthest <= mark {
		p.farthest, p.expected = farthest, expected
		p.expectAt(mark, name)
	}
	p.reset(mark)
	return node, false
}

// separated parses zero or more items separated by commas up to the closing
// token, which it consumes.
func separated[T any](p *Parser, closing TokenType, item func() (T, bool)) ([]T, bool) {
	var items []T
	if p.check(closing) {
		p.advance()
		return items, true
	}

	first, ok := item()
	if !ok {
		p.expect(closing.describe())
		return nil, false
	}
	items = append(items, first)

	for {
		if p.check(COMMA) {
			p.advance()
			next, ok := item()
			if !ok {
				return nil, false
			}
			items = append(items, next)
			continue
		}
		p.expect(COMMA.describe())
		if _, ok := p.consume(closing); !ok {
			return nil, false
		}
		return items, true
	}
}
