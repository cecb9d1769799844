// Package parser turns a token stream into a Program tree using
// recursive descent with a two-token lookahead window.
//
// Binding strength, loosest to tightest: the six comparison operators,
// then '+' and '-', then '*' and '/'. All binary operators associate
// left, so `1 < 2 < 3` parses as `(1 < 2) < 3`.
package parser

import (
	"fmt"

	"github.com/shardlabs/shardjs/pkg/interp/ast"
	"github.com/shardlabs/shardjs/pkg/interp/lexer"
)

// Parser consumes tokens from one scanner and builds a single Program.
// The first malformed construct records an error; from then on every
// parsing call fails with that same error without consuming more input.
type Parser struct {
	scanner *lexer.Scanner
	curTok  lexer.Token
	peekTok lexer.Token
	err     error
}

// NewParser creates a parser reading from s.
func NewParser(s *lexer.Scanner) *Parser {
	p := &Parser{scanner: s}
	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.scanner.Next()
}

// Err returns the recorded parse error, if any.
func (p *Parser) Err() error { return p.err }

// errorf records the first parse error with the current token's
// position. Later errors never overwrite it.
func (p *Parser) errorf(format string, args ...any) error {
	if p.err == nil {
		p.err = fmt.Errorf("Parse error at line %d, column %d: %s",
			p.curTok.Line, p.curTok.Column, fmt.Sprintf(format, args...))
	}
	return p.err
}

// expect consumes a token of the given kind or records reason as the
// parse error.
func (p *Parser) expect(kind lexer.Kind, reason string) error {
	if p.curTok.Kind != kind {
		return p.errorf("%s", reason)
	}
	p.nextToken()
	return nil
}

// isReserved reports whether the current token is the given identifier.
// print, if and else are not lexer keywords; statement dispatch matches
// their text instead.
func (p *Parser) isReserved(word string) bool {
	return p.curTok.Kind == lexer.KindIdentifier && p.curTok.Text == word
}

// Parse builds the Program for the whole token stream.
func (p *Parser) Parse() (*ast.Program, error) {
	if p.err != nil {
		return nil, p.err
	}

	program := &ast.Program{Statements: make([]ast.Node, 0, 4)}
	for p.curTok.Kind != lexer.KindEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	switch {
	case p.curTok.Kind == lexer.KindLet:
		return p.parseLetDecl()
	case p.isReserved("print"):
		return p.parsePrintCall()
	case p.isReserved("if"):
		return p.parseIfStmt()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	// optional trailing semicolon
	if p.curTok.Kind == lexer.KindSemicolon {
		p.nextToken()
	}
	return expr, nil
}

// parseLetDecl parses: let IDENTIFIER = expression ;
func (p *Parser) parseLetDecl() (ast.Node, error) {
	if err := p.expect(lexer.KindLet, "Expected 'let' keyword"); err != nil {
		return nil, err
	}

	if p.curTok.Kind != lexer.KindIdentifier {
		return nil, p.errorf("Expected identifier after 'let'")
	}
	name := p.curTok.Text
	p.nextToken()

	if err := p.expect(lexer.KindAssign, "Expected '=' after variable name"); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.KindSemicolon, "Expected ';' after let declaration"); err != nil {
		return nil, err
	}

	return &ast.LetDecl{Name: name, Value: value}, nil
}

// parsePrintCall parses: print ( expression ) [;]
func (p *Parser) parsePrintCall() (ast.Node, error) {
	p.nextToken() // the 'print' word

	if err := p.expect(lexer.KindLParen, "Expected '(' after 'print'"); err != nil {
		return nil, err
	}

	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.KindRParen, "Expected ')' after print argument"); err != nil {
		return nil, err
	}

	if p.curTok.Kind == lexer.KindSemicolon {
		p.nextToken()
	}

	return &ast.PrintCall{Arg: arg}, nil
}

// parseIfStmt parses: if ( expression ) statement [else statement]
func (p *Parser) parseIfStmt() (ast.Node, error) {
	p.nextToken() // the 'if' word

	if err := p.expect(lexer.KindLParen, "Expected '(' after 'if'"); err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.KindRParen, "Expected ')' after if condition"); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Node
	if p.isReserved("else") {
		p.nextToken()
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{Condition: condition, Then: then, Else: elseBranch}, nil
}

// parseExpression parses the comparison tier, the loosest-binding level.
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := comparisonOp(p.curTok.Kind)
		if !ok {
			return left, nil
		}
		p.nextToken()

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
}

// parseAdditive parses + and -.
func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curTok.Kind == lexer.KindPlus || p.curTok.Kind == lexer.KindMinus {
		op := ast.OpAdd
		if p.curTok.Kind == lexer.KindMinus {
			op = ast.OpSub
		}
		p.nextToken()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm parses * and /.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curTok.Kind == lexer.KindStar || p.curTok.Kind == lexer.KindSlash {
		op := ast.OpMul
		if p.curTok.Kind == lexer.KindSlash {
			op = ast.OpDiv
		}
		p.nextToken()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor parses numbers, identifiers, and parenthesized expressions.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curTok.Kind {
	case lexer.KindNumber:
		value := p.curTok.Number
		p.nextToken()
		return &ast.Number{Value: value}, nil

	case lexer.KindIdentifier:
		name := p.curTok.Text
		p.nextToken()
		return &ast.Identifier{Name: name}, nil

	case lexer.KindLParen:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.KindRParen, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.errorf("Expected number, identifier, or '('")
}

func comparisonOp(k lexer.Kind) (ast.Operator, bool) {
	switch k {
	case lexer.KindEqual:
		return ast.OpEqual, true
	case lexer.KindNotEqual:
		return ast.OpNotEqual, true
	case lexer.KindGreater:
		return ast.OpGreater, true
	case lexer.KindGreaterEqual:
		return ast.OpGreaterEqual, true
	case lexer.KindLess:
		return ast.OpLess, true
	case lexer.KindLessEqual:
		return ast.OpLessEqual, true
	}
	return 0, false
}
