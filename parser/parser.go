/*
File    : mps/parser/parser.go
*/

// Package parser turns a token stream into an ast.Block: a recursive-
// descent statement dispatcher plus a shunting-yard expression parser
// (spec §4.2). Grounded in the original Rust Parser
// (original_source/src/parsing/parser.rs), restructured from a Peekable
// token iterator into an explicit index cursor the way the teacher's own
// Parser holds CurrToken/NextToken over its lexer.
package parser

import (
	"fmt"

	"github.com/akashmaji946/mps/ast"
	"github.com/akashmaji946/mps/lexer"
)

// predefinedTypes resolves a type-position identifier to its Type.
// Anything else becomes a Custom type (spec §4.2).
var predefinedTypes = map[string]ast.Type{
	"int":   ast.TInteger,
	"float": ast.TFloat,
	"unit":  ast.TUnit,
	"bool":  ast.TBoolean,
}

// Parser walks a fixed token slice with a single cursor. There is no
// separate lookahead buffer; Peek reads tokens[pos] without advancing.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over a complete token stream (as produced by
// lexer.Lexer.Lex).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the entire token stream as a single top-level Block.
func Parse(tokens []lexer.Token) (*ast.Block, error) {
	p := New(tokens)
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		tok := p.peek()
		return nil, fmt.Errorf("unexpected '%s' after end of program on line %d char %d", tok, tok.Line, tok.Column)
	}
	return block, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

// peek returns the current token without consuming it. At end of input it
// returns a synthetic EOF token positioned just past the last real token.
func (p *Parser) peek() lexer.Token {
	if p.atEnd() {
		if len(p.tokens) == 0 {
			return lexer.Token{Type: lexer.EOF, Line: 1, Column: 1}
		}
		last := p.tokens[len(p.tokens)-1]
		return lexer.Token{Type: lexer.EOF, Line: last.Line, Column: last.Column}
	}
	return p.tokens[p.pos]
}

// next consumes and returns the current token.
func (p *Parser) next() lexer.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches want, or fails.
func (p *Parser) expect(want lexer.TokenType) error {
	tok := p.next()
	if tok.Type != want {
		return fmt.Errorf("expected '%s' but '%s' found on line %d char %d", want, tok, tok.Line, tok.Column)
	}
	return nil
}

// parseBlock repeatedly parses statements until a '}' (left for the
// caller to consume) or end of input. Tolerates an empty block (spec §9
// open question).
func (p *Parser) parseBlock() (*ast.Block, error) {
	var statements []ast.Statement
	for {
		tok := p.peek()
		if tok.Type == lexer.R_CURLY || tok.Type == lexer.EOF {
			return &ast.Block{Statements: statements}, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// parseStatement dispatches on the first token of a statement (spec §4.2).
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.FN:
		return nil, fmt.Errorf("function declarations are not implemented (line %d char %d)", tok.Line, tok.Column)
	case lexer.ID:
		return p.parseAssignmentOrDeclaration()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.PRINT:
		return p.parsePrint()
	default:
		return nil, fmt.Errorf("expected 'Fn', identifier, 'if', 'while', 'for' or 'print' but found '%s' on line %d char %d", tok, tok.Line, tok.Column)
	}
}

// parseAssignmentOrDeclaration handles the two statement forms that start
// with an identifier: `X := expr` (assignment) or `X Y [:= expr]`
// (declaration of Y with type X) — spec §4.2.
func (p *Parser) parseAssignmentOrDeclaration() (ast.Statement, error) {
	first := p.next() // the leading identifier
	name := first.Literal

	tok := p.peek()
	switch tok.Type {
	case lexer.ASSIGN:
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.Assign{Name: name, Expr: expr}, nil
	case lexer.ID:
		return p.parseDeclaration(name)
	default:
		return nil, fmt.Errorf("expected ':=' or identifier but '%s' found on line %d char %d", tok, tok.Line, tok.Column)
	}
}

func (p *Parser) parseDeclaration(typeName string) (ast.Statement, error) {
	idTok := p.next()
	if idTok.Type != lexer.ID {
		return nil, fmt.Errorf("expected identifier but '%s' found on line %d char %d", idTok, idTok.Line, idTok.Column)
	}

	declType, ok := predefinedTypes[typeName]
	if !ok {
		declType = ast.TCustom(typeName)
	}

	if p.peek().Type == lexer.ASSIGN {
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.VarDeclarationAndAssignment{Type: declType, Name: idTok.Literal, Expr: expr}, nil
	}
	if p.peek().Type == lexer.SEMI {
		p.next()
	}
	return ast.VarDeclaration{Type: declType, Name: idTok.Literal}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	p.next() // 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.R_CURLY); err != nil {
		return nil, err
	}
	return ast.IfStatement{Cond: cond, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	p.next() // 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.R_CURLY); err != nil {
		return nil, err
	}
	return ast.WhileStatement{Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	p.next() // 'for'
	init, err := p.parseAssignmentOrDeclaration()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	inc, err := p.parseAssignmentOrDeclaration()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.R_CURLY); err != nil {
		return nil, err
	}
	return ast.ForStatement{Init: init, Cond: cond, Inc: inc, Body: body}, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	p.next() // 'print'
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.Print{Expr: expr}, nil
}
