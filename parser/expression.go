/*
File    : mps/parser/expression.go
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/mps/ast"
	"github.com/akashmaji946/mps/lexer"
)

// parseExpression implements the shunting-yard operator-precedence
// algorithm (spec §4.2): it consumes tokens onto an output stack of
// partial expressions and an operator stack of tokens until it hits a
// terminator (';' or '{', either of which is consumed here, or a '}',
// which is left for the enclosing block), folding higher/equal-precedence
// operators into BinaryOp nodes as it goes.
func (p *Parser) parseExpression() (ast.Expression, error) {
	var output []ast.Expression
	var operators []lexer.Token

	for !p.atEnd() {
		tok := p.peek()

		if tok.Type == lexer.SEMI || tok.Type == lexer.L_CURLY {
			p.next()
			break
		}
		if tok.Type == lexer.R_CURLY {
			break
		}

		p.next()
		switch tok.Type {
		case lexer.ID:
			output = append(output, ast.Variable{Name: tok.Literal})
		case lexer.BOOLEAN:
			output = append(output, ast.BooleanLiteral{Value: tok.BoolVal})
		case lexer.INT_LIT:
			output = append(output, ast.IntegerLiteral{Value: tok.IntVal})
		case lexer.FLT_LIT:
			output = append(output, ast.FloatLiteral{Value: tok.FloatVal})
		case lexer.L_ROUND:
			operators = append(operators, tok)
		case lexer.R_ROUND:
			folded, ok := foldUntilLParen(&operators, output)
			if !ok {
				return nil, fmt.Errorf("expected '(' but found ')' on line %d char %d", tok.Line, tok.Column)
			}
			output = folded
		case lexer.OP:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Type != lexer.OP {
					break
				}
				if top.Prec > tok.Prec || (top.Prec == tok.Prec && tok.LeftAssoc) {
					operators = operators[:len(operators)-1]
					var err error
					output, err = foldOne(output, top)
					if err != nil {
						return nil, err
					}
					continue
				}
				break
			}
			operators = append(operators, tok)
		default:
			return nil, fmt.Errorf("expression: unexpected '%s' found on line %d char %d", tok, tok.Line, tok.Column)
		}
	}

	// Fold whatever operators remain. A '(' surviving to here means an
	// expression ended (EOF or statement terminator) before its matching
	// ')' was seen — an unmatched-parenthesis parse error (spec §9).
	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Type == lexer.L_ROUND {
			return nil, fmt.Errorf("unmatched '(' on line %d char %d", top.Line, top.Column)
		}
		var err error
		output, err = foldOne(output, top)
		if err != nil {
			return nil, err
		}
	}

	if len(output) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	return output[len(output)-1], nil
}

// foldOne pops the last two output entries as right/left operands and
// pushes a single BinaryOp built from opTok.
func foldOne(output []ast.Expression, opTok lexer.Token) ([]ast.Expression, error) {
	if len(output) < 2 {
		return nil, fmt.Errorf("missing operand for operator '%s' on line %d char %d", opTok.Op, opTok.Line, opTok.Column)
	}
	right := output[len(output)-1]
	left := output[len(output)-2]
	output = output[:len(output)-2]
	return append(output, ast.BinaryOp{Left: left, Op: opTok.Op, Right: right}), nil
}

// foldUntilLParen pops and folds operators until it consumes a matching
// '(', discarding it. Reports ok=false if the operator stack runs dry
// first (an unmatched ')').
func foldUntilLParen(operators *[]lexer.Token, output []ast.Expression) ([]ast.Expression, bool) {
	ops := *operators
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Type == lexer.L_ROUND {
			*operators = ops
			return output, true
		}
		var err error
		output, err = foldOne(output, top)
		if err != nil {
			*operators = ops
			return output, false
		}
	}
	*operators = ops
	return output, false
}
