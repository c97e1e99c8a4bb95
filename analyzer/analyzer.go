/*
File    : mps/analyzer/analyzer.go
*/

// Package analyzer implements the static analyzer: a scoped-Type walk
// over the AST that rejects undeclared or mistyped programs before the
// interpreter ever runs (spec §4.3). Grounded in the original Rust
// analyzer (original_source/src/parsing/analyzer.rs), restructured from
// Rust's immutable-HashMap-threaded style into mutating an explicit
// scopetable.Table[ast.Type], matching the teacher's convention of a
// single mutable Scope object walked by reference.
package analyzer

import (
	"fmt"

	"github.com/akashmaji946/mps/ast"
	"github.com/akashmaji946/mps/lexer"
	"github.com/akashmaji946/mps/scopetable"
)

// Analyzer walks an ast.Block (or any ast.Statement) and reports the
// first type or scope error found, if any.
type Analyzer struct {
	types *scopetable.Table[ast.Type]
}

// New creates an Analyzer with a fresh root scope.
func New() *Analyzer {
	return &Analyzer{types: scopetable.New[ast.Type]()}
}

// Analyze type-checks a parsed program. A nil return means the program is
// well-typed and safe to hand to the interpreter.
func Analyze(program *ast.Block) error {
	return New().Analyze(program)
}

// Analyze type-checks program against this Analyzer's existing scope
// table, so declarations made by one call remain visible to the next —
// the shape a REPL needs across successive lines of input, mirroring
// Interpreter.Exec on the runtime side.
func (a *Analyzer) Analyze(program *ast.Block) error {
	return a.analyzeStatement(*program)
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case ast.Block:
		for _, inner := range s.Statements {
			if err := a.analyzeStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.Block:
		return a.analyzeStatement(*s)

	case ast.VarDeclaration:
		if !a.types.Declare(s.Name, s.Type) {
			return fmt.Errorf("variable %s was already declared", s.Name)
		}
		return nil

	case ast.VarDeclarationAndAssignment:
		exprType, err := a.analyzeExpression(s.Expr)
		if err != nil {
			return err
		}
		if !exprType.Equal(s.Type) {
			return fmt.Errorf("%s type and %s type don't match", s.Type, exprType)
		}
		if !a.types.Declare(s.Name, s.Type) {
			return fmt.Errorf("variable %s was already declared", s.Name)
		}
		return nil

	case ast.Assign:
		varType, ok := a.types.Lookup(s.Name)
		if !ok {
			return fmt.Errorf("cannot assign to variable %s not declared in this scope", s.Name)
		}
		exprType, err := a.analyzeExpression(s.Expr)
		if err != nil {
			return err
		}
		if !varType.Equal(exprType) {
			return fmt.Errorf("%s type and %s type don't match", varType, exprType)
		}
		return nil

	case ast.Print:
		_, err := a.analyzeExpression(s.Expr)
		return err

	case ast.IfStatement:
		return a.analyzeConditionalBlock("if", s.Cond, s.Body)
	case ast.WhileStatement:
		return a.analyzeConditionalBlock("while", s.Cond, s.Body)

	case ast.ForStatement:
		a.types.PushFrame()
		defer a.types.PopFrame()
		if err := a.analyzeStatement(s.Init); err != nil {
			return err
		}
		condType, err := a.analyzeExpression(s.Cond)
		if err != nil {
			return err
		}
		if !condType.Equal(ast.TBoolean) {
			return fmt.Errorf("for statement's condition requires boolean type expression but found %s", condType)
		}
		if err := a.analyzeStatement(s.Inc); err != nil {
			return err
		}
		return a.analyzeStatement(s.Body)

	default:
		return fmt.Errorf("analyzer: unhandled statement type %T", stmt)
	}
}

// analyzeConditionalBlock implements the shared shape of if/while: analyze
// the condition (must be Boolean — spec §9's mandated tightening over the
// original's unchecked condition), push a frame, analyze the body, pop.
func (a *Analyzer) analyzeConditionalBlock(keyword string, cond ast.Expression, body ast.Statement) error {
	condType, err := a.analyzeExpression(cond)
	if err != nil {
		return err
	}
	if !condType.Equal(ast.TBoolean) {
		return fmt.Errorf("%s statement's condition requires boolean type expression but found %s", keyword, condType)
	}
	a.types.PushFrame()
	defer a.types.PopFrame()
	return a.analyzeStatement(body)
}

func (a *Analyzer) analyzeExpression(expr ast.Expression) (ast.Type, error) {
	switch e := expr.(type) {
	case ast.IntegerLiteral:
		return ast.TInteger, nil
	case ast.FloatLiteral:
		return ast.TFloat, nil
	case ast.BooleanLiteral:
		return ast.TBoolean, nil
	case ast.Variable:
		t, ok := a.types.Lookup(e.Name)
		if !ok {
			return ast.Type{}, fmt.Errorf("use of undeclared variable %s", e.Name)
		}
		return t, nil
	case ast.BinaryOp:
		lt, err := a.analyzeExpression(e.Left)
		if err != nil {
			return ast.Type{}, err
		}
		rt, err := a.analyzeExpression(e.Right)
		if err != nil {
			return ast.Type{}, err
		}
		return analyzeBinary(lt, e.Op, rt)
	default:
		return ast.Type{}, fmt.Errorf("analyzer: unhandled expression type %T", expr)
	}
}

// analyzeBinary enforces the operator typing table from spec §4.3: both
// operands must already have resolved, equal, non-Unit, non-Custom types.
func analyzeBinary(l ast.Type, op lexer.Operator, r ast.Type) (ast.Type, error) {
	if l.Equal(ast.TUnit) || l.IsCustom() {
		return ast.Type{}, fmt.Errorf("left operand cannot be subject of operator %s", op)
	}
	if r.Equal(ast.TUnit) || r.IsCustom() {
		return ast.Type{}, fmt.Errorf("right operand cannot be subject of operator %s", op)
	}
	if !l.Equal(r) {
		return ast.Type{}, fmt.Errorf("unmatched values (%s, %s) in binary operator %s", l, r, op)
	}

	switch op {
	case lexer.Eq, lexer.Gt, lexer.Lt:
		return ast.TBoolean, nil
	case lexer.And, lexer.Or:
		if l.Equal(ast.TFloat) {
			return ast.Type{}, fmt.Errorf("could not perform bitwise operations on floats")
		}
		return l, nil
	case lexer.Pow:
		return l, nil
	case lexer.Add, lexer.Sub, lexer.Mul, lexer.Div:
		if l.Equal(ast.TBoolean) {
			return ast.Type{}, fmt.Errorf("could not perform mathematical operations on boolean")
		}
		return l, nil
	default:
		return ast.Type{}, fmt.Errorf("unknown operator %s", op)
	}
}
