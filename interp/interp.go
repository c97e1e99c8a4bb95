/*
File    : mps/interp/interp.go
*/

// Package interp implements the tree-walking interpreter (spec §4.4):
// once a program has passed analyzer.Analyze it is safe to run, so this
// package re-derives none of the type checks the analyzer already did and
// panics only on invariants the analyzer guarantees can't occur.
// Grounded in the original Rust interpreter
// (original_source/src/parsing/interpreter.rs) and in the teacher's
// tree-walking eval.go for its statement/expression dispatch shape.
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/mps/ast"
	"github.com/akashmaji946/mps/scopetable"
	"github.com/akashmaji946/mps/value"
)

// Interpreter walks an ast.Block to completion or until a runtime error
// occurs. The errors that survive static analysis are a division by zero,
// a negative integer exponent, and an operator or condition applied to the
// unit value of a declared-but-unassigned variable.
type Interpreter struct {
	memory *scopetable.Table[value.Value]
	out    io.Writer
}

// New creates an Interpreter that writes `print` output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{memory: scopetable.New[value.Value](), out: out}
}

// Run type-checks nothing itself: callers are expected to have already
// run analyzer.Analyze over program. It executes program to completion,
// writing any Print output to the Interpreter's writer.
func Run(program *ast.Block, out io.Writer) error {
	return New(out).Exec(program)
}

// Exec runs program against this Interpreter's existing memory, so
// declarations made by one call are visible to the next — the shape a
// REPL needs across successive lines of input.
func (in *Interpreter) Exec(program *ast.Block) error {
	return in.execStatement(*program)
}

func (in *Interpreter) execStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case ast.Block:
		for _, inner := range s.Statements {
			if err := in.execStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.Block:
		return in.execStatement(*s)

	case ast.VarDeclaration:
		if !in.memory.Declare(s.Name, value.UnitValue) {
			in.memory.Assign(s.Name, value.UnitValue)
		}
		return nil

	case ast.VarDeclarationAndAssignment:
		v, err := in.evalExpression(s.Expr)
		if err != nil {
			return err
		}
		if !in.memory.Declare(s.Name, v) {
			in.memory.Assign(s.Name, v)
		}
		return nil

	case ast.Assign:
		v, err := in.evalExpression(s.Expr)
		if err != nil {
			return err
		}
		if !in.memory.Assign(s.Name, v) {
			return fmt.Errorf("runtime: variable %s not found", s.Name)
		}
		return nil

	case ast.Print:
		v, err := in.evalExpression(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, v.Format())
		return nil

	case ast.IfStatement:
		cond, err := in.evalExpression(s.Cond)
		if err != nil {
			return err
		}
		if cond.Kind() != value.BooleanKind {
			return fmt.Errorf("runtime: if condition is %s, not boolean", cond.TypeName())
		}
		if !cond.Boolean() {
			return nil
		}
		in.memory.PushFrame()
		defer in.memory.PopFrame()
		return in.execStatement(s.Body)

	case ast.WhileStatement:
		in.memory.PushFrame()
		defer in.memory.PopFrame()
		for {
			cond, err := in.evalExpression(s.Cond)
			if err != nil {
				return err
			}
			if cond.Kind() != value.BooleanKind {
				return fmt.Errorf("runtime: while condition is %s, not boolean", cond.TypeName())
			}
			if !cond.Boolean() {
				return nil
			}
			if err := in.execStatement(s.Body); err != nil {
				return err
			}
		}

	case ast.ForStatement:
		in.memory.PushFrame()
		defer in.memory.PopFrame()
		if err := in.execStatement(s.Init); err != nil {
			return err
		}
		for {
			cond, err := in.evalExpression(s.Cond)
			if err != nil {
				return err
			}
			if cond.Kind() != value.BooleanKind {
				return fmt.Errorf("runtime: for condition is %s, not boolean", cond.TypeName())
			}
			if !cond.Boolean() {
				return nil
			}
			if err := in.execStatement(s.Body); err != nil {
				return err
			}
			if err := in.execStatement(s.Inc); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

func (in *Interpreter) evalExpression(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case ast.IntegerLiteral:
		return value.Int(e.Value), nil
	case ast.FloatLiteral:
		return value.Float(e.Value), nil
	case ast.BooleanLiteral:
		return value.Bool(e.Value), nil
	case ast.Variable:
		v, ok := in.memory.Lookup(e.Name)
		if !ok {
			return value.Value{}, fmt.Errorf("runtime: variable %s not found", e.Name)
		}
		return v, nil
	case ast.BinaryOp:
		l, err := in.evalExpression(e.Left)
		if err != nil {
			return value.Value{}, err
		}
		r, err := in.evalExpression(e.Right)
		if err != nil {
			return value.Value{}, err
		}
		return value.Apply(e.Op, l, r)
	default:
		return value.Value{}, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}
