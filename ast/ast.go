/*
File    : mps/ast/ast.go
*/

// Package ast defines the algebraic AST the parser builds and the
// analyzer/interpreter walk: declared types, expressions, and statements.
// The tree is a pure value structure — owning, acyclic, no back-references
// between nodes — produced once by the parser and read-only afterward.
package ast

import "github.com/akashmaji946/mps/lexer"

// typeKind enumerates the primitive type tags. Custom types carry a name
// alongside the tag (see Type), since a single sentinel constant can't
// distinguish two differently-misspelled custom type names.
type typeKind int

const (
	Integer typeKind = iota
	FloatingPoint
	Boolean
	Unit
	customKind
)

// Type is a declared or inferred static type (spec §3). Custom is produced
// when a declaration names a type identifier outside the predefined set;
// it parses successfully but the analyzer rejects any expression of
// Custom type.
type Type struct {
	kind typeKind
	name string
}

var (
	TInteger = Type{kind: Integer}
	TFloat   = Type{kind: FloatingPoint}
	TBoolean = Type{kind: Boolean}
	TUnit    = Type{kind: Unit}
)

// TCustom builds a Custom type carrying the unresolved type name.
func TCustom(name string) Type { return Type{kind: customKind, name: name} }

// IsCustom reports whether t was produced from an unrecognized type name.
func (t Type) IsCustom() bool { return t.kind == customKind }

// Equal reports whether two types denote the same type. Two Custom types
// are never equal to each other or to anything else — Custom is legal to
// parse but illegal in any operator or declared-type match (spec §3, §4.3).
func (t Type) Equal(other Type) bool {
	if t.kind == customKind || other.kind == customKind {
		return false
	}
	return t.kind == other.kind
}

func (t Type) String() string {
	switch t.kind {
	case Integer:
		return "Integer"
	case FloatingPoint:
		return "FloatingPoint"
	case Boolean:
		return "Boolean"
	case Unit:
		return "Unit"
	default:
		return "Custom"
	}
}

// Expression is the tagged union of expression forms (spec §3). Recursive,
// owning: BinaryOp holds its operands inline, not through shared pointers.
type Expression interface {
	isExpression()
}

type IntegerLiteral struct{ Value int32 }
type FloatLiteral struct{ Value float32 }
type BooleanLiteral struct{ Value bool }
type Variable struct{ Name string }
type BinaryOp struct {
	Left  Expression
	Op    lexer.Operator
	Right Expression
}

func (IntegerLiteral) isExpression() {}
func (FloatLiteral) isExpression()   {}
func (BooleanLiteral) isExpression() {}
func (Variable) isExpression()       {}
func (BinaryOp) isExpression()       {}

// Statement is the tagged union of AST statement forms (spec §3).
type Statement interface {
	isStatement()
}

// Block groups a sequence of statements. Bare blocks never push a scope
// frame themselves — only If/While/For do (spec §4.3/§4.4, design note
// "Block frames").
type Block struct{ Statements []Statement }

type VarDeclaration struct {
	Type Type
	Name string
}

type VarDeclarationAndAssignment struct {
	Type Type
	Name string
	Expr Expression
}

type Assign struct {
	Name string
	Expr Expression
}

type Print struct{ Expr Expression }

type IfStatement struct {
	Cond Expression
	Body Statement
}

type WhileStatement struct {
	Cond Expression
	Body Statement
}

type ForStatement struct {
	Init Statement
	Cond Expression
	Inc  Statement
	Body Statement
}

func (Block) isStatement()                      {}
func (VarDeclaration) isStatement()              {}
func (VarDeclarationAndAssignment) isStatement() {}
func (Assign) isStatement()                      {}
func (Print) isStatement()                       {}
func (IfStatement) isStatement()                 {}
func (WhileStatement) isStatement()              {}
func (ForStatement) isStatement()                {}
