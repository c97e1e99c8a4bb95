/*
File    : mps/value/value.go
*/

// Package value implements the runtime value algebra: the four value
// variants (integer, float, boolean, unit) and the type-dependent
// semantics of each binary operator across them (spec §4.5). Grounded in
// the teacher's objects.GoMixObject value types (one struct per variant,
// ToString for display) and the original Rust Value's operator impls
// (execution/value.rs), adapted from Rust's std::ops trait overloads to
// a single explicit Apply dispatcher, since Go has no operator
// overloading.
package value

import (
	"fmt"
	"strconv"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	IntegerKind Kind = iota
	FloatKind
	BooleanKind
	UnitKind
)

// Value is a runtime value: exactly one of an int32, float32, bool, or
// unit. Values have copy semantics and never reference each other.
type Value struct {
	kind  Kind
	ival  int32
	fval  float32
	bval  bool
}

// Int, Float, Bool construct each variant; UnitValue is the unit value.
func Int(i int32) Value   { return Value{kind: IntegerKind, ival: i} }
func Float(f float32) Value { return Value{kind: FloatKind, fval: f} }
func Bool(b bool) Value   { return Value{kind: BooleanKind, bval: b} }

var UnitValue = Value{kind: UnitKind}

func (v Value) Kind() Kind { return v.kind }

// Int32, Float32, Boolean extract the underlying Go value. Callers must
// only call the accessor matching Kind(); calling the wrong one panics.
// After a successful static analysis this can never happen from a
// user-supplied program — every operand that reaches a Value op has
// already been proven the matching type (spec §4.5, analyzer invariant).
func (v Value) Int32() int32 {
	if v.kind != IntegerKind {
		panic("value: Int32 called on non-integer value")
	}
	return v.ival
}

func (v Value) Float32() float32 {
	if v.kind != FloatKind {
		panic("value: Float32 called on non-float value")
	}
	return v.fval
}

func (v Value) Boolean() bool {
	if v.kind != BooleanKind {
		panic("value: Boolean called on non-boolean value")
	}
	return v.bval
}

// TypeName names the variant for error messages ("integer", "float", ...).
func (v Value) TypeName() string {
	switch v.kind {
	case IntegerKind:
		return "integer"
	case FloatKind:
		return "float"
	case BooleanKind:
		return "boolean"
	default:
		return "unit"
	}
}

// Format renders a value the way Print emits it (spec §4.4): integers in
// plain decimal, floats via Go's default float formatting, booleans as
// true/false, and Unit as the literal text "unit".
func (v Value) Format() string {
	switch v.kind {
	case IntegerKind:
		return strconv.FormatInt(int64(v.ival), 10)
	case FloatKind:
		return strconv.FormatFloat(float64(v.fval), 'g', -1, 32)
	case BooleanKind:
		return strconv.FormatBool(v.bval)
	default:
		return "unit"
	}
}

// RuntimeError is returned by Apply for the handful of runtime faults the
// algebra can hit even after a successful static analysis: division by
// zero, a negative integer exponent, and an operator applied to a unit
// value (spec §4.5, §7).
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func opError(op string, l, r Value) error {
	return &RuntimeError{Message: fmt.Sprintf("operator %s not applicable to %s and %s", op, l.TypeName(), r.TypeName())}
}
