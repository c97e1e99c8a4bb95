/*
File    : mps/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mps/lexer"
)

func TestApply_IntegerArithmetic(t *testing.T) {
	v, err := Apply(lexer.Add, Int(1), Int(2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, v.Int32())

	v, err = Apply(lexer.Sub, Int(2), Int(5))
	require.NoError(t, err)
	assert.EqualValues(t, -3, v.Int32())
}

func TestApply_IntegerDivisionTruncatesTowardZero(t *testing.T) {
	v, err := Apply(lexer.Div, Int(-7), Int(2))
	require.NoError(t, err)
	assert.EqualValues(t, -3, v.Int32())
}

func TestApply_DivisionByZero(t *testing.T) {
	_, err := Apply(lexer.Div, Int(5), Int(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestApply_IntegerPower(t *testing.T) {
	v, err := Apply(lexer.Pow, Int(2), Int(10))
	require.NoError(t, err)
	assert.EqualValues(t, 1024, v.Int32())
}

func TestApply_NegativeIntegerExponentFails(t *testing.T) {
	_, err := Apply(lexer.Pow, Int(2), Int(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative exponent")
}

func TestApply_FloatPower(t *testing.T) {
	v, err := Apply(lexer.Pow, Float(2.0), Float(3.0))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v.Float32(), 0.0001)
}

func TestApply_BooleanPowerIsXor(t *testing.T) {
	v, err := Apply(lexer.Pow, Bool(true), Bool(false))
	require.NoError(t, err)
	assert.True(t, v.Boolean())

	v, err = Apply(lexer.Pow, Bool(true), Bool(true))
	require.NoError(t, err)
	assert.False(t, v.Boolean())
}

func TestApply_BitwiseOnIntegersAndBooleans(t *testing.T) {
	v, err := Apply(lexer.And, Int(0b110), Int(0b011))
	require.NoError(t, err)
	assert.EqualValues(t, 0b010, v.Int32())

	v, err = Apply(lexer.Or, Bool(true), Bool(false))
	require.NoError(t, err)
	assert.True(t, v.Boolean())
}

func TestApply_BitwiseOnFloatsFails(t *testing.T) {
	_, err := Apply(lexer.And, Float(1), Float(2))
	require.Error(t, err)
}

func TestApply_Comparisons(t *testing.T) {
	v, err := Apply(lexer.Gt, Int(5), Int(3))
	require.NoError(t, err)
	assert.True(t, v.Boolean())

	v, err = Apply(lexer.Lt, Bool(false), Bool(true))
	require.NoError(t, err)
	assert.True(t, v.Boolean(), "false < true under boolean ordering")

	v, err = Apply(lexer.Eq, Float(1.5), Float(1.5))
	require.NoError(t, err)
	assert.True(t, v.Boolean())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "42", Int(42).Format())
	assert.Equal(t, "true", Bool(true).Format())
	assert.Equal(t, "unit", UnitValue.Format())
}
