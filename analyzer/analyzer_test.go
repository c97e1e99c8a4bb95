/*
File    : mps/analyzer/analyzer_test.go
*/
package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mps/lexer"
	"github.com/akashmaji946/mps/parser"
)

func analyze(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.New(src).Lex()
	require.NoError(t, err)
	block, err := parser.Parse(tokens)
	require.NoError(t, err)
	return Analyze(block)
}

func TestAnalyze_DeclarationAndAssignmentMatchingTypes(t *testing.T) {
	assert.NoError(t, analyze(t, "int x := 1; x := 2;"))
}

func TestAnalyze_DeclarationAssignmentTypeMismatch(t *testing.T) {
	err := analyze(t, "int x := true;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "don't match")
}

func TestAnalyze_RedeclarationInSameScopeRejected(t *testing.T) {
	err := analyze(t, "int x; int x;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestAnalyze_AssignToUndeclaredRejected(t *testing.T) {
	err := analyze(t, "x := 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared")
}

func TestAnalyze_AssignTypeMismatchRejected(t *testing.T) {
	err := analyze(t, "int x; x := true;")
	require.Error(t, err)
}

func TestAnalyze_UseOfUndeclaredVariable(t *testing.T) {
	err := analyze(t, "print y;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared")
}

func TestAnalyze_IfRequiresBooleanCondition(t *testing.T) {
	err := analyze(t, "if 1 { }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires boolean")

	assert.NoError(t, analyze(t, "if true { }"))
}

func TestAnalyze_WhileRequiresBooleanCondition(t *testing.T) {
	err := analyze(t, "while 1 { }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires boolean")
}

func TestAnalyze_ForRequiresBooleanCondition(t *testing.T) {
	err := analyze(t, "for int i := 0; 1; i := i + 1 { }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires boolean")
}

func TestAnalyze_ForInitVariableScopedToLoop(t *testing.T) {
	assert.NoError(t, analyze(t, "for int i := 0; i < 10; i := i + 1 { print i }"))
	err := analyze(t, "for int i := 0; i < 10; i := i + 1 { } print i;")
	require.Error(t, err, "i must not leak past the for statement's own frame")
}

func TestAnalyze_RedeclarationInsideIfBodyRejected(t *testing.T) {
	// Two declarations of x in the same if-body: the second one is
	// rejected because x is already bound in the if's frame.
	err := analyze(t, "if true { int x; int x; }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestAnalyze_MathOnBooleanRejected(t *testing.T) {
	err := analyze(t, "bool b := true; int y := 1; print b + true;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boolean")
}

func TestAnalyze_BitwiseOnFloatRejected(t *testing.T) {
	err := analyze(t, "float f := 1.0; print f & f;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats")
}

func TestAnalyze_PowAllowedOnAllPrimitives(t *testing.T) {
	assert.NoError(t, analyze(t, "print 2 ^ 3;"))
	assert.NoError(t, analyze(t, "print 2.0 ^ 3.0;"))
	assert.NoError(t, analyze(t, "print true ^ false;"))
}

func TestAnalyze_ComparisonsYieldBoolean(t *testing.T) {
	assert.NoError(t, analyze(t, "bool r := 1 > 2;"))
}

func TestAnalyze_MismatchedOperandTypesRejected(t *testing.T) {
	err := analyze(t, "print 1 + 1.0;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched values")
}

func TestAnalyze_CustomTypeCannotBeOperated(t *testing.T) {
	err := analyze(t, "Widget w; print w + w;")
	require.Error(t, err)
}

func TestAnalyze_RedeclarationAcrossNestedScopesRejected(t *testing.T) {
	// Lookup walks every live frame, so a name already bound in an
	// enclosing scope cannot be redeclared in a nested one either.
	err := analyze(t, `
		int n := 3;
		while n > 0 {
			int n := 1;
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestAnalyze_NestedScopeCanAssignOuterVariable(t *testing.T) {
	assert.NoError(t, analyze(t, `
		int n := 3;
		while n > 0 {
			n := n - 1;
		}
		print n;
	`))
}
