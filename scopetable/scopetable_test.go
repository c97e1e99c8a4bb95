/*
File    : mps/scopetable/scopetable_test.go
*/
package scopetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_DeclareAndLookup(t *testing.T) {
	tbl := New[int]()
	assert.True(t, tbl.Declare("x", 1))
	v, ok := tbl.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTable_RedeclarationRejectedAcrossFrames(t *testing.T) {
	tbl := New[int]()
	assert.True(t, tbl.Declare("x", 1))
	tbl.PushFrame()
	defer tbl.PopFrame()
	assert.False(t, tbl.Declare("x", 2), "redeclaration must be rejected even in a nested frame")
}

func TestTable_LookupReturnsDeclaredValue(t *testing.T) {
	tbl := New[int]()
	assert.True(t, tbl.Declare("x", 1))
	v, _ := tbl.Lookup("x")
	assert.Equal(t, 1, v)
}

func TestTable_AssignFindsOwningFrame(t *testing.T) {
	tbl := New[int]()
	tbl.Declare("x", 1)
	tbl.PushFrame()
	assert.True(t, tbl.Assign("x", 99))
	v, _ := tbl.Lookup("x")
	assert.Equal(t, 99, v)
	tbl.PopFrame()
	v, _ = tbl.Lookup("x")
	assert.Equal(t, 99, v, "assignment from a nested frame mutates the declaring frame, not a copy")
}

func TestTable_AssignUndeclaredFails(t *testing.T) {
	tbl := New[int]()
	assert.False(t, tbl.Assign("missing", 1))
}

func TestTable_PushPopBalancesDepth(t *testing.T) {
	tbl := New[string]()
	before := tbl.Depth()
	tbl.PushFrame()
	tbl.Declare("a", "x")
	tbl.PopFrame()
	assert.Equal(t, before, tbl.Depth())
}

func TestTable_LookupMissing(t *testing.T) {
	tbl := New[int]()
	_, ok := tbl.Lookup("nope")
	assert.False(t, ok)
}
