/*
File    : return-to-monk/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stijnVanHorenbeek/return-to-monk/objects"
)

// TestBindAndLookUp checks bindings land in the scope and resolve by name.
func TestBindAndLookUp(t *testing.T) {
	scp := NewScope(nil)

	name, had := scp.Bind("x", &objects.Integer{Value: 10})
	assert.Equal(t, "x", name)
	assert.False(t, had)

	obj, ok := scp.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(10), obj.(*objects.Integer).Value)
}

// TestRebind checks rebinding a name in the same scope reports the
// previous binding and replaces the value.
func TestRebind(t *testing.T) {
	scp := NewScope(nil)

	scp.Bind("x", &objects.Integer{Value: 10})
	_, had := scp.Bind("x", &objects.Integer{Value: 20})
	assert.True(t, had)

	obj, ok := scp.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(20), obj.(*objects.Integer).Value)
}

// TestLookUpMiss checks an unbound name reports absence.
func TestLookUpMiss(t *testing.T) {
	scp := NewScope(nil)

	_, ok := scp.LookUp("missing")
	assert.False(t, ok)
}

// TestLookUpWalksChain checks lookup traverses parent scopes outward until
// a binding is found or the root is reached.
func TestLookUpWalksChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})

	middle := NewScope(global)
	middle.Bind("y", &objects.Integer{Value: 2})

	inner := NewScope(middle)

	obj, ok := inner.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value)

	obj, ok = inner.LookUp("y")
	require.True(t, ok)
	assert.Equal(t, int64(2), obj.(*objects.Integer).Value)

	_, ok = inner.LookUp("z")
	assert.False(t, ok)
}

// TestShadowing checks an inner binding shadows an outer one without
// modifying it.
func TestShadowing(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})

	inner := NewScope(global)
	inner.Bind("x", &objects.Integer{Value: 2})

	obj, ok := inner.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(2), obj.(*objects.Integer).Value)

	obj, ok = global.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value)
}

// TestSharedParent checks two child scopes share one parent by reference:
// a binding added to the parent is visible through both children.
func TestSharedParent(t *testing.T) {
	parent := NewScope(nil)
	left := NewScope(parent)
	right := NewScope(parent)

	parent.Bind("x", &objects.Integer{Value: 7})

	obj, ok := left.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(7), obj.(*objects.Integer).Value)

	obj, ok = right.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(7), obj.(*objects.Integer).Value)
}
