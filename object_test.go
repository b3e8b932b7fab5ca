package natrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallIntCacheIdentity(t *testing.T) {
	gc := NewGC()
	a := NewInt(gc, 42)
	b := NewInt(gc, 42)
	assert.Same(t, a, b)

	c := NewInt(gc, -1)
	d := NewInt(gc, -1)
	assert.Same(t, c, d)
}

func TestLargeIntsAreNotCached(t *testing.T) {
	gc := NewGC()
	a := NewInt(gc, 1000)
	b := NewInt(gc, 1000)
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Value, b.Value)
}

func TestBoolSingletons(t *testing.T) {
	assert.Same(t, TrueObj, NewBool(true))
	assert.Same(t, FalseObj, NewBool(false))
	assert.Nil(t, TrueObj.header())
}

func TestAsBoolTruthiness(t *testing.T) {
	gc := NewGC()
	assert.False(t, AsBool(NewInt(gc, 0)))
	assert.True(t, AsBool(NewInt(gc, 1)))
	assert.False(t, AsBool(NewStr(gc, nil)))
	assert.True(t, AsBool(NewStr(gc, []byte("x"))))
	assert.False(t, AsBool(NewList(gc, 0)))
}

// TestAsBoolTypeObjectIsAlwaysTruthy exercises spec.md §4.7's "type:
// as_bool returns true" rule.
func TestAsBoolTypeObjectIsAlwaysTruthy(t *testing.T) {
	assert.True(t, AsBool(IntType))
	assert.True(t, AsBool(TypeType))
}

// TestAsBoolPanicsNamingType exercises the null-slot dispatch contract
// (spec.md §4.7) on a variant with no as_bool slot: arrayObj, natrix's
// internal list backing store, is never itself a surface-level Value,
// but it still goes through the same Type dispatch as everything else.
func TestAsBoolPanicsNamingType(t *testing.T) {
	gc := NewGC()
	a := newArray(gc, 1)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		fault, ok := r.(*RuntimeFault)
		require.True(t, ok)
		assert.Contains(t, fault.Message, "'object_array' object")
	}()
	AsBool(a)
}

func TestListAppendAndIndex(t *testing.T) {
	gc := NewGC()
	list := NewList(gc, 1)
	list.Append(gc, NewInt(gc, 10))
	list.Append(gc, NewInt(gc, 20))
	list.Append(gc, NewInt(gc, 30))
	require.Equal(t, 3, list.Length)

	got := GetElement(gc, list, NewInt(gc, 1))
	assert.Equal(t, int64(20), got.(*IntObj).Value)

	// negative index
	got = GetElement(gc, list, NewInt(gc, -1))
	assert.Equal(t, int64(30), got.(*IntObj).Value)
}

func TestListIndexOutOfRangePanics(t *testing.T) {
	gc := NewGC()
	list := NewList(gc, 0)
	assert.PanicsWithError(t, "list index out of range", func() {
		GetElement(gc, list, NewInt(gc, 0))
	})
}

func TestStrItemAssignmentFails(t *testing.T) {
	gc := NewGC()
	s := NewStr(gc, []byte("hi"))
	defer func() {
		r := recover()
		require.NotNil(t, r)
		f := r.(*RuntimeFault)
		assert.Contains(t, f.Message, "does not support item assignment")
	}()
	SetElement(gc, s, NewInt(gc, 0), NewInt(gc, 1))
}
