package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashTblInsertAndGet(t *testing.T) {
	h := NewHashTbl(false, false)
	h.Insert("Foo", Num(1))
	h.Insert("bar", String("x"))

	assert.Equal(t, Num(1).Kind(), h.Get("foo").Kind())
	assert.True(t, IsEqual(Num(1), h.Get("FOO")))
	assert.True(t, IsEqual(String("x"), h.Get("BAR")))
	assert.True(t, IsEqual(Empty, h.Get("missing")))
}

func TestHashTblCaseSensitive(t *testing.T) {
	h := NewHashTbl(true, false)
	h.Insert("Foo", Num(1))
	h.Insert("foo", Num(2))

	assert.True(t, IsEqual(Num(1), h.Get("Foo")))
	assert.True(t, IsEqual(Num(2), h.Get("foo")))
	assert.Equal(t, 2, h.Len())
}

func TestHashTblSortOnInsert(t *testing.T) {
	h := NewHashTbl(false, true)
	h.Insert("charlie", Num(3))
	h.Insert("alpha", Num(1))
	h.Insert("bravo", Num(2))

	assert.Equal(t, []string{"ALPHA", "BRAVO", "CHARLIE"}, h.Keys())

	// Updating an existing key must not perturb sort order or re-sort.
	h.Insert("alpha", Num(100))
	assert.Equal(t, []string{"ALPHA", "BRAVO", "CHARLIE"}, h.Keys())
}

func TestHashTblIndexAccess(t *testing.T) {
	h := NewHashTbl(false, false)
	h.Insert("a", Num(1))
	h.Insert("b", Num(2))

	assert.True(t, IsEqual(String("A"), h.GetKeyAt(0)))
	assert.True(t, IsEqual(Num(1), h.GetValueAt(0)))
	assert.True(t, IsEqual(Empty, h.GetKeyAt(5)))
	assert.True(t, IsEqual(Empty, h.GetValueAt(-1)))
}

func TestHashTblExistsRemoveClear(t *testing.T) {
	h := NewHashTbl(false, false)
	h.Insert("a", Num(1))

	assert.True(t, h.Exists("A"))
	assert.False(t, h.Exists("b"))
	assert.True(t, h.Remove("a"))
	assert.False(t, h.Remove("a"))
	assert.Equal(t, 0, h.Len())

	h.Insert("x", Num(1))
	h.Insert("y", Num(2))
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Keys())
}

func TestHashTblEqualStructural(t *testing.T) {
	a := NewHashTbl(false, false)
	a.Insert("k", Num(1))
	b := NewHashTbl(false, false)
	b.Insert("k", Num(1))

	assert.True(t, IsEqual(HashTblValue(a), HashTblValue(b)))

	b.Insert("k2", Num(2))
	assert.False(t, IsEqual(HashTblValue(a), HashTblValue(b)))
}

func TestHashTblValueRoundTrip(t *testing.T) {
	h := NewHashTbl(false, false)
	v := HashTblValue(h)

	got, ok := v.AsHashTbl()
	assert.True(t, ok)
	assert.Same(t, h, got)

	_, ok = Num(1).AsHashTbl()
	assert.False(t, ok)
}
