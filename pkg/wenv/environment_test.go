package wenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

func TestScopeSetGetCaseFolded(t *testing.T) {
	s := NewScope()
	s.Set("Foo", value.Num(1))

	v, ok := s.Get("FOO")
	assert.True(t, ok)
	assert.True(t, value.IsEqual(value.Num(1), v))
}

func TestScopeWalksOuterOnMiss(t *testing.T) {
	outer := NewScope()
	outer.Set("x", value.Num(10))
	inner := NewScopeWithOuter(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.True(t, value.IsEqual(value.Num(10), v))

	_, ok = inner.GetLocal("x")
	assert.False(t, ok)
}

func TestScopeSetShadowsOuter(t *testing.T) {
	outer := NewScope()
	outer.Set("x", value.Num(1))
	inner := NewScopeWithOuter(outer)
	inner.Set("x", value.Num(2))

	v, _ := inner.Get("x")
	assert.True(t, value.IsEqual(value.Num(2), v))
	ov, _ := outer.Get("x")
	assert.True(t, value.IsEqual(value.Num(1), ov))
}

func TestScopeAssignUpdatesNearestExisting(t *testing.T) {
	outer := NewScope()
	outer.Set("x", value.Num(1))
	inner := NewScopeWithOuter(outer)

	found, err := inner.Assign("x", value.Num(99))
	assert.True(t, found)
	assert.Nil(t, err)

	v, _ := outer.Get("x")
	assert.True(t, value.IsEqual(value.Num(99), v))

	found, err = inner.Assign("undeclared", value.Num(1))
	assert.False(t, found)
	assert.Nil(t, err)
}

func TestScopeIsDefined(t *testing.T) {
	s := NewScope()
	assert.False(t, s.IsDefined("x"))
	s.Set("x", value.Empty)
	assert.True(t, s.IsDefined("x"))
}

func TestScopeDefineRejectsRedeclaration(t *testing.T) {
	s := NewScope()
	err := s.Define("x", KindVariable, value.Num(1))
	assert.Nil(t, err)

	err = s.Define("X", KindFunction, value.Num(2))
	assert.NotNil(t, err)
	assert.Equal(t, werr.KindDefinition, err.Kind)
}

func TestScopeDefineTracksKind(t *testing.T) {
	s := NewScope()
	assert.Nil(t, s.Define("PI", KindConst, value.Num(3.14)))

	kind, ok := s.Kind("pi")
	assert.True(t, ok)
	assert.Equal(t, KindConst, kind)
}

func TestScopeAssignRejectsConstReassignment(t *testing.T) {
	s := NewScope()
	assert.Nil(t, s.Define("PI", KindConst, value.Num(3.14)))

	found, err := s.Assign("PI", value.Num(0))
	assert.True(t, found)
	assert.NotNil(t, err)
	assert.Equal(t, werr.KindAssign, err.Kind)

	v, _ := s.Get("PI")
	assert.True(t, value.IsEqual(value.Num(3.14), v))
}

func TestScopeAssignAllowsVariableReassignment(t *testing.T) {
	s := NewScope()
	assert.Nil(t, s.Define("x", KindVariable, value.Num(1)))

	found, err := s.Assign("x", value.Num(2))
	assert.True(t, found)
	assert.Nil(t, err)

	v, _ := s.Get("x")
	assert.True(t, value.IsEqual(value.Num(2), v))
}
