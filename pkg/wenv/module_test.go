package wenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

func TestModuleNameAndRefName(t *testing.T) {
	m := NewModule("Config")
	assert.Equal(t, "Config", m.Name())
	assert.Equal(t, "Config", m.RefName())
}

func TestModuleDisplayViaValue(t *testing.T) {
	m := NewModule("Config")
	assert.Equal(t, "module: Config", value.ModuleValue(m).Display())
}

func TestModuleDestructorAbsent(t *testing.T) {
	m := NewModule("Config")
	_, ok := m.Destructor()
	assert.False(t, ok)

	_, err := m.DestructorOrErr()
	assert.ErrorIs(t, err, ErrNoDestructor)
}

func TestModuleDestructorPresent(t *testing.T) {
	m := NewModule("Config")
	fn := value.FunctionValue(&value.FunctionInfo{Name: "Destroy"})
	m.Members().Set("Destroy", fn)
	m.SetDestructorName("DESTROY")

	got, ok := m.Destructor()
	assert.True(t, ok)
	assert.True(t, value.IsEqual(fn, got))
}

func TestModuleGetMemberPublic(t *testing.T) {
	m := NewModule("Config")
	m.Members().Set("Timeout", value.Num(30))

	v, err := m.GetMember("Timeout", false)
	assert.Nil(t, err)
	assert.True(t, value.IsEqual(value.Num(30), v))
}

func TestModuleGetMemberPrivateRejectedFromOutside(t *testing.T) {
	m := NewModule("Config")
	m.Members().Set("_secret", value.String("hidden"))

	_, err := m.GetMember("_secret", false)
	assert.NotNil(t, err)
	assert.Equal(t, werr.KindDotOperator, err.Kind)
}

func TestModuleGetMemberPrivateAllowedFromThis(t *testing.T) {
	m := NewModule("Config")
	m.Members().Set("_secret", value.String("hidden"))

	v, err := m.GetMember("_secret", true)
	assert.Nil(t, err)
	assert.True(t, value.IsEqual(value.String("hidden"), v))
}

func TestModuleGetMemberPrivateNotFoundStillRejected(t *testing.T) {
	m := NewModule("Config")

	_, err := m.GetMember("_neverDeclared", false)
	assert.NotNil(t, err)
	assert.Equal(t, werr.KindDotOperator, err.Kind)
}

func TestModuleSetMemberPrivateRejectedFromOutside(t *testing.T) {
	m := NewModule("Config")

	err := m.SetMember("_secret", value.Num(1), false)
	assert.NotNil(t, err)
	_, ok := m.Members().GetLocal("_secret")
	assert.False(t, ok)
}

func TestModuleClearAnonFuncCaptures(t *testing.T) {
	m := NewModule("X")
	f := &value.FunctionInfo{Captured: "outer-scope"}
	m.Members().Set("cb", value.AnonFuncValue(f))

	m.clearAnonFuncCaptures()

	v, _ := m.Members().GetLocal("cb")
	got, _ := v.AsFunction()
	assert.Nil(t, got.Captured)
}
