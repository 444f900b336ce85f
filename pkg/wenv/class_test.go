package wenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/value"
)

func TestClassNewProducesIndependentInstances(t *testing.T) {
	c := NewClass("Counter")
	c.DeclareField("count", value.Num(0))

	a := c.New(1)
	b := c.New(2)

	a.Module().Members().Set("count", value.Num(5))

	av, _ := a.Module().Members().GetLocal("count")
	bv, _ := b.Module().Members().GetLocal("count")

	assert.True(t, value.IsEqual(value.Num(5), av))
	assert.True(t, value.IsEqual(value.Num(0), bv))
}

func TestClassNewClearsAnonFuncCaptures(t *testing.T) {
	c := NewClass("Widget")
	c.DeclareField("cb", value.AnonFuncValue(&value.FunctionInfo{Captured: "scope"}))

	ins := c.New(1)
	v, _ := ins.Module().Members().GetLocal("cb")
	f, _ := v.AsFunction()
	assert.Nil(t, f.Captured)
}

func TestClassDisplayViaValue(t *testing.T) {
	c := NewClass("Widget")
	assert.Equal(t, "class: Widget", value.ClassValue(c).Display())
}
