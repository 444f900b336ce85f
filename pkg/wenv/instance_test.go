package wenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/value"
)

func TestInstanceDisplayBeforeAndAfterDispose(t *testing.T) {
	c := NewClass("Widget")
	ins := c.New(7)

	assert.Equal(t, "instance of Widget [7]", value.InstanceValue(ins).Display())

	assert.NoError(t, ins.Dispose(nil))
	assert.Equal(t, "NOTHING", value.InstanceValue(ins).Display())
}

func TestInstanceDestructorRunsExactlyOnce(t *testing.T) {
	c := NewClass("Widget")
	c.DeclareField("Destroy", value.FunctionValue(&value.FunctionInfo{Name: "Destroy"}))
	c.SetDestructorName("DESTROY")
	ins := c.New(1)

	calls := 0
	invoke := func(destructor, this value.Value) error {
		calls++
		_, ok := this.AsThis()
		assert.True(t, ok)
		return nil
	}

	assert.NoError(t, ins.Dispose(invoke))
	assert.NoError(t, ins.Dispose(invoke))
	assert.Equal(t, 1, calls)
	assert.True(t, ins.IsDisposed())
}

func TestInstanceDisposeWithoutDestructorIsNoop(t *testing.T) {
	c := NewClass("Widget")
	ins := c.New(1)

	called := false
	invoke := func(destructor, this value.Value) error {
		called = true
		return nil
	}

	assert.NoError(t, ins.Dispose(invoke))
	assert.False(t, called)
}

func TestInstanceDisposePropagatesDestructorError(t *testing.T) {
	c := NewClass("Widget")
	c.DeclareField("Destroy", value.FunctionValue(&value.FunctionInfo{Name: "Destroy"}))
	c.SetDestructorName("DESTROY")
	ins := c.New(1)

	boom := errors.New("boom")
	err := ins.Dispose(func(destructor, this value.Value) error { return boom })
	assert.ErrorIs(t, err, boom)

	// Exactly-once: a second Dispose call does not re-run the destructor
	// or resurface the earlier error.
	assert.NoError(t, ins.Dispose(func(destructor, this value.Value) error {
		t.Fatal("destructor invoked twice")
		return nil
	}))
}
