package wenv

import (
	"sync"

	"github.com/wscript-lang/runtime/pkg/value"
)

// DestructorInvoker calls a destructor function value with `this` bound
// to the instance's own module view. The evaluator supplies this (it
// owns function invocation); wenv only needs to run it exactly once.
type DestructorInvoker func(destructor, this value.Value) error

// Instance is a class-instance: its own copy of the class's members, a
// `this`-bindable back-reference, and a lifecycle flag (spec.md §3.3).
// Disposal — whether reached by an explicit call or by the instance
// falling out of scope — runs the destructor exactly once.
type Instance struct {
	id       int
	module   *Module
	disposed bool

	once sync.Once
	mu   sync.Mutex
}

// ID returns the instance's identity number, used in its Display form
// ("instance of X [id]").
func (ins *Instance) ID() int { return ins.id }

// RefID implements value.InstanceRef.
func (ins *Instance) RefID() int { return ins.id }

// RefName implements value.InstanceRef.
func (ins *Instance) RefName() string { return ins.module.Name() }

// IsDisposed implements value.InstanceRef.
func (ins *Instance) IsDisposed() bool {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	return ins.disposed
}

// Module returns the instance's own member scope, used both for normal
// member access and as the `this` binding inside its methods.
func (ins *Instance) Module() *Module { return ins.module }

// This returns the value bound to `this`/`self` inside this instance's
// methods.
func (ins *Instance) This() value.Value { return value.ThisValue(ins.module) }

// Dispose runs the destructor exactly once, then marks the instance
// disposed. invoke is nil-safe: if the class declared no destructor,
// Dispose just marks the instance disposed. Calling Dispose again after
// the first call is a no-op, whichever teardown path reaches it — the
// exactly-once guarantee holds
// regardless of which caller reaches it first.
func (ins *Instance) Dispose(invoke DestructorInvoker) error {
	var err error
	ins.once.Do(func() {
		destructor, ok := ins.module.Destructor()
		if ok && invoke != nil {
			err = invoke(destructor, ins.This())
		}
		ins.mu.Lock()
		ins.disposed = true
		ins.mu.Unlock()
	})
	return err
}
