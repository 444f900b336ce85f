package task

import (
	"sync"

	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

// Func is the body a task runs on its own goroutine. The evaluator (out
// of this repository's scope) supplies one that walks a function-call AST
// node and returns its result the same way a synchronous call would.
type Func func() (value.Value, *werr.Error)

// Task is a single spawn/resolve-once handoff between the evaluator
// thread and a worker goroutine, grounded on the begin-exactly-once /
// idempotent-completion shape used elsewhere in this runtime for
// disposal (pkg/wenv.Instance.Dispose): resolution happens exactly once
// regardless of how many goroutines race to observe it, and repeat
// observers all see the same result.
type Task struct {
	done   chan struct{}
	once   sync.Once
	result value.Value
	err    *werr.Error
}

// Spawn starts fn on a new goroutine and returns immediately with a
// handle the caller later awaits.
func Spawn(fn Func) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		v, err := fn()
		t.resolve(v, err)
	}()
	return t
}

func (t *Task) resolve(v value.Value, err *werr.Error) {
	t.once.Do(func() {
		t.result = v
		t.err = err
		close(t.done)
	})
}

// Await blocks until the task resolves and returns its value/error. Safe
// to call more than once and from more than one goroutine; every caller
// observes the same resolved pair.
func (t *Task) Await() (value.Value, *werr.Error) {
	<-t.done
	return t.result, t.err
}

// Done reports whether the task has resolved, without blocking.
func (t *Task) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Display satisfies value.ExtRef.
func (t *Task) Display() string {
	if t.Done() {
		return "Task (resolved)"
	}
	return "Task (running)"
}
