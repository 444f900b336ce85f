// Package task implements the background-task half of the concurrency
// model: user code spawns a function onto an OS worker thread via task()
// and later awaits its resolved value. The evaluator thread itself stays
// single-threaded cooperative; a Task is the only place script state
// crosses a goroutine boundary, and it does so through a single
// resolve-once handoff.
package task
