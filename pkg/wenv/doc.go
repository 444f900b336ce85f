// Package wenv implements the runtime's lexical scoping environment and
// the module/class/instance object model (spec.md §3.3).
//
// A Scope is one link in a parent-pointer chain of scopes, each a
// case-folded name-to-value map, mirroring the original evaluator's
// Env{store, outer} shape. Module, Class, and Instance build on top of
// that same scope primitive: a Module is a scope with a name and a
// lifetime tied to program execution, a Class is a template that
// produces an Instance per construction, and an Instance carries the
// exactly-once destructor semantics the language exposes to scripts.
package wenv
