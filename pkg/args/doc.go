// Package args implements builtin argument dispatch and coercion
// (spec.md §4.3): typed extraction of a dynamically-typed argument list
// into the concrete Go type a builtin function wants, with
// EmptyParam-aware default handling for optional positional arguments.
//
// Grounded on original_source/src/evaluator/builtins.rs's
// BuiltinFuncArgs::get_as_* method family: each extractor here mirrors
// one of those, adapted to Go generics instead of Rust's cast::From
// trait bound.
package args
