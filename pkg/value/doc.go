// Package value implements the runtime's tagged value model (spec.md §3.1):
// a single Value type covering numbers, strings, booleans, arrays, ordered
// hashtables, functions, modules, class instances, COM/DLL/struct handles,
// file handles, and the sentinel and control-flow kinds the evaluator
// needs.
//
// Value is a tagged struct rather than an interface hierarchy: nearly
// every operation (equality, truthiness, coercion, display) is an
// exhaustive switch over Kind, and a flat struct keeps the common cases
// (numbers, strings, booleans) allocation-free. Variants that carry
// shared-mutable state (HashTbl, Module, Instance, file handles, struct
// heap blocks, COM objects) hold a reference-counted handle in the ref
// field instead of a copy, per spec.md §3.1's ownership rules.
package value
