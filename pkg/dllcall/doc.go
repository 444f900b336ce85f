// Package dllcall resolves and invokes foreign DLL functions by name,
// backing the language's dll-function-call builtin. Argument and return
// types reuse pkg/ustruct.MemberType's natural-layout type vocabulary
// rather than inventing a parallel one, since a DLL call's parameter list
// is exactly a flat, unpadded sequence of the same Int/Long/Pointer/
// String/… primitives a struct member can hold.
package dllcall
