// Package ustruct implements the binary struct engine: struct definitions
// compiled to a natural (unpadded) C-ABI layout, a per-instance heap block
// holding the live field bytes, and typed field access on top of it.
//
// A StructDef knows only offsets and sizes; it never allocates. New turns a
// StructDef into an Instance backed by a freshly zeroed byte slice standing
// in for a native HeapAlloc block. String-typed members own a separate
// buffer (StringBuffer); the struct's own pointer-width slot receives a
// synthetic non-zero handle standing in for that buffer's address,
// mirroring how the original runtime keeps C strings alive independently
// of the struct that points at them.
package ustruct
