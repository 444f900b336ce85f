package value

// Value is the runtime's single tagged value type (spec.md §3.1, §2).
// Arrays and strings are value-copied on assignment; ref holds a
// reference-counted handle for shared-mutable containers (hashtables,
// modules, class instances, file handles, struct heap blocks, COM
// objects) per the ownership rules in spec.md §3.1.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	arr  []Value
	ref  any
}

// Kind reports the variant currently held.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the canonical type name (spec.md §4.1 get_type).
func (v Value) TypeName() string { return v.kind.String() }

// Sentinels. These carry no payload and are safe to share by value.
var (
	Empty      = Value{kind: KindEmpty}
	EmptyParam = Value{kind: KindEmptyParam}
	Null       = Value{kind: KindNull}
	Nothing    = Value{kind: KindNothing}
	Global     = Value{kind: KindGlobal}
	Exit       = Value{kind: KindExit}

	DestructorNotFound = Value{kind: KindDestructorNotFound}
)

// Num constructs a numeric value.
func Num(f float64) Value { return Value{kind: KindNum, num: f} }

// String constructs a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Array constructs an array value. The slice is copied so later mutation
// of the caller's slice does not alias the Value, matching the
// value-copy-on-assignment rule for arrays.
func Array(xs []Value) Value {
	cp := make([]Value, len(xs))
	copy(cp, xs)
	return Value{kind: KindArray, arr: cp}
}

// AsArray returns the element slice and whether v actually holds an array.
// The returned slice aliases v's storage; callers that mutate it must not
// assume the original Value observes the change (arrays are value types).
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// ByteArray constructs a byte-array value, used by struct/COM/DLL byte
// buffer round-trips.
func ByteArray(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindByteArray, ref: cp}
}

// AsByteArray returns the underlying bytes and whether v holds one.
func (v Value) AsByteArray() ([]byte, bool) {
	b, ok := v.ref.([]byte)
	return b, ok && v.kind == KindByteArray
}

// RegEx constructs a regular-expression pattern value (the pattern text
// itself; compilation is the evaluator's concern).
func RegEx(pattern string) Value { return Value{kind: KindRegEx, str: pattern} }

// Handle constructs a raw numeric handle value (HWND and similar).
func Handle(h uintptr) Value { return Value{kind: KindHandle, num: float64(h)} }

// AsHandle returns the numeric handle value.
func (v Value) AsHandle() (uintptr, bool) {
	if v.kind != KindHandle {
		return 0, false
	}
	return uintptr(v.num), true
}

// ExitExit constructs the control-flow sentinel carrying the process exit
// code requested by the global stop hotkey (spec.md §5/§7).
func ExitExit(code int) Value { return Value{kind: KindExitExit, num: float64(code)} }

// ExitExitCode returns the carried exit code.
func (v Value) ExitExitCode() (int, bool) {
	if v.kind != KindExitExit {
		return 0, false
	}
	return int(v.num), true
}

// ContinueN / BreakN carry the loop-nesting depth for labeled
// continue/break control flow.
func ContinueN(n int) Value { return Value{kind: KindContinue, num: float64(n)} }
func BreakN(n int) Value    { return Value{kind: KindBreak, num: float64(n)} }

// LoopDepth returns the nesting depth carried by a Continue/Break value.
func (v Value) LoopDepth() (int, bool) {
	if v.kind != KindContinue && v.kind != KindBreak {
		return 0, false
	}
	return int(v.num), true
}

// Eval constructs a value carrying raw source text for the eval() builtin
// to re-parse (spec.md §6 invoke_eval_script).
func Eval(src string) Value { return Value{kind: KindEval, str: src} }

// ExpandableTB constructs an expandable-textblock value: string content
// that is re-evaluated for embedded variable interpolation at each use.
func ExpandableTB(s string) Value { return Value{kind: KindExpandableTB, str: s} }

// newRefValue is the shared constructor for kinds that carry a handle in
// ref. Internal to the package; public constructors for each such kind
// live alongside their handle types (hashtbl.go, refkinds.go, extrefs.go, …).
func newRefValue(k Kind, ref any) Value { return Value{kind: k, ref: ref} }

// refOf returns the raw handle payload and whether v's kind matches k.
// Used by the files of this package (hashtbl.go, extrefs.go, …) that
// define the typed accessors; unexported.
func (v Value) refOf(k Kind) (any, bool) {
	if v.kind != k {
		return nil, false
	}
	return v.ref, true
}
