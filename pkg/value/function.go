package value

// FunctionInfo is the display/identity payload shared by KindFunction and
// KindAnonFunc values. The evaluator (pkg/wenv, pkg/ast) owns the actual
// parameter/body representation; this package only needs enough to name
// and display a function, so Body and Captured are opaque to it.
type FunctionInfo struct {
	Name     string // empty for anonymous functions
	Params   []string
	IsProc   bool // true for "procedure" (no return value), false for "function"
	Body     any  // *ast.Block or equivalent, owned by the evaluator
	Captured any  // captured scope, owned by pkg/wenv; cleared on instance construction
}

func (f *FunctionInfo) displayKind() string {
	if f.IsProc {
		return "procedure"
	}
	return "function"
}

// FunctionValue wraps a named function in a Value.
func FunctionValue(f *FunctionInfo) Value { return newRefValue(KindFunction, f) }

// AnonFuncValue wraps an anonymous function in a Value.
func AnonFuncValue(f *FunctionInfo) Value { return newRefValue(KindAnonFunc, f) }

// AsFunction returns the FunctionInfo payload for either a named or
// anonymous function value.
func (v Value) AsFunction() (*FunctionInfo, bool) {
	if v.kind != KindFunction && v.kind != KindAnonFunc {
		return nil, false
	}
	f, ok := v.ref.(*FunctionInfo)
	return f, ok
}

// BuiltinFunctionValue wraps a builtin function's name in a Value. The
// dispatch table itself lives in the evaluator; this is only the
// reference carried by the variable bound to a builtin's name.
func BuiltinFunctionValue(name string) Value { return newRefValue(KindBuiltinFunction, name) }

// AsBuiltinFunctionName returns the builtin's name, if v holds one.
func (v Value) AsBuiltinFunctionName() (string, bool) {
	name, ok := v.ref.(string)
	return name, ok && v.kind == KindBuiltinFunction
}
