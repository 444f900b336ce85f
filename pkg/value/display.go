package value

import (
	"strconv"
	"strings"
)

// Display renders v's canonical string form (spec.md §3.1), the form
// used by the `+` string operator and by print. Display never touches
// Win32 handles or COM objects beyond formatting their numeric/textual
// identity — it performs no syscalls and no round-trips.
func (v Value) Display() string {
	switch v.kind {
	case KindNum:
		return formatNum(v.num)
	case KindString:
		return v.str
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindEmpty, KindEmptyParam:
		return ""
	case KindNull:
		return "NULL"
	case KindNothing:
		return "NOTHING"
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.Display()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindHashTbl:
		h, ok := v.ref.(*HashTbl)
		if !ok {
			return "{}"
		}
		keys := h.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = `"` + k + `": ` + h.Get(k).Display()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindContinue:
		return "Continue " + strconv.Itoa(int(v.num))
	case KindBreak:
		return "Break " + strconv.Itoa(int(v.num))
	case KindExit:
		return "Exit"
	case KindExitExit:
		return "ExitExit (" + strconv.Itoa(int(v.num)) + ")"
	case KindEval, KindExpandableTB:
		return v.str
	case KindDestructorNotFound:
		return "no destructor"
	case KindHandle:
		return "0x" + strconv.FormatUint(uint64(v.num), 16)
	case KindRegEx:
		return "regex: " + v.str
	case KindGlobal:
		return "GLOBAL"
	case KindVersion:
		ver, _ := v.ref.(Version)
		return ver.String()
	case KindEnum:
		e, ok := v.ref.(*Enum)
		if !ok {
			return "Enum"
		}
		return "Enum " + e.Name
	case KindFunction:
		f, ok := v.ref.(*FunctionInfo)
		if !ok {
			return "function"
		}
		return f.displayKind() + ": " + f.Name + "(" + strings.Join(f.Params, ", ") + ")"
	case KindAnonFunc:
		f, ok := v.ref.(*FunctionInfo)
		if !ok {
			return "anonymous_func()"
		}
		name := "anonymous_func"
		if f.IsProc {
			name = "anonymous_proc"
		}
		return name + "(" + strings.Join(f.Params, ", ") + ")"
	case KindBuiltinFunction:
		name, _ := v.ref.(string)
		return "builtin: " + name + "()"
	case KindJSON:
		u, ok := v.ref.(*UObject)
		if !ok {
			return "UObject: null"
		}
		b, err := u.MarshalJSON()
		if err != nil {
			return "UObject: " + err.Error()
		}
		return "UObject: " + string(b)
	case KindModule:
		if n, ok := v.ref.(NamedRef); ok {
			return "module: " + n.RefName()
		}
	case KindClass:
		if n, ok := v.ref.(NamedRef); ok {
			return "class: " + n.RefName()
		}
	case KindThis:
		if n, ok := v.ref.(NamedRef); ok {
			return "THIS (" + n.RefName() + ")"
		}
	case KindInstance:
		if ins, ok := v.ref.(InstanceRef); ok {
			if ins.IsDisposed() {
				return "NOTHING"
			}
			return "instance of " + ins.RefName() + " [" + strconv.Itoa(ins.RefID()) + "]"
		}
	case KindComObject, KindUnknown, KindVariant, KindStructDef, KindStructInstance,
		KindFileHandle, KindTaskHandle, KindDllFunc, KindBrowserHandle, KindTabHandle:
		if ref, ok := v.ref.(ExtRef); ok {
			return ref.Display()
		}
	case KindByteArray:
		b, _ := v.ref.([]byte)
		return "bytearray(" + strconv.Itoa(len(b)) + ")"
	}
	return v.kind.String()
}

// NamedRef is implemented by reference-kind handles (pkg/wenv's Module,
// Class) that Display renders by name. Defined here rather than in
// pkg/wenv to avoid a value->wenv import cycle: wenv depends on value,
// not the reverse.
type NamedRef interface {
	RefName() string
}

// InstanceRef is implemented by pkg/wenv.Instance for the same reason.
type InstanceRef interface {
	RefName() string
	RefID() int
	IsDisposed() bool
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
