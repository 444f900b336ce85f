package value

// Kind discriminates the variant a Value currently holds.
type Kind uint8

const (
	KindEmpty      Kind = iota // first-class empty value
	KindEmptyParam             // sentinel: caller omitted this positional argument
	KindNull
	KindNothing // disposed-instance / COM Nothing
	KindNum
	KindString
	KindBool
	KindArray
	KindHashTbl
	KindFunction
	KindAnonFunc
	KindBuiltinFunction
	KindModule
	KindClass
	KindInstance
	KindThis
	KindGlobal
	KindContinue
	KindBreak
	KindExit
	KindExitExit
	KindEval
	KindRegEx
	KindHandle // raw HWND-sized numeric handle
	KindVersion
	KindEnum
	KindJSON // UObject: a JSON-backed dynamic tree (supplemented, see SPEC_FULL.md §4)
	KindComObject
	KindUnknown // IUnknown, no IDispatch
	KindVariant // COM VARIANT that didn't map to a more specific kind
	KindDllFunc
	KindStructDef
	KindStructInstance
	KindByteArray
	KindFileHandle
	KindTaskHandle
	KindBrowserHandle
	KindTabHandle
	KindExpandableTB
	KindDestructorNotFound
	KindSpecialFuncResult
)

var kindNames = [...]string{
	KindEmpty:              "Empty",
	KindEmptyParam:         "EmptyParam",
	KindNull:               "Null",
	KindNothing:            "Nothing",
	KindNum:                "Number",
	KindString:             "String",
	KindBool:               "Bool",
	KindArray:              "Array",
	KindHashTbl:            "HashTbl",
	KindFunction:           "Function",
	KindAnonFunc:           "AnonFunc",
	KindBuiltinFunction:    "BuiltinFunction",
	KindModule:             "Module",
	KindClass:              "Class",
	KindInstance:           "Instance",
	KindThis:               "This",
	KindGlobal:             "Global",
	KindContinue:           "Continue",
	KindBreak:              "Break",
	KindExit:               "Exit",
	KindExitExit:           "ExitExit",
	KindEval:               "Eval",
	KindRegEx:              "RegEx",
	KindHandle:             "Handle",
	KindVersion:            "Version",
	KindEnum:               "Enum",
	KindJSON:               "UObject",
	KindComObject:          "ComObject",
	KindUnknown:            "Unknown",
	KindVariant:            "Variant",
	KindDllFunc:            "DllFunction",
	KindStructDef:          "StructDef",
	KindStructInstance:     "UStruct",
	KindByteArray:          "ByteArray",
	KindFileHandle:         "Fopen",
	KindTaskHandle:         "Task",
	KindBrowserHandle:      "Browser",
	KindTabHandle:          "TabWindow",
	KindExpandableTB:       "ExpandableTB",
	KindDestructorNotFound: "DestructorNotFound",
	KindSpecialFuncResult:  "SpecialFuncResult",
}

// String returns the canonical type name used by the evaluator's type()
// builtin (spec.md §4.1 GetType).
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
