package werr

// Kind identifies the subsystem an Error originated from.
type Kind int

const (
	KindUnknown Kind = iota
	KindSyntax
	KindUndefined
	KindArray
	KindAssign
	KindBitOperator
	KindBuiltinFunction
	KindCast
	KindClass
	KindCOM
	KindConversion
	KindDefinition
	KindDllFunc
	KindDotOperator
	KindEnum
	KindEvaluator
	KindFuncCall
	KindFuncDef
	KindHashTbl
	KindModule
	KindOperator
	KindProgID
	KindStructDef
	KindStruct
	KindTask
	KindUObject
	KindUserDefined
	KindUStruct
	KindWin32
	KindFileIO
	KindDevtoolsProtocol
	KindBrowserControl
	KindWmi
	KindScreenShot
	KindClipboard
	KindVariant
	KindComArg
	KindComCollection
	KindComEvent
	KindSafeArray
	KindWinControl
	KindControlFlow // ExitExit / Poff: not user-visible failures
)

var kindNames = map[Kind]string{
	KindUnknown:          "UnknownError",
	KindSyntax:           "SyntaxError",
	KindUndefined:        "UndefinedError",
	KindArray:            "ArrayError",
	KindAssign:           "AssignError",
	KindBitOperator:      "BitOperatorError",
	KindBuiltinFunction:  "BuiltinFunctionError",
	KindCast:             "CastError",
	KindClass:            "ClassError",
	KindCOM:              "ComError",
	KindConversion:       "ConversionError",
	KindDefinition:       "DefinitionError",
	KindDllFunc:          "DllFuncError",
	KindDotOperator:      "DotOperatorError",
	KindEnum:             "EnumError",
	KindEvaluator:        "EvaluatorError",
	KindFuncCall:         "FuncCallError",
	KindFuncDef:          "FuncDefError",
	KindHashTbl:          "HashtblError",
	KindModule:           "ModuleError",
	KindOperator:         "OperatorError",
	KindProgID:           "ProgIdError",
	KindStructDef:        "StructDefError",
	KindStruct:           "StructError",
	KindTask:             "TaskError",
	KindUObject:          "UObjectError",
	KindUserDefined:      "UserDefinedError",
	KindUStruct:          "UStructError",
	KindWin32:            "Win32Error",
	KindFileIO:           "FileIOError",
	KindDevtoolsProtocol: "DevtoolsProtocolError",
	KindBrowserControl:   "BrowserControlError",
	KindWmi:              "WmiError",
	KindScreenShot:       "ScreenShotError",
	KindClipboard:        "ClipboardError",
	KindVariant:          "VariantError",
	KindComArg:           "ComArgError",
	KindComCollection:    "ComCollectionError",
	KindComEvent:         "ComEventError",
	KindSafeArray:        "SafeArrayError",
	KindWinControl:       "WinControlError",
	KindControlFlow:      "ControlFlow",
}

// String renders the Kind's canonical identifier, independent of locale.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownError"
}
