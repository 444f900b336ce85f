package dllcall

import (
	"fmt"

	"github.com/wscript-lang/runtime/pkg/ustruct"
)

// ParamType is the declared type of one DLL call parameter or its return
// value, reusing pkg/ustruct's type vocabulary.
type ParamType = ustruct.MemberType

// Signature describes a resolved function's calling contract: the
// ordered parameter types and the return type. Every parameter is passed
// by value in a single machine word except String/Wstring/Pchar/PWchar,
// which are passed as a pointer to an owned, null-terminated buffer the
// caller keeps alive for the duration of the call. Float and Double
// parameters are not supported: the Windows caller rejects them.
type Signature struct {
	Params []ParamType
	Return ParamType
}

// Func is a resolved, callable entry point in a loaded DLL.
type Func struct {
	dllName  string
	funcName string
	sig      Signature
	caller   nativeCaller
}

// Display satisfies value.ExtRef.
func (f *Func) Display() string {
	return fmt.Sprintf("dll: %s!%s", f.dllName, f.funcName)
}

// Name returns the exported symbol name.
func (f *Func) Name() string { return f.funcName }

// DLL returns the owning module's file name.
func (f *Func) DLL() string { return f.dllName }

// Signature returns the function's parameter/return type contract.
func (f *Func) Signature() Signature { return f.sig }
