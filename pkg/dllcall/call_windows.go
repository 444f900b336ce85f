//go:build windows

package dllcall

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wscript-lang/runtime/pkg/ustruct"
)

type windowsCaller struct {
	proc *windows.LazyProc
}

// Load resolves funcName in dllName, returning a callable Func. The DLL
// is loaded lazily (on first Call) by windows.NewLazyDLL/NewProc,
// the same deferred-resolution style the original runtime uses so a
// script that merely declares a dll function without calling it never
// pays the LoadLibrary cost.
func Load(dllName, funcName string, sig Signature) (*Func, error) {
	dll := windows.NewLazyDLL(dllName)
	proc := dll.NewProc(funcName)
	return &Func{
		dllName:  dllName,
		funcName: funcName,
		sig:      sig,
		caller:   &windowsCaller{proc: proc},
	}, nil
}

func (c *windowsCaller) call(sig Signature, args []Arg) (Result, error) {
	words := make([]uintptr, len(args))
	keepAlive := make([]any, 0, len(args))

	for i, a := range args {
		w, alive, err := marshalArg(a)
		if err != nil {
			return Result{}, fmt.Errorf("dllcall: argument %d: %w", i, err)
		}
		words[i] = w
		if alive != nil {
			keepAlive = append(keepAlive, alive)
		}
	}

	r1, _, callErr := c.proc.Call(words...)
	runtime.KeepAlive(keepAlive)

	// A non-nil callErr from a LazyProc.Call is only meaningful when the
	// underlying syscall sets last-error; many DLL calls return 0/garbage
	// in GetLastError on success. callErr is therefore discarded: the
	// Result carries only the primary return word, and no last-error
	// value reaches the caller.
	_ = callErr

	return resultFromWord(sig.Return, r1), nil
}

func marshalArg(a Arg) (uintptr, any, error) {
	switch a.Type {
	case ustruct.Int, ustruct.Long, ustruct.Bool, ustruct.Uint, ustruct.Dword,
		ustruct.Word, ustruct.Wchar, ustruct.Byte, ustruct.Char, ustruct.Boolean,
		ustruct.Longlong, ustruct.Hwnd, ustruct.Pointer:
		return uintptr(a.Int), nil, nil
	case ustruct.Float, ustruct.Double:
		return uintptr(0), nil, fmt.Errorf("float/double arguments require the FPU calling convention, not supported by the generic word-based caller")
	case ustruct.String, ustruct.Pchar:
		buf, err := ustruct.NewStringBuffer(a.Str, false)
		if err != nil {
			return 0, nil, err
		}
		b := buf.Bytes()
		return uintptr(unsafe.Pointer(&b[0])), b, nil
	case ustruct.Wstring, ustruct.PWchar:
		buf, err := ustruct.NewStringBuffer(a.Str, true)
		if err != nil {
			return 0, nil, err
		}
		b := buf.Bytes()
		return uintptr(unsafe.Pointer(&b[0])), b, nil
	case ustruct.UStructMember:
		if len(a.Bytes) == 0 {
			return 0, nil, fmt.Errorf("struct-by-pointer argument has no backing bytes")
		}
		return uintptr(unsafe.Pointer(&a.Bytes[0])), a.Bytes, nil
	default:
		return 0, nil, fmt.Errorf("unsupported argument type %v", a.Type)
	}
}

func resultFromWord(t ParamType, w uintptr) Result {
	switch t {
	case ustruct.String, ustruct.Pchar:
		return Result{Type: t, Str: windows.BytePtrToString((*byte)(unsafe.Pointer(w)))}
	case ustruct.Wstring, ustruct.PWchar:
		return Result{Type: t, Str: windows.UTF16PtrToString((*uint16)(unsafe.Pointer(w)))}
	default:
		return Result{Type: t, Int: int64(w)}
	}
}
