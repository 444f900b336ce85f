package dllcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/ustruct"
)

func TestFuncDisplay(t *testing.T) {
	f := &Func{dllName: "user32.dll", funcName: "MessageBoxW", sig: Signature{
		Params: []ParamType{ustruct.Hwnd, ustruct.Wstring, ustruct.Wstring, ustruct.Uint},
		Return: ustruct.Int,
	}}
	assert.Equal(t, "dll: user32.dll!MessageBoxW", f.Display())
	assert.Equal(t, "user32.dll", f.DLL())
	assert.Equal(t, "MessageBoxW", f.Name())
	assert.Len(t, f.Signature().Params, 4)
}

func TestCallRejectsArgCountMismatch(t *testing.T) {
	f := &Func{dllName: "kernel32.dll", funcName: "Beep", sig: Signature{
		Params: []ParamType{ustruct.Dword, ustruct.Dword},
		Return: ustruct.Bool,
	}}
	_, err := f.Call([]Arg{IntArg(ustruct.Dword, 750)})
	assert.Error(t, err)
}

func TestArgConstructors(t *testing.T) {
	a := IntArg(ustruct.Int, 5)
	assert.EqualValues(t, 5, a.Int)

	s := StringArg(ustruct.Wstring, "hi")
	assert.Equal(t, "hi", s.Str)

	fl := FloatArg(ustruct.Double, 1.5)
	assert.Equal(t, 1.5, fl.Float)
}
