//go:build !windows

package dllcall

import "fmt"

// Load always fails on non-Windows platforms: foreign DLL calls are a
// Win32-native-ABI feature with no cross-platform equivalent.
func Load(dllName, funcName string, sig Signature) (*Func, error) {
	return nil, fmt.Errorf("dllcall: %s!%s: native DLL calls require windows", dllName, funcName)
}
