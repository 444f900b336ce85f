// Package comobj bridges the language's value model to COM automation
// objects: creating an object from a ProgID/CLSID, invoking properties
// and methods through IDispatch, indexed access, collection iteration,
// WMI method execution, and registering event sink callbacks.
//
// The real IDispatch plumbing (dispatch_windows.go) is windows-build-tagged
// and talks to ole32/oleaut32 directly through golang.org/x/sys/windows,
// the same "clean wrapper over an awkward generated C ABI" shape the
// pkg/dllcall package applies to LoadLibrary/GetProcAddress. On other
// platforms creating or attaching to an object fails with a clear
// "requires windows" error, so the cross-platform argument-marshalling
// and reconciliation logic this package also contains (variant
// conversion tables, the property/method/collection fallbacks in
// object.go) stays independently testable everywhere.
package comobj
