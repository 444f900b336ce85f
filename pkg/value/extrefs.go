package value

// The kinds below are backed by handle types owned by sibling packages
// (pkg/comobj, pkg/ustruct, pkg/fopen, pkg/task, pkg/dllcall). Each gets a
// narrow Display-only interface here, the same NamedRef/InstanceRef split
// display.go uses for Module/Class/Instance, so those packages can hand a
// handle into a Value without pkg/value ever importing them back.

// ExtRef is satisfied by any handle type wrapped into one of the kinds
// below; Display is all pkg/value itself ever needs from it.
type ExtRef interface {
	Display() string
}

// ComObjectValue wraps a live COM automation object handle.
func ComObjectValue(ref ExtRef) Value { return newRefValue(KindComObject, ref) }

// AsComObject returns the wrapped handle and whether v holds one.
func (v Value) AsComObject() (ExtRef, bool) {
	r, ok := v.refOf(KindComObject)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// UnknownValue wraps a bare IUnknown (no usable IDispatch) handle.
func UnknownValue(ref ExtRef) Value { return newRefValue(KindUnknown, ref) }

// AsUnknown returns the wrapped handle and whether v holds one.
func (v Value) AsUnknown() (ExtRef, bool) {
	r, ok := v.refOf(KindUnknown)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// VariantValue wraps a COM VARIANT payload that didn't map onto one of
// the more specific value kinds (e.g. an unsupported VT_* tag kept only
// for round-tripping back into another Invoke call).
func VariantValue(ref ExtRef) Value { return newRefValue(KindVariant, ref) }

// AsVariant returns the wrapped handle and whether v holds one.
func (v Value) AsVariant() (ExtRef, bool) {
	r, ok := v.refOf(KindVariant)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// StructDefValue wraps a compiled struct definition (pkg/ustruct.StructDef).
func StructDefValue(ref ExtRef) Value { return newRefValue(KindStructDef, ref) }

// AsStructDef returns the wrapped handle and whether v holds one.
func (v Value) AsStructDef() (ExtRef, bool) {
	r, ok := v.refOf(KindStructDef)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// StructInstanceValue wraps a live struct instance (pkg/ustruct.Instance).
func StructInstanceValue(ref ExtRef) Value { return newRefValue(KindStructInstance, ref) }

// AsStructInstance returns the wrapped handle and whether v holds one.
func (v Value) AsStructInstance() (ExtRef, bool) {
	r, ok := v.refOf(KindStructInstance)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// FileHandleValue wraps an open file handle (pkg/fopen.File).
func FileHandleValue(ref ExtRef) Value { return newRefValue(KindFileHandle, ref) }

// AsFileHandle returns the wrapped handle and whether v holds one.
func (v Value) AsFileHandle() (ExtRef, bool) {
	r, ok := v.refOf(KindFileHandle)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// TaskHandleValue wraps a background task handle (pkg/task.Task).
func TaskHandleValue(ref ExtRef) Value { return newRefValue(KindTaskHandle, ref) }

// AsTaskHandle returns the wrapped handle and whether v holds one.
func (v Value) AsTaskHandle() (ExtRef, bool) {
	r, ok := v.refOf(KindTaskHandle)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// DllFuncValue wraps a resolved foreign DLL function handle (pkg/dllcall.Func).
func DllFuncValue(ref ExtRef) Value { return newRefValue(KindDllFunc, ref) }

// AsDllFunc returns the wrapped handle and whether v holds one.
func (v Value) AsDllFunc() (ExtRef, bool) {
	r, ok := v.refOf(KindDllFunc)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

// BrowserHandleValue and TabHandleValue exist only so type()/Display stay
// total over every Kind the language defines; DevTools transport itself is
// explicitly out of scope (spec.md Non-goals), so no package constructs
// these today.
func BrowserHandleValue(ref ExtRef) Value { return newRefValue(KindBrowserHandle, ref) }

func (v Value) AsBrowserHandle() (ExtRef, bool) {
	r, ok := v.refOf(KindBrowserHandle)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}

func TabHandleValue(ref ExtRef) Value { return newRefValue(KindTabHandle, ref) }

func (v Value) AsTabHandle() (ExtRef, bool) {
	r, ok := v.refOf(KindTabHandle)
	if !ok {
		return nil, false
	}
	return r.(ExtRef), true
}
