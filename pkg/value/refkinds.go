package value

// ModuleValue, ClassValue, InstanceValue, and ThisValue wrap the
// corresponding pkg/wenv handle in a Value. They live here rather than
// alongside Module/Class/Instance's own definitions because those types
// are owned by pkg/wenv (which imports this package) — value can only
// hold them as an opaque `any` satisfying NamedRef/InstanceRef.

// ModuleValue wraps a module handle (anything implementing NamedRef).
func ModuleValue(m NamedRef) Value { return newRefValue(KindModule, m) }

// ClassValue wraps a class handle.
func ClassValue(c NamedRef) Value { return newRefValue(KindClass, c) }

// ThisValue wraps the module backing a `this`/`self` reference.
func ThisValue(m NamedRef) Value { return newRefValue(KindThis, m) }

// InstanceValue wraps a class-instance handle.
func InstanceValue(i InstanceRef) Value { return newRefValue(KindInstance, i) }

// AsModule returns the module handle and whether v holds one.
func (v Value) AsModule() (NamedRef, bool) {
	if v.kind != KindModule {
		return nil, false
	}
	n, ok := v.ref.(NamedRef)
	return n, ok
}

// AsClass returns the class handle and whether v holds one.
func (v Value) AsClass() (NamedRef, bool) {
	if v.kind != KindClass {
		return nil, false
	}
	n, ok := v.ref.(NamedRef)
	return n, ok
}

// AsThis returns the module backing a this/self reference.
func (v Value) AsThis() (NamedRef, bool) {
	if v.kind != KindThis {
		return nil, false
	}
	n, ok := v.ref.(NamedRef)
	return n, ok
}

// AsInstance returns the instance handle and whether v holds one.
func (v Value) AsInstance() (InstanceRef, bool) {
	if v.kind != KindInstance {
		return nil, false
	}
	i, ok := v.ref.(InstanceRef)
	return i, ok
}
