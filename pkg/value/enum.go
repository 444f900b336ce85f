package value

// Enum is a named group of integer constants (spec.md §4 supplemented
// feature, grounded on original_source's UEnum), used for namespacing
// Win32-style constant blocks so script code can write Kind.MEMBER
// instead of a flat global constant per value.
type Enum struct {
	Name    string
	Members map[string]float64
}

// NewEnum constructs an Enum with the given name and member set. The
// members map is copied so the caller's map may be reused afterward.
func NewEnum(name string, members map[string]float64) *Enum {
	cp := make(map[string]float64, len(members))
	for k, v := range members {
		cp[k] = v
	}
	return &Enum{Name: name, Members: cp}
}

// Member looks up a named constant within the enum.
func (e *Enum) Member(name string) (float64, bool) {
	f, ok := e.Members[name]
	return f, ok
}

// EnumValue wraps e in a Value.
func EnumValue(e *Enum) Value { return newRefValue(KindEnum, e) }

// AsEnum returns the Enum payload and whether v holds one.
func (v Value) AsEnum() (*Enum, bool) {
	e, ok := v.ref.(*Enum)
	return e, ok && v.kind == KindEnum
}
