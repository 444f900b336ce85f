package ustruct

import "fmt"

// MemberDef describes one field of a StructDef: its declared type, how
// many elements it holds (1 for a scalar, >1 for a fixed-size array), its
// byte offset within the struct, and, for UStructMember fields, the
// nested definition itself.
type MemberDef struct {
	Name   string
	Type   MemberType
	Len    int // element count; 0 and 1 both mean "scalar"
	Offset int
	Nested *StructDef // only set when Type == UStructMember
}

func (m MemberDef) count() int {
	if m.Len <= 0 {
		return 1
	}
	return m.Len
}

// size returns the total byte footprint of the member (element size times
// count, no padding). String/Pchar/Wstring/PWchar members are always
// exactly one pointer wide in the struct's own memory regardless of Len:
// for these types Len declares the owned out-of-line buffer's capacity
// (see Capacity), not an array of pointers.
func (m MemberDef) size() int {
	if m.Type == UStructMember {
		return m.Nested.Size() * m.count()
	}
	if m.Type.isStringPointer() {
		return m.Type.elemSize()
	}
	return m.Type.elemSize() * m.count()
}

// Capacity returns the declared buffer capacity, in bytes, for a
// String/Pchar/Wstring/PWchar member: Len when the definition specified
// one, else the default 1 KiB buffer (spec.md §3.4).
func (m MemberDef) Capacity() int {
	if m.Len > 0 {
		return m.Len
	}
	return DefaultStringBufferCapacity
}

// StructDef is a compiled struct layout: an ordered list of members laid
// out back to back with no alignment padding, matching the original
// runtime's "natural" layout rule.
type StructDef struct {
	Name    string
	Members []MemberDef
	size    int
}

// Lookup resolves a struct name to its StructDef, used to find a nested
// struct's definition when building a MemberDef of type UStructMember.
// Passed in by the caller (the environment/registry that owns struct
// definitions) rather than imported directly, so this package never
// depends on pkg/wenv.
type Lookup func(name string) (*StructDef, bool)

// NewStructDef builds a StructDef from an ordered member list, computing
// each member's offset and the struct's total size as it goes. Members
// of type UStructMember must already carry their Nested definition
// (resolved by the caller via a Lookup before calling NewStructDef).
func NewStructDef(name string, members []MemberDef) (*StructDef, error) {
	def := &StructDef{Name: name}
	off := 0
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m.Name] {
			return nil, fmt.Errorf("ustruct: duplicate member %q in struct %q", m.Name, name)
		}
		seen[m.Name] = true
		if m.Type == UStructMember && m.Nested == nil {
			return nil, fmt.Errorf("ustruct: member %q in struct %q declares struct type with no definition", m.Name, name)
		}
		m.Offset = off
		off += m.size()
		def.Members = append(def.Members, m)
	}
	def.size = off
	return def, nil
}

// Size returns the struct's total byte footprint.
func (d *StructDef) Size() int { return d.size }

// Member looks up a member by name, case-sensitively (member names in
// struct declarations are taken verbatim, unlike variable names).
func (d *StructDef) Member(name string) (MemberDef, bool) {
	for _, m := range d.Members {
		if m.Name == name {
			return m, true
		}
	}
	return MemberDef{}, false
}

func (d *StructDef) Display() string {
	s := d.Name + " {"
	for i, m := range d.Members {
		if i > 0 {
			s += ", "
		}
		s += m.Name + ": " + m.Type.String()
		if m.Len > 1 {
			s += fmt.Sprintf("[%d]", m.Len)
		}
	}
	return s + "}"
}
