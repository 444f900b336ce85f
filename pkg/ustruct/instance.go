package ustruct

import (
	"fmt"
	"sync/atomic"

	"github.com/wscript-lang/runtime/internal/buf"
	"github.com/wscript-lang/runtime/internal/format"
	"github.com/wscript-lang/runtime/pkg/werr"
)

var stringHandleCounter uint64

// nextStringHandle hands out a synthetic, monotonically increasing,
// non-zero pointer value to store in a string member's address slot.
// There is no real process memory behind it; callers only ever
// dereference it through GetString/SetString on the owning Instance.
func nextStringHandle() uint64 {
	return atomic.AddUint64(&stringHandleCounter, 1)
}

// Instance is a live struct value: a StructDef paired with a zeroed byte
// block holding its field bytes, standing in for a native heap
// allocation. String-typed members additionally own a StringBuffer,
// tracked here so it is released (eligible for GC) together with the
// Instance rather than the moment a new value is assigned to the field.
type Instance struct {
	def     *StructDef
	mem     []byte
	strings map[string]*StringBuffer
}

// New allocates a zeroed Instance for def.
func New(def *StructDef) *Instance {
	return &Instance{
		def:     def,
		mem:     make([]byte, def.Size()),
		strings: make(map[string]*StringBuffer),
	}
}

// NewFromPointer builds a borrowed view over an already-existing byte
// block rather than allocating a fresh one, used for nested-struct member
// access where the bytes live inside a parent Instance's memory.
func NewFromPointer(def *StructDef, mem []byte) (*Instance, error) {
	if len(mem) < def.Size() {
		return nil, werr.New(werr.KindUStruct, werr.MsgStructMemberSizeError(def.Size()))
	}
	return &Instance{def: def, mem: mem[:def.Size()], strings: make(map[string]*StringBuffer)}, nil
}

// Def returns the struct definition backing this instance.
func (ins *Instance) Def() *StructDef { return ins.def }

// Bytes returns the instance's backing memory directly (not a copy), for
// handing to native-call marshalling code that needs the raw block
// address/contents.
func (ins *Instance) Bytes() []byte { return ins.mem }

func (ins *Instance) member(name string) (MemberDef, *werr.Error) {
	m, ok := ins.def.Member(name)
	if !ok {
		return MemberDef{}, werr.New(werr.KindUStruct, werr.MsgMemberNotFound(name))
	}
	return m, nil
}

func (ins *Instance) memberOffset(m MemberDef, index int) (int, *werr.Error) {
	if index < 0 || index >= m.count() {
		return 0, werr.New(werr.KindUStruct, werr.MsgStructMemberSizeError(m.count()))
	}
	elemSize := m.size() / m.count()
	off, ok := buf.AddOverflowSafe(m.Offset, index*elemSize)
	if !ok || !buf.Has(ins.mem, off, elemSize) {
		return 0, werr.New(werr.KindUStruct, werr.MsgStructMemberSizeError(m.count()))
	}
	return off, nil
}

// GetInt reads a scalar or array-indexed numeric member as an int64.
// String and nested-struct members are rejected; use GetString/Nested
// for those.
func (ins *Instance) GetInt(name string, index int) (int64, error) {
	m, err := ins.member(name)
	if err != nil {
		return 0, err
	}
	off, err := ins.memberOffset(m, index)
	if err != nil {
		return 0, err
	}
	switch m.Type {
	case Int, Long, Bool, Uint, Dword:
		return int64(format.ReadI32(ins.mem, off)), nil
	case Word, Wchar:
		return int64(format.ReadU16(ins.mem, off)), nil
	case Byte, Char, Boolean:
		return int64(format.ReadU8(ins.mem, off)), nil
	case Longlong:
		return int64(format.ReadU64(ins.mem, off)), nil
	case Hwnd, Pointer:
		return int64(format.ReadU64(ins.mem, off)), nil
	default:
		return 0, werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
}

// SetInt writes a scalar or array-indexed numeric member from an int64.
func (ins *Instance) SetInt(name string, index int, v int64) error {
	m, err := ins.member(name)
	if err != nil {
		return err
	}
	off, err := ins.memberOffset(m, index)
	if err != nil {
		return err
	}
	switch m.Type {
	case Int, Long, Bool, Uint, Dword:
		format.PutI32(ins.mem, off, int32(v))
	case Word, Wchar:
		format.PutU16(ins.mem, off, uint16(v))
	case Byte, Char, Boolean:
		format.PutU8(ins.mem, off, uint8(v))
	case Longlong:
		format.PutU64(ins.mem, off, uint64(v))
	case Hwnd, Pointer:
		format.PutU64(ins.mem, off, uint64(v))
	default:
		return werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	return nil
}

// GetFloat reads a Float/Double member.
func (ins *Instance) GetFloat(name string) (float64, error) {
	m, err := ins.member(name)
	if err != nil {
		return 0, err
	}
	switch m.Type {
	case Float:
		return float64(format.ReadF32(ins.mem, m.Offset)), nil
	case Double:
		return format.ReadF64(ins.mem, m.Offset), nil
	default:
		return 0, werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
}

// SetFloat writes a Float/Double member.
func (ins *Instance) SetFloat(name string, v float64) error {
	m, err := ins.member(name)
	if err != nil {
		return err
	}
	switch m.Type {
	case Float:
		format.PutF32(ins.mem, m.Offset, float32(v))
	case Double:
		format.PutF64(ins.mem, m.Offset, v)
	default:
		return werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	return nil
}

// GetString reads a String/Pchar/Wstring/PWchar member by decoding its
// owned StringBuffer. String/Wstring stop at the first null; Pchar/PWchar
// return the raw decoded text with embedded nulls intact.
func (ins *Instance) GetString(name string) (string, error) {
	m, err := ins.member(name)
	if err != nil {
		return "", err
	}
	if !m.Type.isStringPointer() {
		return "", werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	buf, ok := ins.strings[name]
	if !ok {
		return "", nil
	}
	return buf.Text(!m.Type.IsCharLike())
}

// SetString allocates (or replaces) the owned StringBuffer for a
// String/Pchar/Wstring/PWchar member and writes a synthetic handle for
// it into the member's pointer-width slot. The buffer's capacity is the member's
// declared `len` if one was given, else the default 1 KiB (spec.md
// §3.4); a text value that doesn't fit fails with
// UStructStringMemberSizeOverflow.
func (ins *Instance) SetString(name, text string) error {
	m, err := ins.member(name)
	if err != nil {
		return err
	}
	if !m.Type.isStringPointer() {
		return werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	existing, hadBuffer := ins.strings[name]
	capacity := m.Capacity()
	if hadBuffer {
		capacity = existing.Capacity()
	}
	buf, berr := NewStringBufferWithCapacity(text, m.Type.IsWide(), capacity)
	if berr != nil {
		return berr
	}
	ins.strings[name] = buf
	// The backing "memory" here is a Go slice, not a real native address
	// space; record a synthetic, stable, non-zero handle for the pointer
	// slot so a caller reading it back sees a consistent non-null value.
	format.PutU64(ins.mem, m.Offset, nextStringHandle())
	return nil
}

// GetCharArrayString decodes an inline Char/Wchar array member (`char
// name[16]`/`wchar name[16]` in a struct definition) as a String, per
// spec.md §4.4's "wchar[n]/char[n] -> decoded String" rule. Unlike
// String/Wstring this reads directly out of the struct's own memory —
// there is no separate owned buffer — and stops at the first NUL.
func (ins *Instance) GetCharArrayString(name string) (string, error) {
	m, err := ins.member(name)
	if err != nil {
		return "", err
	}
	if m.Type != Char && m.Type != Wchar {
		return "", werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	raw, ok := buf.Slice(ins.mem, m.Offset, m.size())
	if !ok {
		return "", werr.New(werr.KindUStruct, werr.MsgStructMemberSizeError(m.count()))
	}
	wide := m.Type == Wchar
	src := trimTrailingNulls(raw, wide)
	if wide {
		return wideEncoding.NewDecoder().String(string(src))
	}
	return ansiEncoding.NewDecoder().String(string(src))
}

// SetCharArrayString encodes text into an inline Char/Wchar array
// member's own bytes, null-padding any remainder and failing with
// StructMemberSizeError if the encoded text (plus terminator) does not
// fit within the declared array length.
func (ins *Instance) SetCharArrayString(name, text string) error {
	m, err := ins.member(name)
	if err != nil {
		return err
	}
	if m.Type != Char && m.Type != Wchar {
		return werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	wide := m.Type == Wchar

	var encoded []byte
	if wide {
		enc, eerr := wideEncoding.NewEncoder().Bytes([]byte(text))
		if eerr != nil {
			return eerr
		}
		encoded = append(enc, 0, 0)
	} else {
		enc, eerr := ansiEncoding.NewEncoder().Bytes([]byte(text))
		if eerr != nil {
			return eerr
		}
		encoded = append(enc, 0)
	}

	region, ok := buf.Slice(ins.mem, m.Offset, m.size())
	if !ok || len(encoded) > len(region) {
		return werr.New(werr.KindUStruct, werr.MsgStructMemberSizeError(m.count()))
	}
	for i := range region {
		region[i] = 0
	}
	copy(region, encoded)
	return nil
}

// Nested returns a borrowed Instance over a nested UStructMember field,
// sharing the parent's backing memory so writes through the child are
// visible to the parent and vice versa.
func (ins *Instance) Nested(name string, index int) (*Instance, error) {
	m, err := ins.member(name)
	if err != nil {
		return nil, err
	}
	if m.Type != UStructMember {
		return nil, werr.New(werr.KindUStruct, werr.MsgStructMemberTypeError)
	}
	nestedSize := m.Nested.Size()
	off, oerr := ins.memberOffset(m, index)
	if oerr != nil {
		return nil, oerr
	}
	region, ok := buf.Slice(ins.mem, off, nestedSize)
	if !ok {
		return nil, werr.New(werr.KindUStruct, werr.MsgStructMemberSizeError(nestedSize))
	}
	return NewFromPointer(m.Nested, region)
}

func (ins *Instance) Display() string {
	return fmt.Sprintf("%s(%p)", ins.def.Name, ins.mem)
}
