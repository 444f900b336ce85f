package ustruct

import (
	"fmt"
	"strings"

	"github.com/wscript-lang/runtime/pkg/werr"
)

// MemberType enumerates the field types a struct definition may declare.
// Sizes match the Windows natural (unpadded) layout the runtime targets,
// not Go's own alignment rules.
type MemberType int

const (
	Int MemberType = iota
	Long
	Bool
	Uint
	Dword
	Float
	Double
	Word
	Wchar
	Byte
	Char
	Boolean
	Longlong
	Hwnd
	Pointer
	String
	Pchar
	Wstring
	PWchar
	UStructMember // nested struct, by value
)

// PointerWidth is the size in bytes of a native pointer/handle on the
// target platform. The runtime only ever targets 64-bit Windows, so this
// is fixed rather than runtime-probed.
const PointerWidth = 8

// isStringPointer reports whether members of type t store, in the struct
// itself, a pointer into an out-of-line owned buffer rather than inline
// bytes.
func (t MemberType) isStringPointer() bool {
	switch t {
	case String, Pchar, Wstring, PWchar:
		return true
	default:
		return false
	}
}

// IsWide reports whether a string-pointer member's buffer is UTF-16
// (Wstring/PWchar) rather than ANSI (String/Pchar).
func (t MemberType) IsWide() bool {
	switch t {
	case Wstring, PWchar:
		return true
	default:
		return false
	}
}

// IsCharLike reports whether a member is one of the "raw char" string
// types (Pchar/PWchar) whose contents are not null-trimmed on read,
// as opposed to String/Wstring which are.
func (t MemberType) IsCharLike() bool {
	switch t {
	case Pchar, PWchar:
		return true
	default:
		return false
	}
}

// elemSize returns the natural size, in bytes, of a single element of t.
// For UStructMember the caller must supply the nested definition's size
// separately; elemSize panics if called for that case.
func (t MemberType) elemSize() int {
	switch t {
	case Int, Long, Bool, Uint, Dword, Float, Word:
		// Word is 2 bytes; the rest in this branch are 4.
		if t == Word {
			return 2
		}
		return 4
	case Double, Longlong:
		return 8
	case Byte, Char, Boolean:
		return 1
	case Wchar:
		return 2
	case Hwnd, Pointer:
		return PointerWidth
	case String, Pchar, Wstring, PWchar:
		return PointerWidth
	default:
		panic(fmt.Sprintf("ustruct: elemSize called on %v", t))
	}
}

func (t MemberType) String() string {
	switch t {
	case Int:
		return "int"
	case Long:
		return "long"
	case Bool:
		return "bool"
	case Uint:
		return "uint"
	case Dword:
		return "dword"
	case Float:
		return "float"
	case Double:
		return "double"
	case Word:
		return "word"
	case Wchar:
		return "wchar"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Boolean:
		return "boolean"
	case Longlong:
		return "longlong"
	case Hwnd:
		return "hwnd"
	case Pointer:
		return "pointer"
	case String:
		return "string"
	case Pchar:
		return "pchar"
	case Wstring:
		return "wstring"
	case PWchar:
		return "pwchar"
	case UStructMember:
		return "struct"
	default:
		return "unknown"
	}
}

// ParseMemberType resolves one of spec.md §3.4's fixed type-name tokens
// (the vocabulary a struct-definition string like "int x;char y[16]"
// declares fields with) to its MemberType, case-insensitively. "struct"
// itself cannot be resolved this way since a UStructMember field also
// needs its nested StructDef; callers build that member by hand.
func ParseMemberType(name string) (MemberType, error) {
	switch strings.ToLower(name) {
	case "int":
		return Int, nil
	case "long":
		return Long, nil
	case "bool":
		return Bool, nil
	case "uint":
		return Uint, nil
	case "dword":
		return Dword, nil
	case "float":
		return Float, nil
	case "double":
		return Double, nil
	case "word":
		return Word, nil
	case "wchar":
		return Wchar, nil
	case "byte":
		return Byte, nil
	case "char":
		return Char, nil
	case "boolean":
		return Boolean, nil
	case "longlong":
		return Longlong, nil
	case "hwnd":
		return Hwnd, nil
	case "pointer":
		return Pointer, nil
	case "string":
		return String, nil
	case "pchar":
		return Pchar, nil
	case "wstring":
		return Wstring, nil
	case "pwchar":
		return PWchar, nil
	default:
		return 0, werr.New(werr.KindUStruct, werr.MsgUnknownMemberType(name))
	}
}
