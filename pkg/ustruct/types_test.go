package ustruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElemSizes(t *testing.T) {
	cases := map[MemberType]int{
		Int: 4, Long: 4, Bool: 4, Uint: 4, Dword: 4,
		Float: 4, Double: 8, Word: 2, Wchar: 2,
		Byte: 1, Char: 1, Boolean: 1, Longlong: 8,
		Hwnd: 8, Pointer: 8, String: 8, Pchar: 8, Wstring: 8, PWchar: 8,
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.elemSize(), typ.String())
	}
}

func TestIsWideAndCharLike(t *testing.T) {
	assert.True(t, Wstring.IsWide())
	assert.True(t, PWchar.IsWide())
	assert.False(t, String.IsWide())
	assert.False(t, Pchar.IsWide())

	assert.True(t, Pchar.IsCharLike())
	assert.True(t, PWchar.IsCharLike())
	assert.False(t, String.IsCharLike())
	assert.False(t, Wstring.IsCharLike())
}

func TestIsStringPointer(t *testing.T) {
	for _, typ := range []MemberType{String, Pchar, Wstring, PWchar} {
		assert.True(t, typ.isStringPointer())
	}
	assert.False(t, Int.isStringPointer())
}

func TestParseMemberTypeRoundTripsWithString(t *testing.T) {
	for _, typ := range []MemberType{
		Int, Long, Bool, Uint, Dword, Float, Double, Word, Wchar,
		Byte, Char, Boolean, Longlong, Hwnd, Pointer, String, Pchar,
		Wstring, PWchar,
	} {
		parsed, err := ParseMemberType(typ.String())
		assert.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	parsed, err := ParseMemberType("DWORD")
	assert.NoError(t, err)
	assert.Equal(t, Dword, parsed)
}

func TestParseMemberTypeRejectsUnknown(t *testing.T) {
	_, err := ParseMemberType("nonsense")
	assert.Error(t, err)
}
