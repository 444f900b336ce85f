package ustruct

import (
	"sync"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/wscript-lang/runtime/pkg/werr"
)

// DefaultStringBufferCapacity is the buffer size, in bytes, a
// String/Pchar/Wstring/PWchar member gets on construction when its
// definition does not declare an explicit capacity via `len` (spec.md
// §3.4: "allocate a default 1 KiB buffer on construction").
const DefaultStringBufferCapacity = 1024

// StringBuffer is an owned, independently allocated block of encoded text
// that a struct's String/Pchar/Wstring/PWchar member points at. It is kept
// alive by the Instance that created it (struct-resident storage for
// these member types is only a pointer, never inline bytes), standing in
// for a malloc'd native C string.
//
// capacity is the buffer's fixed ceiling in bytes (including the null
// terminator); data holds only the bytes actually in use. Tracking used
// length separately from capacity, rather than always carrying a
// capacity-sized slice, keeps Len/Bytes reporting the logical string
// size while still letting Set reject an assignment that would not fit.
type StringBuffer struct {
	mu       sync.Mutex
	wide     bool
	capacity int
	data     []byte
}

var ansiEncoding = charmap.Windows1252
var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// NewStringBuffer encodes text into an owned buffer, null-terminated, in
// ANSI (Windows-1252) or UTF-16LE depending on wide, under the default
// 1 KiB capacity.
func NewStringBuffer(text string, wide bool) (*StringBuffer, error) {
	return NewStringBufferWithCapacity(text, wide, DefaultStringBufferCapacity)
}

// NewStringBufferWithCapacity is NewStringBuffer with an explicit
// capacity ceiling, used when the member definition declares one via
// `len` instead of taking the default. Returns a
// UStructStringMemberSizeOverflow error when the encoded text (plus its
// null terminator) does not fit within capacity.
func NewStringBufferWithCapacity(text string, wide bool, capacity int) (*StringBuffer, error) {
	var encoded []byte
	if wide {
		enc, err := wideEncoding.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, err
		}
		encoded = append(enc, 0, 0)
	} else {
		enc, err := ansiEncoding.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, err
		}
		encoded = append(enc, 0)
	}
	if len(encoded) > capacity {
		return nil, werr.New(werr.KindUStruct, werr.MsgUStructStringMemberSizeOverflow(capacity, len(encoded)))
	}
	return &StringBuffer{wide: wide, capacity: capacity, data: encoded}, nil
}

// Capacity returns the buffer's fixed ceiling in bytes.
func (b *StringBuffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// Bytes returns the raw encoded buffer, including its null terminator.
func (b *StringBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Len returns the buffer length in bytes, including the terminator.
func (b *StringBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Text decodes the buffer back to a Go string. When trimNulls is true
// (String/Wstring member reads) decoding stops at the first null unit;
// when false (Pchar/PWchar reads) the raw decoded text, embedded nulls
// included, is returned verbatim. This mirrors fix_string's distinction
// between "text" member types and "raw char buffer" member types in the
// original engine.
func (b *StringBuffer) Text(trimNulls bool) (string, error) {
	b.mu.Lock()
	raw := make([]byte, len(b.data))
	copy(raw, b.data)
	wide := b.wide
	b.mu.Unlock()

	src := raw
	if trimNulls {
		src = trimTrailingNulls(raw, wide)
	}

	if wide {
		s, err := wideEncoding.NewDecoder().String(string(src))
		if err != nil {
			return "", err
		}
		return s, nil
	}
	s, err := ansiEncoding.NewDecoder().String(string(src))
	if err != nil {
		return "", err
	}
	return s, nil
}

// Set replaces the buffer's contents with a freshly encoded copy of text,
// keeping the same width and capacity. Used when a struct member is
// assigned a new string value in place rather than via a fresh
// allocation. Fails with UStructStringMemberSizeOverflow if text does not
// fit within the buffer's existing capacity.
func (b *StringBuffer) Set(text string) error {
	b.mu.Lock()
	wide, capacity := b.wide, b.capacity
	b.mu.Unlock()

	nb, err := NewStringBufferWithCapacity(text, wide, capacity)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.data = nb.data
	b.mu.Unlock()
	return nil
}

func trimTrailingNulls(raw []byte, wide bool) []byte {
	if wide {
		for i := 0; i+1 < len(raw); i += 2 {
			if raw[i] == 0 && raw[i+1] == 0 {
				return raw[:i]
			}
		}
		return raw
	}
	for i, c := range raw {
		if c == 0 {
			return raw[:i]
		}
	}
	return raw
}
