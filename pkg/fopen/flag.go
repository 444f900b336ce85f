package fopen

// Open-mode and option bits, carried over unchanged from the bit layout
// the language's F_* constants use (original_source's fopen.rs
// FopenFlag::from(u32)). Script-visible, so these are not a scheme of
// our own invention the way winctrl.ClkConst is — they're the actual
// wire values a script ORs together when it calls fopen().
const (
	FExists    uint32 = 0x001
	FRead      uint32 = 0x002
	FWrite     uint32 = 0x004 // generic write, encoding auto-detected/UTF-8
	FWrite1    uint32 = 0x008 // Shift-JIS
	FWrite8    uint32 = 0x010 // UTF-8
	FWrite8B   uint32 = 0x020 // UTF-8 with BOM
	FWrite16   uint32 = 0x040 // UTF-16LE
	FNoCR      uint32 = 0x080
	FTab       uint32 = 0x100
	FExclusive uint32 = 0x200
	FAppend    uint32 = 0x400
)

const allWriteMask = FWrite | FWrite1 | FWrite8 | FWrite8B | FWrite16

// Mode is the open mode detected from a flag bitmask.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeRead
	ModeWrite
	ModeReadWrite
	ModeAppend
	ModeExists
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "Read"
	case ModeWrite:
		return "Write"
	case ModeReadWrite:
		return "ReadWrite"
	case ModeAppend:
		return "Append"
	case ModeExists:
		return "Exists"
	default:
		return "Unknown"
	}
}

// Encoding is the text encoding a File reads or writes.
type Encoding int

const (
	EncodingAuto Encoding = iota
	EncodingUTF8
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingSJIS
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF8BOM:
		return "UTF-8 (BOM)"
	case EncodingUTF16LE:
		return "UTF-16LE"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingSJIS:
		return "Shift-JIS"
	default:
		return "Auto"
	}
}

// Flag is the decoded form of an fopen() flag argument.
type Flag struct {
	Mode      Mode
	Encoding  Encoding
	NoCR      bool
	Tab       bool
	Exclusive bool

	raw uint32 // kept for the ModeUnknown error message
}

// ParseFlag decodes a raw fopen() flag bitmask into a Flag. It never
// fails: an unrecognized mode combination comes back as ModeUnknown,
// and Open() is what turns that into an error, matching the original's
// "detect now, fail on open" split.
func ParseFlag(n uint32) Flag {
	var enc Encoding
	hasEncoding := true
	switch n & allWriteMask {
	case FWrite1:
		enc = EncodingSJIS
	case FWrite8:
		enc = EncodingUTF8
	case FWrite8B:
		enc = EncodingUTF8BOM
	case FWrite16:
		enc = EncodingUTF16LE
	case 0:
		hasEncoding = false
	default:
		enc = EncodingAuto
	}

	var mode Mode
	switch {
	case n&FExists == FExists:
		mode = ModeExists
	case n&FAppend == FAppend:
		mode = ModeAppend
	case n&FRead == FRead:
		if hasEncoding {
			mode = ModeReadWrite
		} else {
			mode = ModeRead
		}
	case hasEncoding:
		mode = ModeWrite
	default:
		mode = ModeUnknown
	}

	return Flag{
		Mode:      mode,
		Encoding:  enc,
		NoCR:      n&FNoCR == FNoCR,
		Tab:       n&FTab == FTab,
		Exclusive: n&FExclusive == FExclusive,
		raw:       n,
	}
}

func (f Flag) canRead() bool  { return f.Mode == ModeRead || f.Mode == ModeReadWrite }
func (f Flag) canWrite() bool { return f.Mode == ModeWrite || f.Mode == ModeReadWrite }
