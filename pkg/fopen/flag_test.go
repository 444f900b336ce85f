package fopen

import "testing"

func TestParseFlagReadMode(t *testing.T) {
	f := ParseFlag(FRead)
	if f.Mode != ModeRead {
		t.Fatalf("expected ModeRead, got %v", f.Mode)
	}
	if f.Encoding != EncodingAuto {
		t.Fatalf("expected auto encoding, got %v", f.Encoding)
	}
}

func TestParseFlagReadWriteMode(t *testing.T) {
	f := ParseFlag(FRead | FWrite8)
	if f.Mode != ModeReadWrite {
		t.Fatalf("expected ModeReadWrite, got %v", f.Mode)
	}
	if f.Encoding != EncodingUTF8 {
		t.Fatalf("expected utf8, got %v", f.Encoding)
	}
}

func TestParseFlagWriteModeEncodings(t *testing.T) {
	cases := []struct {
		flag uint32
		want Encoding
	}{
		{FWrite1, EncodingSJIS},
		{FWrite8, EncodingUTF8},
		{FWrite8B, EncodingUTF8BOM},
		{FWrite16, EncodingUTF16LE},
		{FWrite, EncodingAuto},
	}
	for _, c := range cases {
		f := ParseFlag(c.flag)
		if f.Mode != ModeWrite {
			t.Fatalf("flag %#x: expected ModeWrite, got %v", c.flag, f.Mode)
		}
		if f.Encoding != c.want {
			t.Fatalf("flag %#x: expected encoding %v, got %v", c.flag, c.want, f.Encoding)
		}
	}
}

func TestParseFlagAppendMode(t *testing.T) {
	f := ParseFlag(FAppend | FWrite8)
	if f.Mode != ModeAppend {
		t.Fatalf("expected ModeAppend, got %v", f.Mode)
	}
}

func TestParseFlagExistsTakesPriority(t *testing.T) {
	f := ParseFlag(FExists | FRead)
	if f.Mode != ModeExists {
		t.Fatalf("expected ModeExists, got %v", f.Mode)
	}
}

func TestParseFlagUnknownMode(t *testing.T) {
	f := ParseFlag(0)
	if f.Mode != ModeUnknown {
		t.Fatalf("expected ModeUnknown, got %v", f.Mode)
	}
}

func TestParseFlagOptions(t *testing.T) {
	f := ParseFlag(FRead | FNoCR | FTab | FExclusive)
	if !f.NoCR || !f.Tab || !f.Exclusive {
		t.Fatalf("expected all options set, got %+v", f)
	}
}
