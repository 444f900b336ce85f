package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	v := NewVersion(1, 2, 3)
	assert.Equal(t, "1.2.3", v.String())
}

func TestVersionParseRoundTrip(t *testing.T) {
	v, ok := ParseVersion("1.2.3")
	assert.True(t, ok)
	assert.Equal(t, NewVersion(1, 2, 3), v)

	_, ok = ParseVersion("1.2")
	assert.False(t, ok)
	_, ok = ParseVersion("1.2.3.4")
	assert.False(t, ok)
	_, ok = ParseVersion("a.b.c")
	assert.False(t, ok)
}

func TestVersionAsFloatConcatenatesMinorPatch(t *testing.T) {
	v := NewVersion(1, 2, 3)
	assert.InDelta(t, 1.23, v.AsFloat(), 1e-9)
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, 0, NewVersion(1, 2, 3).Compare(NewVersion(1, 2, 3)))
	assert.Equal(t, -1, NewVersion(1, 2, 3).Compare(NewVersion(1, 3, 0)))
	assert.Equal(t, 1, NewVersion(2, 0, 0).Compare(NewVersion(1, 9, 9)))
}

func TestVersionCrossKindEquality(t *testing.T) {
	v := VersionValue(NewVersion(1, 2, 3))

	assert.True(t, IsEqual(v, String("1.2.3")))
	assert.True(t, IsEqual(String("1.2.3"), v))
	assert.True(t, IsEqual(v, Num(1.23)))
	assert.False(t, IsEqual(v, String("9.9.9")))
	assert.False(t, IsEqual(v, Bool(true)))
}

func TestVersionValueRoundTrip(t *testing.T) {
	v := VersionValue(NewVersion(1, 0, 0))
	got, ok := v.AsVersion()
	assert.True(t, ok)
	assert.Equal(t, NewVersion(1, 0, 0), got)
}
