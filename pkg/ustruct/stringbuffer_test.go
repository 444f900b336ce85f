package ustruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringBufferAnsiRoundTrip(t *testing.T) {
	buf, err := NewStringBuffer("hello", false)
	require.NoError(t, err)

	assert.Equal(t, 6, buf.Len()) // 5 chars + null terminator

	text, err := buf.Text(true)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestStringBufferWideRoundTrip(t *testing.T) {
	buf, err := NewStringBuffer("hi", true)
	require.NoError(t, err)

	assert.Equal(t, 6, buf.Len()) // 2 UTF-16 units + null terminator unit

	text, err := buf.Text(true)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

func TestStringBufferSetReplacesContents(t *testing.T) {
	buf, err := NewStringBuffer("old", false)
	require.NoError(t, err)

	require.NoError(t, buf.Set("newer"))
	text, err := buf.Text(true)
	require.NoError(t, err)
	assert.Equal(t, "newer", text)
}

func TestStringBufferUntrimmedKeepsFullBuffer(t *testing.T) {
	buf, err := NewStringBuffer("ab", false)
	require.NoError(t, err)

	text, err := buf.Text(false)
	require.NoError(t, err)
	assert.Equal(t, "ab\x00", text)
}

func TestStringBufferDefaultCapacityIs1KiB(t *testing.T) {
	buf, err := NewStringBuffer("hello", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultStringBufferCapacity, buf.Capacity())
}

func TestStringBufferConstructionRejectsOversizeText(t *testing.T) {
	_, err := NewStringBufferWithCapacity("hello world", false, 8)
	assert.Error(t, err)
}

func TestStringBufferSetRejectsOversizeText(t *testing.T) {
	buf, err := NewStringBufferWithCapacity("hi", false, 16)
	require.NoError(t, err)

	err = buf.Set("this text is far too long for the buffer")
	assert.Error(t, err)

	// The previous contents are left untouched on a rejected Set.
	text, err := buf.Text(true)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

func TestStringBufferSetWithinCapacitySucceeds(t *testing.T) {
	buf, err := NewStringBufferWithCapacity("hi", false, 16)
	require.NoError(t, err)

	require.NoError(t, buf.Set("fifteen ch"))
	text, err := buf.Text(true)
	require.NoError(t, err)
	assert.Equal(t, "fifteen ch", text)
}
