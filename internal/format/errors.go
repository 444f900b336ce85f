package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a field.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrBoundsCheck indicates a buffer access exceeded bounds. The
	// Put*/Read* helpers in this package do not return it; they index the
	// buffer directly and panic on an out-of-range offset.
	ErrBoundsCheck = errors.New("format: buffer bounds exceeded")

	// ErrIntegerOverflow indicates an integer operation would overflow.
	// No function in this package returns it.
	ErrIntegerOverflow = errors.New("format: integer overflow")
)
