package format

// Alignment utilities for the struct engine's C-style member layout.
// Members are packed using the platform natural size of each field
// (sizeof(T), per spec.md §3.4/§4.4); no implicit padding is inserted
// between members. These helpers round a size up to a boundary; the
// struct engine's own layout code does not call them.

const (
	align8Mask  = 7
	align16Mask = 15
)

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int) int {
	return (n + align8Mask) &^ align8Mask
}

// Align16 returns n aligned up to the next 16-byte boundary.
//
// Example:
//
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(17) = 32
func Align16(n int) int {
	return (n + align16Mask) &^ align16Mask
}

// Align8I32 is the int32 form of Align8, for int32 offsets and sizes
// without narrowing conversions at call sites.
func Align8I32(n int32) int32 {
	return (n + align8Mask) &^ align8Mask
}
