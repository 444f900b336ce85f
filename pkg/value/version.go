package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the runtime's own version-number value (spec.md §3.1,
// exposed to scripts as the GET_VERSION builtin result). Unlike a
// conventional semver type, its numeric coercion concatenates minor and
// patch into one fractional digit run rather than treating them as
// separate dotted components; that quirk is preserved from the original
// implementation's Version::parse rather than "corrected," since scripts
// may depend on the exact comparison behavior it produces.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// NewVersion constructs a Version.
func NewVersion(major, minor, patch uint32) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// ParseVersion parses a strict "major.minor.patch" string. All three
// components are required.
func ParseVersion(s string) (Version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, false
	}
	nums := make([]uint32, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, false
		}
		nums[i] = uint32(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, true
}

// String renders the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AsFloat concatenates minor and patch into a single fractional run, e.g.
// 1.2.3 becomes 1.23. This mirrors the reference parser and is used
// wherever a Version is coerced to a number.
func (v Version) AsFloat() float64 {
	f, _ := strconv.ParseFloat(fmt.Sprintf("%d.%d%d", v.Major, v.Minor, v.Patch), 64)
	return f
}

// Compare orders two Versions by (Major, Minor, Patch), returning
// -1, 0, or 1.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpUint32(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpUint32(v.Minor, o.Minor)
	default:
		return cmpUint32(v.Patch, o.Patch)
	}
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// VersionValue wraps v in a Value.
func VersionValue(v Version) Value { return Value{kind: KindVersion, ref: v} }

// AsVersion returns the Version payload and whether v holds one.
func (v Value) AsVersion() (Version, bool) {
	ver, ok := v.ref.(Version)
	return ver, ok && v.kind == KindVersion
}
