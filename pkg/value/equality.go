package value

// IsEqual implements spec.md §4.1's equality contract:
//   - Numbers compare by IEEE-754 equality after both sides coerce to f64.
//   - Strings compare byte-identical; case-insensitivity is not a property
//     of equality.
//   - Booleans compare by identity.
//   - Empty compares equal to Empty, to 0, and to "" (spec.md §9 records
//     this as a known non-transitivity: 0 == "" is false even though both
//     equal Empty — that is the reference behavior and is intentionally
//     preserved here, not a bug to "fix").
//   - Arrays and hashtables compare structurally.
//   - Equality across any other incompatible pair of kinds is false, never
//     an error (spec.md §4.1).
func IsEqual(a, b Value) bool {
	if a.kind == KindEmpty || b.kind == KindEmpty {
		return emptyEquals(a) && emptyEquals(b)
	}

	// Version carries its own cross-kind comparisons against String (by
	// canonical "major.minor.patch" text) and Number (by its non-dotted
	// f64 parse), mirrored from the reference Version type's explicit
	// PartialEq<String>/PartialEq<f64> impls.
	if a.kind == KindVersion || b.kind == KindVersion {
		return versionCrossEqual(a, b)
	}

	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNum:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindBool:
		return a.b == b.b
	case KindNull, KindNothing, KindGlobal, KindExit, KindDestructorNotFound:
		return true
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !IsEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindHashTbl:
		ha, oka := a.ref.(*HashTbl)
		hb, okb := b.ref.(*HashTbl)
		if !oka || !okb {
			return false
		}
		return ha.equal(hb)
	case KindHandle:
		return a.num == b.num
	case KindRegEx, KindEval, KindExpandableTB:
		return a.str == b.str
	case KindByteArray:
		ba, oka := a.ref.([]byte)
		bb, okb := b.ref.([]byte)
		if !oka || !okb || len(ba) != len(bb) {
			return false
		}
		for i := range ba {
			if ba[i] != bb[i] {
				return false
			}
		}
		return true
	default:
		// Reference-identity kinds (modules, instances, COM objects, file
		// handles, struct instances, …): equal only if they share the same
		// underlying handle.
		return a.ref != nil && a.ref == b.ref
	}
}

func versionCrossEqual(a, b Value) bool {
	if a.kind == KindVersion && b.kind == KindVersion {
		va, _ := a.ref.(Version)
		vb, _ := b.ref.(Version)
		return va.Compare(vb) == 0
	}
	ver, other := a, b
	if other.kind == KindVersion {
		ver, other = b, a
	}
	v, ok := ver.ref.(Version)
	if !ok {
		return false
	}
	switch other.kind {
	case KindString:
		return v.String() == other.str
	case KindNum:
		return v.AsFloat() == other.num
	default:
		return false
	}
}

// emptyEquals reports whether v is one of the values Empty compares equal
// to: Empty itself, the number 0, or the empty string.
func emptyEquals(v Value) bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindNum:
		return v.num == 0
	case KindString:
		return v.str == ""
	default:
		return false
	}
}
