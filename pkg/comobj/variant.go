package comobj

import (
	"strconv"

	"github.com/wscript-lang/runtime/pkg/value"
)

// VT mirrors the subset of the OLE VARENUM tags this bridge understands.
// Named the same as the Win32 constants so the windows-only marshalling
// code reads the same as the reference documentation.
type VT uint16

const (
	VT_EMPTY    VT = 0
	VT_NULL     VT = 1
	VT_I2       VT = 2
	VT_I4       VT = 3
	VT_R4       VT = 4
	VT_R8       VT = 5
	VT_BSTR     VT = 8
	VT_DISPATCH VT = 9
	VT_ERROR    VT = 10
	VT_BOOL     VT = 11
	VT_VARIANT  VT = 12
	VT_UNKNOWN  VT = 13
	VT_I1       VT = 16
	VT_UI1      VT = 17
	VT_UI2      VT = 18
	VT_UI4      VT = 19
	VT_INT      VT = 22
	VT_UINT     VT = 23
	VT_ARRAY    VT = 0x2000
	VT_BYREF    VT = 0x4000
)

// Variant is a decoded COM VARIANT: its original VT tag plus whichever Go
// field holds the value. An IDispatch handle is carried in Disp as an
// *Object wrapper, never as the raw COM pointer, so Variant stays safe to
// copy. Arr holds the element variants for a
// VT_ARRAY-tagged Variant, decoded from a one-dimensional SAFEARRAY of
// VARIANTs (spec.md §4.5.2 point 1).
type Variant struct {
	VT   VT
	Num  float64
	Str  string
	Bool bool
	Disp *Object
	Arr  []Variant
}

// Display satisfies value.ExtRef for Variant payloads that don't map onto
// a more specific value.Kind (e.g. VT_ERROR, an unconverted SAFEARRAY).
func (v Variant) Display() string {
	return "Variant(VT=" + strconv.Itoa(int(v.VT)) + ")"
}

// ToValue converts a decoded Variant into the language's Value, mapping
// onto the most specific Kind available rather than always boxing as a
// generic Variant (spec.md's COM bridge surface returns plain numbers/
// strings/bools/objects to script code, not box types).
func (v Variant) ToValue() value.Value {
	if v.VT&VT_ARRAY != 0 {
		elems := make([]value.Value, len(v.Arr))
		for i, e := range v.Arr {
			elems[i] = e.ToValue()
		}
		return value.Array(elems)
	}
	switch v.VT &^ (VT_ARRAY | VT_BYREF) {
	case VT_EMPTY:
		return value.Empty
	case VT_NULL:
		return value.Null
	case VT_I2, VT_I4, VT_R4, VT_R8, VT_I1, VT_UI1, VT_UI2, VT_UI4, VT_INT, VT_UINT:
		return value.Num(v.Num)
	case VT_BSTR:
		return value.String(v.Str)
	case VT_BOOL:
		return value.Bool(v.Bool)
	case VT_DISPATCH:
		if v.Disp == nil {
			return value.Nothing
		}
		return value.ComObjectValue(v.Disp)
	case VT_UNKNOWN:
		if v.Disp == nil {
			return value.Nothing
		}
		return value.UnknownValue(v.Disp)
	default:
		return value.VariantValue(v)
	}
}

// FromValue converts a language Value into the Variant that should be
// sent to IDispatch::Invoke for it. An Array becomes a VT_VARIANT|VT_ARRAY
// Variant whose elements are converted recursively; hashtables and other
// non-scalar kinds are not accepted, so the argument must be a
// COM-representable scalar, an array of them, or an existing ComObject
// handle.
func FromValue(v value.Value) (Variant, error) {
	if v.Kind() == value.KindArray {
		arr, _ := v.AsArray()
		elems := make([]Variant, len(arr))
		for i, e := range arr {
			cv, err := FromValue(e)
			if err != nil {
				return Variant{}, err
			}
			elems[i] = cv
		}
		return Variant{VT: VT_VARIANT | VT_ARRAY, Arr: elems}, nil
	}
	switch v.Kind() {
	case value.KindEmpty, value.KindEmptyParam:
		return Variant{VT: VT_EMPTY}, nil
	case value.KindNull:
		return Variant{VT: VT_NULL}, nil
	case value.KindNum:
		f, _ := v.AsFloat(false)
		return Variant{VT: VT_R8, Num: f}, nil
	case value.KindString:
		return Variant{VT: VT_BSTR, Str: v.Display()}, nil
	case value.KindBool:
		return Variant{VT: VT_BOOL, Bool: v.Display() == "True"}, nil
	case value.KindComObject:
		ref, _ := v.AsComObject()
		obj, _ := ref.(*Object)
		return Variant{VT: VT_DISPATCH, Disp: obj}, nil
	case value.KindNothing:
		return Variant{VT: VT_DISPATCH, Disp: nil}, nil
	default:
		return Variant{}, errUnsupportedArg(v.TypeName())
	}
}
