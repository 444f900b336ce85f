//go:build windows

package comobj

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

// nativeVariant mirrors the Win32 VARIANT layout this bridge actually
// marshals: a 2-byte VT tag, three reserved words Windows requires to be
// zero, and one 8-byte value slot wide enough for every VT this bridge
// supports (a double, an int64, a BSTR/IDispatch pointer). The real
// VARIANT union also covers DECIMAL and SAFEARRAY-by-value, neither of
// which this bridge constructs directly.
type nativeVariant struct {
	vt         uint16
	wReserved1 uint16
	wReserved2 uint16
	wReserved3 uint16
	val        int64
}

// dispParams mirrors DISPPARAMS: a reversed VARIANT argument vector plus
// an optional named-argument dispid vector (not used by this bridge's
// positional-only call path).
type dispParams struct {
	rgvarg            uintptr
	rgdispidNamedArgs uintptr
	cArgs             uint32
	cNamedArgs        uint32
}

// excepInfo mirrors EXCEPINFO, truncated to the fields IDispatch::Invoke
// actually fills in for a script-facing error message.
type excepInfo struct {
	wCode             uint16
	wReserved         uint16
	bstrSource        uintptr
	bstrDescription   uintptr
	bstrHelpFile      uintptr
	dwHelpContext     uint32
	pvReserved        uintptr
	pfnDeferredFillIn uintptr
	scode             int32
}

var (
	oleaut32                  = windows.NewLazySystemDLL("oleaut32.dll")
	procSysAllocString        = oleaut32.NewProc("SysAllocString")
	procSysFreeString         = oleaut32.NewProc("SysFreeString")
	procSafeArrayCreateVector = oleaut32.NewProc("SafeArrayCreateVector")
	procSafeArrayPutElement   = oleaut32.NewProc("SafeArrayPutElement")
	procSafeArrayGetElement   = oleaut32.NewProc("SafeArrayGetElement")
	procSafeArrayGetLBound    = oleaut32.NewProc("SafeArrayGetLBound")
	procSafeArrayGetUBound    = oleaut32.NewProc("SafeArrayGetUBound")
	procSafeArrayDestroy      = oleaut32.NewProc("SafeArrayDestroy")
)

// vtVariantElem is the element-type tag passed to SafeArrayCreateVector
// for a one-dimensional array of VARIANTs — numerically identical to
// VT_VARIANT, kept as its own constant since SafeArrayCreateVector takes
// a bare VARTYPE rather than a Variant-tagged VT.
const vtVariantElem = uint16(VT_VARIANT)

// safeArrayFromVariants builds a SAFEARRAY of VARIANT holding elems,
// the wire shape spec.md §4.5.2 point 1 (array round-trip) sends across
// IDispatch::Invoke for a script-side array argument.
func safeArrayFromVariants(elems []Variant) (uintptr, error) {
	psa, _, _ := procSafeArrayCreateVector.Call(uintptr(vtVariantElem), 0, uintptr(len(elems)))
	if psa == 0 {
		return 0, fmt.Errorf("comobj: SafeArrayCreateVector failed")
	}
	for i, e := range elems {
		nv, err := toNativeVariant(e)
		if err != nil {
			procSafeArrayDestroy.Call(psa)
			return 0, err
		}
		idx := int32(i)
		hr, _, _ := procSafeArrayPutElement.Call(psa, uintptr(unsafe.Pointer(&idx)), uintptr(unsafe.Pointer(&nv)))
		if hr != 0 {
			procSafeArrayDestroy.Call(psa)
			return 0, fmt.Errorf("comobj: SafeArrayPutElement(%d): hresult 0x%x", i, hr)
		}
	}
	return psa, nil
}

// variantsFromSafeArray decodes a one-dimensional SAFEARRAY of VARIANT
// back into a Go slice, leaving the SAFEARRAY itself untouched — the
// caller (fromNativeVariant) owns destroying it.
func variantsFromSafeArray(psa uintptr) ([]Variant, error) {
	var lbound, ubound int32
	if hr, _, _ := procSafeArrayGetLBound.Call(psa, 1, uintptr(unsafe.Pointer(&lbound))); hr != 0 {
		return nil, fmt.Errorf("comobj: SafeArrayGetLBound: hresult 0x%x", hr)
	}
	if hr, _, _ := procSafeArrayGetUBound.Call(psa, 1, uintptr(unsafe.Pointer(&ubound))); hr != 0 {
		return nil, fmt.Errorf("comobj: SafeArrayGetUBound: hresult 0x%x", hr)
	}
	out := make([]Variant, 0, ubound-lbound+1)
	for i := lbound; i <= ubound; i++ {
		var nv nativeVariant
		idx := i
		if hr, _, _ := procSafeArrayGetElement.Call(psa, uintptr(unsafe.Pointer(&idx)), uintptr(unsafe.Pointer(&nv))); hr != 0 {
			return nil, fmt.Errorf("comobj: SafeArrayGetElement(%d): hresult 0x%x", i, hr)
		}
		v, err := fromNativeVariant(nv)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func sysAllocString(s string) (uintptr, error) {
	u16, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return 0, err
	}
	bstr, _, _ := procSysAllocString.Call(uintptr(unsafe.Pointer(u16)))
	if bstr == 0 {
		return 0, fmt.Errorf("comobj: SysAllocString(%q) failed", s)
	}
	return bstr, nil
}

func sysFreeString(bstr uintptr) {
	if bstr != 0 {
		procSysFreeString.Call(bstr)
	}
}

// toNativeVariant encodes a Variant into the wire layout IDispatch::Invoke
// expects. BSTR/IDispatch values allocate real COM-owned memory the
// caller must release after the call returns (invoke and invokeAdvanced
// do this via freeNativeVariants once the call completes).
func toNativeVariant(v Variant) (nativeVariant, error) {
	if v.VT&VT_ARRAY != 0 {
		psa, err := safeArrayFromVariants(v.Arr)
		if err != nil {
			return nativeVariant{}, err
		}
		return nativeVariant{vt: uint16(VT_VARIANT | VT_ARRAY), val: int64(psa)}, nil
	}
	switch v.VT {
	case VT_EMPTY, VT_NULL:
		return nativeVariant{vt: uint16(v.VT)}, nil
	case VT_R8:
		return nativeVariant{vt: uint16(VT_R8), val: int64(math.Float64bits(v.Num))}, nil
	case VT_I4, VT_I2, VT_I1, VT_UI1, VT_UI2, VT_UI4, VT_INT, VT_UINT:
		return nativeVariant{vt: uint16(VT_I4), val: int64(v.Num)}, nil
	case VT_BOOL:
		b := int64(0)
		if v.Bool {
			b = -1 // VARIANT_TRUE
		}
		return nativeVariant{vt: uint16(VT_BOOL), val: b}, nil
	case VT_BSTR:
		bstr, err := sysAllocString(v.Str)
		if err != nil {
			return nativeVariant{}, err
		}
		return nativeVariant{vt: uint16(VT_BSTR), val: int64(bstr)}, nil
	case VT_DISPATCH:
		var ptr uintptr
		if v.Disp != nil {
			if cd, ok := v.Disp.disp.(*comDispatcher); ok {
				cd.ptr.addRef()
				ptr = uintptr(unsafe.Pointer(cd.ptr))
			}
		}
		return nativeVariant{vt: uint16(VT_DISPATCH), val: int64(ptr)}, nil
	default:
		return nativeVariant{}, fmt.Errorf("comobj: unsupported argument VT %d", v.VT)
	}
}

// freeNativeVariants releases COM-owned memory allocated by
// toNativeVariant for an argument vector, called once Invoke returns.
func freeNativeVariants(native []nativeVariant) {
	for _, n := range native {
		if VT(n.vt)&VT_ARRAY != 0 {
			if n.val != 0 {
				procSafeArrayDestroy.Call(uintptr(n.val))
			}
			continue
		}
		switch VT(n.vt) {
		case VT_BSTR:
			sysFreeString(uintptr(n.val))
		case VT_DISPATCH:
			if n.val != 0 {
				(*idispatch)(unsafe.Pointer(uintptr(n.val))).release()
			}
		}
	}
}

// fromNativeVariant decodes an IDispatch::Invoke result back into a
// portable Variant. The BSTR case trusts the embedded null terminator
// rather than reading the BSTR length prefix, a known simplification
// (documented in DESIGN.md) that is correct for every property/method
// result that doesn't itself contain an embedded NUL.
func fromNativeVariant(n nativeVariant) (Variant, error) {
	if VT(n.vt)&VT_ARRAY != 0 {
		if n.val == 0 {
			return Variant{VT: VT(n.vt)}, nil
		}
		elems, err := variantsFromSafeArray(uintptr(n.val))
		if err != nil {
			return Variant{}, err
		}
		return Variant{VT: VT(n.vt), Arr: elems}, nil
	}
	switch VT(n.vt) {
	case VT_EMPTY, VT_NULL:
		return Variant{VT: VT(n.vt)}, nil
	case VT_R8:
		return Variant{VT: VT_R8, Num: math.Float64frombits(uint64(n.val))}, nil
	case VT_I4, VT_I2, VT_I1, VT_UI1, VT_UI2, VT_UI4, VT_INT, VT_UINT, VT_ERROR:
		return Variant{VT: VT(n.vt), Num: float64(n.val)}, nil
	case VT_BOOL:
		return Variant{VT: VT_BOOL, Bool: n.val != 0}, nil
	case VT_BSTR:
		s := windows.UTF16PtrToString((*uint16)(unsafe.Pointer(uintptr(n.val))))
		sysFreeString(uintptr(n.val))
		return Variant{VT: VT_BSTR, Str: s}, nil
	case VT_DISPATCH:
		if n.val == 0 {
			return Variant{VT: VT_DISPATCH}, nil
		}
		ptr := (*idispatch)(unsafe.Pointer(uintptr(n.val)))
		return Variant{VT: VT_DISPATCH, Disp: &Object{disp: &comDispatcher{ptr: ptr}}}, nil
	case VT_UNKNOWN:
		return Variant{VT: VT_UNKNOWN}, nil
	default:
		return Variant{VT: VT(n.vt)}, nil
	}
}
