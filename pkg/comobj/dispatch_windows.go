//go:build windows

package comobj

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wscript-lang/runtime/pkg/werr"
)

// idispatch is the minimal IDispatch surface this bridge drives directly
// through its vtable, the same technique every cgo-free Go OLE binding
// uses in place of a generated C binding (mirroring the shape
// bindings/wrapper.go wraps a generated hivex C ABI with).
type idispatch struct {
	vtbl *idispatchVtbl
}

type idispatchVtbl struct {
	QueryInterface   uintptr
	AddRef           uintptr
	Release          uintptr
	GetTypeInfoCount uintptr
	GetTypeInfo      uintptr
	GetIDsOfNames    uintptr
	Invoke           uintptr
}

func (d *idispatch) addRef() {
	syscall.SyscallN(d.vtbl.AddRef, uintptr(unsafe.Pointer(d)))
}

func (d *idispatch) release() {
	syscall.SyscallN(d.vtbl.Release, uintptr(unsafe.Pointer(d)))
}

// comDispatcher implements the dispatcher seam over a raw *idispatch.
type comDispatcher struct {
	ptr      *idispatch
	released int32
}

var iidNULL windows.GUID

func (c *comDispatcher) getIDOfName(name string) (int32, error) {
	wname, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	var dispID int32
	names := [1]*uint16{wname}
	hr, _, _ := syscall.SyscallN(c.ptr.vtbl.GetIDsOfNames,
		uintptr(unsafe.Pointer(c.ptr)),
		uintptr(unsafe.Pointer(&iidNULL)),
		uintptr(unsafe.Pointer(&names[0])),
		1,
		uintptr(localeUserDefault),
		uintptr(unsafe.Pointer(&dispID)),
	)
	runtime.KeepAlive(wname)
	if int32(hr) == dispMemberNotFound {
		return 0, &ErrMemberNotFound{Member: name}
	}
	if hr != 0 {
		return 0, fmt.Errorf("comobj: GetIDsOfNames(%s): hresult 0x%x", name, hr)
	}
	return dispID, nil
}

// getIDsOfNames resolves several names in a single GetIDsOfNames call,
// names[0] being the member and the rest its named-argument parameter
// names. Per MSDN, when any name in the batch can't be resolved the
// whole call fails with DISP_E_UNKNOWNNAME; the unresolved slots are
// still filled with DISPID_UNKNOWN in that case, so callers can tell
// exactly which name was the problem instead of only that one was.
func (c *comDispatcher) getIDsOfNames(names []string) ([]int32, error) {
	wnames := make([]*uint16, len(names))
	for i, n := range names {
		w, err := syscall.UTF16PtrFromString(n)
		if err != nil {
			return nil, err
		}
		wnames[i] = w
	}
	dispIDs := make([]int32, len(names))
	hr, _, _ := syscall.SyscallN(c.ptr.vtbl.GetIDsOfNames,
		uintptr(unsafe.Pointer(c.ptr)),
		uintptr(unsafe.Pointer(&iidNULL)),
		uintptr(unsafe.Pointer(&wnames[0])),
		uintptr(len(names)),
		uintptr(localeUserDefault),
		uintptr(unsafe.Pointer(&dispIDs[0])),
	)
	runtime.KeepAlive(wnames)
	if int32(hr) != 0 && int32(hr) != dispUnknownName {
		return nil, fmt.Errorf("comobj: GetIDsOfNames: hresult 0x%x", hr)
	}
	return dispIDs, nil
}

func (c *comDispatcher) invoke(dispID int32, flags uint16, args []Variant) (Variant, error) {
	native := make([]nativeVariant, len(args))
	for i, a := range args {
		v, err := toNativeVariant(a)
		if err != nil {
			return Variant{}, err
		}
		// COM argument order is reversed relative to the call-site list.
		native[len(args)-1-i] = v
	}
	defer freeNativeVariants(native)

	params := dispParams{}
	if len(native) > 0 {
		params.rgvarg = uintptr(unsafe.Pointer(&native[0]))
		params.cArgs = uint32(len(native))
	}

	var result nativeVariant
	var excepInfo excepInfo
	hr, _, _ := syscall.SyscallN(c.ptr.vtbl.Invoke,
		uintptr(unsafe.Pointer(c.ptr)),
		uintptr(dispID),
		uintptr(unsafe.Pointer(&iidNULL)),
		uintptr(localeSystemDefault),
		uintptr(flags),
		uintptr(unsafe.Pointer(&params)),
		uintptr(unsafe.Pointer(&result)),
		uintptr(unsafe.Pointer(&excepInfo)),
		0,
	)
	runtime.KeepAlive(native)
	if int32(hr) == dispMemberNotFound {
		return Variant{}, &ErrMemberNotFound{Member: fmt.Sprintf("dispid %d", dispID)}
	}
	if hr != 0 {
		return Variant{}, werr.New(werr.KindCOM, werr.MsgComInvokeFailed(fmt.Sprintf("dispid %d", dispID), int32(hr)))
	}
	return fromNativeVariant(result)
}

// invokeAdvanced extends invoke with named-argument dispatch and
// VT_BYREF argument readback. Per the documented DISPPARAMS convention:
// named arguments occupy rgvarg[0:cNamedArgs] in the same order as
// rgdispidNamedArgs; the remaining (positional) arguments fill the rest
// of rgvarg in reverse call-site order, same as invoke's plain path.
func (c *comDispatcher) invokeAdvanced(dispID int32, flags uint16, args []Variant, byRef []int, namedDispIDs []int32) ([]Variant, Variant, error) {
	nNamed := len(namedDispIDs)
	isByRef := make([]bool, len(args))
	for _, idx := range byRef {
		if idx >= 0 && idx < len(args) {
			isByRef[idx] = true
		}
	}

	native := make([]nativeVariant, len(args))
	cells := make([]*nativeVariant, len(args))

	marshalInto := func(argIdx, slot int) error {
		nv, err := toNativeVariant(args[argIdx])
		if err != nil {
			return err
		}
		if isByRef[argIdx] {
			cell := new(nativeVariant)
			*cell = nv
			cells[argIdx] = cell
			native[slot] = nativeVariant{vt: uint16(VT(nv.vt) | VT_BYREF), val: int64(uintptr(unsafe.Pointer(cell)))}
			return nil
		}
		native[slot] = nv
		return nil
	}

	for i := 0; i < nNamed; i++ {
		if err := marshalInto(i, i); err != nil {
			return nil, Variant{}, err
		}
	}
	positional := args[nNamed:]
	for i := range positional {
		argIdx := nNamed + i
		slot := len(args) - 1 - i
		if err := marshalInto(argIdx, slot); err != nil {
			return nil, Variant{}, err
		}
	}

	defer func() {
		for i := range args {
			if isByRef[i] && cells[i] != nil {
				freeNativeVariants([]nativeVariant{*cells[i]})
			}
		}
		freeNativeVariants(native)
	}()

	params := dispParams{cArgs: uint32(len(native)), cNamedArgs: uint32(nNamed)}
	if len(native) > 0 {
		params.rgvarg = uintptr(unsafe.Pointer(&native[0]))
	}
	dispids := make([]int32, nNamed)
	copy(dispids, namedDispIDs)
	if nNamed > 0 {
		params.rgdispidNamedArgs = uintptr(unsafe.Pointer(&dispids[0]))
	}

	var result nativeVariant
	var excepInfo excepInfo
	hr, _, _ := syscall.SyscallN(c.ptr.vtbl.Invoke,
		uintptr(unsafe.Pointer(c.ptr)),
		uintptr(dispID),
		uintptr(unsafe.Pointer(&iidNULL)),
		uintptr(localeSystemDefault),
		uintptr(flags),
		uintptr(unsafe.Pointer(&params)),
		uintptr(unsafe.Pointer(&result)),
		uintptr(unsafe.Pointer(&excepInfo)),
		0,
	)
	runtime.KeepAlive(native)
	runtime.KeepAlive(cells)
	runtime.KeepAlive(dispids)
	if int32(hr) == dispMemberNotFound {
		return nil, Variant{}, &ErrMemberNotFound{Member: fmt.Sprintf("dispid %d", dispID)}
	}
	if hr != 0 {
		return nil, Variant{}, werr.New(werr.KindCOM, werr.MsgComInvokeFailed(fmt.Sprintf("dispid %d", dispID), int32(hr)))
	}

	updated := make([]Variant, len(args))
	copy(updated, args)
	for i := range args {
		if isByRef[i] && cells[i] != nil {
			v, err := fromNativeVariant(*cells[i])
			if err != nil {
				return nil, Variant{}, err
			}
			updated[i] = v
		}
	}

	ret, err := fromNativeVariant(result)
	return updated, ret, err
}

// enumerate drives the collection's _NewEnum/IEnumVARIANT pair: invoking
// DISPID_NEWENUM as a method|propget call (the standard `For Each`
// protocol every VBScript/JScript automation collection follows),
// QueryInterface-ing the returned IUnknown for IEnumVARIANT, then
// draining it with Next(1, …) until exhausted.
func (c *comDispatcher) enumerate() ([]Variant, error) {
	var result nativeVariant
	params := dispParams{}
	var excepInfo excepInfo
	hr, _, _ := syscall.SyscallN(c.ptr.vtbl.Invoke,
		uintptr(unsafe.Pointer(c.ptr)),
		uintptr(dispIDNewEnum),
		uintptr(unsafe.Pointer(&iidNULL)),
		uintptr(localeSystemDefault),
		uintptr(dispatchMethod|dispatchPropertyGet),
		uintptr(unsafe.Pointer(&params)),
		uintptr(unsafe.Pointer(&result)),
		uintptr(unsafe.Pointer(&excepInfo)),
		0,
	)
	if hr != 0 {
		return nil, fmt.Errorf("comobj: _NewEnum: hresult 0x%x", hr)
	}
	if VT(result.vt) != VT_UNKNOWN && VT(result.vt) != VT_DISPATCH {
		return nil, fmt.Errorf("comobj: _NewEnum did not return an object (VT %d)", result.vt)
	}
	if result.val == 0 {
		return nil, fmt.Errorf("comobj: _NewEnum returned a null object")
	}
	unk := (*idispatch)(unsafe.Pointer(uintptr(result.val)))
	defer unk.release()

	var enumPtr uintptr
	hr2, _, _ := syscall.SyscallN(unk.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(unk)),
		uintptr(unsafe.Pointer(&iidIEnumVARIANT)),
		uintptr(unsafe.Pointer(&enumPtr)),
	)
	if hr2 != 0 || enumPtr == 0 {
		return nil, fmt.Errorf("comobj: collection does not support IEnumVARIANT")
	}
	en := (*enumVariant)(unsafe.Pointer(enumPtr))
	defer syscall.SyscallN(en.vtbl.Release, uintptr(unsafe.Pointer(en)))

	var out []Variant
	for {
		var item nativeVariant
		var fetched uint32
		hr3, _, _ := syscall.SyscallN(en.vtbl.Next,
			uintptr(unsafe.Pointer(en)), 1,
			uintptr(unsafe.Pointer(&item)),
			uintptr(unsafe.Pointer(&fetched)),
		)
		if hr3 != 0 || fetched == 0 {
			break
		}
		v, err := fromNativeVariant(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// advise finds the object's default outgoing connection point (the
// first one EnumConnectionPoints yields — this bridge doesn't walk a
// typelib to pick a specific source interface) and advises a Go-owned
// event sink on it.
func (c *comDispatcher) advise(handlers map[string]EventHandler) (uintptr, uint32, error) {
	var cpcPtr uintptr
	hr, _, _ := syscall.SyscallN(c.ptr.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(c.ptr)),
		uintptr(unsafe.Pointer(&iidIConnectionPointContainer)),
		uintptr(unsafe.Pointer(&cpcPtr)),
	)
	if hr != 0 || cpcPtr == 0 {
		return 0, 0, fmt.Errorf("comobj: object does not support events (no IConnectionPointContainer)")
	}
	cpc := (*connectionPointContainer)(unsafe.Pointer(cpcPtr))
	defer syscall.SyscallN(cpc.vtbl.Release, cpcPtr)

	var enumPtr uintptr
	hr2, _, _ := syscall.SyscallN(cpc.vtbl.EnumConnectionPoints, cpcPtr, uintptr(unsafe.Pointer(&enumPtr)))
	if hr2 != 0 || enumPtr == 0 {
		return 0, 0, fmt.Errorf("comobj: no connection points available")
	}
	enum := (*enumConnectionPoints)(unsafe.Pointer(enumPtr))
	defer syscall.SyscallN(enum.vtbl.Release, enumPtr)

	var cpPtr uintptr
	var fetched uint32
	hr3, _, _ := syscall.SyscallN(enum.vtbl.Next, enumPtr, 1, uintptr(unsafe.Pointer(&cpPtr)), uintptr(unsafe.Pointer(&fetched)))
	if hr3 != 0 || fetched == 0 || cpPtr == 0 {
		return 0, 0, fmt.Errorf("comobj: object exposes no event connection point")
	}
	cp := (*connectionPoint)(unsafe.Pointer(cpPtr))

	sink := newEventSink(handlers, c)
	var cookie uint32
	hr4, _, _ := syscall.SyscallN(cp.vtbl.Advise, cpPtr, uintptr(unsafe.Pointer(sink)), uintptr(unsafe.Pointer(&cookie)))
	if hr4 != 0 {
		syscall.SyscallN(cp.vtbl.Release, cpPtr)
		return 0, 0, fmt.Errorf("comobj: Advise failed (hresult 0x%x)", hr4)
	}
	return cpPtr, cookie, nil
}

func (c *comDispatcher) unadvise(cpPtr uintptr, cookie uint32) error {
	if cpPtr == 0 {
		return nil
	}
	cp := (*connectionPoint)(unsafe.Pointer(cpPtr))
	defer syscall.SyscallN(cp.vtbl.Release, cpPtr)
	hr, _, _ := syscall.SyscallN(cp.vtbl.Unadvise, cpPtr, uintptr(cookie))
	if hr != 0 {
		return fmt.Errorf("comobj: Unadvise failed (hresult 0x%x)", hr)
	}
	return nil
}

func (c *comDispatcher) typeName() (string, bool) {
	return "", false
}

func (c *comDispatcher) isCollection() bool {
	_, err := c.getIDOfName("Item")
	if err != nil {
		return false
	}
	_, err = c.getIDOfName("Count")
	return err == nil
}

func (c *comDispatcher) release() {
	if atomic.CompareAndSwapInt32(&c.released, 0, 1) {
		c.ptr.release()
	}
}

const (
	localeSystemDefault = 0x0800
	localeUserDefault   = 0x0400
	dispMemberNotFound  = -2147352573 // DISP_E_MEMBERNOTFOUND
	dispUnknownName     = -2147352570 // DISP_E_UNKNOWNNAME
	dispIDNewEnum       = -4          // DISPID_NEWENUM
)

// iidIEnumVARIANT is {00020404-0000-0000-C000-000000000046}, the
// standard enumerator interface every `For Each`-able COM collection's
// _NewEnum property returns.
var iidIEnumVARIANT = windows.GUID{
	Data1: 0x00020404, Data2: 0x0000, Data3: 0x0000,
	Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
}

type enumVariantVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Next           uintptr
	Skip           uintptr
	Reset          uintptr
	Clone          uintptr
}

type enumVariant struct {
	vtbl *enumVariantVtbl
}

// iidIConnectionPointContainer is {B196B284-BAB4-101A-B69C-00AA00341D07}.
var iidIConnectionPointContainer = windows.GUID{
	Data1: 0xB196B284, Data2: 0xBAB4, Data3: 0x101A,
	Data4: [8]byte{0xB6, 0x9C, 0x00, 0xAA, 0x00, 0x34, 0x1D, 0x07},
}

type connectionPointContainerVtbl struct {
	QueryInterface       uintptr
	AddRef               uintptr
	Release              uintptr
	EnumConnectionPoints uintptr
	FindConnectionPoint  uintptr
}

type connectionPointContainer struct {
	vtbl *connectionPointContainerVtbl
}

type connectionPointVtbl struct {
	QueryInterface              uintptr
	AddRef                      uintptr
	Release                     uintptr
	GetConnectionInterface      uintptr
	GetConnectionPointContainer uintptr
	Advise                      uintptr
	Unadvise                    uintptr
	EnumConnections             uintptr
}

type connectionPoint struct {
	vtbl *connectionPointVtbl
}

type enumConnectionPointsVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	Next           uintptr
	Skip           uintptr
	Reset          uintptr
	Clone          uintptr
}

type enumConnectionPoints struct {
	vtbl *enumConnectionPointsVtbl
}

var (
	ole32                = windows.NewLazySystemDLL("ole32.dll")
	procCLSIDFromString  = ole32.NewProc("CLSIDFromString")
	procCLSIDFromProgID  = ole32.NewProc("CLSIDFromProgID")
	procCoCreateInstance = ole32.NewProc("CoCreateInstance")
	procGetActiveObject  = ole32.NewProc("GetActiveObject")
)

const (
	clsctxInprocServer = 0x1
	clsctxLocalServer  = 0x4
	clsctxAll          = clsctxInprocServer | 0x2 | clsctxLocalServer
)

func resolveCLSID(id string) (windows.GUID, error) {
	u16, err := syscall.UTF16PtrFromString(id)
	if err != nil {
		return windows.GUID{}, err
	}
	var guid windows.GUID
	if id != "" && id[0] == '{' {
		hr, _, _ := procCLSIDFromString.Call(uintptr(unsafe.Pointer(u16)), uintptr(unsafe.Pointer(&guid)))
		if hr != 0 {
			return guid, fmt.Errorf("comobj: CLSIDFromString(%s): hresult 0x%x", id, hr)
		}
		return guid, nil
	}
	hr, _, _ := procCLSIDFromProgID.Call(uintptr(unsafe.Pointer(u16)), uintptr(unsafe.Pointer(&guid)))
	if hr != 0 {
		hr2, _, _ := procCLSIDFromString.Call(uintptr(unsafe.Pointer(u16)), uintptr(unsafe.Pointer(&guid)))
		if hr2 != 0 {
			return guid, fmt.Errorf("comobj: could not resolve %q to a CLSID: hresult 0x%x", id, hr)
		}
	}
	return guid, nil
}

func createInstance(clsid windows.GUID) (*idispatch, error) {
	var iidIDispatch = windows.GUID{Data1: 0x00020400, Data2: 0x0000, Data3: 0x0000,
		Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}

	var disp *idispatch
	hr, _, _ := procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsid)), 0, clsctxAll,
		uintptr(unsafe.Pointer(&iidIDispatch)), uintptr(unsafe.Pointer(&disp)),
	)
	if hr != 0 {
		hr, _, _ = procCoCreateInstance.Call(
			uintptr(unsafe.Pointer(&clsid)), 0, clsctxLocalServer,
			uintptr(unsafe.Pointer(&iidIDispatch)), uintptr(unsafe.Pointer(&disp)),
		)
		if hr != 0 {
			return nil, werr.New(werr.KindCOM, werr.MsgComCreateFailed(fmt.Sprintf("clsid %s (hresult 0x%x)", clsid, hr)))
		}
	}
	return disp, nil
}

// WrapDispatchPtr adapts a raw IDispatch-compatible COM pointer obtained
// from outside this package (e.g. oleacc.dll's AccessibleObjectFromWindow,
// which returns an IAccessible — itself IDispatch-derived) into an
// Object, so callers like pkg/winctrl's MSAA provider can drive it
// through the same GetProperty/GetPropertyByIndex/InvokeMethod surface
// this package already provides rather than hand-rolling a second vtable
// walker.
func WrapDispatchPtr(ptr uintptr) *Object {
	return &Object{disp: &comDispatcher{ptr: (*idispatch)(unsafe.Pointer(ptr))}}
}

func newDispatcher(id string) (dispatcher, error) {
	clsid, err := resolveCLSID(id)
	if err != nil {
		return nil, err
	}
	disp, err := createInstance(clsid)
	if err != nil {
		return nil, err
	}
	return &comDispatcher{ptr: disp}, nil
}

func activeDispatcher(id string) (dispatcher, error) {
	clsid, err := resolveCLSID(id)
	if err != nil {
		return nil, err
	}
	var unk uintptr
	hr, _, _ := procGetActiveObject.Call(uintptr(unsafe.Pointer(&clsid)), 0, uintptr(unsafe.Pointer(&unk)))
	if hr != 0 || unk == 0 {
		return nil, nil
	}
	return &comDispatcher{ptr: (*idispatch)(unsafe.Pointer(unk))}, nil
}

func isIEProgID(id string) (bool, error) {
	target, err := resolveCLSID(id)
	if err != nil {
		return false, nil
	}
	ie, err := resolveCLSID("InternetExplorer.Application")
	if err != nil {
		return false, nil
	}
	return target == ie, nil
}
