//go:build windows

package winctrl

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wscript-lang/runtime/pkg/args"
	"github.com/wscript-lang/runtime/pkg/comobj"
)

// AccProvider drives the MSAA provider described in spec.md §4.6.3.
// IAccessible is itself IDispatch-derived, so once AccessibleObjectFromWindow
// hands back a raw pointer this provider drives it through pkg/comobj's
// existing Object (GetPropertyByIndex for the varChild-indexed
// accRole/accName/accState properties, InvokeMethod for accDoDefaultAction/
// accSelect) instead of a second hand-rolled vtable walker.
//
// Known simplification (documented in DESIGN.md): children are walked one
// accChild call at a time rather than batched through the real
// AccessibleChildren array call, and menu/treeview path accumulation
// (spec.md's "`\`-joined path") is flattened to a single-level name match
// rather than full hierarchical path reconciliation.
type AccProvider struct{}

const (
	objidWindow       = 0
	childidSelf       = 0
	roleSystemMenuItem = 0xC
	roleSystemListItem = 0x22
	roleSystemOutline   = 0x23
	roleSystemOutlineItem = 0x24
	roleSystemPushButton  = 0x2B
	roleSystemCheckButton = 0x2C
	roleSystemMenuPopup   = 0xB
	selfTakeFocusTakeSelection = 3
	selfAddSelection           = 8
)

var (
	oleacc                        = windows.NewLazySystemDLL("oleacc.dll")
	procAccessibleObjectFromWindow = oleacc.NewProc("AccessibleObjectFromWindow")
)

var iidIAccessible = windows.GUID{Data1: 0x618736E0, Data2: 0x3C3D, Data3: 0x11CF,
	Data4: [8]byte{0x81, 0x0C, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}}

func accessibleFromHwnd(hwnd HWND) (*comobj.Object, bool) {
	var ptr uintptr
	hr, _, _ := procAccessibleObjectFromWindow.Call(
		uintptr(hwnd), objidWindow,
		uintptr(unsafe.Pointer(&iidIAccessible)), uintptr(unsafe.Pointer(&ptr)),
	)
	if hr != 0 || ptr == 0 {
		return nil, false
	}
	return comobj.WrapDispatchPtr(ptr), true
}

func accRole(o *comobj.Object, childID int) (int, bool) {
	v, err := o.GetPropertyByIndex("accRole", []comobj.Variant{{VT: comobj.VT_I4, Num: float64(childID)}})
	if err != nil {
		return 0, false
	}
	return int(v.Num), true
}

func accName(o *comobj.Object, childID int) (string, bool) {
	v, err := o.GetPropertyByIndex("accName", []comobj.Variant{{VT: comobj.VT_I4, Num: float64(childID)}})
	if err != nil {
		return "", false
	}
	return v.Str, true
}

func accChildCount(o *comobj.Object) int {
	v, err := o.GetProperty("accChildCount")
	if err != nil {
		return 0
	}
	return int(v.Num)
}

// accChild resolves child i to its own Object when it is a full COM
// child (a container, e.g. a submenu), or reports ok=false when it's a
// "simple element" addressed only by childID on the parent.
func accChild(o *comobj.Object, i int) (*comobj.Object, bool) {
	v, err := o.GetPropertyByIndex("accChild", []comobj.Variant{{VT: comobj.VT_I4, Num: float64(i)}})
	if err != nil || v.Disp == nil {
		return nil, false
	}
	return v.Disp, true
}

func roleCategory(role int) (string, bool) {
	switch role {
	case roleSystemPushButton, roleSystemCheckButton:
		return "button", true
	case roleSystemListItem:
		return "list", true
	case roleSystemOutline, roleSystemOutlineItem:
		return "treeview", true
	case roleSystemMenuPopup, roleSystemMenuItem:
		return "menu", true
	default:
		return "", false
	}
}

// Click implements Provider.
func (AccProvider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	root, ok := accessibleFromHwnd(hwnd)
	if !ok {
		return Failed()
	}
	order := item.Order
	count := accChildCount(root)
	for i := 1; i <= count; i++ {
		childID := i
		if child, isContainer := accChild(root, i); isContainer {
			// Recurse into full child objects (submenus, nested containers).
			if result := (AccProvider{}).clickWithin(HWND(hwnd), child, item, &order); result.Succeeded {
				return result
			}
			continue
		}
		role, ok := accRole(root, childID)
		if !ok {
			continue
		}
		category, ok := roleCategory(role)
		if !ok || !targetEnabled(item.Target, category) {
			continue
		}
		name, _ := accName(root, childID)
		if !MatchTitle(name, item.Name, !item.ExactOnly) {
			continue
		}
		order--
		if order > 0 {
			continue
		}
		return accClickSimple(root, childID)
	}
	return Failed()
}

func (AccProvider) clickWithin(hwnd HWND, o *comobj.Object, item ClkItem, order *int) ClickResult {
	count := accChildCount(o)
	for i := 1; i <= count; i++ {
		role, ok := accRole(o, i)
		if !ok {
			continue
		}
		category, ok := roleCategory(role)
		if !ok || !targetEnabled(item.Target, category) {
			continue
		}
		name, _ := accName(o, i)
		if !MatchTitle(name, item.Name, !item.ExactOnly) {
			continue
		}
		*order--
		if *order > 0 {
			continue
		}
		return accClickSimple(o, i)
	}
	return Failed()
}

func accClickSimple(o *comobj.Object, childID int) ClickResult {
	idx := []comobj.Variant{{VT: comobj.VT_I4, Num: float64(childID)}}
	_, err := o.InvokeMethod("accDoDefaultAction", idx)
	if err != nil {
		// List-item convention: select then retry, matching the
		// original's select-then-default-action fallback.
		o.InvokeMethod("accSelect", []comobj.Variant{
			{VT: comobj.VT_I4, Num: selfTakeFocusTakeSelection}, idx[0],
		})
		_, err = o.InvokeMethod("accDoDefaultAction", idx)
	}
	return ClickResult{Succeeded: err == nil}
}
