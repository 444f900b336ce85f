//go:build windows

package winctrl

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wscript-lang/runtime/pkg/args"
)

// Win32Provider drives the Win32 provider described in spec.md §4.6.2:
// children enumerated via EnumChildWindows, listbox items read locally
// via LB_GETCOUNT/LB_GETTEXT. Combo boxes are matched by their window
// text only (no CB_* item messages are sent), and menus are not walked:
// no category here maps to the Menu target.
//
// Known simplification (documented in DESIGN.md): the cross-process
// TVITEM/LVITEM/TCITEM/HDITEM remote-buffer probe for tree/list/tab/
// header item text (spec.md §4.6.2 steps 1-3: OpenProcess,
// IsWow64Process, VirtualAllocEx/WriteProcessMemory/ReadProcessMemory)
// is not implemented. Tree and list items can still be matched by the
// MSAA provider through their accessibility roles; tab and header items
// have no role mapping there and are not matched by any provider.
type Win32Provider struct{}

const (
	lbGetCount      = 0x018B
	lbGetText       = 0x0189
	lbSetCurSel     = 0x0186
	wmLButtonDown   = 0x0201
	wmLButtonUp     = 0x0202
	wmRButtonDown   = 0x0204
	wmRButtonUp     = 0x0205
	wmLButtonDblClk = 0x0203
)

type win32Child struct {
	hwnd  windows.HWND
	class string
	text  string
}

func classifyWindow(class string) (target string, ok bool) {
	switch class {
	case "Button":
		return "button", true
	case "ListBox":
		return "list", true
	case "ComboBox", "ComboLBox":
		return "list", true
	case "SysTabControl32":
		return "tab", true
	case "SysTreeView32":
		return "treeview", true
	case "SysListView32":
		return "listview", true
	case "ToolbarWindow32":
		return "toolbar", true
	case "SysLink":
		return "link", true
	default:
		return "", false
	}
}

func targetEnabled(t ClkTarget, category string) bool {
	switch category {
	case "button":
		return t.Button
	case "list":
		return t.List
	case "tab":
		return t.Tab
	case "menu":
		return t.Menu
	case "treeview":
		return t.TreeView
	case "listview":
		return t.ListView
	case "toolbar":
		return t.ToolBar
	case "link":
		return t.Link
	default:
		return false
	}
}

func enumWin32Children(root windows.HWND) []win32Child {
	var children []win32Child
	cb := syscall.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
		children = append(children, win32Child{
			hwnd:  hwnd,
			class: getClassName(hwnd),
			text:  getWindowText(hwnd),
		})
		return 1 // continue enumeration
	})
	windows.EnumChildWindows(root, cb, nil)
	return children
}

func getClassName(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func getWindowText(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func listboxItemText(hwnd windows.HWND, index int) string {
	buf := make([]uint16, 256)
	syscall.SyscallN(procSendMessageW.Addr(), uintptr(hwnd), lbGetText, uintptr(index), uintptr(unsafe.Pointer(&buf[0])))
	return windows.UTF16ToString(buf)
}

func listboxItemCount(hwnd windows.HWND) int {
	n, _, _ := procSendMessageW.Call(uintptr(hwnd), lbGetCount, 0, 0)
	return int(int32(n))
}

func selectListboxItem(hwnd windows.HWND, index int) bool {
	r, _, _ := procSendMessageW.Call(uintptr(hwnd), lbSetCurSel, uintptr(index), 0)
	return int32(r) != -1
}

// searchListItems matches a ClkItem.List target against a listbox's
// entries by text, honoring order/backwards the same way the top-level
// window search does.
func searchListItems(hwnd windows.HWND, item ClkItem) (int, bool) {
	count := listboxItemCount(hwnd)
	order := item.Order
	indices := make([]int, count)
	for i := range indices {
		indices[i] = i
	}
	if item.Backwards {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}
	for _, i := range indices {
		if !MatchTitle(listboxItemText(hwnd, i), item.Name, !item.ExactOnly) {
			continue
		}
		order--
		if order <= 0 {
			return i, true
		}
	}
	return 0, false
}

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	procGetClassNameW   = user32.NewProc("GetClassNameW")
	procGetWindowTextW  = user32.NewProc("GetWindowTextW")
	procSendMessageW    = user32.NewProc("SendMessageW")
	procIsWindowEnabled = user32.NewProc("IsWindowEnabled")
	procGetWindowRect   = user32.NewProc("GetWindowRect")
	procPostMessageW    = user32.NewProc("PostMessageW")
)

type win32Rect struct{ Left, Top, Right, Bottom int32 }

func windowCentre(hwnd HWND) (int, int) {
	var r win32Rect
	procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	return int(r.Left + (r.Right-r.Left)/2), int(r.Top + (r.Bottom-r.Top)/2)
}

func postClick(hwnd windows.HWND, msgs []uint32) bool {
	enabled, _, _ := procIsWindowEnabled.Call(uintptr(hwnd))
	if enabled == 0 {
		return false
	}
	cx, cy := windowCentre(HWND(hwnd))
	lparam := uintptr(uint32(cx)&0xFFFF | (uint32(cy)&0xFFFF)<<16)
	ok := true
	for _, m := range msgs {
		r, _, _ := procPostMessageW.Call(uintptr(hwnd), uintptr(m), 0, lparam)
		ok = ok && r != 0
	}
	return ok
}

// Click implements Provider.
func (Win32Provider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	children := enumWin32Children(windows.HWND(hwnd))
	order := item.Order
	if item.Backwards {
		for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
			children[i], children[j] = children[j], children[i]
		}
	}

	for _, c := range children {
		category, ok := classifyWindow(c.class)
		if !ok || !targetEnabled(item.Target, category) {
			continue
		}
		if category == "list" && c.class == "ListBox" {
			if idx, found := searchListItems(c.hwnd, item); found {
				selectListboxItem(c.hwnd, idx)
				x, y := windowCentre(HWND(c.hwnd))
				return ClickResult{Succeeded: true, Hwnd: HWND(c.hwnd), Point: &Point{X: x, Y: y}}
			}
			continue
		}
		if !MatchTitle(c.text, item.Name, !item.ExactOnly) {
			continue
		}
		order--
		if order > 0 {
			continue
		}
		return clickWin32Target(c.hwnd, item)
	}
	return Failed()
}

func clickWin32Target(hwnd windows.HWND, item ClkItem) ClickResult {
	var clicked bool
	switch item.Button {
	case ClkButtonLeft:
		clicked = postClick(hwnd, []uint32{wmLButtonDown, wmLButtonUp})
	case ClkButtonLeftDouble:
		clicked = postClick(hwnd, []uint32{wmLButtonDblClk})
	case ClkButtonRight:
		clicked = postClick(hwnd, []uint32{wmRButtonDown, wmRButtonUp})
	default:
		clicked = postClick(hwnd, []uint32{wmLButtonDown, wmLButtonUp})
	}
	x, y := windowCentre(HWND(hwnd))
	return ClickResult{Succeeded: clicked, Hwnd: HWND(hwnd), Point: &Point{X: x, Y: y}}
}
