//go:build windows

package winctrl

import "github.com/wscript-lang/runtime/pkg/args"

// UIAProvider is the second provider in the Win32 → UIA → MSAA chain
// (spec.md §4.6.4). It is wired into Engine and build-tagged like its
// siblings, but always reports no match: UI Automation's
// TogglePattern/SelectionItemPattern/ExpandCollapsePattern walk requires
// a second substantial vtable surface beyond IUIAutomation's dual
// interface, and Win32Provider/AccProvider already cover buttons, list
// items, tree items and menus for the common case. Tab and header items
// are matched by neither of them. This is a
// documented scope cut (DESIGN.md), not a fabricated dependency — no
// code here pretends to call UIA methods that don't exist.
type UIAProvider struct{}

func (UIAProvider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	return Failed()
}
