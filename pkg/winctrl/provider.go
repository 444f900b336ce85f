package winctrl

import (
	"github.com/wscript-lang/runtime/pkg/args"
	"github.com/wscript-lang/runtime/pkg/value"
)

// Provider is one of the three control-search backends. Click attempts
// to locate item's target under hwnd and apply item's click action,
// reporting ClickResult.Succeeded false when no match is found (not an
// error — "not found" is routine, not exceptional).
type Provider interface {
	Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult
}

// MoveMouse positions the mouse cursor; its real implementation
// (windows-tagged) calls SetCursorPos. Tests substitute a recording stub.
type MoveMouse func(x, y int)

// CentreOf resolves a window's geometric centre (GetWindowRect), used
// for the mouse-move-to-target fallback when a provider didn't report an
// exact click point.
type CentreOf func(HWND) (x, y int)

// Engine reconciles the three providers: it tries whichever ClkItem.API
// enables, in Win32 → UIA → MSAA order, and returns the first result
// that succeeded — the same first-to-succeed composition hive/merge/strategy
// uses to pick among interchangeable write strategies, generalized from
// "first strategy that accepts the write" to "first provider that finds
// the control".
type Engine struct {
	Win32     Provider
	UIA       Provider
	Acc       Provider
	Activate  func(HWND) bool // SetForegroundWindow, skipped when item.Background
	MoveMouse MoveMouse
	CentreOf  CentreOf
}

// Click runs the provider chain and returns the script-visible result.
func (e *Engine) Click(hwnd HWND, item ClkItem, check args.ThreeState) value.Value {
	if !item.Background && e.Activate != nil {
		e.Activate(hwnd)
	}

	result := Failed()
	if item.API.Win32 && e.Win32 != nil {
		result = e.Win32.Click(hwnd, item, check)
	}
	if !result.Succeeded && item.API.UIA && e.UIA != nil {
		result = e.UIA.Click(hwnd, item, check)
	}
	if !result.Succeeded && item.API.Acc && e.Acc != nil {
		result = e.Acc.Click(hwnd, item, check)
	}

	if item.MoveMouse && result.Succeeded && e.MoveMouse != nil {
		if result.Point != nil {
			e.MoveMouse(result.Point.X, result.Point.Y)
		} else if e.CentreOf != nil {
			x, y := e.CentreOf(result.Hwnd)
			e.MoveMouse(x, y)
		}
	}
	return result.ToValue(item.AsHwnd)
}
