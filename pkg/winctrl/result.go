package winctrl

import "github.com/wscript-lang/runtime/pkg/value"

// HWND is a window handle, numeric rather than a real Win32 type so this
// package's non-Windows logic (matching, reconciliation) stays portable.
type HWND uintptr

// Point is a screen coordinate pair, physical pixels of the primary
// monitor (this repo's fixed DPI-unaware policy).
type Point struct{ X, Y int }

// ClickResult is what a provider reports after attempting to find and
// click a ClkItem's target.
type ClickResult struct {
	Succeeded bool
	Hwnd      HWND
	Point     *Point // known only when the provider resolved an exact click point
}

// Failed is the zero-value "no match" result.
func Failed() ClickResult { return ClickResult{} }

// Succeed reports a successful click against hwnd with no resolved point
// (the caller falls back to hwnd's geometric centre for mouse-move).
func Succeed(hwnd HWND) ClickResult { return ClickResult{Succeeded: true, Hwnd: hwnd} }

// SucceedAt reports a successful click with a known screen point.
func SucceedAt(hwnd HWND, x, y int) ClickResult {
	return ClickResult{Succeeded: true, Hwnd: hwnd, Point: &Point{X: x, Y: y}}
}

// ToValue converts the result to the script-visible value: either the
// success bool, or the numeric window handle, per ClkItem.AsHwnd.
func (r ClickResult) ToValue(asHwnd bool) value.Value {
	if asHwnd {
		return value.Num(float64(r.Hwnd))
	}
	return value.Bool(r.Succeeded)
}
