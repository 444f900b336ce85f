//go:build !windows

package winctrl

import "github.com/wscript-lang/runtime/pkg/args"

// Win32Provider is a no-op stub off Windows: EnumChildWindows and friends
// don't exist, so every search reports no match rather than erroring —
// the engine simply falls through to the next enabled provider.
type Win32Provider struct{}

func (Win32Provider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	return Failed()
}
