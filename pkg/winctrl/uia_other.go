//go:build !windows

package winctrl

import "github.com/wscript-lang/runtime/pkg/args"

// UIAProvider is a no-op stub off Windows.
type UIAProvider struct{}

func (UIAProvider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	return Failed()
}
