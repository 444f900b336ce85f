//go:build !windows

package winctrl

import "github.com/wscript-lang/runtime/pkg/args"

// AccProvider is a no-op stub off Windows: MSAA doesn't exist outside it.
type AccProvider struct{}

func (AccProvider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	return Failed()
}
