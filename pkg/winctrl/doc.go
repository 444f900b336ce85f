// Package winctrl implements the Win32 control-search engine: given a
// window handle and a ClkItem description, locate a matching UI element
// and click it. The three-state check argument is passed to every
// provider but no provider reads it, so no toggle-to-state logic runs.
//
// Three providers compete for a match: Win32 (EnumChildWindows + window
// messages), MSAA (IAccessible, reached through pkg/comobj since
// IAccessible is IDispatch-derived), and UIA, which always reports no
// match on every platform. Engine.Click runs whichever providers ClkItem.API enables,
// in Win32 → UIA → MSAA order, and returns the first successful result —
// the same first-to-succeed composition hive/merge/strategy uses to pick
// among interchangeable write strategies.
//
// Name matching, ClkItem flag decoding, and provider reconciliation are
// plain Go with no Windows dependency and are exercised directly by this
// package's tests. The providers themselves are windows-build-tagged;
// their non-windows stub always reports no match.
package winctrl
