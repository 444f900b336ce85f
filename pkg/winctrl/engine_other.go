//go:build !windows

package winctrl

// NewEngine off Windows wires the no-op provider stubs; every Click call
// reports no match. Useful for callers that need an Engine value to
// exist on every GOOS (e.g. constructing the evaluator's builtin table),
// not for finding real controls.
func NewEngine() *Engine {
	return &Engine{
		Win32: Win32Provider{},
		UIA:   UIAProvider{},
		Acc:   AccProvider{},
	}
}
