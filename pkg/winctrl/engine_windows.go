//go:build windows

package winctrl

var (
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procSetCursorPos        = user32.NewProc("SetCursorPos")
)

func activateWindow(hwnd HWND) bool {
	r, _, _ := procSetForegroundWindow.Call(uintptr(hwnd))
	return r != 0
}

func moveMouseTo(x, y int) {
	procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
}

// NewEngine wires the real Windows providers and OS calls (SetForegroundWindow,
// SetCursorPos, GetWindowRect) into an Engine.
func NewEngine() *Engine {
	return &Engine{
		Win32:     Win32Provider{},
		UIA:       UIAProvider{},
		Acc:       AccProvider{},
		Activate:  activateWindow,
		MoveMouse: moveMouseTo,
		CentreOf:  windowCentre,
	}
}
