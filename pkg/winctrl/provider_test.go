package winctrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wscript-lang/runtime/pkg/args"
	"github.com/wscript-lang/runtime/pkg/value"
)

type fakeProvider struct {
	result ClickResult
	called bool
}

func (f *fakeProvider) Click(hwnd HWND, item ClkItem, check args.ThreeState) ClickResult {
	f.called = true
	return f.result
}

func TestEngineTriesProvidersInOrderUntilOneSucceeds(t *testing.T) {
	win32 := &fakeProvider{result: Failed()}
	uia := &fakeProvider{result: Succeed(42)}
	acc := &fakeProvider{result: Succeed(99)}
	e := &Engine{Win32: win32, UIA: uia, Acc: acc}

	item := NewClkItem("OK", 0, 1)
	got := e.Click(1, item, args.TSFalse)

	assert.True(t, win32.called)
	assert.True(t, uia.called)
	assert.False(t, acc.called, "should stop once uia succeeds")
	assert.Equal(t, value.Bool(true), got)
}

func TestEngineRespectsAPIRestriction(t *testing.T) {
	win32 := &fakeProvider{result: Failed()}
	acc := &fakeProvider{result: Succeed(1)}
	e := &Engine{Win32: win32, Acc: acc}

	item := NewClkItem("OK", uint32(ClkAPI), 1) // only win32 enabled
	got := e.Click(1, item, args.TSFalse)

	assert.True(t, win32.called)
	assert.False(t, acc.called, "acc is disabled by the api flag set")
	assert.Equal(t, value.Bool(false), got)
}

func TestEngineReturnsHwndWhenAsHwndSet(t *testing.T) {
	win32 := &fakeProvider{result: Succeed(777)}
	e := &Engine{Win32: win32}
	item := NewClkItem("OK", uint32(ClkHwnd), 1)
	got := e.Click(1, item, args.TSFalse)
	f, ok := got.AsFloat(false)
	require.True(t, ok)
	assert.Equal(t, float64(777), f)
}

func TestEngineMovesMouseToResolvedPoint(t *testing.T) {
	win32 := &fakeProvider{result: SucceedAt(1, 10, 20)}
	var moved *Point
	e := &Engine{
		Win32:     win32,
		MoveMouse: func(x, y int) { moved = &Point{X: x, Y: y} },
	}
	item := NewClkItem("OK", uint32(ClkMouseMove), 1)
	e.Click(1, item, args.TSFalse)
	require.NotNil(t, moved)
	assert.Equal(t, 10, moved.X)
	assert.Equal(t, 20, moved.Y)
}

func TestEngineMovesMouseToCentreWhenNoPointResolved(t *testing.T) {
	win32 := &fakeProvider{result: Succeed(5)}
	var moved *Point
	e := &Engine{
		Win32:     win32,
		MoveMouse: func(x, y int) { moved = &Point{X: x, Y: y} },
		CentreOf:  func(h HWND) (int, int) { return 100, 200 },
	}
	item := NewClkItem("OK", uint32(ClkMouseMove), 1)
	e.Click(1, item, args.TSFalse)
	require.NotNil(t, moved)
	assert.Equal(t, 100, moved.X)
	assert.Equal(t, 200, moved.Y)
}

func TestEngineActivatesUnlessBackground(t *testing.T) {
	win32 := &fakeProvider{result: Failed()}
	activated := false
	e := &Engine{Win32: win32, Activate: func(h HWND) bool { activated = true; return true }}

	e.Click(1, NewClkItem("OK", 0, 1), args.TSFalse)
	assert.True(t, activated)

	activated = false
	e.Click(1, NewClkItem("OK", uint32(ClkBack), 1), args.TSFalse)
	assert.False(t, activated, "ClkBack should skip activation")
}

func TestClickResultToValue(t *testing.T) {
	assert.Equal(t, value.Bool(true), Succeed(1).ToValue(false))
	assert.Equal(t, value.Num(1), Succeed(1).ToValue(true))
	assert.Equal(t, value.Bool(false), Failed().ToValue(false))
}
