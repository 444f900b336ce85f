//go:build windows

package comobj

import (
	"sync"
	"syscall"
	"unsafe"

	"github.com/wscript-lang/runtime/pkg/value"
)

// dispEUnknownInterface is DISP_E_UNKNOWNINTERFACE, returned by the sink's
// GetTypeInfo/GetIDsOfNames since it carries no type library of its own.
const dispEUnknownInterface = -2147352575

// eventSinkVtbl is the IDispatch vtable the source object calls through.
// Every slot is a real stdcall thunk built by syscall.NewCallback, the
// same technique comDispatcher uses in reverse to call into COM.
type eventSinkVtbl struct {
	QueryInterface   uintptr
	AddRef           uintptr
	Release          uintptr
	GetTypeInfoCount uintptr
	GetTypeInfo      uintptr
	GetIDsOfNames    uintptr
	Invoke           uintptr
}

// eventSink is a minimal, Go-owned IDispatch: the automated object holds
// a pointer to one of these and calls Invoke on it whenever a subscribed
// event fires (spec.md §4.5.3). handlers is the same map Object.handlers
// points at, so registering a new event name after advising is already
// visible here with no re-advise needed.
type eventSink struct {
	vtbl *eventSinkVtbl
	ref  int32

	mu       sync.Mutex
	handlers map[string]EventHandler
	byDispID map[int32]string
	source   dispatcher
}

var (
	sinkVtblOnce sync.Once
	sinkVtblPtr  *eventSinkVtbl
)

func sharedSinkVtbl() *eventSinkVtbl {
	sinkVtblOnce.Do(func() {
		sinkVtblPtr = &eventSinkVtbl{
			QueryInterface:   syscall.NewCallback(sinkQueryInterface),
			AddRef:           syscall.NewCallback(sinkAddRef),
			Release:          syscall.NewCallback(sinkRelease),
			GetTypeInfoCount: syscall.NewCallback(sinkGetTypeInfoCount),
			GetTypeInfo:      syscall.NewCallback(sinkGetTypeInfo),
			GetIDsOfNames:    syscall.NewCallback(sinkGetIDsOfNames),
			Invoke:           syscall.NewCallback(sinkInvoke),
		}
	})
	return sinkVtblPtr
}

// newEventSink builds a sink advise can hand to a connection point.
// source is the same dispatcher the Object calls methods through,
// reused here to resolve an incoming dispid back to an event name via
// the standard GetIDsOfNames lookup (see RegisterEvent's doc comment
// for the simplification this implies).
func newEventSink(handlers map[string]EventHandler, source dispatcher) *eventSink {
	return &eventSink{
		vtbl:     sharedSinkVtbl(),
		ref:      1,
		handlers: handlers,
		byDispID: make(map[int32]string),
		source:   source,
	}
}

func sinkQueryInterface(this, riid, ppv uintptr) uintptr {
	if ppv != 0 {
		*(*uintptr)(unsafe.Pointer(ppv)) = this
	}
	sinkAddRef(this)
	return 0
}

func sinkAddRef(this uintptr) uintptr {
	s := (*eventSink)(unsafe.Pointer(this))
	s.ref++
	return uintptr(s.ref)
}

func sinkRelease(this uintptr) uintptr {
	s := (*eventSink)(unsafe.Pointer(this))
	s.ref--
	return uintptr(s.ref)
}

func sinkGetTypeInfoCount(this, pct uintptr) uintptr {
	if pct != 0 {
		*(*uint32)(unsafe.Pointer(pct)) = 0
	}
	return 0
}

func sinkGetTypeInfo(this, index, lcid, ppv uintptr) uintptr {
	return uintptr(dispEUnknownInterface)
}

func sinkGetIDsOfNames(this, riid, names, count, lcid, rgdispid uintptr) uintptr {
	return uintptr(dispEUnknownInterface)
}

// sinkInvoke is the thunk the source object actually calls. It resolves
// dispID to a registered event name (caching the mapping), decodes the
// DISPPARAMS argument vector in the usual reversed order, and runs the
// matching handler synchronously on the calling (COM) thread.
func sinkInvoke(this, dispID, riid, lcid, flags, params, result, excepInfo, argErr uintptr) uintptr {
	s := (*eventSink)(unsafe.Pointer(this))
	p := (*dispParams)(unsafe.Pointer(params))
	id := int32(dispID)

	s.mu.Lock()
	name, ok := s.byDispID[id]
	if !ok {
		for evName := range s.handlers {
			if resolved, err := s.source.getIDOfName(evName); err == nil && resolved == id {
				s.byDispID[id] = evName
				name, ok = evName, true
				break
			}
		}
	}
	handler := s.handlers[name]
	s.mu.Unlock()

	if !ok || handler == nil {
		return 0
	}

	n := int(p.cArgs)
	args := make([]value.Value, n)
	if n > 0 {
		raw := unsafe.Slice((*nativeVariant)(unsafe.Pointer(p.rgvarg)), n)
		for i := 0; i < n; i++ {
			v, err := fromNativeVariant(raw[n-1-i])
			if err != nil {
				continue
			}
			args[i] = v.ToValue()
		}
	}
	handler(args)
	return 0
}
