package comobj

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wscript-lang/runtime/pkg/value"
)

// fakeDispatcher is a minimal in-process dispatcher double used to test
// Object's property/method/index composition logic without touching
// real COM (which only exists under GOOS=windows).
type fakeDispatcher struct {
	names      map[string]int32
	onInvoke   func(dispID int32, flags uint16, args []Variant) (Variant, error)
	name       string
	collection bool
	released   bool

	onInvokeAdvanced func(dispID int32, flags uint16, args []Variant, byRef []int, namedDispIDs []int32) ([]Variant, Variant, error)
	onEnumerate      func() ([]Variant, error)
	onAdvise         func(handlers map[string]EventHandler) (uintptr, uint32, error)
	unadvised        bool
}

func (f *fakeDispatcher) getIDOfName(name string) (int32, error) {
	if id, ok := f.names[name]; ok {
		return id, nil
	}
	return 0, &ErrMemberNotFound{Member: name}
}

func (f *fakeDispatcher) getIDsOfNames(names []string) ([]int32, error) {
	ids := make([]int32, len(names))
	for i, n := range names {
		id, err := f.getIDOfName(n)
		if err != nil {
			ids[i] = dispIDUnknown
			continue
		}
		ids[i] = id
	}
	return ids, nil
}

func (f *fakeDispatcher) invoke(dispID int32, flags uint16, args []Variant) (Variant, error) {
	return f.onInvoke(dispID, flags, args)
}

func (f *fakeDispatcher) invokeAdvanced(dispID int32, flags uint16, args []Variant, byRef []int, namedDispIDs []int32) ([]Variant, Variant, error) {
	if f.onInvokeAdvanced != nil {
		return f.onInvokeAdvanced(dispID, flags, args, byRef, namedDispIDs)
	}
	v, err := f.onInvoke(dispID, flags, args)
	return args, v, err
}

func (f *fakeDispatcher) enumerate() ([]Variant, error) {
	if f.onEnumerate != nil {
		return f.onEnumerate()
	}
	return nil, fmt.Errorf("fakeDispatcher: no enumerator configured")
}

func (f *fakeDispatcher) advise(handlers map[string]EventHandler) (uintptr, uint32, error) {
	if f.onAdvise != nil {
		return f.onAdvise(handlers)
	}
	return 1, 1, nil
}

func (f *fakeDispatcher) unadvise(cp uintptr, cookie uint32) error {
	f.unadvised = true
	return nil
}

func (f *fakeDispatcher) typeName() (string, bool) { return f.name, f.name != "" }
func (f *fakeDispatcher) isCollection() bool       { return f.collection }
func (f *fakeDispatcher) release()                 { f.released = true }

func TestObjectDisplayNamedType(t *testing.T) {
	o := &Object{disp: &fakeDispatcher{name: "Excel.Application"}}
	assert.Equal(t, "ComObject(Excel.Application)", o.Display())
}

func TestObjectDisplayCollection(t *testing.T) {
	o := &Object{disp: &fakeDispatcher{name: "Items", collection: true}}
	assert.Equal(t, "ComObject(Items[])", o.Display())
}

func TestObjectDisplayUnknownType(t *testing.T) {
	o := &Object{disp: &fakeDispatcher{}}
	assert.Equal(t, "ComObject(unknown)", o.Display())
}

func TestGetProperty(t *testing.T) {
	fd := &fakeDispatcher{
		names: map[string]int32{"Visible": 1},
		onInvoke: func(dispID int32, flags uint16, args []Variant) (Variant, error) {
			assert.Equal(t, int32(1), dispID)
			assert.Equal(t, dispatchPropertyGet, flags)
			return Variant{VT: VT_BOOL, Bool: true}, nil
		},
	}
	o := &Object{disp: fd}
	v, err := o.GetProperty("Visible")
	require.NoError(t, err)
	assert.True(t, v.Bool)
}

func TestSetProperty(t *testing.T) {
	var gotArgs []Variant
	fd := &fakeDispatcher{
		names: map[string]int32{"Visible": 1},
		onInvoke: func(dispID int32, flags uint16, args []Variant) (Variant, error) {
			gotArgs = args
			assert.Equal(t, dispatchPropertyPut, flags)
			return Variant{}, nil
		},
	}
	o := &Object{disp: fd}
	require.NoError(t, o.SetProperty("Visible", Variant{VT: VT_BOOL, Bool: true}))
	require.Len(t, gotArgs, 1)
	assert.True(t, gotArgs[0].Bool)
}

func TestGetPropertyByIndexFallsBackToItem(t *testing.T) {
	fd := &fakeDispatcher{
		names: map[string]int32{"Sheets": 1, "Item": 2},
		onInvoke: func(dispID int32, flags uint16, args []Variant) (Variant, error) {
			switch dispID {
			case 1:
				// Sheets[i] indexed-get fails member-not-found...
				if flags == dispatchPropertyGet|dispatchMethod {
					return Variant{}, &ErrMemberNotFound{Member: "Sheets"}
				}
				// ...but Sheets as a plain property resolves to a
				// collection ComObject.
				inner := &Object{disp: &fakeDispatcher{
					names: map[string]int32{"Item": 2},
					onInvoke: func(d int32, f uint16, a []Variant) (Variant, error) {
						return Variant{VT: VT_BSTR, Str: "Sheet1"}, nil
					},
				}}
				return Variant{VT: VT_DISPATCH, Disp: inner}, nil
			}
			return Variant{}, nil
		},
	}
	o := &Object{disp: fd}
	v, err := o.GetPropertyByIndex("Sheets", []Variant{{VT: VT_I4, Num: 1}})
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", v.Str)
}

func TestInvokeMethodFallsBackToItem(t *testing.T) {
	fd := &fakeDispatcher{
		names: map[string]int32{"bar": 1},
		onInvoke: func(dispID int32, flags uint16, args []Variant) (Variant, error) {
			if flags == dispatchMethod|dispatchPropertyGet {
				return Variant{}, &ErrMemberNotFound{Member: "bar"}
			}
			inner := &Object{disp: &fakeDispatcher{
				names: map[string]int32{"Item": 9},
				onInvoke: func(d int32, f uint16, a []Variant) (Variant, error) {
					return Variant{VT: VT_I4, Num: 42}, nil
				},
			}}
			return Variant{VT: VT_DISPATCH, Disp: inner}, nil
		},
	}
	o := &Object{disp: fd}
	v, err := o.InvokeMethod("bar", []Variant{{VT: VT_I4, Num: 0}})
	require.NoError(t, err)
	assert.Equal(t, float64(42), v.Num)
}

func TestRegisterEventStoresHandler(t *testing.T) {
	o := &Object{disp: &fakeDispatcher{}}
	called := false
	require.NoError(t, o.RegisterEvent("OnClick", func(args []value.Value) { called = true }))
	h, ok := o.handlers["OnClick"]
	require.True(t, ok)
	h(nil)
	assert.True(t, called)
}

func TestRegisterEventAdvisesOnlyOnce(t *testing.T) {
	adviseCalls := 0
	fd := &fakeDispatcher{onAdvise: func(handlers map[string]EventHandler) (uintptr, uint32, error) {
		adviseCalls++
		return 42, 7, nil
	}}
	o := &Object{disp: fd}
	require.NoError(t, o.RegisterEvent("OnClick", func(args []value.Value) {}))
	require.NoError(t, o.RegisterEvent("OnClose", func(args []value.Value) {}))
	assert.Equal(t, 1, adviseCalls)
	assert.True(t, o.advised)
	assert.EqualValues(t, 42, o.adviseCP)
	assert.EqualValues(t, 7, o.adviseCookie)
}

func TestRegisterEventSurfacesAdviseFailure(t *testing.T) {
	fd := &fakeDispatcher{onAdvise: func(handlers map[string]EventHandler) (uintptr, uint32, error) {
		return 0, 0, fmt.Errorf("no connection point")
	}}
	o := &Object{disp: fd}
	err := o.RegisterEvent("OnClick", func(args []value.Value) {})
	assert.Error(t, err)
	assert.False(t, o.advised)
}

func TestReleaseIsIdempotent(t *testing.T) {
	fd := &fakeDispatcher{}
	o := &Object{disp: fd}
	o.Release()
	o.Release()
	assert.True(t, fd.released)
}

func TestReleaseUnadvisesRegisteredEvents(t *testing.T) {
	fd := &fakeDispatcher{}
	o := &Object{disp: fd}
	require.NoError(t, o.RegisterEvent("OnClick", func(args []value.Value) {}))
	o.Release()
	assert.True(t, fd.unadvised)
	assert.True(t, fd.released)
}

func TestInvokeMethodWithNamedArgsResolvesDispIDs(t *testing.T) {
	fd := &fakeDispatcher{
		names: map[string]int32{"Connect": 10, "timeout": 11, "retries": 12},
	}
	fd.onInvokeAdvanced = func(dispID int32, flags uint16, args []Variant, byRef []int, namedDispIDs []int32) ([]Variant, Variant, error) {
		assert.EqualValues(t, 10, dispID)
		require.Len(t, namedDispIDs, 1)
		assert.EqualValues(t, 11, namedDispIDs[0])
		require.Len(t, args, 2)
		assert.Equal(t, float64(5), args[0].Num)
		return args, Variant{VT: VT_BOOL, Bool: true}, nil
	}
	o := &Object{disp: fd}
	v, err := o.InvokeMethodWithNamedArgs("Connect",
		[]Variant{{VT: VT_BSTR, Str: "host"}},
		[]NamedArg{{Name: "timeout", Val: Variant{VT: VT_R8, Num: 5}}})
	require.NoError(t, err)
	assert.True(t, v.Bool)
}

func TestInvokeMethodWithNamedArgsRejectsUnknownName(t *testing.T) {
	fd := &fakeDispatcher{names: map[string]int32{"Connect": 10}}
	o := &Object{disp: fd}
	_, err := o.InvokeMethodWithNamedArgs("Connect", nil,
		[]NamedArg{{Name: "bogus", Val: Variant{VT: VT_R8, Num: 1}}})
	assert.Error(t, err)
}

func TestInvokeMethodByRefReadsBackUpdatedValue(t *testing.T) {
	fd := &fakeDispatcher{names: map[string]int32{"Parse": 1}}
	fd.onInvokeAdvanced = func(dispID int32, flags uint16, args []Variant, byRef []int, namedDispIDs []int32) ([]Variant, Variant, error) {
		require.Equal(t, []int{1}, byRef)
		updated := append([]Variant{}, args...)
		updated[1] = Variant{VT: VT_R8, Num: 99}
		return updated, Variant{VT: VT_BOOL, Bool: true}, nil
	}
	o := &Object{disp: fd}
	out, ret, err := o.InvokeMethodByRef("Parse",
		[]Variant{{VT: VT_BSTR, Str: "42"}, {VT: VT_R8, Num: 0}}, []int{1})
	require.NoError(t, err)
	assert.True(t, ret.Bool)
	assert.Equal(t, float64(99), out[1].Num)
}

func TestObjectEnumerateReturnsElements(t *testing.T) {
	fd := &fakeDispatcher{onEnumerate: func() ([]Variant, error) {
		return []Variant{{VT: VT_BSTR, Str: "a"}, {VT: VT_BSTR, Str: "b"}}, nil
	}}
	o := &Object{disp: fd}
	items, err := o.Enumerate()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Str)
	assert.Equal(t, "b", items[1].Str)
}

func TestObjectEnumerateFallsBackToCountAndItem(t *testing.T) {
	fd := &fakeDispatcher{
		names: map[string]int32{"Count": 1, "Item": 2},
		onEnumerate: func() ([]Variant, error) {
			return nil, fmt.Errorf("no IEnumVARIANT")
		},
		onInvoke: func(dispID int32, flags uint16, args []Variant) (Variant, error) {
			switch dispID {
			case 1:
				return Variant{VT: VT_I4, Num: 2}, nil
			case 2:
				return Variant{VT: VT_I4, Num: args[0].Num * 10}, nil
			}
			return Variant{}, nil
		},
	}
	o := &Object{disp: fd}
	items, err := o.Enumerate()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, float64(0), items[0].Num)
	assert.Equal(t, float64(10), items[1].Num)
}

func TestObjectEnumerateWrapsFailure(t *testing.T) {
	fd := &fakeDispatcher{onEnumerate: func() ([]Variant, error) {
		return nil, fmt.Errorf("no _NewEnum")
	}}
	o := &Object{disp: fd}
	_, err := o.Enumerate()
	assert.Error(t, err)
}
