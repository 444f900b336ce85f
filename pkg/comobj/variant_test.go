package comobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wscript-lang/runtime/pkg/value"
)

func TestVariantDisplay(t *testing.T) {
	v := Variant{VT: VT_ERROR}
	assert.Equal(t, "Variant(VT=10)", v.Display())
}

func TestVariantToValueEmptyAndNull(t *testing.T) {
	assert.Equal(t, value.Empty, Variant{VT: VT_EMPTY}.ToValue())
	assert.Equal(t, value.Null, Variant{VT: VT_NULL}.ToValue())
}

func TestVariantToValueNumeric(t *testing.T) {
	v := Variant{VT: VT_R8, Num: 3.5}
	got := v.ToValue()
	f, ok := got.AsFloat(false)
	require.True(t, ok)
	assert.Equal(t, 3.5, f)
}

func TestVariantToValueStringAndBool(t *testing.T) {
	s := Variant{VT: VT_BSTR, Str: "hello"}
	assert.Equal(t, "hello", s.ToValue().Display())

	b := Variant{VT: VT_BOOL, Bool: true}
	assert.Equal(t, value.Bool(true), b.ToValue())
}

func TestVariantToValueStripsByrefFlag(t *testing.T) {
	v := Variant{VT: VT_R8 | VT_BYREF, Num: 1}
	f, ok := v.ToValue().AsFloat(false)
	require.True(t, ok)
	assert.Equal(t, float64(1), f)
}

func TestVariantToValueDispatchNilIsNothing(t *testing.T) {
	v := Variant{VT: VT_DISPATCH, Disp: nil}
	assert.Equal(t, value.Nothing, v.ToValue())
}

func TestVariantToValueDispatchWrapsObject(t *testing.T) {
	o := &Object{disp: &fakeDispatcher{}}
	v := Variant{VT: VT_DISPATCH, Disp: o}
	got := v.ToValue()
	assert.Equal(t, value.KindComObject, got.Kind())
	ref, ok := got.AsComObject()
	require.True(t, ok)
	assert.Same(t, o, ref)
}

func TestVariantToValueUnknownFallback(t *testing.T) {
	v := Variant{VT: VT_ERROR, Num: 42}
	got := v.ToValue()
	assert.Equal(t, value.KindVariant, got.Kind())
}

func TestFromValueScalars(t *testing.T) {
	cases := []struct {
		in   value.Value
		want VT
	}{
		{value.Empty, VT_EMPTY},
		{value.Null, VT_NULL},
		{value.Num(1.5), VT_R8},
		{value.String("x"), VT_BSTR},
		{value.Bool(true), VT_BOOL},
		{value.Nothing, VT_DISPATCH},
	}
	for _, c := range cases {
		v, err := FromValue(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, v.VT)
	}
}

func TestFromValueComObject(t *testing.T) {
	o := &Object{disp: &fakeDispatcher{}}
	v, err := FromValue(value.ComObjectValue(o))
	require.NoError(t, err)
	assert.Equal(t, VT_DISPATCH, v.VT)
	assert.Same(t, o, v.Disp)
}

func TestFromValueArrayRoundTrips(t *testing.T) {
	v, err := FromValue(value.Array([]value.Value{value.Num(1), value.String("a")}))
	require.NoError(t, err)
	assert.Equal(t, VT_VARIANT|VT_ARRAY, v.VT)
	require.Len(t, v.Arr, 2)
	assert.Equal(t, VT_R8, v.Arr[0].VT)
	assert.Equal(t, VT_BSTR, v.Arr[1].VT)

	back := v.ToValue()
	assert.Equal(t, value.KindArray, back.Kind())
	elems, ok := back.AsArray()
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, "a", elems[1].Display())
}

func TestFromValueUnsupportedKind(t *testing.T) {
	_, err := FromValue(value.FunctionValue(&value.FunctionInfo{}))
	assert.Error(t, err)
}
