package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/value"
)

func TestAsF64Coercion(t *testing.T) {
	a := New([]value.Value{value.Num(3.5), value.Bool(true), value.String("42")}, false)

	f, err := a.AsF64(0, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, f)

	f, err = a.AsF64(1, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, f)

	f, err = a.AsF64(2, nil)
	assert.NoError(t, err)
	assert.Equal(t, 42.0, f)
}

func TestAsF64RequiredMissing(t *testing.T) {
	a := New(nil, false)
	_, err := a.AsF64(0, nil)
	assert.Error(t, err)
}

func TestAsF64DefaultOnEmptyParam(t *testing.T) {
	a := New([]value.Value{value.EmptyParam}, false)
	def := 9.0
	f, err := a.AsF64(0, &def)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, f)
}

func TestAsF64InvalidString(t *testing.T) {
	a := New([]value.Value{value.String("nope")}, false)
	_, err := a.AsF64(0, nil)
	assert.Error(t, err)
}

func TestAsIntGeneric(t *testing.T) {
	a := New([]value.Value{value.Num(7)}, false)
	n, err := AsInt[int32](a, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), n)
}

func TestAsIntRejectsNonIntegral(t *testing.T) {
	a := New([]value.Value{value.Num(7.5)}, false)
	_, err := AsInt[int](a, 0, nil)
	assert.Error(t, err)
}

func TestAsIntOrEmpty(t *testing.T) {
	a := New([]value.Value{value.Empty, value.Num(3)}, false)

	p, err := AsIntOrEmpty[int](a, 0)
	assert.NoError(t, err)
	assert.Nil(t, p)

	p, err = AsIntOrEmpty[int](a, 1)
	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, 3, *p)
}

func TestAsBoolTruthiness(t *testing.T) {
	a := New([]value.Value{value.Num(0), value.String("x")}, false)

	b, err := a.AsBool(0, nil)
	assert.NoError(t, err)
	assert.False(t, b)

	b, err = a.AsBool(1, nil)
	assert.NoError(t, err)
	assert.True(t, b)
}

func TestAsStringDisplaysAnyKind(t *testing.T) {
	a := New([]value.Value{value.Num(5), value.String("hi")}, false)

	s, err := a.AsString(0, nil)
	assert.NoError(t, err)
	assert.Equal(t, "5", s)

	s, err = a.AsString(1, nil)
	assert.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestAsStringOrEmpty(t *testing.T) {
	a := New([]value.Value{value.Empty, value.String("x")}, false)

	_, ok, err := a.AsStringOrEmpty(0)
	assert.NoError(t, err)
	assert.False(t, ok)

	s, ok, err := a.AsStringOrEmpty(1)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestAsThreeState(t *testing.T) {
	a := New([]value.Value{value.Bool(true), value.Num(2), value.Num(0)}, false)

	ts, err := a.AsThreeState(0, nil)
	assert.NoError(t, err)
	assert.Equal(t, TSTrue, ts)

	ts, err = a.AsThreeState(1, nil)
	assert.NoError(t, err)
	assert.Equal(t, TSOther, ts)

	ts, err = a.AsThreeState(2, nil)
	assert.NoError(t, err)
	assert.Equal(t, TSFalse, ts)
}

func TestAsArray(t *testing.T) {
	arr := value.Array([]value.Value{value.Num(1), value.Num(2)})
	a := New([]value.Value{arr}, false)

	got, err := a.AsArray(0, nil)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	a2 := New([]value.Value{value.Num(1)}, false)
	_, err = a2.AsArray(0, nil)
	assert.Error(t, err)
}

func TestAsArrayIncludeHashTbl(t *testing.T) {
	h := value.NewHashTbl(false, false)
	h.Insert("a", value.Num(1))
	h.Insert("b", value.Num(2))
	hv := value.HashTblValue(h)
	a := New([]value.Value{hv}, false)

	keys, err := a.AsArrayIncludeHashTbl(0, nil, true)
	assert.NoError(t, err)
	assert.Len(t, keys, 2)

	vals, err := a.AsArrayIncludeHashTbl(0, nil, false)
	assert.NoError(t, err)
	assert.Len(t, vals, 2)
}

func TestRestAsStringArray(t *testing.T) {
	a := New([]value.Value{
		value.String("head"),
		value.String("a"),
		value.Array([]value.Value{value.String("b"), value.String("")}),
		value.Empty,
	}, false)

	got, err := a.RestAsStringArray(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRestAsStringArrayRequiresMinimum(t *testing.T) {
	a := New([]value.Value{value.Empty}, false)
	_, err := a.RestAsStringArray(0, 1)
	assert.Error(t, err)
}

func TestAsFunctionOrString(t *testing.T) {
	fn := value.FunctionValue(&value.FunctionInfo{Name: "F"})
	a := New([]value.Value{fn, value.String("F"), value.Num(1)}, false)

	v, err := a.AsFunctionOrString(0)
	assert.NoError(t, err)
	assert.Equal(t, value.KindFunction, v.Kind())

	v, err = a.AsFunctionOrString(1)
	assert.NoError(t, err)
	assert.Equal(t, value.KindString, v.Kind())

	_, err = a.AsFunctionOrString(2)
	assert.Error(t, err)
}
