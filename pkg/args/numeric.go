package args

import (
	"math"

	"github.com/wscript-lang/runtime/pkg/value"
)

// Integer is the set of Go integer types a builtin may request via
// AsInt/AsIntOrEmpty, standing in for the original's cast::From<f64>
// type parameter.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func fitsInteger[T Integer](f float64) (T, bool) {
	if f != math.Trunc(f) {
		return 0, false
	}
	var zero T
	n := T(f)
	// Round-trip through float64 to catch truncation/overflow for the
	// target width (e.g. a value too large for int8).
	if float64(n) != f {
		return zero, false
	}
	return n, true
}

func numericArg(v value.Value) (float64, bool) {
	switch v.Kind() {
	case value.KindNum:
		f, _ := v.AsFloat(false)
		return f, true
	case value.KindBool:
		if value.IsTruthy(v) {
			return 1, true
		}
		return 0, true
	case value.KindString:
		return v.AsFloat(true)
	default:
		return 0, false
	}
}

// AsInt extracts argument i as an arbitrary Go integer type, matching
// the original's get_as_int<T>: numbers, bools (0/1), and numeric
// strings are accepted; anything else or a value that doesn't fit the
// target type is BuiltinArgCastError/BuiltinArgInvalid.
func AsInt[T Integer](a Args, i int, def *T) (T, error) {
	v := a.Item(i)
	if v.Kind() == value.KindEmptyParam {
		if def == nil {
			return 0, argRequired(i)
		}
		return *def, nil
	}
	f, ok := numericArg(v)
	if !ok {
		return 0, argInvalid(v)
	}
	n, ok := fitsInteger[T](f)
	if !ok {
		return 0, argCastError(v, typeName[T]())
	}
	return n, nil
}

// AsIntOrEmpty extracts argument i as *T, reporting (nil, nil) when the
// argument is Empty or EmptyParam (the "omitted" convention), instead
// of requiring a caller-supplied default.
func AsIntOrEmpty[T Integer](a Args, i int) (*T, error) {
	v := a.Item(i)
	switch v.Kind() {
	case value.KindEmpty, value.KindEmptyParam:
		return nil, nil
	}
	f, ok := numericArg(v)
	if !ok {
		return nil, argInvalid(v)
	}
	n, ok := fitsInteger[T](f)
	if !ok {
		return nil, argCastError(v, typeName[T]())
	}
	return &n, nil
}

func typeName[T Integer]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "int"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	default:
		return "int"
	}
}
