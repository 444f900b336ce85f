package args

import (
	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

// Args is the argument list a builtin function receives: positional
// values plus whether the call was awaited. Omitted optional arguments
// arrive as value.EmptyParam, never as a shorter slice, matching the
// evaluator's calling convention (spec.md §4.3).
type Args struct {
	items   []value.Value
	isAwait bool
}

// New constructs an Args from already-evaluated argument values.
func New(items []value.Value, isAwait bool) Args {
	return Args{items: items, isAwait: isAwait}
}

// IsAwait reports whether the call used the await modifier.
func (a Args) IsAwait() bool { return a.isAwait }

// Len returns the number of supplied arguments.
func (a Args) Len() int { return len(a.items) }

// Item returns the argument at i, or value.EmptyParam if i is beyond
// the supplied list — the same sentinel the evaluator uses for an
// omitted trailing optional argument, so extractors don't need to
// special-case "not supplied" separately from "supplied as EmptyParam."
func (a Args) Item(i int) value.Value {
	if i < 0 || i >= len(a.items) {
		return value.EmptyParam
	}
	return a.items[i]
}

func argRequired(i int) *werr.BuiltinError {
	return werr.NewBuiltinError(werr.KindBuiltinFunction, werr.MsgBuiltinArgRequiredAt(i+1))
}

func argInvalid(v value.Value) *werr.BuiltinError {
	return werr.NewBuiltinError(werr.KindBuiltinFunction, werr.MsgBuiltinArgInvalid(v.Display()))
}

func argCastError(v value.Value, toType string) *werr.BuiltinError {
	return werr.NewBuiltinError(werr.KindBuiltinFunction, werr.MsgBuiltinArgCastError(v.Display(), toType))
}

// AsF64 extracts argument i as a float64. Numbers pass through, bools
// become 0/1, strings parse per the language's numeric grammar; any
// other kind (or an unparseable string) is BuiltinArgInvalid. If the
// argument is omitted (EmptyParam) and def is non-nil, *def is
// returned; if def is nil, the argument is required.
func (a Args) AsF64(i int, def *float64) (float64, error) {
	v := a.Item(i)
	if v.Kind() == value.KindEmptyParam {
		if def == nil {
			return 0, argRequired(i)
		}
		return *def, nil
	}
	f, ok := v.AsFloat(true)
	if !ok {
		return 0, argInvalid(v)
	}
	return f, nil
}

// AsBool extracts argument i by truthiness (spec.md §3.1's truthiness
// predicate) rather than a strict type check — every kind is
// acceptable.
func (a Args) AsBool(i int, def *bool) (bool, error) {
	v := a.Item(i)
	if v.Kind() == value.KindEmptyParam {
		if def == nil {
			return false, argRequired(i)
		}
		return *def, nil
	}
	return value.IsTruthy(v), nil
}

// AsString extracts argument i as a string. Any kind is accepted and
// rendered via Display, except EmptyParam, which requires def.
func (a Args) AsString(i int, def *string) (string, error) {
	v := a.Item(i)
	if v.Kind() == value.KindEmptyParam {
		if def == nil {
			return "", argRequired(i)
		}
		return *def, nil
	}
	return v.Display(), nil
}

// AsStringOrEmpty extracts argument i as a string, treating both Empty
// and EmptyParam as "omitted" (reports ok=false rather than erroring).
func (a Args) AsStringOrEmpty(i int) (s string, ok bool, err error) {
	v := a.Item(i)
	switch v.Kind() {
	case value.KindEmpty, value.KindEmptyParam:
		return "", false, nil
	default:
		return v.Display(), true, nil
	}
}

// AsThreeState extracts argument i as a ThreeState (spec.md TRUE/FALSE/2
// tri-state convention): bools map to TSFalse/TSTrue, numbers map by
// value (0 false, 1 true, anything else "other"/indeterminate).
func (a Args) AsThreeState(i int, def *ThreeState) (ThreeState, error) {
	v := a.Item(i)
	switch v.Kind() {
	case value.KindBool:
		if value.IsTruthy(v) {
			return TSTrue, nil
		}
		return TSFalse, nil
	case value.KindNum:
		f, _ := v.AsFloat(false)
		return threeStateFromFloat(f), nil
	case value.KindEmptyParam:
		if def == nil {
			return TSOther, argRequired(i)
		}
		return *def, nil
	default:
		return TSOther, argInvalid(v)
	}
}

// AsArray extracts argument i as a raw element slice.
func (a Args) AsArray(i int, def []value.Value) ([]value.Value, error) {
	v := a.Item(i)
	if v.Kind() == value.KindEmptyParam {
		if def == nil {
			return nil, argRequired(i)
		}
		return def, nil
	}
	arr, ok := v.AsArray()
	if !ok {
		return nil, argInvalid(v)
	}
	return arr, nil
}

// AsArrayIncludeHashTbl extracts argument i as an element slice,
// additionally accepting a HashTbl by unpacking either its keys (as
// String values) or its values, per getHashKey.
func (a Args) AsArrayIncludeHashTbl(i int, def []value.Value, getHashKey bool) ([]value.Value, error) {
	v := a.Item(i)
	if v.Kind() == value.KindEmptyParam {
		if def == nil {
			return nil, argRequired(i)
		}
		return def, nil
	}
	if arr, ok := v.AsArray(); ok {
		return arr, nil
	}
	if h, ok := v.AsHashTbl(); ok {
		if getHashKey {
			keys := h.Keys()
			out := make([]value.Value, len(keys))
			for i, k := range keys {
				out[i] = value.String(k)
			}
			return out, nil
		}
		return h.Values(), nil
	}
	return nil, argInvalid(v)
}

// RestAsStringArray collects every argument from i onward into a flat
// string slice, expanding arrays/hashtable-keys and dropping empty
// strings, requiring at least `requires` resulting items.
func (a Args) RestAsStringArray(i, requires int) ([]string, error) {
	var out []string
	for idx := i; idx < a.Len(); idx++ {
		v := a.Item(idx)
		switch v.Kind() {
		case value.KindArray:
			arr, _ := v.AsArray()
			for _, e := range arr {
				if s := e.Display(); s != "" {
					out = append(out, s)
				}
			}
		case value.KindHashTbl:
			h, _ := v.AsHashTbl()
			for _, k := range h.Keys() {
				if k != "" {
					out = append(out, k)
				}
			}
		case value.KindEmpty, value.KindEmptyParam:
			// contributes nothing
		default:
			if s := v.Display(); s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) < requires {
		return nil, argRequired(i + requires)
	}
	return out, nil
}

// AsFunctionOrString extracts argument i as either a callable
// (Function/AnonFunc/BuiltinFunction) or a string naming one, returning
// the value unchanged so the evaluator's own call dispatch can resolve
// a string name to a function later.
func (a Args) AsFunctionOrString(i int) (value.Value, error) {
	v := a.Item(i)
	switch v.Kind() {
	case value.KindFunction, value.KindAnonFunc, value.KindBuiltinFunction, value.KindString:
		return v, nil
	case value.KindEmptyParam:
		return value.Value{}, argRequired(i)
	default:
		return value.Value{}, werr.NewBuiltinError(werr.KindBuiltinFunction, werr.MsgBuiltinArgIsNotFunction)
	}
}
