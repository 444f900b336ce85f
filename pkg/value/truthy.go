package value

import (
	"strconv"
	"strings"
)

// IsTruthy implements spec.md §3.1's truthiness predicate: 0, false,
// Empty, Null, Nothing, and the empty string are false; everything else
// (including EmptyParam, by convention treated like any other non-falsy
// sentinel since a builtin never sees it as a condition) is true.
func IsTruthy(v Value) bool {
	switch v.kind {
	case KindNum:
		return v.num != 0
	case KindBool:
		return v.b
	case KindString:
		return v.str != ""
	case KindEmpty, KindNull, KindNothing:
		return false
	default:
		return true
	}
}

// AsFloat implements spec.md §4.1's as_f64(allow_string_parse): numbers
// pass through, bools become 0/1, Empty is treated as 0 (spec.md §4.1
// "Arithmetic on Empty treats it as 0"), and strings parse as f64 only
// when allowStringParse is set and the text matches the language's
// numeric grammar (decimal, with optional sign/exponent, or a 0x/0o/0b
// integer literal). Anything else reports ok=false.
func (v Value) AsFloat(allowStringParse bool) (f float64, ok bool) {
	switch v.kind {
	case KindNum:
		return v.num, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindEmpty, KindEmptyParam:
		return 0, true
	case KindString:
		if !allowStringParse {
			return 0, false
		}
		return parseNumericString(v.str)
	default:
		return 0, false
	}
}

func parseNumericString(s string) (float64, bool) {
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if body == "" || !(body[0] == '.' || (body[0] >= '0' && body[0] <= '9')) {
		return 0, false
	}
	if len(body) > 2 && body[0] == '0' && strings.ContainsRune("xXoObB", rune(body[1])) {
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
