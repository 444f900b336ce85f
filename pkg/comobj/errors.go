package comobj

import "fmt"

func errUnsupportedArg(typeName string) error {
	return fmt.Errorf("comobj: cannot convert a %s value to a COM argument", typeName)
}

// ErrMemberNotFound is returned (wrapped) when IDispatch::GetIDsOfNames
// reports DISP_E_MEMBERNOTFOUND, letting callers fall back to the
// collection "Item" convention the way the original bridge does for
// `obj.bar[i]`/`obj.bar(i)` against a property that is itself a
// collection rather than an indexer.
type ErrMemberNotFound struct {
	Member string
}

func (e *ErrMemberNotFound) Error() string {
	return fmt.Sprintf("comobj: member not found: %s", e.Member)
}
