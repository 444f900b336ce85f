package werr

// BuiltinError is the lightweight failure value a builtin function
// returns. It carries no line context — the dispatcher wraps it into a
// full Error at the call site, attaching the builtin's name (spec.md §7).
type BuiltinError struct {
	Kind Kind
	Msg  Message
}

func (b *BuiltinError) Error() string {
	return (&Error{Kind: b.Kind, Msg: b.Msg}).Error()
}

// NewBuiltinError constructs a BuiltinError.
func NewBuiltinError(kind Kind, msg Message) *BuiltinError {
	return &BuiltinError{Kind: kind, Msg: msg}
}

// WrapBuiltin wraps a BuiltinError into a full Error, attaching the
// builtin's name as context by folding it into the message text. If err is
// already an *Error it is returned unchanged (dispatcher-level wrapping is
// idempotent). A plain error is wrapped as an unknown-kind Error.
func WrapBuiltin(builtinName string, err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	if be, ok := err.(*BuiltinError); ok {
		return &Error{
			Kind: be.Kind,
			Msg:  Plain(builtinName+"(): "+render(be.Msg), builtinName+"(): "+be.Msg.Japanese()),
		}
	}
	return &Error{Kind: KindUnknown, Msg: Plain(builtinName+"(): "+err.Error(), builtinName+"(): "+err.Error())}
}
