package werr

import "strings"

// Locale selects which rendering a Message.String() call produces.
type Locale int

const (
	LocaleEnglish Locale = iota
	LocaleJapanese
)

var currentLocale = LocaleEnglish

// SetLocale sets the process-wide locale used by Error.Error() and
// Message rendering. Not safe to call concurrently with error formatting;
// callers set it once during startup, mirroring the teacher's one-shot
// settings/logger initialization pattern.
func SetLocale(l Locale) { currentLocale = l }

// CurrentLocale returns the active locale.
func CurrentLocale() Locale { return currentLocale }

func render(m Message) string {
	if m == nil {
		return ""
	}
	if currentLocale == LocaleJapanese {
		return m.Japanese()
	}
	return m.English()
}

// Line carries the source annotation attached the first time an Error
// crosses an evaluator frame boundary (spec.md §7). A zero Line has no row.
type Line struct {
	Row        int
	Text       string
	ScriptName string
}

// HasRow reports whether the line carries a valid row.
func (l Line) HasRow() bool { return l.Row > 0 }

func (l Line) String() string {
	if !l.HasRow() {
		return "* no line information *"
	}
	if l.ScriptName != "" {
		return l.ScriptName + ", row " + itoa(l.Row) + ": " + l.Text
	}
	return "row " + itoa(l.Row) + ": " + l.Text
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		return "-" + string(b)
	}
	return string(b)
}

// Error is the runtime's sum-typed error record: (Kind, Message, line
// context, COM-origin flag). It implements the standard error interface.
type Error struct {
	Kind       Kind
	Msg        Message
	IsComError bool
	Line       Line
}

// New constructs an Error with no line context yet attached.
func New(kind Kind, msg Message) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// NewCom constructs an Error originating from the COM bridge.
func NewCom(kind Kind, msg Message) *Error {
	return &Error{Kind: kind, Msg: msg, IsComError: true}
}

// ExitExit constructs the control-flow sentinel used to unwind the
// evaluator cleanly on the global stop hotkey (spec.md §5/§7). It is not a
// user-visible failure.
func ExitExit(code int) *Error {
	return &Error{Kind: KindControlFlow, Msg: Plain("ExitExit", "ExitExit")}
}

// SetLine annotates the error with the source line it crossed, trimming
// leading whitespace. Per spec.md §7, only the first annotation sticks —
// later frames must not overwrite an already-set line.
func (e *Error) SetLine(row int, line, scriptName string) {
	if e.Line.HasRow() {
		return
	}
	e.Line = Line{Row: row, Text: strings.TrimLeft(line, " \t　"), ScriptName: scriptName}
}

func (e *Error) Error() string {
	msg := render(e.Msg)
	if msg == "" {
		return e.Kind.String()
	}
	return "[" + e.Kind.String() + "] " + msg
}

// Is reports equality on (Kind, rendered message) only, ignoring line
// context — two errors raised from different call sites but describing the
// same failure compare equal, matching the teacher's PartialEq-on-content
// semantics for error values.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind && render(e.Msg) == render(other.Msg)
}
