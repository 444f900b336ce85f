package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayScalars(t *testing.T) {
	assert.Equal(t, "3", Num(3).Display())
	assert.Equal(t, "3.5", Num(3.5).Display())
	assert.Equal(t, "hello", String("hello").Display())
	assert.Equal(t, "True", Bool(true).Display())
	assert.Equal(t, "False", Bool(false).Display())
	assert.Equal(t, "", Empty.Display())
	assert.Equal(t, "NULL", Null.Display())
	assert.Equal(t, "NOTHING", Nothing.Display())
	assert.Equal(t, "GLOBAL", Global.Display())
	assert.Equal(t, "no destructor", DestructorNotFound.Display())
}

func TestDisplayArray(t *testing.T) {
	v := Array([]Value{Num(1), String("a"), Bool(true)})
	assert.Equal(t, "[1, a, True]", v.Display())
	assert.Equal(t, "[]", Array(nil).Display())
}

func TestDisplayHashTbl(t *testing.T) {
	h := NewHashTbl(false, false)
	h.Insert("a", Num(1))
	h.Insert("b", String("x"))
	assert.Equal(t, `{"A": 1, "B": x}`, HashTblValue(h).Display())
}

func TestDisplayControlFlow(t *testing.T) {
	assert.Equal(t, "Continue 2", ContinueN(2).Display())
	assert.Equal(t, "Break 1", BreakN(1).Display())
	assert.Equal(t, "Exit", Exit.Display())
	assert.Equal(t, "ExitExit (7)", ExitExit(7).Display())
}

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "1.2.3", VersionValue(NewVersion(1, 2, 3)).Display())
}

func TestDisplayEnum(t *testing.T) {
	e := NewEnum("Color", map[string]float64{"RED": 1})
	assert.Equal(t, "Enum Color", EnumValue(e).Display())
}

func TestDisplayFunctions(t *testing.T) {
	named := FunctionValue(&FunctionInfo{Name: "Add", Params: []string{"a", "b"}})
	assert.Equal(t, "function: Add(a, b)", named.Display())

	proc := FunctionValue(&FunctionInfo{Name: "Run", IsProc: true})
	assert.Equal(t, "procedure: Run()", proc.Display())

	anon := AnonFuncValue(&FunctionInfo{Params: []string{"x"}})
	assert.Equal(t, "anonymous_func(x)", anon.Display())

	anonProc := AnonFuncValue(&FunctionInfo{IsProc: true})
	assert.Equal(t, "anonymous_proc()", anonProc.Display())

	assert.Equal(t, "builtin: strlen()", BuiltinFunctionValue("strlen").Display())
}

func TestDisplayUObject(t *testing.T) {
	u, err := NewUObject([]byte(`{"a":1}`))
	assert.NoError(t, err)
	assert.Equal(t, `UObject: {"a":1}`, UObjectValue(u).Display())
}
