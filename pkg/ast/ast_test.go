package ast

import (
	"testing"

	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

type fakeLiteral struct{ value.Value }

func (fakeLiteral) astNode()       {}
func (fakeLiteral) expressionNode() {}

type fakeAssign struct{}

func (fakeAssign) astNode()      {}
func (fakeAssign) statementNode() {}

func TestMarkerInterfacesAreSatisfiable(t *testing.T) {
	var e Expression = fakeLiteral{Value: value.Num(1)}
	var s Statement = fakeAssign{}
	var n Node = e
	if n == nil {
		t.Fatal("expression should satisfy Node")
	}
	n = s
	if n == nil {
		t.Fatal("statement should satisfy Node")
	}
}

func TestInvokeEvalScriptHookShape(t *testing.T) {
	var hook InvokeEvalScript = func(src string) (value.Value, *werr.Error) {
		if src == "bad" {
			return value.Empty, werr.New(werr.KindEvaluator, werr.MsgUnknown)
		}
		return value.String(src), nil
	}
	v, err := hook("hello")
	if err != nil {
		t.Fatal(err)
	}
	if v.Display() != "hello" {
		t.Fatalf("got %q", v.Display())
	}
	if _, err := hook("bad"); err == nil {
		t.Fatal("expected an error for the bad fragment")
	}
}
