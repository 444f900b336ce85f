package ast

import (
	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

// InvokeEvalScript is the hook signature the eval builtin calls through:
// a parser/evaluator outside this repository's scope parses src as a
// fresh script fragment, evaluates it in the calling scope, and returns
// its final value (or the error that stopped it). The kernel holds a
// reference to a function of this shape; it never implements one.
type InvokeEvalScript func(src string) (value.Value, *werr.Error)
