package wenv

import (
	"strings"
	"sync"

	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

// BindingKind tags what a name is bound to, so a scope can tell a plain
// variable from a const, a declared function, or one of the named-
// container kinds. spec.md §4.2's redeclaration and reassignment rules
// both hinge on this: a const can't be reassigned, and a name already
// bound under one kind can't be silently redeclared under another.
type BindingKind int

const (
	KindVariable BindingKind = iota
	KindConst
	KindPublic
	KindFunction
	KindModuleBinding
	KindClassBinding
	KindStructBinding
	KindDllFuncBinding
)

func (k BindingKind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindPublic:
		return "public variable"
	case KindFunction:
		return "function"
	case KindModuleBinding:
		return "module"
	case KindClassBinding:
		return "class"
	case KindStructBinding:
		return "struct"
	case KindDllFuncBinding:
		return "dll function"
	default:
		return "variable"
	}
}

// binding pairs a stored value with the kind it was declared under.
type binding struct {
	kind BindingKind
	val  value.Value
}

// Scope is one level of a lexical scope chain: a case-folded
// name-to-binding map plus an optional link to the enclosing scope.
// Grounded on the original evaluator's Env{store, outer} shape
// (original_source/src/evaluator/env.rs), generalized with interior
// locking since wenv.Instance holds scopes behind reference-counted
// handles shared across goroutines running builtin callbacks.
type Scope struct {
	mu    sync.RWMutex
	store map[string]binding
	outer *Scope
}

// NewScope creates a root scope with no enclosing scope.
func NewScope() *Scope {
	return &Scope{store: make(map[string]binding)}
}

// NewScopeWithOuter creates a scope nested inside outer.
func NewScopeWithOuter(outer *Scope) *Scope {
	return &Scope{store: make(map[string]binding), outer: outer}
}

func foldKey(name string) string { return strings.ToUpper(name) }

// IsDefined reports whether name is bound in this scope or any
// enclosing scope.
func (s *Scope) IsDefined(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Get resolves name, walking outward through enclosing scopes on miss.
func (s *Scope) Get(name string) (value.Value, bool) {
	key := foldKey(name)
	s.mu.RLock()
	b, ok := s.store[key]
	outer := s.outer
	s.mu.RUnlock()
	if ok {
		return b.val, true
	}
	if outer != nil {
		return outer.Get(name)
	}
	return value.Value{}, false
}

// GetLocal resolves name in this scope only, without walking outward.
func (s *Scope) GetLocal(name string) (value.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.store[foldKey(name)]
	return b.val, ok
}

// Kind reports the BindingKind name was declared under, walking outward
// through enclosing scopes on miss.
func (s *Scope) Kind(name string) (BindingKind, bool) {
	key := foldKey(name)
	s.mu.RLock()
	b, ok := s.store[key]
	outer := s.outer
	s.mu.RUnlock()
	if ok {
		return b.kind, true
	}
	if outer != nil {
		return outer.Kind(name)
	}
	return 0, false
}

// Set binds name in this scope under KindVariable, or preserves the
// existing kind if name is already locally bound, shadowing any
// same-named binding in an enclosing scope. Set performs no
// already-defined check; callers that must enforce spec.md §4.2's
// AlreadyDefined rule use Define instead. Set exists for internal
// rebinding (class field init, anonymous-function capture clearing)
// where overwriting a local is intentional rather than a user
// redeclaration.
func (s *Scope) Set(name string, v value.Value) {
	key := foldKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	kind := KindVariable
	if existing, ok := s.store[key]; ok {
		kind = existing.kind
	}
	s.store[key] = binding{kind: kind, val: v}
}

// Define declares name in this scope under kind, rejecting the
// declaration with an AlreadyDefined error if name is already locally
// bound — under any kind, since within a given scope a name can only
// ever mean one thing (spec.md §4.2).
func (s *Scope) Define(name string, kind BindingKind, v value.Value) *werr.Error {
	key := foldKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store[key]; ok {
		return werr.New(werr.KindDefinition, werr.MsgAlreadyDefined(name))
	}
	s.store[key] = binding{kind: kind, val: v}
	return nil
}

// Assign updates name in the nearest scope (this one or an enclosing
// one) that already defines it, without creating a new local binding.
// Reports whether an existing binding was found; if the binding is a
// const, the update is refused with a ConstReassign error instead of
// being applied.
func (s *Scope) Assign(name string, v value.Value) (bool, *werr.Error) {
	key := foldKey(name)
	s.mu.Lock()
	if b, ok := s.store[key]; ok {
		if b.kind == KindConst {
			s.mu.Unlock()
			return true, werr.New(werr.KindAssign, werr.MsgConstReassign(name))
		}
		b.val = v
		s.store[key] = b
		s.mu.Unlock()
		return true, nil
	}
	outer := s.outer
	s.mu.Unlock()
	if outer != nil {
		return outer.Assign(name, v)
	}
	return false, nil
}

// Names returns the locally-bound names (not walking outward), in no
// particular order.
func (s *Scope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.store))
	for k := range s.store {
		names = append(names, k)
	}
	return names
}

// Outer returns the enclosing scope, or nil at the root.
func (s *Scope) Outer() *Scope { return s.outer }
