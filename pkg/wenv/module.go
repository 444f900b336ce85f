package wenv

import (
	"strings"
	"sync"

	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

// Module is a named bag of members — constants, variables, and
// functions (spec.md §3.3). Exactly one Module per module declaration
// exists for the lifetime of the program; Class/Instance reuse the
// same member-bag shape for per-instance state instead of inventing a
// second container type.
type Module struct {
	mu      sync.Mutex
	name    string
	members *Scope

	// destructorName is the case-folded name of this module's
	// destructor function, if it declared one. Empty means none.
	destructorName string
}

// NewModule constructs an empty, named module.
func NewModule(name string) *Module {
	return &Module{name: name, members: NewScope()}
}

// Name returns the module's declared name.
func (m *Module) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

// RefName implements value.NamedRef so a Module can be wrapped directly
// in a value.Value via value.ModuleValue/value.ThisValue.
func (m *Module) RefName() string { return m.Name() }

// Members returns the scope backing this module's member bag. Callers
// that need raw, unchecked access (internal bookkeeping, tests) use this
// directly; `name.member` script-level access goes through GetMember
// instead, which enforces the private-member rule.
func (m *Module) Members() *Scope { return m.members }

// isPrivateName reports whether name uses the leading-underscore
// private-member convention (spec.md §4.2).
func isPrivateName(name string) bool {
	return strings.HasPrefix(name, "_")
}

// GetMember resolves `name.member` access against this module's member
// bag. When member starts with "_" and the access does not originate
// from the module's own methods (isThis), the lookup is refused with an
// IsPrivateMember error rather than ever reaching the scope — a private
// member that happens not to exist yet must still fail as private, not
// as not-found, so a caller can't probe for its existence from outside.
func (m *Module) GetMember(member string, isThis bool) (value.Value, *werr.Error) {
	if !isThis && isPrivateName(member) {
		return value.Value{}, werr.New(werr.KindDotOperator, werr.MsgIsPrivateMember(m.Name(), member))
	}
	v, ok := m.members.GetLocal(member)
	if !ok {
		return value.Value{}, werr.New(werr.KindUndefined, werr.MsgNotDefined(member))
	}
	return v, nil
}

// SetMember assigns `name.member = value` against this module's member
// bag, enforcing the same private-member rule as GetMember.
func (m *Module) SetMember(member string, v value.Value, isThis bool) *werr.Error {
	if !isThis && isPrivateName(member) {
		return werr.New(werr.KindDotOperator, werr.MsgIsPrivateMember(m.Name(), member))
	}
	m.members.Set(member, v)
	return nil
}

// SetDestructorName records which bound function (if any) is this
// module's destructor, invoked once by Instance.Dispose.
func (m *Module) SetDestructorName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destructorName = name
}

// Destructor returns the destructor function value and whether one was
// declared (value.DestructorNotFound is the sentinel returned to script
// code when none exists; this method reports the boolean instead so
// callers choose how to surface that).
func (m *Module) Destructor() (value.Value, bool) {
	m.mu.Lock()
	name := m.destructorName
	m.mu.Unlock()
	if name == "" {
		return value.Value{}, false
	}
	return m.members.GetLocal(name)
}

// DestructorOrErr is Destructor's error-returning form, used by builtins
// that need to distinguish "no destructor" from other lookup failures
// rather than a plain boolean.
func (m *Module) DestructorOrErr() (value.Value, error) {
	v, ok := m.Destructor()
	if !ok {
		return value.Value{}, ErrNoDestructor
	}
	return v, nil
}

// clearAnonFuncCaptures drops the captured-scope reference on every
// anonymous function bound directly in this module's member bag, to
// break the reference cycle an instance's own scope would otherwise
// form with itself (spec.md §3.3's anonymous-function capture rule,
// grounded on ClassInstance::new's "erase anon func scope" step in
// original_source/evaluator/src/object/class.rs).
func (m *Module) clearAnonFuncCaptures() {
	for _, name := range m.members.Names() {
		v, ok := m.members.GetLocal(name)
		if !ok || v.Kind() != value.KindAnonFunc {
			continue
		}
		f, ok := v.AsFunction()
		if !ok {
			continue
		}
		f.Captured = nil
	}
}
