package wenv

import "github.com/wscript-lang/runtime/pkg/value"

// fieldInit is a single member declaration carried by a Class template:
// the name it's bound under in every Instance, and the value a fresh
// Instance starts with.
type fieldInit struct {
	name string
	init value.Value
}

// Class is a template for constructing Instances (spec.md §3.3). It
// does not itself hold mutable state — each New call produces an
// independent Instance with its own member scope.
type Class struct {
	name           string
	fields         []fieldInit
	destructorName string
}

// NewClass constructs an empty class template.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Name returns the class's declared name.
func (c *Class) Name() string { return c.name }

// RefName implements value.NamedRef.
func (c *Class) RefName() string { return c.name }

// DeclareField adds a member with its initial value to the template.
// Functions and anonymous functions declared this way are the class's
// methods; non-function values are its instance fields.
func (c *Class) DeclareField(name string, init value.Value) {
	c.fields = append(c.fields, fieldInit{name: name, init: init})
}

// SetDestructorName records which declared method is the destructor.
func (c *Class) SetDestructorName(name string) { c.destructorName = name }

// New constructs a fresh Instance: a private copy of every declared
// field (functions get their own value.FunctionInfo so method capture
// doesn't alias across instances), bound in the instance's own module.
// No receiver is recorded on the copied FunctionInfo.
func (c *Class) New(id int) *Instance {
	m := NewModule(c.name)
	m.SetDestructorName(c.destructorName)

	for _, f := range c.fields {
		m.Members().Set(f.name, cloneFieldInit(f.init))
	}

	ins := &Instance{
		id:     id,
		module: m,
	}

	// Anonymous functions captured the defining (class-body) scope;
	// that capture is only useful until construction, after which it
	// would keep the instance's own module alive through its own
	// methods' closures. Clearing it here breaks that cycle (spec.md
	// §3.3, grounded on ClassInstance::new in
	// original_source/evaluator/src/object/class.rs).
	m.clearAnonFuncCaptures()

	return ins
}

func cloneFieldInit(v value.Value) value.Value {
	if f, ok := v.AsFunction(); ok {
		cp := *f
		return rebuildFunctionValue(v, &cp)
	}
	return v.Clone()
}

func rebuildFunctionValue(orig value.Value, cp *value.FunctionInfo) value.Value {
	if orig.Kind() == value.KindAnonFunc {
		return value.AnonFuncValue(cp)
	}
	return value.FunctionValue(cp)
}
