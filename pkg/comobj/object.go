package comobj

import (
	"fmt"

	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

// dispIDUnknown is DISPID_UNKNOWN, the sentinel IDispatch::GetIDsOfNames
// writes into an output slot for any name it could not resolve.
const dispIDUnknown int32 = -1

// dispatcher is the platform seam: dispatch_windows.go implements it over
// a real IDispatch pointer; dispatch_other.go's implementation always
// errors.
type dispatcher interface {
	getIDOfName(name string) (int32, error)
	// getIDsOfNames resolves several names in one call, names[0] being
	// the member itself and the rest its named-argument parameter names
	// (spec.md §4.5.2 point 3). Entries that can't be resolved come back
	// as dispIDUnknown rather than as an error.
	getIDsOfNames(names []string) ([]int32, error)
	invoke(dispID int32, flags uint16, args []Variant) (Variant, error)
	// invokeAdvanced extends invoke with VT_BYREF argument readback and
	// named-argument dispatch. args holds any named arguments first (in
	// the same order as namedDispIDs), followed by the positional ones;
	// byRef lists the indexes within args (named or positional) whose
	// updated value should be read back after the call. Returns the
	// full updated argument list alongside the call's own return value.
	invokeAdvanced(dispID int32, flags uint16, args []Variant, byRef []int, namedDispIDs []int32) ([]Variant, Variant, error)
	// enumerate drives the object's _NewEnum/IEnumVARIANT pair
	// (spec.md §4.5.4), returning every element in iteration order.
	enumerate() ([]Variant, error)
	// advise connects handlers to the object's default outgoing
	// connection point (IConnectionPointContainer), returning the
	// connection point and the cookie Unadvise needs to disconnect.
	advise(handlers map[string]EventHandler) (uintptr, uint32, error)
	unadvise(cp uintptr, cookie uint32) error
	typeName() (string, bool)
	isCollection() bool
	release()
}

// Object is a live COM automation object handle.
type Object struct {
	disp dispatcher
	// handlers maps an outgoing event name to the Go callback registered
	// for it via RegisterEvent. The event sink (eventsink_windows.go)
	// holds this same map and looks a name up in it when the source
	// object fires a notification through the connection point advised
	// in adviseCP/adviseCookie.
	handlers     map[string]EventHandler
	advised      bool
	adviseCP     uintptr
	adviseCookie uint32
}

// EventHandler is invoked synchronously, on the COM source's calling
// thread, when a subscribed event fires. A caller bridging into a
// non-reentrant evaluator must marshal onto the evaluator's own thread
// itself; this package does not own that decision (spec.md §9 open
// question 4).
type EventHandler func(args []value.Value)

func (o *Object) Display() string {
	if name, ok := o.disp.typeName(); ok {
		if o.disp.isCollection() {
			return fmt.Sprintf("ComObject(%s[])", name)
		}
		return fmt.Sprintf("ComObject(%s)", name)
	}
	return "ComObject(unknown)"
}

// GetProperty reads obj.prop.
func (o *Object) GetProperty(prop string) (Variant, error) {
	id, err := o.disp.getIDOfName(prop)
	if err != nil {
		return Variant{}, err
	}
	return o.disp.invoke(id, dispatchPropertyGet, nil)
}

// SetProperty assigns obj.prop = value.
func (o *Object) SetProperty(prop string, v Variant) error {
	id, err := o.disp.getIDOfName(prop)
	if err != nil {
		return err
	}
	_, err = o.disp.invoke(id, dispatchPropertyPut, []Variant{v})
	return err
}

// GetPropertyByIndex reads obj.prop[index…], falling back to the
// collection's Item(i) convention when prop itself resolves to a
// collection object rather than an indexable property (DISP_E_MEMBERNOTFOUND
// on the indexed get), mirroring the original bridge's fallback.
func (o *Object) GetPropertyByIndex(prop string, index []Variant) (Variant, error) {
	id, err := o.disp.getIDOfName(prop)
	if err == nil {
		v, callErr := o.disp.invoke(id, dispatchPropertyGet|dispatchMethod, index)
		if callErr == nil {
			return v, nil
		}
		if _, isMemberNotFound := callErr.(*ErrMemberNotFound); !isMemberNotFound {
			return Variant{}, callErr
		}
	}
	prop2, err2 := o.GetProperty(prop)
	if err2 != nil {
		if err != nil {
			return Variant{}, err
		}
		return Variant{}, err2
	}
	if prop2.Disp != nil {
		return prop2.Disp.GetItemProperty(index)
	}
	if err != nil {
		return Variant{}, err
	}
	return Variant{}, &ErrMemberNotFound{Member: prop}
}

// SetPropertyByIndex assigns obj.prop[index] = value.
func (o *Object) SetPropertyByIndex(prop string, index, v Variant) error {
	id, err := o.disp.getIDOfName(prop)
	if err != nil {
		return err
	}
	_, err = o.disp.invoke(id, dispatchPropertyPut, []Variant{v, index})
	return err
}

// GetItemProperty is the Item(index…) sugar obj[index] desugars to.
func (o *Object) GetItemProperty(index []Variant) (Variant, error) {
	id, err := o.disp.getIDOfName("Item")
	if err != nil {
		return Variant{}, err
	}
	return o.disp.invoke(id, dispatchPropertyGet|dispatchMethod, index)
}

// SetByIndex is the Item(index) = value sugar obj[index] = value desugars to.
func (o *Object) SetByIndex(index, v Variant) error {
	return o.SetPropertyByIndex("Item", index, v)
}

// InvokeMethod calls obj.method(args…).
func (o *Object) InvokeMethod(method string, args []Variant) (Variant, error) {
	id, err := o.disp.getIDOfName(method)
	if err != nil {
		return Variant{}, err
	}
	v, err := o.disp.invoke(id, dispatchMethod|dispatchPropertyGet, args)
	if err == nil {
		return v, nil
	}
	if _, isMemberNotFound := err.(*ErrMemberNotFound); !isMemberNotFound {
		return Variant{}, err
	}
	// foo.bar(i) against a collection-valued property desugars to
	// foo.bar.Item(i), same fallback as the indexed-property case.
	prop, perr := o.GetProperty(method)
	if perr != nil {
		return Variant{}, err
	}
	if prop.Disp != nil {
		return prop.Disp.GetItemProperty(args)
	}
	return Variant{}, err
}

// NamedArg pairs a named-argument value with the parameter name it
// targets in a method call (spec.md §4.5.2 point 3).
type NamedArg struct {
	Name string
	Val  Variant
}

// InvokeMethodWithNamedArgs calls obj.method(positional…, name: value, …).
// Each named argument's dispid is resolved via a single batched
// GetIDsOfNames call before the invoke; a name the object doesn't
// recognize fails with NamedArgNotFound rather than silently dropping
// the argument.
func (o *Object) InvokeMethodWithNamedArgs(method string, positional []Variant, named []NamedArg) (Variant, error) {
	if len(named) == 0 {
		return o.InvokeMethod(method, positional)
	}
	names := make([]string, 0, len(named)+1)
	names = append(names, method)
	for _, n := range named {
		names = append(names, n.Name)
	}
	dispIDs, err := o.disp.getIDsOfNames(names)
	if err != nil {
		return Variant{}, err
	}
	methodID := dispIDs[0]
	namedDispIDs := dispIDs[1:]
	for i, id := range namedDispIDs {
		if id == dispIDUnknown {
			return Variant{}, werr.New(werr.KindComArg, werr.MsgNamedArgNotFound(named[i].Name))
		}
	}
	args := make([]Variant, 0, len(named)+len(positional))
	for _, n := range named {
		args = append(args, n.Val)
	}
	args = append(args, positional...)
	_, ret, aerr := o.disp.invokeAdvanced(methodID, dispatchMethod|dispatchPropertyGet, args, nil, namedDispIDs)
	return ret, aerr
}

// InvokeMethodByRef calls obj.method(args…), marshalling each index
// named in byRef as VT_BYREF so the callee's own updated value reads
// back afterward (spec.md §4.5.2 point 2: by-ref out-parameters). The
// returned slice mirrors args with every by-ref entry replaced by its
// post-call value; non-by-ref entries are passed through unchanged.
func (o *Object) InvokeMethodByRef(method string, args []Variant, byRef []int) ([]Variant, Variant, error) {
	id, err := o.disp.getIDOfName(method)
	if err != nil {
		return nil, Variant{}, err
	}
	return o.disp.invokeAdvanced(id, dispatchMethod|dispatchPropertyGet, args, byRef, nil)
}

// Enumerate drives the object's _NewEnum/IEnumVARIANT pair, the protocol
// a `For Each` loop over a COM collection relies on (spec.md §4.5.4),
// returning every element in iteration order. When the object has no
// IEnumVARIANT, it falls back to Count+Item(i) indexing before giving
// up with FailedToConvertToCollection.
func (o *Object) Enumerate() ([]Variant, error) {
	items, err := o.disp.enumerate()
	if err == nil {
		return items, nil
	}
	if fallback, ferr := o.enumerateByCountAndItem(); ferr == nil {
		return fallback, nil
	}
	return nil, werr.New(werr.KindComCollection, werr.MsgFailedToConvertToCollection)
}

func (o *Object) enumerateByCountAndItem() ([]Variant, error) {
	count, err := o.GetProperty("Count")
	if err != nil {
		return nil, err
	}
	n := int(count.Num)
	items := make([]Variant, 0, n)
	for i := 0; i < n; i++ {
		v, err := o.GetItemProperty([]Variant{{VT: VT_I4, Num: float64(i)}})
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// RegisterEvent records a callback to run when the named event fires,
// and — the first time any event is registered — advises the object's
// default connection point so that event actually reaches us. Later
// calls just add to the handler map the sink already holds; they don't
// re-advise. The event's dispid is resolved the same way a method call
// would resolve it (GetIDsOfNames against the object's own dispatch
// interface), which holds for the common case of a source interface
// that doesn't diverge from the default one; an object with a
// genuinely separate event typelib may not dispatch correctly, since
// this bridge does not walk ITypeInfo to discover event dispids.
func (o *Object) RegisterEvent(name string, h EventHandler) error {
	if o.handlers == nil {
		o.handlers = make(map[string]EventHandler)
	}
	o.handlers[name] = h
	if o.advised {
		return nil
	}
	cp, cookie, err := o.disp.advise(o.handlers)
	if err != nil {
		return werr.New(werr.KindComEvent, werr.Plain(err.Error(), err.Error()))
	}
	o.advised = true
	o.adviseCP, o.adviseCookie = cp, cookie
	return nil
}

// Release drops the underlying COM reference, first unadvising any
// event connection established by RegisterEvent. Safe to call more than
// once; only the first call has any effect.
func (o *Object) Release() {
	if o.advised {
		_ = o.disp.unadvise(o.adviseCP, o.adviseCookie)
		o.advised = false
	}
	if o.disp != nil {
		o.disp.release()
	}
}

const (
	dispatchMethod      uint16 = 1
	dispatchPropertyGet uint16 = 2
	dispatchPropertyPut uint16 = 4
)
