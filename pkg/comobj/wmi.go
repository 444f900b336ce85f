package comobj

import "github.com/wscript-lang/runtime/pkg/werr"

// IsWbemObject reports whether obj looks like an ISWbemObject/Ex
// automation wrapper — the kind every `GetObject("winmgmts:...")` call
// returns — by probing for the Methods_ collection every SWbem object
// exposes (spec.md §4.5.5).
func (o *Object) IsWbemObject() bool {
	_, err := o.GetProperty("Methods_")
	return err == nil
}

// InvokeWmiMethod runs method through the ISWbemObject ExecMethod_
// protocol instead of a plain IDispatch::Invoke: it spawns an
// InParameters instance off the method's descriptor, binds positional
// values into its properties in declaration order, calls ExecMethod_,
// and reads the return value back out of the resulting OutParameters.
// WMI's InParameters binding has no notion of named arguments, so any
// are rejected outright with NamedArgNotAllowed.
func (o *Object) InvokeWmiMethod(method string, positional []Variant, named []NamedArg) (Variant, error) {
	if len(named) > 0 {
		return Variant{}, werr.New(werr.KindWmi, werr.MsgNamedArgNotAllowed)
	}

	methodsColl, err := o.GetProperty("Methods_")
	if err != nil {
		return Variant{}, err
	}
	if methodsColl.Disp == nil {
		return Variant{}, werr.New(werr.KindWmi, werr.MsgFailedToConvertToCollection)
	}
	methodDesc, err := methodsColl.Disp.GetItemProperty([]Variant{{VT: VT_BSTR, Str: method}})
	if err != nil {
		return Variant{}, err
	}
	if methodDesc.Disp == nil {
		return Variant{}, &ErrMemberNotFound{Member: method}
	}

	inParamsTemplate, err := methodDesc.Disp.GetProperty("InParameters")
	if err != nil {
		return Variant{}, err
	}

	var inParams Variant
	if inParamsTemplate.Disp != nil {
		spawned, serr := inParamsTemplate.Disp.InvokeMethod("SpawnInstance_", nil)
		if serr != nil {
			return Variant{}, serr
		}
		if spawned.Disp != nil {
			if names, nerr := wmiPropertyNamesInOrder(spawned.Disp); nerr == nil {
				for i, v := range positional {
					if i >= len(names) {
						break
					}
					if serr := spawned.Disp.SetProperty(names[i], v); serr != nil {
						return Variant{}, serr
					}
				}
			}
		}
		inParams = spawned
	}

	args := []Variant{{VT: VT_BSTR, Str: method}}
	if inParams.Disp != nil {
		args = append(args, inParams)
	}
	outParams, err := o.InvokeMethod("ExecMethod_", args)
	if err != nil {
		return Variant{}, err
	}
	if outParams.Disp == nil {
		return outParams, nil
	}
	return outParams.Disp.GetProperty("ReturnValue")
}

// wmiPropertyNamesInOrder walks an ISWbemObject's Properties_
// collection (a SWbemPropertySet) via IEnumVARIANT, returning each
// property's Name in declaration order — the order WMI's InParameters
// binding assigns positional arguments by (spec.md §4.5.5).
func wmiPropertyNamesInOrder(instance *Object) ([]string, error) {
	props, err := instance.GetProperty("Properties_")
	if err != nil || props.Disp == nil {
		return nil, err
	}
	items, err := props.Disp.Enumerate()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		if it.Disp == nil {
			continue
		}
		n, nerr := it.Disp.GetProperty("Name")
		if nerr != nil {
			continue
		}
		names = append(names, n.Str)
	}
	return names, nil
}
