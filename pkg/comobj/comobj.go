package comobj

// New creates a fresh COM object from a ProgID or CLSID string
// (createobject()), trying CLSCTX_ALL then falling back to
// CLSCTX_LOCAL_SERVER, same order the reference bridge uses.
func New(id string) (*Object, error) {
	d, err := newDispatcher(id)
	if err != nil {
		return nil, err
	}
	return &Object{disp: d}, nil
}

// GetActive attaches to an already-running instance registered with the
// running object table (getobject()). Returns (nil, nil) when no such
// instance is running, matching the original's Option semantics rather
// than treating "not running" as an error.
func GetActive(id string) (*Object, error) {
	d, err := activeDispatcher(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return &Object{disp: d}, nil
}

// IsInternetExplorer reports whether a ProgID/CLSID names
// InternetExplorer.Application, used by callers that refuse to automate
// IE for security reasons (spec.md's AllowIEObject setting).
func IsInternetExplorer(id string) (bool, error) {
	return isIEProgID(id)
}
