package wenv

import "errors"

// ErrNoDestructor is returned by Module.DestructorOrErr when no
// destructor was declared. Instance.Dispose does not use this error: it
// asks Module.Destructor, whose boolean result it treats as "nothing to
// run," not a failure.
var ErrNoDestructor = errors.New("wenv: class declares no destructor")
