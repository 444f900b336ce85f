//go:build !windows

package comobj

import "fmt"

func newDispatcher(id string) (dispatcher, error) {
	return nil, fmt.Errorf("comobj: createobject(%q): COM automation requires windows", id)
}

func activeDispatcher(id string) (dispatcher, error) {
	return nil, fmt.Errorf("comobj: getobject(%q): COM automation requires windows", id)
}

func isIEProgID(id string) (bool, error) {
	return false, nil
}
