//go:build windows

package fopen

import (
	"os"

	"golang.org/x/sys/windows"
)

// openShared opens path with a real Win32 share mode, so the
// exclusive-share flag actually excludes other processes (or doesn't)
// the way fopen()'s F_EXCLUSIVE option promises, rather than the
// share-mode-less os.OpenFile every other platform falls back to.
func openShared(path string, flag Flag) (osFile, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	share := uint32(windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE)
	if flag.Exclusive {
		share = 0
	}

	var access uint32 = windows.GENERIC_READ
	disposition := uint32(windows.OPEN_EXISTING)
	if flag.canWrite() {
		access = windows.GENERIC_READ | windows.GENERIC_WRITE
		disposition = windows.OPEN_ALWAYS
	}

	h, err := windows.CreateFile(
		pathPtr, access, share, nil,
		disposition, windows.FILE_ATTRIBUTE_NORMAL, 0,
	)
	if err != nil {
		return nil, err
	}
	return &osHandle{f: os.NewFile(uintptr(h), path)}, nil
}

func openAppend(path string) (osFile, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &osHandle{f: f}, nil
}
