//go:build !linux || !(amd64 || arm64)

package id128

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
)

// Libsystemd calls the sd-id128 API of libsystemd. It is only available on
// linux/amd64 and linux/arm64; elsewhere every call fails with [ErrNotSupported].
type Libsystemd struct {
	path string
}

// OpenLibsystemd always fails on this platform with a [*LibraryError].
func OpenLibsystemd(path string) (*Libsystemd, error) {
	if path == "" {
		path = DefaultLibrary
	}

	return nil, &LibraryError{
		Path: path,
		Err:  fmt.Errorf("%s/%s: %w", runtime.GOOS, runtime.GOARCH, errors.ErrUnsupported),
	}
}

// Path returns the library name or path.
func (l *Libsystemd) Path() string { return l.path }

// Close is a no-op.
func (l *Libsystemd) Close() error { return nil }

// BootID is not supported on this platform.
func (l *Libsystemd) BootID() (ID, error) { return Null, unsupported(symGetBoot) }

// MachineID is not supported on this platform.
func (l *Libsystemd) MachineID() (ID, error) { return Null, unsupported(symGetMachine) }

// InvocationID is not supported on this platform.
func (l *Libsystemd) InvocationID() (ID, error) { return Null, unsupported(symGetInvocation) }

// RandomID is not supported on this platform.
func (l *Libsystemd) RandomID() (ID, error) { return Null, unsupported(symRandomize) }

// BootIDAppSpecific is not supported on this platform.
func (l *Libsystemd) BootIDAppSpecific(ID) (ID, error) {
	return Null, unsupported(symGetBootAppSpecific)
}

// MachineIDAppSpecific is not supported on this platform.
func (l *Libsystemd) MachineIDAppSpecific(ID) (ID, error) {
	return Null, unsupported(symGetMachineAppSpecific)
}

// InvocationIDAppSpecific is not supported on this platform.
func (l *Libsystemd) InvocationIDAppSpecific(ID) (ID, error) {
	return Null, unsupported(symGetInvocationAppSpecific)
}

// AppSpecific is not supported on this platform.
func (l *Libsystemd) AppSpecific(_, _ ID) (ID, error) {
	return Null, unsupported(symGetAppSpecific)
}

// FromString is not supported on this platform.
func (l *Libsystemd) FromString(string) (ID, error) { return Null, unsupported(symFromString) }

// ToString is not supported on this platform.
func (l *Libsystemd) ToString(ID) (string, error) { return "", unsupported(symToString) }

func unsupported(name string) error {
	return &NativeError{Func: name, Errno: syscall.ENOSYS}
}
