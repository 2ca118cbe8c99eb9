//go:build !linux

package id128

import (
	"errors"
	"io/fs"
	"syscall"
)

// classifyErrno maps an errno to its category using the portable
// [syscall.Errno.Is] classes.
func classifyErrno(errno syscall.Errno) error {
	switch {
	case errno == syscall.EINVAL:
		return ErrInvalidArgument
	case errors.Is(errno, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(errno, errors.ErrUnsupported):
		return ErrNotSupported
	default:
		return ErrUnavailable
	}
}
