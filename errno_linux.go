//go:build linux

package id128

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// classifyErrno maps an errno reported by libsystemd to its category.
func classifyErrno(errno syscall.Errno) error {
	switch errno {
	case unix.EINVAL, unix.EBADMSG, unix.EUCLEAN, unix.EILSEQ:
		return ErrInvalidArgument
	case unix.EPERM, unix.EACCES:
		return ErrPermissionDenied
	case unix.ENOSYS, unix.EOPNOTSUPP, unix.EAFNOSUPPORT:
		return ErrNotSupported
	default:
		// ENOENT, ENOMEDIUM, ENXIO, ENOPKG, EIO and the rest
		return ErrUnavailable
	}
}
