package id128

import (
	"errors"
	"fmt"
	"syscall"
)

// Error categories. Every error returned by this package matches exactly one
// of them with [errors.Is].
var (
	// ErrInvalidArgument is returned for malformed input, e.g. text that is
	// not an ID or a byte slice of the wrong length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable is returned when the requested ID does not exist on
	// this system, e.g. no invocation ID outside a systemd service or an
	// empty /etc/machine-id.
	ErrUnavailable = errors.New("identifier unavailable")

	// ErrPermissionDenied is returned when the caller may not read the ID.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotSupported is returned when libsystemd is missing or too old to
	// provide the requested operation.
	ErrNotSupported = errors.New("not supported by the running system")
)

// Parse failures, wrapped in [*ParseError].
var (
	// ErrInvalidLength is returned when the text length and dash count do
	// not fit any known layout.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnexpectedDash is returned when a dash is out of place for the layout.
	ErrUnexpectedDash = errors.New("unexpected dash")

	// ErrInvalidCharacter is returned for a character that is neither a hex
	// digit nor a dash.
	ErrInvalidCharacter = errors.New("invalid character")
)

// ParseError records a failure while parsing an ID from text.
// It matches [ErrInvalidArgument]; use [errors.As] to extract the offset.
type ParseError struct {
	Input  string // text that was parsed
	Offset int    // byte offset of the failure; the input length for length errors
	Err    error  // ErrInvalidLength, ErrUnexpectedDash or ErrInvalidCharacter
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("id128: parse %q: %v at offset %d", e.Input, e.Err, e.Offset)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArgument.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NativeError records a negative return code from a libsystemd function.
// It matches both its category sentinel and the raw errno with [errors.Is]:
//
//	errors.Is(err, id128.ErrUnavailable)
//	errors.Is(err, syscall.ENXIO)
type NativeError struct {
	Func  string        // libsystemd function, e.g. "sd_id128_get_machine"
	Errno syscall.Errno // negated return code
}

// Error returns a human-readable description of the native failure.
func (e *NativeError) Error() string {
	return fmt.Sprintf("id128: %s: %v", e.Func, e.Errno)
}

// Unwrap returns the errno.
func (e *NativeError) Unwrap() error {
	return e.Errno
}

// Is reports whether target is the category of the errno.
func (e *NativeError) Is(target error) bool {
	return target == classifyErrno(e.Errno)
}

// newNativeError converts a negative libsystemd return code.
func newNativeError(fn string, rc int32) *NativeError {
	return &NativeError{Func: fn, Errno: syscall.Errno(-rc)}
}

// LibraryError records a failure to load libsystemd. It matches [ErrNotSupported].
type LibraryError struct {
	Path string // library name or path passed to dlopen
	Err  error  // underlying loader error
}

// Error returns a human-readable description of the load failure.
func (e *LibraryError) Error() string {
	return fmt.Sprintf("id128: load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LibraryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotSupported.
func (e *LibraryError) Is(target error) bool {
	return target == ErrNotSupported
}
