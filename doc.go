// Package id128 wraps the sd-id128 API of libsystemd: 128-bit identifiers
// for the running boot, the local machine, the current service invocation,
// random IDs and application-specific IDs derived from them.
//
// Generation and system identity stay in libsystemd; this package loads the
// library at run time (no cgo) and mediates every call through a safe,
// value-typed API.
//
// # Overview
//
// An [ID] is a [16]byte value. It compares with ==, sorts with [Compare] and
// works as a map key. It renders in three layouts, each in lower or upper
// case:
//
//   - [FormatRFC] — 01234567-89ab-cdef-0123-456789abcdef (default, [ID.String])
//   - [FormatHex] — 0123456789abcdef0123456789abcdef, the libsystemd layout
//   - [FormatSimple] — 0123-4567-89ab-cdef-0123-4567-89ab-cdef
//
// # Quick Start
//
//	boot, err := id128.BootID()
//	if err != nil {
//		return err
//	}
//	fmt.Println(boot)                                  // RFC, lower case
//	fmt.Println(boot.Text(id128.FormatHex, id128.Upper))
//
// # Application-specific IDs
//
// Do not hand the machine or boot ID to untrusted parties. Derive a stable,
// uncorrelatable ID for your application instead:
//
//	var appID = id128.MustParse("8a4b6e7f2c1d4e5f9a0b1c2d3e4f5a6b")
//
//	id, err := id128.MachineIDAppSpecific(appID)
//
// # Parsing
//
// [Parse] is strict about layout and accepts any letter case. [ParseLax]
// trims white space and ignores dashes. [ParseNative] uses libsystemd's own
// parser.
//
// # Errors
//
// Failures match one of [ErrInvalidArgument], [ErrUnavailable],
// [ErrPermissionDenied] or [ErrNotSupported] with [errors.Is]. Native
// failures are [*NativeError] values carrying the libsystemd function and
// errno; parse failures are [*ParseError] values carrying the offset.
//
// # Providers
//
// The package-level functions use [Default]. Build a [Provider] to pick a
// different library, attach a logger, or inject a [Native] test double:
//
//	p := id128.New().
//		WithLibrary("/usr/lib/libsystemd.so.0").
//		WithLogger(slog.Default())
//
// # Platform Support
//
// The native layer runs on linux/amd64 and linux/arm64. Elsewhere the value
// type and its codecs work as usual and native calls fail with
// [ErrNotSupported].
//
// # CLI Tool
//
// A command-line tool is provided in cmd/id128:
//
//	id128 boot
//	id128 machine --app 8a4b6e7f2c1d4e5f9a0b1c2d3e4f5a6b --format hex
//	id128 random -n 3 --upper
//	id128 parse "0123-4567-89ab-cdef-0123-4567-89ab-cdef"
//	id128 show --output json
//	id128 version --long
package id128
