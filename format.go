package id128

import (
	"fmt"
	"strings"
)

// FormatMode selects the textual layout of an ID.
type FormatMode int

const (
	// FormatRFC is the RFC 4122 layout, 36 characters:
	// 01234567-89ab-cdef-0123-456789abcdef (default)
	FormatRFC FormatMode = iota
	// FormatHex is 32 continuous hex digits, the layout libsystemd uses:
	// 0123456789abcdef0123456789abcdef
	FormatHex
	// FormatSimple groups the digits by four, 39 characters:
	// 0123-4567-89ab-cdef-0123-4567-89ab-cdef
	FormatSimple
)

// String returns the name of the format mode.
func (m FormatMode) String() string {
	switch m {
	case FormatRFC:
		return "rfc"
	case FormatHex:
		return "hex"
	case FormatSimple:
		return "simple"
	default:
		return fmt.Sprintf("FormatMode(%d)", int(m))
	}
}

// ParseFormatMode returns the FormatMode named s ("rfc", "hex" or "simple").
func ParseFormatMode(s string) (FormatMode, error) {
	switch strings.ToLower(s) {
	case "rfc", "uuid":
		return FormatRFC, nil
	case "hex", "libsystemd":
		return FormatHex, nil
	case "simple":
		return FormatSimple, nil
	default:
		return 0, fmt.Errorf("id128: unknown format %q; valid values are rfc, hex, simple: %w", s, ErrInvalidArgument)
	}
}

// Case selects the letter case of hex digits when formatting.
type Case int

const (
	// Lower formats hex digits as a-f (default).
	Lower Case = iota
	// Upper formats hex digits as A-F.
	Upper
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Dash offsets within the formatted text.
var (
	rfcDashes    = [...]int{8, 13, 18, 23}
	simpleDashes = [...]int{4, 9, 14, 19, 24, 29, 34}
)

// Text renders the ID in the given layout and letter case.
// An unknown mode falls back to FormatRFC.
func (id ID) Text(mode FormatMode, c Case) string {
	digits := lowerDigits
	if c == Upper {
		digits = upperDigits
	}

	var buf [39]byte
	n := 0

	for pos, b := range id {
		buf[n] = digits[b>>4]
		buf[n+1] = digits[b&0x0f]
		n += 2

		if dashAfter(mode, pos) {
			buf[n] = '-'
			n++
		}
	}

	return string(buf[:n])
}

// dashAfter reports whether mode places a dash after byte pos.
func dashAfter(mode FormatMode, pos int) bool {
	switch mode {
	case FormatHex:
		return false
	case FormatSimple:
		return pos%2 == 1 && pos < Size-1
	default:
		return pos == 3 || pos == 5 || pos == 7 || pos == 9
	}
}

// Parse parses an ID from text in any of the three layouts.
//
// Parsing is strict: the text must have exactly the length and dash positions
// of FormatHex, FormatRFC or FormatSimple. Hex digits may be upper, lower or
// mixed case. Errors are [*ParseError] values matching [ErrInvalidArgument].
func Parse(s string) (ID, error) {
	var id ID

	var dashes []int
	switch n, d := len(s), strings.Count(s, "-"); {
	case n == 32 && d == 0:
		dashes = nil
	case n == 36 && d == 4:
		dashes = rfcDashes[:]
	case n == 39 && d == 7:
		dashes = simpleDashes[:]
	default:
		return Null, &ParseError{Input: s, Offset: n, Err: ErrInvalidLength}
	}

	next := 0
	hi := true

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if ch == '-' {
			if next >= len(dashes) || dashes[next] != i {
				return Null, &ParseError{Input: s, Offset: i, Err: ErrUnexpectedDash}
			}
			next++

			continue
		}

		v, ok := unhex(ch)
		if !ok {
			return Null, &ParseError{Input: s, Offset: i, Err: ErrInvalidCharacter}
		}

		idx := (i - next) / 2
		if hi {
			id[idx] = v << 4
		} else {
			id[idx] |= v
		}
		hi = !hi
	}

	return id, nil
}

// ParseLax parses an ID after trimming surrounding white space and removing
// every dash, so misplaced or missing dashes are tolerated.
func ParseLax(s string) (ID, error) {
	return Parse(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
}

// MustParse is like [Parse] but panics on error. It simplifies declaring
// application IDs as package variables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return id
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}
