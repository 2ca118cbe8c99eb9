package id128

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Size is the length of an ID in bytes.
const Size = 16

// ID is a 128-bit identifier as used by libsystemd's sd-id128 API.
//
// ID is a value type: it is comparable with ==, can be used as a map key and
// has no identity beyond its bytes. The zero value is the null ID.
type ID [Size]byte

// Null is the all-zero ID (SD_ID128_NULL).
var Null ID

// AllF is the ID with every bit set (SD_ID128_ALLF).
var AllF = ID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// FromBytes creates an ID from a 16-byte slice.
// The slice is copied; later changes to b do not affect the returned ID.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != Size {
		return id, fmt.Errorf("id128: got %d bytes, want %d: %w", len(b), Size, ErrInvalidArgument)
	}

	copy(id[:], b)

	return id, nil
}

// FromUUID converts a [uuid.UUID] into an ID.
func FromUUID(u uuid.UUID) ID {
	return ID(u)
}

// ToUUID converts the ID into a [uuid.UUID].
func (id ID) ToUUID() uuid.UUID {
	return uuid.UUID(id)
}

// Version returns the UUID version encoded in the ID. IDs returned by
// [RandomID] are always version 4.
func (id ID) Version() uuid.Version {
	return uuid.UUID(id).Version()
}

// Variant returns the UUID variant encoded in the ID.
func (id ID) Variant() uuid.Variant {
	return uuid.UUID(id).Variant()
}

// Bytes returns a copy of the raw ID bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])

	return b
}

// IsZero reports whether id is the null ID.
func (id ID) IsZero() bool {
	return id == Null
}

// IsAllF reports whether every bit of id is set.
func (id ID) IsAllF() bool {
	return id == AllF
}

// In reports whether id equals any of ids.
func (id ID) In(ids ...ID) bool {
	for _, other := range ids {
		if id == other {
			return true
		}
	}

	return false
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. IDs are ordered byte-wise, which agrees with ==.
func Compare(a, b ID) int {
	return bytes.Compare(a[:], b[:])
}

// Compare compares id with other, see [Compare].
func (id ID) Compare(other ID) int {
	return Compare(id, other)
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return Compare(id, other) < 0
}

// String returns the ID in lower case RFC format,
// e.g. 01234567-89ab-cdef-0123-456789abcdef.
func (id ID) String() string {
	return id.Text(FormatRFC, Lower)
}

// MarshalText implements [encoding.TextMarshaler] using the lower case RFC format.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]; the result is the 16 raw bytes.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}
