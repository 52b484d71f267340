package dwaid

import (
	"fmt"
	"strconv"
)

const (
	keyLen       = 8  // hex digits in a Key
	parentLen    = 10 // type code + key
	objectLen    = 10 // "28" prefix + key
	objectPrefix = "28"

	// wholeContainerKey is the reserved object key meaning "the entire
	// module or folder" rather than a specific row.
	wholeContainerKey = 0xffffffff
)

// Key is a DOORS item key: an unsigned 32-bit integer whose textual form is
// always 8 lowercase zero-padded hex digits. Leading zeros are significant
// for round-tripping but not for equality.
type Key uint32

// ParseKey parses an 8-hex-digit key, case-insensitively.
func ParseKey(s string) (Key, error) {
	if len(s) != keyLen || !isHex(s) {
		return 0, fmt.Errorf("key must be %d hex characters: %q", keyLen, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return Key(v), nil
}

// String returns the 8-digit lowercase zero-padded hex wire form.
func (k Key) String() string {
	return fmt.Sprintf("%08x", uint32(k))
}

// ParentKey is the parent field of a GUID: a type code paired with a key,
// 10 hex characters on the wire.
type ParentKey struct {
	Type TypeCode
	Key  Key
}

// ParseParentKey parses the 10-hex-character parent field.
func ParseParentKey(s string) (ParentKey, error) {
	if len(s) != parentLen || !isHex(s) {
		return ParentKey{}, fmt.Errorf("parent key must be %d hex characters: %q", parentLen, s)
	}
	tc, err := ParseTypeCode(s[:2])
	if err != nil {
		return ParentKey{}, err
	}
	k, err := ParseKey(s[2:])
	if err != nil {
		return ParentKey{}, err
	}
	return ParentKey{Type: tc, Key: k}, nil
}

// String returns the 10-character lowercase hex wire form.
func (p ParentKey) String() string {
	return p.Type.String() + p.Key.String()
}

// ObjectKey is the object field of a GUID: either the whole-container
// sentinel ("28ffffffff") or an absolute object key ("28" + 8 hex digits).
type ObjectKey struct {
	key   Key
	whole bool
}

// WholeContainer returns the object key meaning "the entire container".
func WholeContainer() ObjectKey {
	return ObjectKey{whole: true}
}

// AbsoluteObject returns the object key for a specific object. The reserved
// value 0xffffffff is normalized to the whole-container sentinel.
func AbsoluteObject(k Key) ObjectKey {
	if uint32(k) == wholeContainerKey {
		return WholeContainer()
	}
	return ObjectKey{key: k}
}

// ParseObjectKey parses the 10-character object field, which must start
// with the literal "28".
func ParseObjectKey(s string) (ObjectKey, error) {
	if len(s) != objectLen || s[:2] != objectPrefix {
		return ObjectKey{}, fmt.Errorf("object key must be %q followed by %d hex characters: %q", objectPrefix, keyLen, s)
	}
	k, err := ParseKey(s[2:])
	if err != nil {
		return ObjectKey{}, err
	}
	return AbsoluteObject(k), nil
}

// IsWholeContainer returns true for the whole-container sentinel.
func (o ObjectKey) IsWholeContainer() bool {
	return o.whole
}

// Key returns the absolute object key. ok is false for the whole-container
// sentinel, which addresses no specific object.
func (o ObjectKey) Key() (k Key, ok bool) {
	if o.whole {
		return 0, false
	}
	return o.key, true
}

// String returns the 10-character lowercase hex wire form.
func (o ObjectKey) String() string {
	if o.whole {
		return objectPrefix + "ffffffff"
	}
	return objectPrefix + o.key.String()
}

// isHex reports whether s is non-empty and entirely hex digits (any case).
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
