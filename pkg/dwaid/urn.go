package dwaid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Scheme is the URN namespace token. DWA accepts both tokens but they are
// not equivalent identifiers: a URN round-trips with the scheme it was
// parsed with, never normalized to the other.
type Scheme string

const (
	SchemeRational  Scheme = "rational"
	SchemeTelelogic Scheme = "telelogic"
)

// Kind is the single-letter resource kind of a URN. Views have no letter:
// a view is represented as a formal-module URN plus an auxiliary view key
// carried out-of-band (see GUIDToURN and DirectURL).
type Kind byte

const (
	KindProjectRoot  Kind = 'P'
	KindFolder       Kind = 'F'
	KindFormalModule Kind = 'M'
	KindObject       Kind = 'O'
)

// IsValid returns true for the four documented kind letters.
func (k Kind) IsValid() bool {
	switch k {
	case KindProjectRoot, KindFolder, KindFormalModule, KindObject:
		return true
	default:
		return false
	}
}

// String returns the kind letter.
func (k Kind) String() string {
	return string([]byte{byte(k)})
}

// URNID is the kind-specific tail of a URN: a simple key for project root,
// folder and formal-module URNs, or an object reference (absolute object
// number plus the containing module's key) for object URNs.
type URNID struct {
	key   Key    // simple key, or the module key of an object reference
	absNo uint64 // object reference only
	isRef bool
}

// SimpleID returns the URNID for a project root, folder or formal module.
func SimpleID(k Key) URNID {
	return URNID{key: k}
}

// ObjectRefID returns the URNID for an object: its absolute number and the
// key of the module containing it.
func ObjectRefID(absNo uint64, moduleKey Key) URNID {
	return URNID{key: moduleKey, absNo: absNo, isRef: true}
}

// IsObjectRef returns true for object references.
func (id URNID) IsObjectRef() bool {
	return id.isRef
}

// Key returns the simple key. ok is false for object references.
func (id URNID) Key() (k Key, ok bool) {
	if id.isRef {
		return 0, false
	}
	return id.key, true
}

// ObjectRef returns the absolute object number and module key. ok is false
// for simple ids.
func (id URNID) ObjectRef() (absNo uint64, moduleKey Key, ok bool) {
	if !id.isRef {
		return 0, 0, false
	}
	return id.absNo, id.key, true
}

// URN is the hyphen-delimited, redirector-facing identifier used by DOORS
// Web Access, e.g. "urn:rational::1-48beda447cfb0c27-M-00003c20".
//
// URNs are immutable value types, directly comparable with == and usable as
// map keys.
type URN struct {
	scheme Scheme
	dbid   DatabaseID
	kind   Kind
	id     URNID
}

// NewURN creates a URN from its components.
func NewURN(scheme Scheme, db DatabaseID, kind Kind, id URNID) URN {
	return URN{scheme: scheme, dbid: db, kind: kind, id: id}
}

// Scheme returns the namespace token the URN was built or parsed with.
func (u URN) Scheme() Scheme {
	return u.scheme
}

// DatabaseID returns the 16-hex-character database ID.
func (u URN) DatabaseID() DatabaseID {
	return u.dbid
}

// Kind returns the resource kind letter.
func (u URN) Kind() Kind {
	return u.kind
}

// ID returns the kind-specific tail.
func (u URN) ID() URNID {
	return u.id
}

// IsZero returns true for the zero URN.
func (u URN) IsZero() bool {
	return u == URN{}
}

// Equal returns true if two URNs are equal. The scheme participates:
// rational and telelogic URNs are never equal.
func (u URN) Equal(other URN) bool {
	return u == other
}

// ParseURN parses the hyphen-delimited URN form. Scheme tokens and the kind
// letter are case-sensitive literals; hex fields are parsed
// case-insensitively. Failures are reported as *URNParseError carrying the
// offending segment and text.
func ParseURN(s string) (URN, error) {
	rest, ok := strings.CutPrefix(s, "urn:")
	if !ok {
		return URN{}, &URNParseError{Field: URNFieldPrefix, Raw: s}
	}

	var scheme Scheme
	switch {
	case strings.HasPrefix(rest, string(SchemeRational)):
		scheme = SchemeRational
	case strings.HasPrefix(rest, string(SchemeTelelogic)):
		scheme = SchemeTelelogic
	default:
		return URN{}, &URNParseError{Field: URNFieldScheme, Raw: rest}
	}
	rest = rest[len(scheme):]

	rest, ok = strings.CutPrefix(rest, "::1-")
	if !ok {
		return URN{}, &URNParseError{Field: URNFieldPrefix, Raw: rest}
	}

	if len(rest) < dbIDLen+1 || rest[dbIDLen] != '-' {
		return URN{}, &URNParseError{Field: URNFieldDatabaseID, Raw: rest}
	}
	dbid, err := ParseDatabaseID(rest[:dbIDLen])
	if err != nil {
		return URN{}, &URNParseError{Field: URNFieldDatabaseID, Raw: rest[:dbIDLen], cause: err}
	}
	rest = rest[dbIDLen+1:]

	if len(rest) < 2 || rest[1] != '-' || !Kind(rest[0]).IsValid() {
		return URN{}, &URNParseError{Field: URNFieldKind, Raw: rest}
	}
	kind := Kind(rest[0])
	rest = rest[2:]

	var id URNID
	if kind == KindObject {
		parts := strings.Split(rest, "-")
		if len(parts) != 2 {
			return URN{}, &URNParseError{Field: URNFieldObjectRef, Raw: rest}
		}
		absNo, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return URN{}, &URNParseError{Field: URNFieldObjectRef, Raw: rest, cause: err}
		}
		moduleKey, err := ParseKey(parts[1])
		if err != nil {
			return URN{}, &URNParseError{Field: URNFieldObjectRef, Raw: rest, cause: err}
		}
		id = ObjectRefID(absNo, moduleKey)
	} else {
		key, err := ParseKey(rest)
		if err != nil {
			return URN{}, &URNParseError{Field: URNFieldKey, Raw: rest, cause: err}
		}
		id = SimpleID(key)
	}

	return NewURN(scheme, dbid, kind, id), nil
}

// MustParseURN parses a URN from string, panicking on error. This is useful
// for test fixtures and constants where the URN is known valid.
func MustParseURN(s string) URN {
	u, err := ParseURN(s)
	if err != nil {
		panic(fmt.Sprintf("invalid URN: %s: %v", s, err))
	}
	return u
}

// String returns the canonical wire form: the scheme token exactly as
// stored, lowercase zero-padded hex keys, and an unpadded decimal object
// number for object URNs.
func (u URN) String() string {
	var b strings.Builder
	b.WriteString("urn:")
	b.WriteString(string(u.scheme))
	b.WriteString("::1-")
	b.WriteString(u.dbid.String())
	b.WriteByte('-')
	b.WriteByte(byte(u.kind))
	b.WriteByte('-')
	if absNo, moduleKey, ok := u.id.ObjectRef(); ok {
		b.WriteString(strconv.FormatUint(absNo, 10))
		b.WriteByte('-')
		b.WriteString(moduleKey.String())
	} else {
		key, _ := u.id.Key()
		b.WriteString(key.String())
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler. URNs are serialized as their
// canonical string form.
func (u URN) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *URN) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("URN must be a string: %w", err)
	}
	if s == "" || s == "null" {
		*u = URN{}
		return nil
	}
	parsed, err := ParseURN(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
func (u *URN) Scan(value interface{}) error {
	if value == nil {
		*u = URN{}
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			*u = URN{}
			return nil
		}
		parsed, err := ParseURN(v)
		if err != nil {
			return fmt.Errorf("cannot scan string into URN: %w", err)
		}
		*u = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*u = URN{}
			return nil
		}
		parsed, err := ParseURN(string(v))
		if err != nil {
			return fmt.Errorf("cannot scan bytes into URN: %w", err)
		}
		*u = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into URN", value)
	}
}

// Value implements driver.Valuer for database writing.
func (u URN) Value() (driver.Value, error) {
	if u.IsZero() {
		return nil, nil
	}
	return u.String(), nil
}
