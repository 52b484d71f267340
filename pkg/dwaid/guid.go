package dwaid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// guidHeader is the literal, case-sensitive first field of every GUID.
const guidHeader = "AB"

// GUID is the colon-delimited internal identifier used by DOORS Web Access,
// e.g. "AB:48beda447cfb0c27:21:2100003c20:28ffffffff:{null,0}".
//
// GUIDs are immutable: construct them with NewGUID/WithBaseline or
// ParseGUID and read them through accessors. Two GUIDs are equal iff all
// five components match, including the absent-vs-explicit-Live baseline
// distinction, so GUID values are directly comparable with == and usable as
// map keys.
type GUID struct {
	dbid     DatabaseID
	typeCode TypeCode
	parent   ParentKey
	object   ObjectKey
	baseline BaselineKey // zero when the sixth field is absent
}

// NewGUID creates a GUID without a baseline field.
func NewGUID(db DatabaseID, tc TypeCode, parent ParentKey, object ObjectKey) GUID {
	return GUID{dbid: db, typeCode: tc, parent: parent, object: object}
}

// WithBaseline returns a copy of g carrying the given baseline field.
func (g GUID) WithBaseline(b BaselineKey) GUID {
	g.baseline = b
	return g
}

// DatabaseID returns the 16-hex-character database ID.
func (g GUID) DatabaseID() DatabaseID {
	return g.dbid
}

// TypeCode returns the resource type code.
func (g GUID) TypeCode() TypeCode {
	return g.typeCode
}

// Parent returns the parent field (type code + key).
func (g GUID) Parent() ParentKey {
	return g.parent
}

// Object returns the object field.
func (g GUID) Object() ObjectKey {
	return g.object
}

// Baseline returns the baseline field. ok is false when the field is absent,
// which is distinct from an explicit Live marker.
func (g GUID) Baseline() (b BaselineKey, ok bool) {
	return g.baseline, !g.baseline.IsZero()
}

// IsZero returns true for the zero GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// Equal returns true if two GUIDs are equal.
func (g GUID) Equal(other GUID) bool {
	return g == other
}

// ParseGUID parses the colon-delimited GUID form. Hex fields are parsed
// case-insensitively; the header literal "AB" is case-sensitive. Failures
// are reported as *GUIDParseError carrying the offending field and text.
func ParseGUID(s string) (GUID, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 5 && len(fields) != 6 {
		return GUID{}, &GUIDParseError{Field: GUIDFieldCount, Raw: s}
	}

	if fields[0] != guidHeader {
		return GUID{}, &GUIDParseError{Field: GUIDFieldHeader, Raw: fields[0]}
	}

	dbid, err := ParseDatabaseID(fields[1])
	if err != nil {
		return GUID{}, &GUIDParseError{Field: GUIDFieldDatabaseID, Raw: fields[1], cause: err}
	}

	tc, err := ParseTypeCode(fields[2])
	if err != nil {
		return GUID{}, &GUIDParseError{Field: GUIDFieldTypeCode, Raw: fields[2], cause: err}
	}

	parent, err := ParseParentKey(fields[3])
	if err != nil {
		return GUID{}, &GUIDParseError{Field: GUIDFieldParentKey, Raw: fields[3], cause: err}
	}

	object, err := ParseObjectKey(fields[4])
	if err != nil {
		return GUID{}, &GUIDParseError{Field: GUIDFieldObjectKey, Raw: fields[4], cause: err}
	}

	g := NewGUID(dbid, tc, parent, object)

	if len(fields) == 6 {
		baseline, err := ParseBaselineKey(fields[5])
		if err != nil {
			return GUID{}, &GUIDParseError{Field: GUIDFieldBaseline, Raw: fields[5], cause: err}
		}
		g = g.WithBaseline(baseline)
	}

	return g, nil
}

// MustParseGUID parses a GUID from string, panicking on error. This is
// useful for test fixtures and constants where the GUID is known valid.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(fmt.Sprintf("invalid GUID: %s: %v", s, err))
	}
	return g
}

// String returns the canonical wire form: lowercase hex, every field
// zero-padded to its fixed width, the baseline field re-emitted in whichever
// variant it holds or omitted entirely when absent.
func (g GUID) String() string {
	var b strings.Builder
	b.WriteString(guidHeader)
	b.WriteByte(':')
	b.WriteString(g.dbid.String())
	b.WriteByte(':')
	b.WriteString(g.typeCode.String())
	b.WriteByte(':')
	b.WriteString(g.parent.String())
	b.WriteByte(':')
	b.WriteString(g.object.String())
	if !g.baseline.IsZero() {
		b.WriteByte(':')
		b.WriteString(g.baseline.String())
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler. GUIDs are serialized as their
// canonical string form.
func (g GUID) MarshalJSON() ([]byte, error) {
	if g.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(g.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GUID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("GUID must be a string: %w", err)
	}
	if s == "" || s == "null" {
		*g = GUID{}
		return nil
	}
	parsed, err := ParseGUID(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
func (g *GUID) Scan(value interface{}) error {
	if value == nil {
		*g = GUID{}
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			*g = GUID{}
			return nil
		}
		parsed, err := ParseGUID(v)
		if err != nil {
			return fmt.Errorf("cannot scan string into GUID: %w", err)
		}
		*g = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*g = GUID{}
			return nil
		}
		parsed, err := ParseGUID(string(v))
		if err != nil {
			return fmt.Errorf("cannot scan bytes into GUID: %w", err)
		}
		*g = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into GUID", value)
	}
}

// Value implements driver.Valuer for database writing.
func (g GUID) Value() (driver.Value, error) {
	if g.IsZero() {
		return nil, nil
	}
	return g.String(), nil
}
