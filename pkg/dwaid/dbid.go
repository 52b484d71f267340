package dwaid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// dbIDLen is the fixed width of a DOORS database identifier.
const dbIDLen = 16

// DatabaseID identifies a DOORS database: exactly 16 hexadecimal characters,
// stored case-normalized to lowercase. Two DatabaseIDs are equal iff their
// normalized forms match, so values produced by ParseDatabaseID are directly
// comparable with ==.
type DatabaseID struct {
	value string
}

// ParseDatabaseID parses a database ID from string. Input hex may be any
// case; the stored form is always lowercase.
func ParseDatabaseID(s string) (DatabaseID, error) {
	if len(s) != dbIDLen || !isHex(s) {
		return DatabaseID{}, fmt.Errorf("database ID must be %d hex characters: %q", dbIDLen, s)
	}
	return DatabaseID{value: strings.ToLower(s)}, nil
}

// MustParseDatabaseID parses a database ID from string, panicking on error.
// This is useful for test fixtures and constants where the ID is known valid.
func MustParseDatabaseID(s string) DatabaseID {
	d, err := ParseDatabaseID(s)
	if err != nil {
		panic(fmt.Sprintf("invalid database ID: %s: %v", s, err))
	}
	return d
}

// String returns the canonical 16-character lowercase hex form.
func (d DatabaseID) String() string {
	return d.value
}

// IsZero returns true if this is the zero DatabaseID.
func (d DatabaseID) IsZero() bool {
	return d.value == ""
}

// Equal returns true if two DatabaseIDs are equal.
func (d DatabaseID) Equal(other DatabaseID) bool {
	return d.value == other.value
}

// MarshalJSON implements json.Marshaler.
func (d DatabaseID) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DatabaseID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("database ID must be a string: %w", err)
	}
	if s == "" || s == "null" {
		*d = DatabaseID{}
		return nil
	}
	parsed, err := ParseDatabaseID(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
func (d *DatabaseID) Scan(value interface{}) error {
	if value == nil {
		*d = DatabaseID{}
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			*d = DatabaseID{}
			return nil
		}
		parsed, err := ParseDatabaseID(v)
		if err != nil {
			return fmt.Errorf("cannot scan string into DatabaseID: %w", err)
		}
		*d = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*d = DatabaseID{}
			return nil
		}
		parsed, err := ParseDatabaseID(string(v))
		if err != nil {
			return fmt.Errorf("cannot scan bytes into DatabaseID: %w", err)
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DatabaseID", value)
	}
}

// Value implements driver.Valuer for database writing.
func (d DatabaseID) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.value, nil
}
