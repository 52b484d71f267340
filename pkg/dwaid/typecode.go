package dwaid

import (
	"fmt"
	"strconv"
)

// TypeCode is the one-byte resource type carried in a GUID. The format
// documents only a subset of the code space, so unrecognized bytes are
// preserved as-is rather than rejected.
type TypeCode byte

const (
	// TypeProjectRoot identifies the root folder of a project.
	TypeProjectRoot TypeCode = 0x18

	// TypeFolder identifies an ordinary folder.
	TypeFolder TypeCode = 0x19

	// TypeBaselineSet identifies a baseline set definition.
	TypeBaselineSet TypeCode = 0x1d

	// TypeView identifies a saved view of a formal module.
	TypeView TypeCode = 0x1f

	// TypeFormalModule identifies a formal module (a requirements document).
	TypeFormalModule TypeCode = 0x21

	// TypeObject identifies a single object (row) inside a formal module.
	TypeObject TypeCode = 0x23
)

// ParseTypeCode parses a 1-2 character hex type code, case-insensitively.
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) < 1 || len(s) > 2 || !isHex(s) {
		return 0, fmt.Errorf("type code must be 1-2 hex characters: %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid type code %q: %w", s, err)
	}
	return TypeCode(v), nil
}

// Known returns true if the code is one of the documented resource types.
func (t TypeCode) Known() bool {
	switch t {
	case TypeProjectRoot, TypeFolder, TypeBaselineSet, TypeView, TypeFormalModule, TypeObject:
		return true
	default:
		return false
	}
}

// String returns the two-digit lowercase hex wire form.
func (t TypeCode) String() string {
	return fmt.Sprintf("%02x", byte(t))
}

// Name returns a human-readable label for logging and error messages.
// Unrecognized codes report their hex value.
func (t TypeCode) Name() string {
	switch t {
	case TypeProjectRoot:
		return "project root"
	case TypeFolder:
		return "folder"
	case TypeBaselineSet:
		return "baseline set"
	case TypeView:
		return "view"
	case TypeFormalModule:
		return "formal module"
	case TypeObject:
		return "object"
	default:
		return fmt.Sprintf("unknown (0x%02x)", byte(t))
	}
}
