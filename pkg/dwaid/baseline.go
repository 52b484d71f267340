package dwaid

import (
	"fmt"
	"strconv"
	"strings"
)

// BaselineKind discriminates the three baseline wire forms.
type BaselineKind int

const (
	// BaselineLive is the explicit live/working-copy marker "{null,0}".
	BaselineLive BaselineKind = iota + 1

	// BaselineLegacy is the legacy form "ff" + 8 hex digits.
	BaselineLegacy

	// BaselineVersioned is the modern form "{<id>,<epoch>}" with a decimal
	// baseline id and a Unix timestamp.
	BaselineVersioned
)

// BaselineKey identifies a baseline (an immutable historical snapshot of a
// module) or the live working copy. The zero BaselineKey means the baseline
// field is absent from the GUID entirely, which is distinct from an explicit
// Live marker: both describe "no baseline", but they round-trip to their
// original form.
type BaselineKey struct {
	kind  BaselineKind
	key   Key    // legacy only
	id    uint64 // versioned only
	epoch uint64 // versioned only
}

// LiveBaseline returns the explicit live/working-copy marker.
func LiveBaseline() BaselineKey {
	return BaselineKey{kind: BaselineLive}
}

// LegacyBaseline returns a legacy hex-numbered baseline key.
func LegacyBaseline(k Key) BaselineKey {
	return BaselineKey{kind: BaselineLegacy, key: k}
}

// VersionedBaseline returns a modern {id,epoch} baseline key.
func VersionedBaseline(id, epoch uint64) BaselineKey {
	return BaselineKey{kind: BaselineVersioned, id: id, epoch: epoch}
}

// Kind returns the baseline kind, or 0 for the zero (absent) BaselineKey.
func (b BaselineKey) Kind() BaselineKind {
	return b.kind
}

// IsZero returns true if the baseline field is absent.
func (b BaselineKey) IsZero() bool {
	return b.kind == 0
}

// LegacyKey returns the legacy baseline key. ok is false for other kinds.
func (b BaselineKey) LegacyKey() (k Key, ok bool) {
	if b.kind != BaselineLegacy {
		return 0, false
	}
	return b.key, true
}

// Version returns the versioned baseline id and epoch. ok is false for
// other kinds.
func (b BaselineKey) Version() (id, epoch uint64, ok bool) {
	if b.kind != BaselineVersioned {
		return 0, 0, false
	}
	return b.id, b.epoch, true
}

// ParseBaselineKey parses the optional sixth GUID field.
func ParseBaselineKey(s string) (BaselineKey, error) {
	if strings.HasPrefix(s, "ff") {
		k, err := ParseKey(s[2:])
		if err != nil {
			return BaselineKey{}, fmt.Errorf("invalid legacy baseline %q: %w", s, err)
		}
		return LegacyBaseline(k), nil
	}

	if strings.HasPrefix(s, "{") {
		if !strings.HasSuffix(s, "}") {
			return BaselineKey{}, fmt.Errorf("unterminated baseline %q", s)
		}
		parts := strings.Split(s[1:len(s)-1], ",")
		if len(parts) != 2 {
			return BaselineKey{}, fmt.Errorf("baseline %q must have exactly two comma-separated parts", s)
		}
		if parts[0] == "null" {
			if parts[1] != "0" {
				return BaselineKey{}, fmt.Errorf("live baseline %q must carry epoch 0", s)
			}
			return LiveBaseline(), nil
		}
		id, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return BaselineKey{}, fmt.Errorf("invalid baseline id in %q: %w", s, err)
		}
		epoch, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return BaselineKey{}, fmt.Errorf("invalid baseline epoch in %q: %w", s, err)
		}
		return VersionedBaseline(id, epoch), nil
	}

	return BaselineKey{}, fmt.Errorf("unrecognized baseline form %q", s)
}

// String returns the wire form of the baseline field, or "" for the zero
// (absent) BaselineKey.
func (b BaselineKey) String() string {
	switch b.kind {
	case BaselineLive:
		return "{null,0}"
	case BaselineLegacy:
		return "ff" + b.key.String()
	case BaselineVersioned:
		return fmt.Sprintf("{%d,%d}", b.id, b.epoch)
	default:
		return ""
	}
}
