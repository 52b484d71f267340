package dwaid

import "fmt"

// GUIDField names the GUID field a parse error refers to.
type GUIDField string

const (
	GUIDFieldCount      GUIDField = "field count"
	GUIDFieldHeader     GUIDField = "header"
	GUIDFieldDatabaseID GUIDField = "database ID"
	GUIDFieldTypeCode   GUIDField = "type code"
	GUIDFieldParentKey  GUIDField = "parent key"
	GUIDFieldObjectKey  GUIDField = "object key"
	GUIDFieldBaseline   GUIDField = "baseline"
)

// GUIDParseError reports a single malformed GUID field. Field identifies
// which field failed and Raw carries its offending text, so a caller
// processing a batch can report failures precisely without re-tokenizing.
type GUIDParseError struct {
	Field GUIDField
	Raw   string
	cause error
}

func (e *GUIDParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("malformed GUID %s %q: %v", e.Field, e.Raw, e.cause)
	}
	return fmt.Sprintf("malformed GUID %s: %q", e.Field, e.Raw)
}

func (e *GUIDParseError) Unwrap() error {
	return e.cause
}

// URNField names the URN segment a parse error refers to.
type URNField string

const (
	URNFieldScheme     URNField = "scheme"
	URNFieldPrefix     URNField = "prefix"
	URNFieldDatabaseID URNField = "database ID"
	URNFieldKind       URNField = "kind"
	URNFieldKey        URNField = "key"
	URNFieldObjectRef  URNField = "object reference"
)

// URNParseError reports a single malformed URN segment.
type URNParseError struct {
	Field URNField
	Raw   string
	cause error
}

func (e *URNParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("malformed URN %s %q: %v", e.Field, e.Raw, e.cause)
	}
	return fmt.Sprintf("malformed URN %s: %q", e.Field, e.Raw)
}

func (e *URNParseError) Unwrap() error {
	return e.cause
}

// TranslationReason discriminates GUID <-> URN translation failures.
type TranslationReason string

const (
	// ReasonUnsupportedTypeCode means the type code has no URN kind
	// (baseline sets, unknown codes) or a type hint contradicts the kind.
	ReasonUnsupportedTypeCode TranslationReason = "unsupported type code"

	// ReasonInconsistentObjectKey means the object field contradicts the
	// type code, e.g. an object GUID with the whole-container sentinel.
	ReasonInconsistentObjectKey TranslationReason = "inconsistent object key"

	// ReasonMissingTypeHint means URN -> GUID translation was attempted
	// without the required type hint.
	ReasonMissingTypeHint TranslationReason = "missing type hint"
)

// TranslationError reports why a GUID <-> URN translation failed.
type TranslationError struct {
	Reason TranslationReason
	Detail string
}

func (e *TranslationError) Error() string {
	if e.Detail == "" {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}
