package dwaid

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks a GUID assembled in memory (as opposed to one produced by
// ParseGUID, which can only yield well-formed values) before it is formatted
// or translated.
func (g GUID) Validate() error {
	return validation.Errors{
		"db_id": validation.Validate(g.dbid.String(), validation.Required),
		// Skip keeps ozzo from re-dispatching into g's own Validate.
		"object": validation.Validate(g, validation.By(checkGUIDObject), validation.Skip),
	}.Filter()
}

// checkGUIDObject rejects object fields that contradict the type code: an
// object or view GUID must address a specific key, never the whole
// container, and a project root is only ever the whole container.
func checkGUIDObject(value interface{}) error {
	g := value.(GUID)
	switch g.typeCode {
	case TypeObject, TypeView:
		if g.object.IsWholeContainer() {
			return errors.New("must not be the whole-container sentinel")
		}
	case TypeProjectRoot:
		if !g.object.IsWholeContainer() {
			return errors.New("must be the whole-container sentinel")
		}
	}
	return nil
}

// Validate checks a URN assembled in memory before it is formatted or
// translated.
func (u URN) Validate() error {
	return validation.Errors{
		"scheme": validation.Validate(string(u.scheme), validation.Required,
			validation.In(string(SchemeRational), string(SchemeTelelogic))),
		"db_id": validation.Validate(u.dbid.String(), validation.Required),
		"kind":  validation.Validate(u.kind.String(), validation.By(checkKind)),
		"id":    validation.Validate(u, validation.By(checkURNID), validation.Skip),
	}.Filter()
}

func checkKind(value interface{}) error {
	s := value.(string)
	if len(s) != 1 || !Kind(s[0]).IsValid() {
		return errors.New("must be one of P, F, M, O")
	}
	return nil
}

// checkURNID rejects id variants that contradict the kind letter.
func checkURNID(value interface{}) error {
	u := value.(URN)
	if u.kind == KindObject && !u.id.IsObjectRef() {
		return errors.New("object URN requires an object reference")
	}
	if u.kind != KindObject && u.id.IsObjectRef() {
		return errors.New("only object URNs carry an object reference")
	}
	return nil
}
