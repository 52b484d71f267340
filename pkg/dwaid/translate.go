package dwaid

import "fmt"

// GUIDToURN translates a GUID into the URN DWA's redirector understands.
// Translated URNs always carry the rational scheme, since GUIDs encode no
// scheme of their own.
//
// The translation is lossy: the GUID's baseline field is dropped entirely
// because URNs carry no baseline. A caller that needs a baseline-qualified
// link must thread the baseline separately into RedirectorURL.
//
// Views have no URN kind letter. A view GUID translates to the URN of the
// module named in its parent field, and the view's own key (the GUID's
// object field) is returned as the auxiliary viewKey; it is nil for every
// other type code. A caller building a URL appends it via DirectURL.
func GUIDToURN(g GUID) (u URN, viewKey *Key, err error) {
	switch g.TypeCode() {
	case TypeProjectRoot:
		if !g.Object().IsWholeContainer() {
			return URN{}, nil, &TranslationError{
				Reason: ReasonInconsistentObjectKey,
				Detail: fmt.Sprintf("project root GUID must carry the whole-container sentinel, got %s", g.Object()),
			}
		}
		return NewURN(SchemeRational, g.DatabaseID(), KindProjectRoot, SimpleID(g.Parent().Key)), nil, nil

	case TypeFolder:
		return NewURN(SchemeRational, g.DatabaseID(), KindFolder, SimpleID(g.Parent().Key)), nil, nil

	case TypeFormalModule:
		return NewURN(SchemeRational, g.DatabaseID(), KindFormalModule, SimpleID(g.Parent().Key)), nil, nil

	case TypeObject:
		objKey, ok := g.Object().Key()
		if !ok {
			return URN{}, nil, &TranslationError{
				Reason: ReasonInconsistentObjectKey,
				Detail: "object GUID carries the whole-container sentinel",
			}
		}
		id := ObjectRefID(uint64(objKey), g.Parent().Key)
		return NewURN(SchemeRational, g.DatabaseID(), KindObject, id), nil, nil

	case TypeView:
		// The object field of a view GUID holds the view's own key.
		vk, ok := g.Object().Key()
		if !ok {
			return URN{}, nil, &TranslationError{
				Reason: ReasonInconsistentObjectKey,
				Detail: "view GUID carries the whole-container sentinel instead of a view key",
			}
		}
		u := NewURN(SchemeRational, g.DatabaseID(), KindFormalModule, SimpleID(g.Parent().Key))
		return u, &vk, nil

	default:
		return URN{}, nil, &TranslationError{
			Reason: ReasonUnsupportedTypeCode,
			Detail: fmt.Sprintf("%s has no URN representation", g.TypeCode().Name()),
		}
	}
}

// canonicalTypeCode returns the documented type code for a URN kind.
func canonicalTypeCode(k Kind) TypeCode {
	switch k {
	case KindProjectRoot:
		return TypeProjectRoot
	case KindFolder:
		return TypeFolder
	case KindFormalModule:
		return TypeFormalModule
	case KindObject:
		return TypeObject
	default:
		return 0
	}
}

// URNToGUID translates a URN back into a GUID.
//
// The inverse direction is under-determined: a URN encodes neither the
// GUID's type byte with full fidelity nor any baseline. The caller must
// therefore supply an explicit type hint, and the result always has an
// absent baseline, i.e. it addresses the live working copy. A zero hint is
// rejected as missing. A hint that names a documented type code must match
// the URN's kind; an undocumented hint byte is preserved verbatim, since
// the format's type-code space is open.
func URNToGUID(u URN, hint TypeCode) (GUID, error) {
	if hint == 0 {
		return GUID{}, &TranslationError{
			Reason: ReasonMissingTypeHint,
			Detail: fmt.Sprintf("translating %s requires a type hint", u),
		}
	}
	if hint.Known() && hint != canonicalTypeCode(u.Kind()) {
		return GUID{}, &TranslationError{
			Reason: ReasonUnsupportedTypeCode,
			Detail: fmt.Sprintf("hint %s contradicts URN kind %s", hint.Name(), u.Kind()),
		}
	}

	if u.Kind() == KindObject {
		absNo, moduleKey, _ := u.ID().ObjectRef()
		if absNo >= wholeContainerKey {
			return GUID{}, &TranslationError{
				Reason: ReasonInconsistentObjectKey,
				Detail: fmt.Sprintf("object number %d does not fit an absolute object key", absNo),
			}
		}
		parent := ParentKey{Type: TypeFormalModule, Key: moduleKey}
		return NewGUID(u.DatabaseID(), hint, parent, AbsoluteObject(Key(absNo))), nil
	}

	key, _ := u.ID().Key()
	parent := ParentKey{Type: hint, Key: key}
	return NewGUID(u.DatabaseID(), hint, parent, WholeContainer()), nil
}
