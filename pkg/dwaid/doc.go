// Package dwaid implements the identifier formats of IBM DOORS Classic /
// DOORS Web Access (DWA): the colon-delimited GUID form and the
// hyphen-delimited URN form, translation between the two, and derivation of
// browser-navigable URLs from either.
//
// # Core Concepts
//
//  1. GUID: the internal identifier DWA uses for modules, folders, objects,
//     views and baseline sets. Example:
//     "AB:48beda447cfb0c27:21:2100003c20:28ffffffff:{null,0}"
//
//  2. URN: the redirector-facing identifier. Example:
//     "urn:rational::1-48beda447cfb0c27-M-00003c20"
//
//  3. TypeCode / Kind: a GUID carries a one-byte type code (0x21 = formal
//     module, 0x23 = object, ...); a URN carries a single kind letter
//     (M, O, P, F). The two sets do not map one-to-one: views have no kind
//     letter, and URNs never carry a baseline, so GUID -> URN translation
//     is lossy.
//
// # Usage Examples
//
//	g, err := dwaid.ParseGUID("AB:48beda447cfb0c27:21:2100003c20:28ffffffff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	u, viewKey, err := dwaid.GUIDToURN(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// "http://dwa.example.com/dwa/rm/urn%3Arational%3A%3A1-..."
//	link := dwaid.DirectURL("dwa.example.com", u, viewKey)
//
// # Purity
//
// Everything in this package is a pure function over immutable value types:
// no I/O, no process-wide state, no initialization. Every operation is safe
// for unbounded concurrent use.
//
// # Database and JSON Integration
//
// GUID, URN and DatabaseID implement json.Marshaler/Unmarshaler and
// sql.Scanner/driver.Valuer so identifiers can be carried in API payloads
// and stored in text columns without manual conversion.
package dwaid
