package dwaid

import (
	"fmt"
	"net/url"
	"strings"
)

// RedirectorURL builds the DWA redirector link for a URN:
//
//	http://<server>/dwa/redirector/?version=2&urn=<escaped urn>
//
// A legacy baseline appends "&version=<8-hex key>", a versioned baseline
// appends "&baseline=<decimal id>"; the Live marker and the zero (absent)
// BaselineKey append nothing. The redirector requires the fixed "version=2"
// first and tolerates the duplicated version key for legacy baselines, so
// the query is assembled in template order rather than with url.Values.
func RedirectorURL(server string, u URN, baseline BaselineKey) string {
	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(server)
	b.WriteString("/dwa/redirector/?version=2&urn=")
	b.WriteString(url.QueryEscape(u.String()))

	switch baseline.Kind() {
	case BaselineLegacy:
		k, _ := baseline.LegacyKey()
		b.WriteString("&version=")
		b.WriteString(k.String())
	case BaselineVersioned:
		id, _, _ := baseline.Version()
		fmt.Fprintf(&b, "&baseline=%d", id)
	}

	return b.String()
}

// DirectURL builds the direct resource link for a URN:
//
//	http://<server>/dwa/rm/<escaped urn>
//
// A non-nil view key appends "?view=<8-hex key>", which is how a saved view
// of a module is addressed (see GUIDToURN).
func DirectURL(server string, u URN, viewKey *Key) string {
	var b strings.Builder
	b.WriteString("http://")
	b.WriteString(server)
	b.WriteString("/dwa/rm/")
	b.WriteString(url.QueryEscape(u.String()))

	if viewKey != nil {
		b.WriteString("?view=")
		b.WriteString(viewKey.String())
	}

	return b.String()
}
