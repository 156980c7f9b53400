package normalize

import "strings"

// multiPartSuffixes lists public suffixes that span two labels. This is a
// deliberately small fixed table, not a full public suffix list: anything
// not listed here falls back to the last two labels.
var multiPartSuffixes = map[string]struct{}{
	"co.uk":           {},
	"com.au":          {},
	"co.nz":           {},
	"co.jp":           {},
	"com.br":          {},
	"org.uk":          {},
	"net.au":          {},
	"ac.uk":           {},
	"gov.uk":          {},
	"3gppnetwork.org": {},
}

// TopLevelDomain collapses a hostname to its registrable domain.
//
//	www.google.com        -> google.com
//	accounts.google.com   -> google.com
//	mail.staff.co.uk      -> staff.co.uk
//	localhost             -> localhost
//
// A host that is itself a bare two-label multi-part suffix (a literal
// "co.uk") comes back as those two labels; that asymmetry matches the log
// data this was written against and is kept on purpose.
func TopLevelDomain(host string) string {
	if host == "" {
		return ""
	}
	parts := strings.Split(strings.ToLower(host), ".")
	if len(parts) < 2 {
		return host
	}
	if len(parts) >= 3 {
		suffix := parts[len(parts)-2] + "." + parts[len(parts)-1]
		if _, ok := multiPartSuffixes[suffix]; ok {
			return strings.Join(parts[len(parts)-3:], ".")
		}
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
