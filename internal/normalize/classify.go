package normalize

import (
	"fmt"

	"dnslens/internal/models"
)

// filterStatusNames maps the resolver's integer reason codes to display
// labels. Codes outside the table render as "Unknown (<code>)".
var filterStatusNames = map[int]string{
	0: "Not Filtered",
	1: "Blocked by Filter",
	2: "Blocked (Safebrowsing)",
	3: "Blocked by Rule",
	4: "Blocked (Parental)",
	5: "Rewritten",
	6: "Rewritten (Hosts)",
	7: "Rewritten (Safe Search)",
}

// FilterStatus returns the display label for a query result. Absent or
// malformed results classify as "Not Filtered".
func FilterStatus(r models.Result) string {
	if r.State != models.ResultPresent {
		return filterStatusNames[0]
	}
	if name, ok := filterStatusNames[r.Reason]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", r.Reason)
}

// IsFiltered reports whether the result marks the query as filtered.
// Absent and malformed results count as not filtered.
func IsFiltered(r models.Result) bool {
	return r.State == models.ResultPresent && r.IsFiltered
}
