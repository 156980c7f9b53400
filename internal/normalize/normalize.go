// Package normalize derives the dashboard's analysis fields from raw query
// log records: the client name (via DHCP leases), the registrable domain of
// the queried host, and the filtering classification.
package normalize

import "dnslens/internal/models"

// ResolveClient returns the lease hostname for ip, or ip itself when no
// lease is known.
func ResolveClient(ip string, leases map[string]string) string {
	if host, ok := leases[ip]; ok {
		return host
	}
	return ip
}

// Records enriches each raw query record with its derived fields.
func Records(raw []models.QueryRecord, leases map[string]string) []models.Record {
	out := make([]models.Record, 0, len(raw))
	for _, q := range raw {
		out = append(out, models.Record{
			QueryRecord:    q,
			Client:         ResolveClient(q.ClientIP, leases),
			TopLevelDomain: TopLevelDomain(q.Host),
			FilterStatus:   FilterStatus(q.Result),
			IsFiltered:     IsFiltered(q.Result),
		})
	}
	return out
}
