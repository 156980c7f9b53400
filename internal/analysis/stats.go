// Package analysis filters the normalized query records and reduces them to
// the grouped counts the dashboard and report render. All reductions are
// pure and total: an empty input yields zero counts and empty groupings.
package analysis

import (
	"sort"
	"time"

	"dnslens/internal/models"
)

// Overview holds the headline metrics row.
type Overview struct {
	Total         int
	Blocked       int
	BlockedPct    float64
	UniqueDomains int
	UniqueClients int
	Cached        int
	CachedPct     float64
}

// CountRow is a generic (key, count) pair used by the distribution views.
type CountRow struct {
	Key   string
	Count int
}

// HourPoint is the per-hour, per-client timeline bucket.
type HourPoint struct {
	Hour   time.Time
	Client string
	Count  int
}

// HourCount is a per-hour total.
type HourCount struct {
	Hour  time.Time
	Count int
}

// ClientStat is one row of the client details table.
type ClientStat struct {
	Client        string
	Total         int
	UniqueDomains int
	Blocked       int
	BlockRate     float64
}

// Summarize computes the overview metrics.
func Summarize(recs []models.Record) Overview {
	o := Overview{Total: len(recs)}
	domains := make(map[string]struct{})
	clients := make(map[string]struct{})
	for _, r := range recs {
		if r.IsFiltered {
			o.Blocked++
		}
		if r.Cached {
			o.Cached++
		}
		domains[r.TopLevelDomain] = struct{}{}
		clients[r.Client] = struct{}{}
	}
	o.UniqueDomains = len(domains)
	o.UniqueClients = len(clients)
	if o.Total > 0 {
		o.BlockedPct = float64(o.Blocked) / float64(o.Total) * 100
		o.CachedPct = float64(o.Cached) / float64(o.Total) * 100
	}
	return o
}

// TopDomains returns the most-queried top-level domains, highest first,
// limited to n.
func TopDomains(recs []models.Record, n int) []CountRow {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.TopLevelDomain]++
	}
	return sortedRows(counts, n)
}

// TopBlockedDomains returns the most-blocked top-level domains.
func TopBlockedDomains(recs []models.Record, n int) []CountRow {
	counts := make(map[string]int)
	for _, r := range recs {
		if r.IsFiltered {
			counts[r.TopLevelDomain]++
		}
	}
	return sortedRows(counts, n)
}

// TopClients returns the most active clients by query count.
func TopClients(recs []models.Record, n int) []CountRow {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.Client]++
	}
	return sortedRows(counts, n)
}

// QueryTypeCounts returns the query type distribution.
func QueryTypeCounts(recs []models.Record) []CountRow {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.QueryType]++
	}
	return sortedRows(counts, 0)
}

// FilterStatusCounts returns the filter status distribution.
func FilterStatusCounts(recs []models.Record) []CountRow {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.FilterStatus]++
	}
	return sortedRows(counts, 0)
}

// QueriesPerHour buckets records by hour and client, ordered by hour then
// client name.
func QueriesPerHour(recs []models.Record) []HourPoint {
	type key struct {
		hour   time.Time
		client string
	}
	counts := make(map[key]int)
	for _, r := range recs {
		counts[key{r.Time.Truncate(time.Hour), r.Client}]++
	}

	points := make([]HourPoint, 0, len(counts))
	for k, c := range counts {
		points = append(points, HourPoint{Hour: k.hour, Client: k.client, Count: c})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Hour.Equal(points[j].Hour) {
			return points[i].Hour.Before(points[j].Hour)
		}
		return points[i].Client < points[j].Client
	})
	return points
}

// BlockedPerHour buckets blocked queries by hour, in time order.
func BlockedPerHour(recs []models.Record) []HourCount {
	counts := make(map[time.Time]int)
	for _, r := range recs {
		if r.IsFiltered {
			counts[r.Time.Truncate(time.Hour)]++
		}
	}
	out := make([]HourCount, 0, len(counts))
	for h, c := range counts {
		out = append(out, HourCount{Hour: h, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour.Before(out[j].Hour) })
	return out
}

// HourOfDayCounts returns query counts per hour of day (index 0-23), using
// the hour in each timestamp's own zone.
func HourOfDayCounts(recs []models.Record) [24]int {
	var buckets [24]int
	for _, r := range recs {
		buckets[r.Time.Hour()]++
	}
	return buckets
}

// ClientBreakdown returns per-client totals, unique domain counts, blocked
// counts, and block rates, most active clients first.
func ClientBreakdown(recs []models.Record) []ClientStat {
	totals := make(map[string]int)
	blocked := make(map[string]int)
	domains := make(map[string]map[string]struct{})
	for _, r := range recs {
		totals[r.Client]++
		if r.IsFiltered {
			blocked[r.Client]++
		}
		if domains[r.Client] == nil {
			domains[r.Client] = make(map[string]struct{})
		}
		domains[r.Client][r.TopLevelDomain] = struct{}{}
	}

	stats := make([]ClientStat, 0, len(totals))
	for client, total := range totals {
		s := ClientStat{
			Client:        client,
			Total:         total,
			UniqueDomains: len(domains[client]),
			Blocked:       blocked[client],
		}
		s.BlockRate = float64(s.Blocked) / float64(s.Total) * 100
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Client < stats[j].Client
	})
	return stats
}

// Clients returns the sorted set of client names in recs.
func Clients(recs []models.Record) []string {
	return uniqueSorted(recs, func(r models.Record) string { return r.Client })
}

// Domains returns the sorted set of top-level domains in recs.
func Domains(recs []models.Record) []string {
	return uniqueSorted(recs, func(r models.Record) string { return r.TopLevelDomain })
}

// QueryTypes returns the sorted set of query types in recs.
func QueryTypes(recs []models.Record) []string {
	return uniqueSorted(recs, func(r models.Record) string { return r.QueryType })
}

func uniqueSorted(recs []models.Record, key func(models.Record) string) []string {
	seen := make(map[string]struct{})
	for _, r := range recs {
		seen[key(r)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortedRows converts a count map to rows sorted by count descending, key
// ascending on ties, limited to n when n > 0.
func sortedRows(counts map[string]int, n int) []CountRow {
	rows := make([]CountRow, 0, len(counts))
	for k, c := range counts {
		rows = append(rows, CountRow{Key: k, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
