package analysis

import (
	"time"

	"dnslens/internal/models"
)

// StatusFilter is the tri-state filtered/not-filtered selector.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusFilteredOnly
	StatusNotFilteredOnly
)

// Filter holds the dashboard's sidebar selections. Every predicate is
// independent and a zero value means "no restriction", so the zero Filter is
// the identity.
type Filter struct {
	// Since keeps records at or after an absolute instant (quick presets).
	Since time.Time
	// FromDate/ToDate keep records whose calendar date falls in the
	// inclusive range (custom preset). Both must be set to take effect.
	FromDate time.Time
	ToDate   time.Time

	Clients    map[string]bool
	Domains    map[string]bool
	QueryTypes map[string]bool

	Status StatusFilter
}

// Match reports whether a record passes every active predicate.
func (f Filter) Match(r models.Record) bool {
	if !f.Since.IsZero() && r.Time.Before(f.Since) {
		return false
	}
	if !f.FromDate.IsZero() && !f.ToDate.IsZero() {
		d := dateOf(r.Time)
		if d.Before(dateOf(f.FromDate)) || d.After(dateOf(f.ToDate)) {
			return false
		}
	}
	if len(f.Clients) > 0 && !f.Clients[r.Client] {
		return false
	}
	if len(f.Domains) > 0 && !f.Domains[r.TopLevelDomain] {
		return false
	}
	if len(f.QueryTypes) > 0 && !f.QueryTypes[r.QueryType] {
		return false
	}
	switch f.Status {
	case StatusFilteredOnly:
		return r.IsFiltered
	case StatusNotFilteredOnly:
		return !r.IsFiltered
	}
	return true
}

// Apply narrows recs to the records matching f, preserving order.
func Apply(recs []models.Record, f Filter) []models.Record {
	out := make([]models.Record, 0, len(recs))
	for _, r := range recs {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// dateOf truncates t to its calendar date, keeping the location so date
// comparisons follow the timestamps' own zone.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
