package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dnslens/internal/models"
)

func mkRecord(ts time.Time, client, domain, qtype string, filtered bool) models.Record {
	return models.Record{
		QueryRecord:    models.QueryRecord{Time: ts, QueryType: qtype},
		Client:         client,
		TopLevelDomain: domain,
		IsFiltered:     filtered,
	}
}

func sampleRecords() []models.Record {
	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	return []models.Record{
		mkRecord(base, "laptop", "google.com", "A", false),
		mkRecord(base.Add(time.Hour), "phone", "ads.example.com", "AAAA", true),
		mkRecord(base.Add(26*time.Hour), "laptop", "github.com", "HTTPS", false),
		mkRecord(base.Add(27*time.Hour), "tv", "tracker.net", "A", true),
	}
}

func TestApplyZeroFilterIsIdentity(t *testing.T) {
	recs := sampleRecords()
	assert.Equal(t, recs, Apply(recs, Filter{}))
}

func TestApplyEmptySelectionsAreIdentity(t *testing.T) {
	recs := sampleRecords()
	f := Filter{
		Clients:    map[string]bool{},
		Domains:    map[string]bool{},
		QueryTypes: map[string]bool{},
		Status:     StatusAll,
	}
	assert.Equal(t, recs, Apply(recs, f))
}

func TestApplySince(t *testing.T) {
	recs := sampleRecords()
	cutoff := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	got := Apply(recs, Filter{Since: cutoff})
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.False(t, r.Time.Before(cutoff))
	}
}

func TestApplyDateRangeInclusive(t *testing.T) {
	recs := sampleRecords()
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	got := Apply(recs, Filter{FromDate: day, ToDate: day})
	assert.Len(t, got, 2)

	// Records at any time on the boundary dates are kept.
	got = Apply(recs, Filter{FromDate: day, ToDate: day.AddDate(0, 0, 1)})
	assert.Len(t, got, 4)
}

func TestApplySetPredicates(t *testing.T) {
	recs := sampleRecords()

	got := Apply(recs, Filter{Clients: map[string]bool{"laptop": true}})
	assert.Len(t, got, 2)

	got = Apply(recs, Filter{Domains: map[string]bool{"tracker.net": true}})
	assert.Len(t, got, 1)
	assert.Equal(t, "tv", got[0].Client)

	got = Apply(recs, Filter{QueryTypes: map[string]bool{"A": true, "AAAA": true}})
	assert.Len(t, got, 3)
}

func TestApplyStatusTriState(t *testing.T) {
	recs := sampleRecords()

	assert.Len(t, Apply(recs, Filter{Status: StatusAll}), 4)

	filtered := Apply(recs, Filter{Status: StatusFilteredOnly})
	assert.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.True(t, r.IsFiltered)
	}

	clean := Apply(recs, Filter{Status: StatusNotFilteredOnly})
	assert.Len(t, clean, 2)
	for _, r := range clean {
		assert.False(t, r.IsFiltered)
	}
}

func TestApplyPredicatesCompose(t *testing.T) {
	recs := sampleRecords()
	f := Filter{
		Clients:    map[string]bool{"laptop": true, "phone": true},
		QueryTypes: map[string]bool{"AAAA": true},
		Status:     StatusFilteredOnly,
	}
	got := Apply(recs, f)
	assert.Len(t, got, 1)
	assert.Equal(t, "phone", got[0].Client)
}

func TestApplyPreservesOrder(t *testing.T) {
	recs := sampleRecords()
	got := Apply(recs, Filter{Clients: map[string]bool{"laptop": true, "tv": true}})
	assert.Equal(t, []string{"laptop", "laptop", "tv"},
		[]string{got[0].Client, got[1].Client, got[2].Client})
}
