package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// ResultState distinguishes the three shapes a query log Result field can
// take on the wire: missing/null, present but not a JSON object, or a
// structured outcome.
type ResultState int

const (
	ResultAbsent ResultState = iota
	ResultMalformed
	ResultPresent
)

// Result is the filtering outcome attached to a query log entry.
// Reason and IsFiltered are only meaningful when State is ResultPresent.
type Result struct {
	State      ResultState
	Reason     int
	IsFiltered bool
}

// UnmarshalJSON never fails: a null value decodes as absent and anything
// that is not a JSON object decodes as malformed, so a bad Result field
// does not cost us the whole log line.
func (r *Result) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		r.State = ResultAbsent
		return nil
	}
	var raw struct {
		Reason     *int `json:"Reason"`
		IsFiltered bool `json:"IsFiltered"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		r.State = ResultMalformed
		return nil
	}
	r.State = ResultPresent
	if raw.Reason != nil {
		r.Reason = *raw.Reason
	}
	r.IsFiltered = raw.IsFiltered
	return nil
}

// QueryRecord is one line of the resolver's query log. The short JSON keys
// match the on-disk format.
type QueryRecord struct {
	Time      time.Time `json:"T"`
	ClientIP  string    `json:"IP"`
	Host      string    `json:"QH"`
	QueryType string    `json:"QT"`
	Result    Result    `json:"Result"`
	Upstream  string    `json:"Upstream"`
	Cached    bool      `json:"Cached"`
}

// Record is a query record enriched with the derived fields the dashboard
// filters and groups on.
type Record struct {
	QueryRecord

	Client         string // lease hostname when known, raw IP otherwise
	TopLevelDomain string
	FilterStatus   string
	IsFiltered     bool
}
