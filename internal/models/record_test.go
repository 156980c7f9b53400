package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Result
	}{
		{"null", `null`, Result{State: ResultAbsent}},
		{"empty object", `{}`, Result{State: ResultPresent}},
		{"outcome", `{"Reason":3,"IsFiltered":true}`, Result{State: ResultPresent, Reason: 3, IsFiltered: true}},
		{"missing reason", `{"IsFiltered":true}`, Result{State: ResultPresent, IsFiltered: true}},
		{"non-object", `"blocked"`, Result{State: ResultMalformed}},
		{"number", `7`, Result{State: ResultMalformed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Result
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestQueryRecordMissingResult(t *testing.T) {
	var q QueryRecord
	line := `{"T":"2026-08-26T10:15:00.123456789+02:00","IP":"192.168.1.10","QH":"example.com","QT":"A","Upstream":"1.1.1.1:53"}`
	require.NoError(t, json.Unmarshal([]byte(line), &q))

	assert.Equal(t, ResultAbsent, q.Result.State)
	assert.Equal(t, "192.168.1.10", q.ClientIP)
	assert.Equal(t, 2026, q.Time.Year())
	assert.False(t, q.Cached)
}
