package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopLevelDomain(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"", ""},
		{"localhost", "localhost"},
		{"NAS", "NAS"}, // single label passes through unchanged
		{"google.com", "google.com"},
		{"GOOGLE.COM", "google.com"},
		{"www.google.com", "google.com"},
		{"accounts.google.com", "google.com"},
		{"staticcdn.duckduckgo.com", "duckduckgo.com"},
		{"www.willhaben.at", "willhaben.at"},
		{"mail.staff.co.uk", "staff.co.uk"},
		{"a.b.mail.staff.co.uk", "staff.co.uk"},
		{"shop.example.com.au", "example.com.au"},
		{"epdg.epc.mnc001.mcc232.pub.3gppnetwork.org", "pub.3gppnetwork.org"},
		// A bare multi-part suffix stays two labels; the table only
		// applies from three labels up.
		{"co.uk", "co.uk"},
		{"cdn.internal", "cdn.internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TopLevelDomain(tt.host), "host %q", tt.host)
	}
}
