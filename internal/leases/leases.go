// Package leases reads the DHCP lease file and exposes it as an
// IP-to-hostname lookup table.
package leases

import (
	"encoding/json"
	"fmt"
	"os"
)

type leaseFile struct {
	Leases []struct {
		IP       string `json:"ip"`
		Hostname string `json:"hostname"`
	} `json:"leases"`
}

// Load reads the lease file at path and returns the IP to hostname mapping.
// Entries missing either field are dropped; duplicate IPs resolve to the
// last entry in the file. The returned map is never mutated after Load.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening lease file: %w", err)
	}

	var lf leaseFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing lease file: %w", err)
	}

	m := make(map[string]string, len(lf.Leases))
	for _, l := range lf.Leases {
		if l.IP == "" || l.Hostname == "" {
			continue
		}
		m[l.IP] = l.Hostname
	}
	return m, nil
}
