package leases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLeases(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leases.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeLeases(t, `{"leases":[
		{"ip":"192.168.1.10","hostname":"laptop"},
		{"ip":"192.168.1.20","hostname":"phone"}
	]}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"192.168.1.10": "laptop",
		"192.168.1.20": "phone",
	}, m)
}

func TestLoadDropsIncompleteEntries(t *testing.T) {
	path := writeLeases(t, `{"leases":[
		{"ip":"192.168.1.10","hostname":"laptop"},
		{"ip":"192.168.1.30"},
		{"hostname":"ghost"},
		{"ip":"","hostname":"blank"}
	]}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"192.168.1.10": "laptop"}, m)
}

func TestLoadLastWriteWins(t *testing.T) {
	path := writeLeases(t, `{"leases":[
		{"ip":"192.168.1.10","hostname":"old-name"},
		{"ip":"192.168.1.10","hostname":"new-name"}
	]}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "new-name", m["192.168.1.10"])
}

func TestLoadEmptyDocument(t *testing.T) {
	m, err := Load(writeLeases(t, `{}`))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
