package normalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"dnslens/internal/models"
)

func TestFilterStatusKnownCodes(t *testing.T) {
	want := map[int]string{
		0: "Not Filtered",
		1: "Blocked by Filter",
		2: "Blocked (Safebrowsing)",
		3: "Blocked by Rule",
		4: "Blocked (Parental)",
		5: "Rewritten",
		6: "Rewritten (Hosts)",
		7: "Rewritten (Safe Search)",
	}
	for code, label := range want {
		r := models.Result{State: models.ResultPresent, Reason: code}
		assert.Equal(t, label, FilterStatus(r), "code %d", code)
	}
}

func TestFilterStatusUnknownCodes(t *testing.T) {
	for _, code := range []int{8, 42, -1} {
		r := models.Result{State: models.ResultPresent, Reason: code}
		assert.Equal(t, fmt.Sprintf("Unknown (%d)", code), FilterStatus(r))
	}
}

func TestFilterStatusAbsentAndMalformed(t *testing.T) {
	assert.Equal(t, "Not Filtered", FilterStatus(models.Result{State: models.ResultAbsent}))
	assert.Equal(t, "Not Filtered", FilterStatus(models.Result{State: models.ResultMalformed}))
}

func TestIsFiltered(t *testing.T) {
	assert.True(t, IsFiltered(models.Result{State: models.ResultPresent, IsFiltered: true}))
	assert.False(t, IsFiltered(models.Result{State: models.ResultPresent, IsFiltered: false}))
	// The flag is ignored unless the result was a structured object.
	assert.False(t, IsFiltered(models.Result{State: models.ResultAbsent, IsFiltered: true}))
	assert.False(t, IsFiltered(models.Result{State: models.ResultMalformed, IsFiltered: true}))
}
