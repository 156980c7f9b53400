package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCachesWithinTTL(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	calls := 0
	l := NewLoader(5*time.Minute, func() (int, error) {
		calls++
		return calls, nil
	})
	l.now = func() time.Time { return now }

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// One nanosecond short of the TTL still serves the cached value.
	now = now.Add(5*time.Minute - time.Nanosecond)
	v, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)
}

func TestGetReloadsAfterTTL(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	calls := 0
	l := NewLoader(5*time.Minute, func() (int, error) {
		calls++
		return calls, nil
	})
	l.now = func() time.Time { return now }

	_, err := l.Get()
	require.NoError(t, err)

	now = now.Add(5 * time.Minute)
	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	calls := 0
	fail := true
	l := NewLoader(time.Hour, func() (string, error) {
		calls++
		if fail {
			return "", errors.New("boom")
		}
		return "ok", nil
	})

	_, err := l.Get()
	require.Error(t, err)

	fail = false
	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	calls := 0
	l := NewLoader(time.Hour, func() (int, error) {
		calls++
		return calls, nil
	})

	_, err := l.Get()
	require.NoError(t, err)
	l.Invalidate()

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
