// Package testutils holds shared test helpers: an in-memory Redis and a
// scripted dice roller.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ordem-api/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis for the test and returns a
// client connected to it. Both are closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()
	return CreateTestRedisClientWithSetup(t, nil)
}

// CreateTestRedisClientWithSetup lets the test seed the server before the
// client connects
func CreateTestRedisClientWithSetup(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	if setupFunc != nil {
		setupFunc(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
