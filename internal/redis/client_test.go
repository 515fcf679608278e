package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ordem-api/internal/errors"
	"github.com/KirkDiggler/ordem-api/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClusterClient(nil, nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.Connect(context.Background(), " "+mr.Addr()+" ,", nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	stored, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", stored)
}

func TestConnectUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redis.Connect(context.Background(), addr, &redis.Options{MaxRetries: -1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestConnectEmpty(t *testing.T) {
	_, err := redis.Connect(context.Background(), " , ", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
