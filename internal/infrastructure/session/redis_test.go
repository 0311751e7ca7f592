package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"vidvault/internal/domain/entity"
)

const redisImage = "redis:7-alpine"

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := redisC.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := redisC.Endpoint(ctx, "")
	require.NoError(t, err)

	store, err := NewRedisStore(Config{
		Backend:  BackendRedis,
		URI:      fmt.Sprintf("redis://%s", endpoint),
		TTLHours: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close redis store: %v", err)
		}
	})

	return store
}

func TestRedisStoreLifecycle_Integration(t *testing.T) {
	s := setupRedisStore(t)
	ctx := context.Background()

	token, err := s.Create(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	require.NoError(t, s.Delete(ctx, token))

	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
