package metadata

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

const (
	mongoImage    = "mongo:latest"
	mongoUser     = "testuser"
	mongoPassword = "testpass"
	mongoDBName   = "testdb"
)

func setupMongoStore(t *testing.T) *MongoStore {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        mongoImage,
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": mongoUser,
			"MONGO_INITDB_ROOT_PASSWORD": mongoPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mongoC.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate mongo container: %v", err)
		}
	})

	endpoint, err := mongoC.Endpoint(ctx, "")
	require.NoError(t, err)

	store, err := ConnectMongo(Config{
		Backend:           BackendMongo,
		URI:               fmt.Sprintf("mongodb://%s:%s@%s", mongoUser, mongoPassword, endpoint),
		DBName:            mongoDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := store.Stop(); err != nil {
			t.Errorf("failed to stop mongo store: %v", err)
		}
	})

	return store
}

func TestMongoStoreContract_Integration(t *testing.T) {
	s := setupMongoStore(t)
	ctx := context.Background()

	stored, err := s.Insert(ctx, newVideo("v1", "u1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Seq)

	_, err = s.Insert(ctx, newVideo("v1", "u2"))
	assert.ErrorIs(t, err, entity.ErrDuplicate)

	got, err := s.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.OwnerID)

	_, err = s.Insert(ctx, newVideo("v2", "u2"))
	require.NoError(t, err)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "v1", all[0].ID)
	assert.Equal(t, "v2", all[1].ID)

	require.NoError(t, s.RemoveByID(ctx, "v1"))
	assert.ErrorIs(t, s.RemoveByID(ctx, "v1"), entity.ErrNotFound)

	_, err = s.GetByID(ctx, "v1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
