package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidvault/internal/infrastructure/metadata"
	"vidvault/internal/infrastructure/session"
)

func TestLoadfromFile(t *testing.T) {
	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Address)
	assert.Equal(t, metadata.BackendFile, cfg.Metadata.Backend)
	assert.Equal(t, session.BackendMemory, cfg.Session.Backend)
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./no-such-config.yml")
	require.Error(t, err)
}

func TestBasicCheck(t *testing.T) {
	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		return path
	}

	t.Run("unknown metadata backend", func(t *testing.T) {
		path := write(t, `
environment: prod
http:
  address: ":8000"
storage:
  blob_dir: "./uploads"
  users_path: "./users.json"
metadata:
  backend: "postgres"
session:
  backend: "memory"
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown metadata backend")
	})

	t.Run("missing address", func(t *testing.T) {
		path := write(t, `
environment: prod
storage:
  blob_dir: "./uploads"
  users_path: "./users.json"
metadata:
  backend: "file"
  path: "./videos.json"
session:
  backend: "memory"
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http.address")
	})
}
