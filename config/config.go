package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vidvault/internal/infrastructure/metadata"
	"vidvault/internal/infrastructure/session"
	"vidvault/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment string          `yaml:"environment"`
	HTTP        HTTP            `yaml:"http"`
	Storage     Storage         `yaml:"storage"`
	Metadata    metadata.Config `yaml:"metadata"`
	Session     session.Config  `yaml:"session"`
	Logger      logger.Config   `yaml:"logger"`
}

// HTTP holds the server listen settings.
type HTTP struct {
	Address string `yaml:"address"`
}

// Storage holds the on-disk layout of the data directory.
type Storage struct {
	BlobDir   string `yaml:"blob_dir"`
	UsersPath string `yaml:"users_path"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.Metadata.URI = os.Getenv("DATABASE_URI")
	config.Session.URI = os.Getenv("SESSION_REDIS_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTP.Address == "" {
		return fmt.Errorf("http.address is required")
	}

	if c.Storage.BlobDir == "" {
		return fmt.Errorf("storage.blob_dir is required")
	}

	if c.Storage.UsersPath == "" {
		return fmt.Errorf("storage.users_path is required")
	}

	switch c.Metadata.Backend {
	case metadata.BackendFile:
		if c.Metadata.Path == "" {
			return fmt.Errorf("metadata.path is required for the file backend")
		}
	case metadata.BackendMongo:
		if c.Metadata.URI == "" {
			return fmt.Errorf("DATABASE_URI is required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown metadata backend: %q", c.Metadata.Backend)
	}

	switch c.Session.Backend {
	case session.BackendMemory:
	case session.BackendRedis:
		if c.Session.URI == "" {
			return fmt.Errorf("SESSION_REDIS_URI is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown session backend: %q", c.Session.Backend)
	}

	return nil
}
