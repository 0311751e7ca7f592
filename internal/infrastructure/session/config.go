package session

// Backend selects the session store implementation.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config represents the session store configuration. URI comes from the
// environment, not the yaml document.
type Config struct {
	Backend  string `yaml:"backend"`
	URI      string `yaml:"-"`
	TTLHours int    `yaml:"ttl_in_hours"`
}
