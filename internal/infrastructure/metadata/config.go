package metadata

// Backend selects the metadata store implementation.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

// Config represents the metadata store configuration.
type Config struct {
	Backend string `yaml:"backend"`
	// Path of the JSON document, used by the file backend.
	Path string `yaml:"path"`
	// Mongo settings, used by the mongo backend. URI comes from the
	// environment, not the yaml document.
	URI               string `yaml:"-"`
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int    `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int    `yaml:"query_timeout_in_ms"`
}
