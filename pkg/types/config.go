package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "recipe-finder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SourceConfig holds settings for the remote recipe source client.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root without the key segment
	// (default "https://www.themealdb.com/api/json/v1").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is the path key appended to BaseURL (default "1", the public test key).
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// Endpoint returns the API root including the key segment.
func (c SourceConfig) Endpoint() string {
	key := c.APIKey
	if key == "" {
		key = DefaultAPIKey
	}
	return c.BaseURL + "/" + key
}

// StorageBackend selects where the favorites set is persisted.
type StorageBackend string

const (
	StorageFile   StorageBackend = "file"
	StorageSQLite StorageBackend = "sqlite"
	StorageMemory StorageBackend = "memory"
)

// FavoritesConfig holds settings for the favorites store.
type FavoritesConfig struct {
	// Backend selects the storage backend: file, sqlite, or memory.
	Backend StorageBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// DataDir is the directory holding recipe-favorites.json or favorites.db.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// Config groups all runtime configuration.
type Config struct {
	Source    SourceConfig    `json:"source" yaml:"source" mapstructure:"source"`
	Favorites FavoritesConfig `json:"favorites" yaml:"favorites" mapstructure:"favorites"`
}

const (
	DefaultBaseURL   = "https://www.themealdb.com/api/json/v1"
	DefaultAPIKey    = "1"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "recipe-finder/0.1"
	DefaultDataDir   = ".recipe-finder"
)

// DefaultConfig returns the configuration used when no file, flag, or
// environment variable overrides a setting.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			BaseURL: DefaultBaseURL,
			APIKey:  DefaultAPIKey,
		},
		Favorites: FavoritesConfig{
			Backend: StorageFile,
			DataDir: DefaultDataDir,
		},
	}
}
