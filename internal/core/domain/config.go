package domain

import "time"

// Config is the resolved client configuration.
type Config struct {
	// APIURL is the base URL of the Analysis Service, including the /api path.
	APIURL string
	// StaleTime is how long a fetched entry stays fresh without invalidation.
	StaleTime time.Duration
	// PollInterval is the analysis progress refetch interval.
	PollInterval time.Duration
	// StatusInterval is the system status refetch interval.
	StatusInterval time.Duration
	// LogFormat is "text" or "json".
	LogFormat string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// ExportDir is where downloaded exports are written.
	ExportDir string
}

// Configuration defaults.
const (
	DefaultAPIURL         = "http://localhost:5000/api"
	DefaultStaleTime      = 5 * time.Minute
	DefaultPollInterval   = 2 * time.Second
	DefaultStatusInterval = 30 * time.Second
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		StaleTime:      DefaultStaleTime,
		PollInterval:   DefaultPollInterval,
		StatusInterval: DefaultStatusInterval,
		LogFormat:      "text",
		LogLevel:       "info",
		ExportDir:      ".",
	}
}

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "screener.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SCREENER"
	// ConfigPathEnv names an explicit configuration file.
	ConfigPathEnv = "SCREENER_CONFIG"
)

const (
	// DirPerm is the permission of directories created for exports.
	DirPerm = 0o750
	// FilePerm is the permission of written export files.
	FilePerm = 0o644
)
