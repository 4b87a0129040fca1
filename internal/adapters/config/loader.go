// Package config provides the configuration loader for screener.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader. Values are layered: defaults, then
// screener.yaml, then the environment (a .env file included).
type Loader struct {
	Logger ports.Logger
	// Dir is where the search for screener.yaml and .env starts.
	Dir string
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader rooted at dir.
func NewLoader(logger ports.Logger, dir string) *Loader {
	return &Loader{Logger: logger, Dir: dir}
}

// Settings is the on-disk and environment shape of the configuration.
type Settings struct {
	APIURL         string        `yaml:"api_url"         envconfig:"API_URL"         validate:"required,url"`
	StaleTime      time.Duration `yaml:"stale_time"      envconfig:"STALE_TIME"      validate:"gte=0"`
	PollInterval   time.Duration `yaml:"poll_interval"   envconfig:"POLL_INTERVAL"   validate:"gt=0"`
	StatusInterval time.Duration `yaml:"status_interval" envconfig:"STATUS_INTERVAL" validate:"gt=0"`
	LogFormat      string        `yaml:"log_format"      envconfig:"LOG_FORMAT"      validate:"oneof=text json"`
	LogLevel       string        `yaml:"log_level"       envconfig:"LOG_LEVEL"       validate:"oneof=debug info warn error"`
	ExportDir      string        `yaml:"export_dir"      envconfig:"EXPORT_DIR"      validate:"required"`
}

// Load resolves the configuration.
func (l *Loader) Load() (*domain.Config, error) {
	s := fromDomain(domain.DefaultConfig())

	path, err := l.findConfiguration()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := readAndUnmarshalYAML(path, &s); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		l.debug("loaded config file", "path", path)
	}

	envFile := filepath.Join(l.Dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to load env file"), "path", envFile)
	}

	if err := envconfig.Process(domain.EnvPrefix, &s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	}

	if err := validator.New().Struct(s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	}

	return s.toDomain(), nil
}

// findConfiguration returns the explicit file named by SCREENER_CONFIG, or the
// nearest screener.yaml walking up from Dir. An empty path means none exists.
func (l *Loader) findConfiguration() (string, error) {
	if explicit := os.Getenv(domain.ConfigPathEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", explicit)
		}
		return explicit, nil
	}

	currentDir := l.Dir
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) debug(msg string, args ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, args...)
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func fromDomain(c *domain.Config) Settings {
	return Settings{
		APIURL:         c.APIURL,
		StaleTime:      c.StaleTime,
		PollInterval:   c.PollInterval,
		StatusInterval: c.StatusInterval,
		LogFormat:      c.LogFormat,
		LogLevel:       c.LogLevel,
		ExportDir:      c.ExportDir,
	}
}

func (s Settings) toDomain() *domain.Config {
	return &domain.Config{
		APIURL:         s.APIURL,
		StaleTime:      s.StaleTime,
		PollInterval:   s.PollInterval,
		StatusInterval: s.StatusInterval,
		LogFormat:      s.LogFormat,
		LogLevel:       s.LogLevel,
		ExportDir:      s.ExportDir,
	}
}
