package namesource

import (
	"errors"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config contains the shared configuration for name sources.
type Config struct {
	// Dir is the directory generated names point into. Empty means the
	// operating system default temporary directory.
	Dir string `env:"TMPNAM_DIR"`

	// Prefix is prepended to every generated name. It is sanitized before
	// use; see SanitizePrefix.
	Prefix string `env:"TMPNAM_PREFIX" envDefault:"tmp"`

	// VerifyDir makes sources stat the directory on every generation and
	// fail with the underlying OS error when it is unavailable.
	VerifyDir bool `env:"TMPNAM_VERIFY_DIR" envDefault:"false"`
}

// Load reads source configuration from environment variables. Values are
// re-read on every call so tests can adjust the environment between calls.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToParseConfig, err)
	}
	return cfg, nil
}
