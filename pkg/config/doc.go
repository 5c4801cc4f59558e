// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so repeated calls do not re-parse.
//   - MustLoad and MustLoadEnv panic instead of returning an error, for
//     configuration a tool cannot start without.
//   - ResetCache clears the cache, which tests use between cases.
//
// # Usage
//
//	type Config struct {
//	    SeedFile string `env:"SEED_FILE"`
//	    AppEnv   string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap sentinels comparable with errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrLoadingEnvFile and ErrNilPointer.
package config
