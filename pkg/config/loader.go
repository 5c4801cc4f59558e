package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	global = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its `env` struct tags.
//
// The first call loads a .env file from the working directory if one exists.
// Each configuration type is parsed once; later calls for the same type copy
// the cached value.
//
//	type Config struct {
//		SeedFile string `env:"SEED_FILE,required"`
//		AppEnv   string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()
	if key.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, key)
	}

	global.mu.RLock()
	cached, ok := global.values[key]
	global.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment. Later
// files override earlier ones and the files override variables already set.
// Cached configurations are dropped so the next Load sees the new values.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	ResetCache()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[reflect.Type]any)
}
