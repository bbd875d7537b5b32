package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed copy per configuration type so the
// environment is only read once per type for the process lifetime.
var cache = struct {
	mu     sync.RWMutex
	values map[string]any
}{values: make(map[string]any)}

var defaultEnvLoaded sync.Once

// LoadEnv loads the given .env files into the process environment
// before parsing. Missing files are an error here, unlike the implicit
// default .env which is best-effort.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from environment variables using `env` struct tags.
// Each configuration type is parsed once and cached; later calls for
// the same type return the cached copy.
//
//	type Config struct {
//		DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The default .env may not exist; that's fine.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cache.mu.RLock()
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		cache.mu.RUnlock()
		return nil
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	defer cache.mu.Unlock()
	// Re-check: another goroutine may have parsed while we waited.
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration
// the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reset clears the configuration cache. Intended for tests that vary
// the environment between cases.
func Reset() {
	cache.mu.Lock()
	cache.values = make(map[string]any)
	cache.mu.Unlock()
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.Name()
}
