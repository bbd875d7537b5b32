package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/localekit/config"
)

type testConfig struct {
	DefaultLocale string   `env:"TEST_DEFAULT_LOCALE" envDefault:"en"`
	Locales       []string `env:"TEST_LOCALES" envSeparator:","`
	Retries       int      `env:"TEST_RETRIES" envDefault:"1"`
}

type requiredConfig struct {
	Endpoint string `env:"TEST_ENDPOINT,required"`
}

func TestLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Run("reads environment with defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_LOCALES", "en,de,fr")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.DefaultLocale)
		assert.Equal(t, []string{"en", "de", "fr"}, cfg.Locales)
		assert.Equal(t, 1, cfg.Retries)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_DEFAULT_LOCALE", "de")

		var first testConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "de", first.DefaultLocale)

		// Environment changes after the first parse are not observed.
		t.Setenv("TEST_DEFAULT_LOCALE", "fr")
		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "de", second.DefaultLocale)
	})

	t.Run("reset clears the cache", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_DEFAULT_LOCALE", "de")

		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_DEFAULT_LOCALE", "fr")
		config.Reset()

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "fr", second.DefaultLocale)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_ENDPOINT")

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Run("returns config on success", func(t *testing.T) {
		config.Reset()
		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "en", cfg.DefaultLocale)
	})

	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_ENDPOINT")

		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Run("loads files into the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("TEST_FROM_FILE=yes\n"), 0o644))
		t.Setenv("TEST_FROM_FILE", "")
		os.Unsetenv("TEST_FROM_FILE")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "yes", os.Getenv("TEST_FROM_FILE"))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		err := config.LoadEnv("does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
