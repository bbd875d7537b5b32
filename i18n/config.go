package i18n

import (
	"time"
)

// Config carries the runtime's environment-driven settings. Load it
// with the config package:
//
//	var cfg i18n.Config
//	config.MustLoad(&cfg)
//	provider, err := i18n.New(cfg)
type Config struct {
	DefaultLocale string        `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`
	Locales       []string      `env:"I18N_LOCALES" envDefault:"en"`
	Dir           string        `env:"I18N_DIR" envDefault:"./translations"`
	CookieName    string        `env:"I18N_COOKIE_NAME" envDefault:"lang"`
	Retries       int           `env:"I18N_RETRIES" envDefault:"1"`
	RetryDelay    time.Duration `env:"I18N_RETRY_DELAY" envDefault:"100ms"`
	DevMode       bool          `env:"I18N_DEV_MODE" envDefault:"false"`
}

// New wires a directory-backed loader and provider from configuration.
// Additional options are applied after the configuration-derived ones.
func New(cfg Config, opts ...Option) (*Provider, error) {
	loader, err := NewLoader(
		NewDirSource(cfg.Dir),
		cfg.DefaultLocale,
		WithRetries(cfg.Retries),
		WithRetryDelay(cfg.RetryDelay),
	)
	if err != nil {
		return nil, err
	}
	return NewProvider(loader, cfg.Locales, append([]Option{WithDevMode(cfg.DevMode)}, opts...)...)
}
