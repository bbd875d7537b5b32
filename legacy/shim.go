package legacy

import (
	"context"
	"io"
	"log/slog"

	"github.com/planora/localekit/i18n"
)

// Detection is a detected language with the service's confidence.
type Detection struct {
	Language   string
	Confidence float64
}

// Translation is a one-off content translation with quality metadata.
type Translation struct {
	Text           string
	SourceLanguage string
	Confidence     float64
}

// Client is the external language-detection and content-translation
// service the help widget talks to. It is consumed as a black box; any
// failure is absorbed by the shim.
type Client interface {
	Detect(ctx context.Context, text string) (Detection, error)
	Translate(ctx context.Context, text, targetLocale string) (Translation, error)
}

// Shim preserves the old language API surface by delegating to the
// provider, keeping no locale state of its own. Detection and
// translation results are memoized in bounded LRU caches, and every
// collaborator failure degrades to a nil result rather than an error.
type Shim struct {
	provider     *i18n.Provider
	client       Client
	detections   *lruCache[string, Detection]
	translations *lruCache[string, string]
	logger       *slog.Logger
}

// Option configures a Shim instance.
type Option func(*Shim)

// WithCacheSize bounds the detection and translation result caches.
// Default is 256 entries each.
func WithCacheSize(n int) Option {
	return func(s *Shim) {
		if n > 0 {
			s.detections = newLRUCache[string, Detection](n)
			s.translations = newLRUCache[string, string](n)
		}
	}
}

// WithLogger provides a logger for collaborator failures. If not
// specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shim) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewShim creates the compatibility facade over the provider. client
// may be nil, in which case detection and content translation always
// return nil.
func NewShim(provider *i18n.Provider, client Client, opts ...Option) *Shim {
	s := &Shim{
		provider:     provider,
		client:       client,
		detections:   newLRUCache[string, Detection](256),
		translations: newLRUCache[string, string](256),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Languages returns the supported locale codes.
func (s *Shim) Languages() []string {
	return s.provider.Locales()
}

// CurrentLanguage returns the active locale.
func (s *Shim) CurrentLanguage() string {
	return s.provider.Locale()
}

// SetLanguage switches the active locale. Returns false for locales
// outside the supported set, matching the old API's contract.
func (s *Shim) SetLanguage(ctx context.Context, code string) bool {
	return s.provider.SetLocale(ctx, code)
}

// DetectLanguage identifies the language of arbitrary text via the
// external service. Returns nil, never an error, when the service is
// unavailable or fails.
func (s *Shim) DetectLanguage(ctx context.Context, text string) *Detection {
	if s.client == nil || text == "" {
		return nil
	}
	if cached, ok := s.detections.get(text); ok {
		return &cached
	}

	detection, err := s.client.Detect(ctx, text)
	if err != nil {
		s.logger.DebugContext(ctx, "language detection failed", "error", err)
		return nil
	}
	s.detections.put(text, detection)
	return &detection
}

// TranslateContent translates arbitrary text (as opposed to a static
// dictionary key) into the target locale via the external service.
// Returns nil, never an error, on any failure.
func (s *Shim) TranslateContent(ctx context.Context, text, targetLocale string) *string {
	if s.client == nil || text == "" {
		return nil
	}
	cacheKey := targetLocale + "\x00" + text
	if cached, ok := s.translations.get(cacheKey); ok {
		return &cached
	}

	translation, err := s.client.Translate(ctx, text, targetLocale)
	if err != nil {
		s.logger.DebugContext(ctx, "content translation failed", "target", targetLocale, "error", err)
		return nil
	}
	s.translations.put(cacheKey, translation.Text)
	return &translation.Text
}
