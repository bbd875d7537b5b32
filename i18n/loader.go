package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadState tracks the lifecycle of a cached dictionary.
type LoadState int

const (
	StateUnloaded LoadState = iota
	StateLoading
	StateLoaded
	StateError
)

// String returns the state name for logging.
func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unloaded"
	}
}

type cacheEntry struct {
	state     LoadState
	dict      Dictionary
	err       error
	permanent bool
}

// Loader fetches locale dictionaries through a Source and caches them
// for the lifetime of the loader. Transient failures are retried a
// bounded number of times; parse failures and unknown locales are
// permanent and never re-fetched. Concurrent loads of the same locale
// share a single fetch.
//
// The cache is owned by the loader instance, not process-global, so
// isolated loaders can coexist (one per test, one per tenant).
type Loader struct {
	source        Source
	defaultLocale string
	retries       int
	retryDelay    time.Duration
	logger        *slog.Logger

	mu      sync.RWMutex
	entries map[string]*cacheEntry
	group   singleflight.Group
}

// LoaderOption configures a Loader instance.
type LoaderOption func(*Loader)

// WithRetries sets how many times a transient fetch failure is retried
// before falling back. Default is 1.
func WithRetries(n int) LoaderOption {
	return func(l *Loader) {
		if n >= 0 {
			l.retries = n
		}
	}
}

// WithRetryDelay sets the pause between retry attempts.
func WithRetryDelay(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d >= 0 {
			l.retryDelay = d
		}
	}
}

// WithLoaderLogger provides a logger for load diagnostics. If not
// specified, a discard logger is used.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader reading from source. defaultLocale names
// the reference dictionary used as fallback when another locale fails
// to load.
func NewLoader(source Source, defaultLocale string, opts ...LoaderOption) (*Loader, error) {
	if source == nil {
		return nil, ErrNoSource
	}
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	l := &Loader{
		source:        source,
		defaultLocale: defaultLocale,
		retries:       1,
		retryDelay:    100 * time.Millisecond,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		entries:       make(map[string]*cacheEntry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// DefaultLocale returns the loader's fallback locale.
func (l *Loader) DefaultLocale() string {
	return l.defaultLocale
}

// Load returns the locale's dictionary, fetching and caching it on
// first use. On failure it returns the default locale's dictionary (or
// an empty one) together with the error, so callers can always render.
func (l *Loader) Load(ctx context.Context, locale string) (Dictionary, error) {
	l.mu.RLock()
	if e, ok := l.entries[locale]; ok {
		switch {
		case e.state == StateLoaded:
			dict := e.dict
			l.mu.RUnlock()
			return dict, nil
		case e.state == StateError && e.permanent:
			err := e.err
			l.mu.RUnlock()
			return l.Fallback(ctx, locale), err
		}
	}
	l.mu.RUnlock()

	v, err, _ := l.group.Do(locale, func() (any, error) {
		// A concurrent caller may have completed while this one was
		// queued behind the flight group.
		l.mu.RLock()
		if e, ok := l.entries[locale]; ok && e.state == StateLoaded {
			dict := e.dict
			l.mu.RUnlock()
			return dict, nil
		}
		l.mu.RUnlock()
		return l.fetch(ctx, locale)
	})
	if err != nil {
		return l.Fallback(ctx, locale), err
	}
	return v.(Dictionary), nil
}

// fetch performs the source round-trips for one locale and records the
// resulting cache entry.
func (l *Loader) fetch(ctx context.Context, locale string) (Dictionary, error) {
	l.setState(locale, &cacheEntry{state: StateLoading})

	var lastErr error
	for attempt := 0; attempt <= l.retries; attempt++ {
		dict, err := l.source.Fetch(ctx, locale)
		if err == nil {
			l.setState(locale, &cacheEntry{state: StateLoaded, dict: dict})
			l.logger.DebugContext(ctx, "dictionary loaded", "locale", locale, "attempt", attempt+1)
			return dict, nil
		}
		lastErr = err

		if isPermanent(err) {
			l.setState(locale, &cacheEntry{state: StateError, err: err, permanent: true})
			l.logger.WarnContext(ctx, "dictionary unusable", "locale", locale, "error", err)
			return nil, err
		}
		if ctx.Err() != nil {
			break
		}
		if attempt < l.retries && l.retryDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(l.retryDelay):
			}
		}
	}

	l.setState(locale, &cacheEntry{state: StateError, err: lastErr})
	l.logger.WarnContext(ctx, "dictionary load failed", "locale", locale, "error", lastErr)
	return nil, lastErr
}

// Fallback returns the best renderable dictionary for a locale that
// failed to load: the default locale's dictionary if it is (or can be
// made) available, otherwise an empty one.
func (l *Loader) Fallback(ctx context.Context, locale string) Dictionary {
	if locale == l.defaultLocale {
		return Dictionary{}
	}
	if dict, ok := l.Cached(l.defaultLocale); ok {
		return dict
	}
	dict, err := l.Load(ctx, l.defaultLocale)
	if err != nil {
		return Dictionary{}
	}
	return dict
}

// Cached returns the locale's dictionary without triggering a fetch.
func (l *Loader) Cached(locale string) (Dictionary, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if e, ok := l.entries[locale]; ok && e.state == StateLoaded {
		return e.dict, true
	}
	return nil, false
}

// State returns the cache state for a locale.
func (l *Loader) State(locale string) LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if e, ok := l.entries[locale]; ok {
		return e.state
	}
	return StateUnloaded
}

// Preload warms the cache for the given locales. Failures are recorded
// in the cache but not reported; rendering degrades via the fallback
// chain.
func (l *Loader) Preload(ctx context.Context, locales ...string) {
	for _, locale := range locales {
		if ctx.Err() != nil {
			return
		}
		_, _ = l.Load(ctx, locale)
	}
}

func (l *Loader) setState(locale string, e *cacheEntry) {
	l.mu.Lock()
	l.entries[locale] = e
	l.mu.Unlock()
}

func isPermanent(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrNotFound)
}
