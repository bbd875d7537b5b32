package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Status is the provider lifecycle state.
type Status int

const (
	StatusUninitialized Status = iota
	StatusDetecting
	StatusLoading
	StatusReady
)

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusDetecting:
		return "detecting"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Provider owns the current-locale state for one rendering context (a
// client session or a server request) and resolves translations against
// the loader's cached dictionaries. Lookups are synchronous; the
// provider eagerly loads dictionaries during initialization and locale
// switches so Translate never blocks on I/O.
type Provider struct {
	loader    *Loader
	supported []string
	store     Store
	logger    *slog.Logger
	devMode   bool

	mu      sync.RWMutex
	status  Status
	current string
	gen     uint64
	subs    map[uint64]func(locale string)
	nextSub uint64
}

// Option configures a Provider instance.
type Option func(*Provider)

// WithStore sets the persistence backend for the user's locale choice.
func WithStore(store Store) Option {
	return func(p *Provider) {
		if store != nil {
			p.store = store
		}
	}
}

// WithLogger provides a logger for provider diagnostics. If not
// specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDevMode enables missing-translation warnings. Keep disabled in
// production to avoid noisy logs.
func WithDevMode(dev bool) Option {
	return func(p *Provider) {
		p.devMode = dev
	}
}

// NewProvider creates a Provider over the given loader. supported is
// the closed set of locales the application ships; the loader's default
// locale is always part of it.
func NewProvider(loader *Loader, supported []string, opts ...Option) (*Provider, error) {
	if loader == nil {
		return nil, errors.New("i18n: loader is nil")
	}
	if !slices.Contains(supported, loader.DefaultLocale()) {
		supported = append([]string{loader.DefaultLocale()}, supported...)
	}

	p := &Provider{
		loader:    loader,
		supported: supported,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		current:   loader.DefaultLocale(),
		subs:      make(map[uint64]func(string)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Init detects the starting locale and eagerly loads its dictionary.
// Detection checks, in order: the persisted user preference, the
// acceptLanguage list (typically the Accept-Language header), then the
// default locale. Init always leaves the provider Ready, with the
// fallback dictionary when loading failed, and returns the locale it
// settled on.
func (p *Provider) Init(ctx context.Context, acceptLanguage string) string {
	p.setStatus(StatusDetecting)
	locale := p.detect(acceptLanguage)

	p.setStatus(StatusLoading)
	if _, err := p.loader.Load(ctx, locale); err != nil {
		p.logger.WarnContext(ctx, "initial dictionary load failed, rendering with fallback",
			"locale", locale, "error", err)
	}

	p.mu.Lock()
	p.current = locale
	p.status = StatusReady
	p.gen++
	p.mu.Unlock()
	return locale
}

func (p *Provider) detect(acceptLanguage string) string {
	if p.store != nil {
		if saved, ok := p.store.Load(); ok {
			if locale := NormalizeLocale(saved, p.supported); locale != "" {
				return locale
			}
		}
	}
	return NegotiateLocale(acceptLanguage, p.supported, p.loader.DefaultLocale())
}

// Locale returns the current locale.
func (p *Provider) Locale() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Locales returns the supported locale set.
func (p *Provider) Locales() []string {
	return slices.Clone(p.supported)
}

// Status returns the provider lifecycle state.
func (p *Provider) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Supports reports whether the locale (or its base language) is in the
// supported set.
func (p *Provider) Supports(locale string) bool {
	return NormalizeLocale(locale, p.supported) != ""
}

// Translate resolves key under the current locale: current dictionary,
// then the default locale's dictionary, then the raw key itself. The
// raw-key fallback keeps missing translations visible instead of
// rendering blank text. Params, when given, are interpolated into the
// resolved template.
func (p *Provider) Translate(key string, params ...Params) string {
	return p.translateIn(p.Locale(), key, firstParams(params))
}

// TranslateCtx is Translate with a request-scoped locale override taken
// from the context. Server-rendered and client-driven lookups share
// this single resolution path so both produce identical output.
func (p *Provider) TranslateCtx(ctx context.Context, key string, params ...Params) string {
	locale := LocaleFromContext(ctx)
	if locale == "" {
		locale = p.Locale()
	}
	return p.translateIn(locale, key, firstParams(params))
}

// TranslatePlural resolves a plural key under the current locale,
// selecting the variant for count by the locale's CLDR rules.
func (p *Provider) TranslatePlural(key string, count int, params ...Params) string {
	return p.pluralIn(p.Locale(), key, count, firstParams(params))
}

// TranslatePluralCtx is TranslatePlural with a context locale override.
func (p *Provider) TranslatePluralCtx(ctx context.Context, key string, count int, params ...Params) string {
	locale := LocaleFromContext(ctx)
	if locale == "" {
		locale = p.Locale()
	}
	return p.pluralIn(locale, key, count, firstParams(params))
}

func (p *Provider) translateIn(locale, key string, params Params) string {
	for _, dict := range p.chain(locale) {
		if template, ok := dict.Get(key); ok {
			return Resolve(template, params)
		}
	}
	p.reportMissing(locale, key)
	return key
}

func (p *Provider) pluralIn(locale, key string, count int, params Params) string {
	for _, dict := range p.chain(locale) {
		if variants, ok := dict.Variants(key); ok {
			if s := ResolvePlural(variants, count, locale, params); s != "" {
				return s
			}
		}
		// A plain leaf may embed its own count handling.
		if template, ok := dict.Get(key); ok {
			return Resolve(template, withCount(params, count))
		}
	}
	p.reportMissing(locale, key)
	return key
}

// chain returns the dictionaries to consult, in fallback order. Only
// already-cached dictionaries are used; Translate never suspends.
func (p *Provider) chain(locale string) []Dictionary {
	chain := make([]Dictionary, 0, 2)
	if dict, ok := p.loader.Cached(locale); ok {
		chain = append(chain, dict)
	}
	if def := p.loader.DefaultLocale(); def != locale {
		if dict, ok := p.loader.Cached(def); ok {
			chain = append(chain, dict)
		}
	}
	return chain
}

func (p *Provider) reportMissing(locale, key string) {
	if p.devMode {
		p.logger.Warn("missing translation", "locale", locale, "key", key)
	}
}

// SetLocale switches the current locale. Unsupported locales are
// rejected with false and leave all state untouched. A locale whose
// dictionary is already cached is swapped in synchronously, with no
// fetch and no intermediate loading state. Otherwise the dictionary is
// loaded asynchronously while consumers keep rendering the previous
// locale; once loaded, the switch is applied atomically. Racing
// switches are serialized by a generation counter: the most recent call
// wins and stale loads are discarded on arrival.
func (p *Provider) SetLocale(ctx context.Context, locale string) bool {
	normalized := NormalizeLocale(locale, p.supported)
	if normalized == "" {
		return false
	}

	p.mu.Lock()
	p.gen++
	gen := p.gen

	if _, ok := p.loader.Cached(normalized); ok {
		p.current = normalized
		p.status = StatusReady
		p.mu.Unlock()
		p.persist(ctx, normalized)
		p.notify(normalized)
		return true
	}

	p.status = StatusLoading
	p.mu.Unlock()

	go func() {
		// The loader falls back internally; the switch completes even
		// when the dictionary could not be fetched.
		if _, err := p.loader.Load(ctx, normalized); err != nil {
			p.logger.WarnContext(ctx, "locale switch proceeding with fallback dictionary",
				"locale", normalized, "error", err)
		}

		p.mu.Lock()
		if p.gen != gen {
			// A newer switch superseded this one; discard.
			p.mu.Unlock()
			return
		}
		p.current = normalized
		p.status = StatusReady
		p.mu.Unlock()
		p.persist(ctx, normalized)
		p.notify(normalized)
	}()
	return true
}

func (p *Provider) persist(ctx context.Context, locale string) {
	if p.store == nil {
		return
	}
	if err := p.store.Save(locale); err != nil {
		p.logger.WarnContext(ctx, "failed to persist locale preference", "locale", locale, "error", err)
	}
}

// Subscribe registers a callback invoked after every completed locale
// switch. The returned function cancels the subscription.
func (p *Provider) Subscribe(fn func(locale string)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *Provider) notify(locale string) {
	p.mu.RLock()
	callbacks := make([]func(string), 0, len(p.subs))
	for _, fn := range p.subs {
		callbacks = append(callbacks, fn)
	}
	p.mu.RUnlock()

	for _, fn := range callbacks {
		fn(locale)
	}
}

// ExportJSON returns a loaded locale's dictionary as JSON for
// client-side consumption.
func (p *Provider) ExportJSON(locale string) (string, error) {
	dict, ok := p.loader.Cached(locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotLoaded, locale)
	}
	bytes, err := json.Marshal(dict)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(bytes), nil
}

// ValidateParity checks every supported locale's dictionary against the
// default locale's key set and returns the missing keys per locale.
// Intended for development-mode startup, where dictionary drift should
// fail fast.
func (p *Provider) ValidateParity(ctx context.Context) map[string][]string {
	reference, err := p.loader.Load(ctx, p.loader.DefaultLocale())
	if err != nil {
		return nil
	}

	drift := make(map[string][]string)
	for _, locale := range p.supported {
		if locale == p.loader.DefaultLocale() {
			continue
		}
		dict, err := p.loader.Load(ctx, locale)
		if err != nil {
			continue
		}
		if missing := dict.Diff(reference); len(missing) > 0 {
			drift[locale] = missing
		}
	}
	if len(drift) == 0 {
		return nil
	}
	return drift
}

func (p *Provider) setStatus(s Status) {
	p.mu.Lock()
	p.status = s
	p.mu.Unlock()
}

func firstParams(params []Params) Params {
	if len(params) == 0 {
		return nil
	}
	return params[0]
}
