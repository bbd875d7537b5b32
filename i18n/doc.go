// Package i18n is the translation runtime for Planora's web stack. It
// loads per-locale dictionaries (nested key→string mappings in JSON,
// YAML or TOML), caches them for the process lifetime, and resolves
// dot-path keys with placeholder interpolation and CLDR pluralization.
//
// The package is built around two types. Loader fetches and caches
// dictionaries from a Source (directory, fs.FS/embed.FS, HTTP, or
// in-memory map), retrying transient failures, never retrying parse
// failures, and de-duplicating concurrent loads of the same locale.
// Provider owns the current-locale state for one rendering context: it
// detects the starting locale (persisted preference, Accept-Language,
// default), switches locales without reloads when the target dictionary
// is already cached, and resolves every lookup through the fallback
// chain current locale → default locale → raw key.
//
// Lookups never block on I/O and no failure in this package surfaces to
// the end user: a best-effort dictionary, even an empty one, always
// lets the UI render. Missing keys come back as the key text itself
// and, with WithDevMode, are logged for developers.
//
// # Usage
//
//	loader, err := i18n.NewLoader(i18n.NewDirSource("./translations"), "en")
//	if err != nil {
//		log.Fatal(err)
//	}
//	provider, err := i18n.NewProvider(loader, []string{"en", "de", "fr"},
//		i18n.WithStore(i18n.NewFileStore(prefPath)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	provider.Init(ctx, r.Header.Get("Accept-Language"))
//
//	title := provider.Translate("dashboard.title")
//	greeting := provider.Translate("dashboard.greeting", i18n.Params{"name": user.Name})
//	badge := provider.TranslatePlural("dashboard.open_tasks", 5)
//
// # Server rendering
//
// The HTTP middleware resolves each request's locale into the context;
// handlers call TranslateCtx and produce output identical to the
// client-side path, because both go through the same resolution chain:
//
//	mux.Handle("/", i18n.Middleware(provider, nil)(handler))
package i18n
