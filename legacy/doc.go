// Package legacy preserves the old language API used by the help/chat
// feature: language listing, explicit set-language, language detection
// from arbitrary text and one-off content translation.
//
// The shim is a pure facade: locale state lives in the i18n provider it
// wraps, so there is a single source of truth for the current language.
// The detection and translation capabilities delegate to an external
// service behind the Client interface; results are memoized in bounded
// LRU caches, and any collaborator failure yields a nil result instead
// of propagating an error to old call sites.
package legacy
