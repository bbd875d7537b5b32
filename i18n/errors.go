package i18n

import "errors"

// Sentinel errors used to classify dictionary failures. Transient I/O
// failures (ErrLoad) may be retried; ErrParse and ErrNotFound are
// permanent and trigger an immediate fallback.
var (
	ErrLoad     = errors.New("i18n: failed to load dictionary")
	ErrParse    = errors.New("i18n: failed to parse dictionary")
	ErrNotFound = errors.New("i18n: dictionary not found")

	ErrNoSource            = errors.New("i18n: source is nil")
	ErrNotLoaded           = errors.New("i18n: dictionary not loaded")
	ErrFailedToMarshalJSON = errors.New("i18n: failed to marshal dictionary to JSON")
)
