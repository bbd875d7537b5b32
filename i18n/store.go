package i18n

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// DefaultCookieName is the cookie mirroring the persisted locale choice
// so server-rendered responses pick the same locale as the client.
const DefaultCookieName = "lang"

// Store persists the user's explicit locale choice between sessions.
type Store interface {
	// Load returns the persisted locale and whether one was present.
	Load() (string, bool)

	// Save persists the locale.
	Save(locale string) error
}

// MemoryStore keeps the preference in memory. Used in tests and for
// short-lived processes without durable storage.
type MemoryStore struct {
	mu     sync.Mutex
	locale string
}

// Load implements the Store interface.
func (s *MemoryStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale, s.locale != ""
}

// Save implements the Store interface.
func (s *MemoryStore) Save(locale string) error {
	s.mu.Lock()
	s.locale = locale
	s.mu.Unlock()
	return nil
}

// FileStore persists the preference as a single line in a file, the
// CLI/daemon equivalent of browser-durable storage.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements the Store interface.
func (s *FileStore) Load() (string, bool) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	locale := strings.TrimSpace(string(content))
	return locale, locale != ""
}

// Save implements the Store interface.
func (s *FileStore) Save(locale string) error {
	return os.WriteFile(s.path, []byte(locale+"\n"), 0o600)
}

// LocaleFromRequest reads the mirrored locale cookie from a request.
func LocaleFromRequest(r *http.Request, cookieName string) (string, bool) {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return strings.TrimSpace(cookie.Value), true
}

// WriteLocaleCookie mirrors the locale choice to the response so the
// next server-rendered request resolves the same locale without a
// detection round-trip.
func WriteLocaleCookie(w http.ResponseWriter, cookieName, locale string) {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// RequestStore adapts a request/response pair to the Store interface,
// reading and mirroring the locale cookie for one request's lifetime.
type RequestStore struct {
	r    *http.Request
	w    http.ResponseWriter
	name string
}

// NewRequestStore creates a RequestStore over the given request and
// response writer. An empty cookieName uses DefaultCookieName.
func NewRequestStore(w http.ResponseWriter, r *http.Request, cookieName string) *RequestStore {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &RequestStore{r: r, w: w, name: cookieName}
}

// Load implements the Store interface.
func (s *RequestStore) Load() (string, bool) {
	return LocaleFromRequest(s.r, s.name)
}

// Save implements the Store interface.
func (s *RequestStore) Save(locale string) error {
	WriteLocaleCookie(s.w, s.name, locale)
	return nil
}
