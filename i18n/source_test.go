package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/localekit/i18n"
)

func TestMapSource(t *testing.T) {
	source := i18n.MapSource{
		"en": {"hello": "Hello"},
	}

	dict, err := source.Fetch(context.Background(), "en")
	require.NoError(t, err)
	val, _ := dict.Get("hello")
	assert.Equal(t, "Hello", val)

	_, err = source.Fetch(context.Background(), "xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, i18n.ErrNotFound)
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"hello": "Hello"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte("hello: Hallo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte("hello = \"Bonjour\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "it.json"), []byte(`{broken`), 0o644))

	source := i18n.NewDirSource(dir)

	for locale, want := range map[string]string{"en": "Hello", "de": "Hallo", "fr": "Bonjour"} {
		dict, err := source.Fetch(context.Background(), locale)
		require.NoError(t, err, "locale %s", locale)
		val, _ := dict.Get("hello")
		assert.Equal(t, want, val)
	}

	_, err := source.Fetch(context.Background(), "nl")
	assert.ErrorIs(t, err, i18n.ErrNotFound)

	_, err = source.Fetch(context.Background(), "it")
	assert.ErrorIs(t, err, i18n.ErrParse)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"translations/en.json": &fstest.MapFile{Data: []byte(`{"hello": "Hello"}`)},
		"translations/de.yml":  &fstest.MapFile{Data: []byte("hello: Hallo\n")},
	}

	source := i18n.NewFSSource(fsys, "translations")

	dict, err := source.Fetch(context.Background(), "de")
	require.NoError(t, err)
	val, _ := dict.Get("hello")
	assert.Equal(t, "Hallo", val)

	_, err = source.Fetch(context.Background(), "fr")
	assert.ErrorIs(t, err, i18n.ErrNotFound)
}

func TestHTTPSource(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/locales/en.json":
			w.Write([]byte(`{"hello": "Hello"}`)) //nolint:errcheck
		case "/locales/it.json":
			w.Write([]byte(`{broken`)) //nolint:errcheck
		case "/locales/pt.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	source := i18n.NewHTTPSource(server.Client(), server.URL+"/locales")

	t.Run("fetches and parses", func(t *testing.T) {
		dict, err := source.Fetch(context.Background(), "en")
		require.NoError(t, err)
		val, _ := dict.Get("hello")
		assert.Equal(t, "Hello", val)
	})

	t.Run("404 is permanent", func(t *testing.T) {
		_, err := source.Fetch(context.Background(), "xx")
		assert.ErrorIs(t, err, i18n.ErrNotFound)
	})

	t.Run("server error is transient", func(t *testing.T) {
		_, err := source.Fetch(context.Background(), "pt")
		assert.ErrorIs(t, err, i18n.ErrLoad)
		assert.NotErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("malformed body is a parse error", func(t *testing.T) {
		_, err := source.Fetch(context.Background(), "it")
		assert.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("unreachable host is transient", func(t *testing.T) {
		dead := i18n.NewHTTPSource(nil, "http://127.0.0.1:1/locales")
		_, err := dead.Fetch(context.Background(), "en")
		assert.ErrorIs(t, err, i18n.ErrLoad)
	})

	assert.GreaterOrEqual(t, hits.Load(), int32(4))
}
