package legacy_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/localekit/i18n"
	"github.com/planora/localekit/legacy"
)

// fakeClient counts calls and can be told to fail.
type fakeClient struct {
	detects    atomic.Int32
	translates atomic.Int32
	fail       bool
}

func (c *fakeClient) Detect(_ context.Context, text string) (legacy.Detection, error) {
	c.detects.Add(1)
	if c.fail {
		return legacy.Detection{}, errors.New("service unavailable")
	}
	return legacy.Detection{Language: "de", Confidence: 0.97}, nil
}

func (c *fakeClient) Translate(_ context.Context, text, targetLocale string) (legacy.Translation, error) {
	c.translates.Add(1)
	if c.fail {
		return legacy.Translation{}, errors.New("service unavailable")
	}
	return legacy.Translation{Text: "übersetzt: " + text, SourceLanguage: "en", Confidence: 0.9}, nil
}

func newShimProvider(t *testing.T) *i18n.Provider {
	t.Helper()
	loader, err := i18n.NewLoader(i18n.MapSource{
		"en": {"hello": "Hello"},
		"de": {"hello": "Hallo"},
	}, "en")
	require.NoError(t, err)
	provider, err := i18n.NewProvider(loader, []string{"en", "de"})
	require.NoError(t, err)
	provider.Init(context.Background(), "")
	return provider
}

func TestShimLanguageSurface(t *testing.T) {
	shim := legacy.NewShim(newShimProvider(t), nil)

	assert.Equal(t, []string{"en", "de"}, shim.Languages())
	assert.Equal(t, "en", shim.CurrentLanguage())

	assert.False(t, shim.SetLanguage(context.Background(), "zz"))
	assert.Equal(t, "en", shim.CurrentLanguage())
}

func TestShimDetectLanguage(t *testing.T) {
	t.Run("detects and caches", func(t *testing.T) {
		client := &fakeClient{}
		shim := legacy.NewShim(newShimProvider(t), client)

		detection := shim.DetectLanguage(context.Background(), "Hallo Welt")
		require.NotNil(t, detection)
		assert.Equal(t, "de", detection.Language)
		assert.InDelta(t, 0.97, detection.Confidence, 0.001)

		// Same text is served from cache.
		again := shim.DetectLanguage(context.Background(), "Hallo Welt")
		require.NotNil(t, again)
		assert.Equal(t, int32(1), client.detects.Load())
	})

	t.Run("nil on service failure", func(t *testing.T) {
		client := &fakeClient{fail: true}
		shim := legacy.NewShim(newShimProvider(t), client)
		assert.Nil(t, shim.DetectLanguage(context.Background(), "Hallo Welt"))
	})

	t.Run("nil without a client", func(t *testing.T) {
		shim := legacy.NewShim(newShimProvider(t), nil)
		assert.Nil(t, shim.DetectLanguage(context.Background(), "Hallo Welt"))
	})

	t.Run("nil on empty text", func(t *testing.T) {
		client := &fakeClient{}
		shim := legacy.NewShim(newShimProvider(t), client)
		assert.Nil(t, shim.DetectLanguage(context.Background(), ""))
		assert.Equal(t, int32(0), client.detects.Load())
	})

	t.Run("failures are not cached", func(t *testing.T) {
		client := &fakeClient{fail: true}
		shim := legacy.NewShim(newShimProvider(t), client)
		assert.Nil(t, shim.DetectLanguage(context.Background(), "Hallo"))

		client.fail = false
		detection := shim.DetectLanguage(context.Background(), "Hallo")
		require.NotNil(t, detection)
		assert.Equal(t, int32(2), client.detects.Load())
	})
}

func TestShimTranslateContent(t *testing.T) {
	t.Run("translates and caches per target", func(t *testing.T) {
		client := &fakeClient{}
		shim := legacy.NewShim(newShimProvider(t), client)

		result := shim.TranslateContent(context.Background(), "How do I reset?", "de")
		require.NotNil(t, result)
		assert.Equal(t, "übersetzt: How do I reset?", *result)

		shim.TranslateContent(context.Background(), "How do I reset?", "de")
		assert.Equal(t, int32(1), client.translates.Load())

		// A different target locale is a distinct cache entry.
		shim.TranslateContent(context.Background(), "How do I reset?", "fr")
		assert.Equal(t, int32(2), client.translates.Load())
	})

	t.Run("nil on service failure", func(t *testing.T) {
		client := &fakeClient{fail: true}
		shim := legacy.NewShim(newShimProvider(t), client)
		assert.Nil(t, shim.TranslateContent(context.Background(), "text", "de"))
	})

	t.Run("nil without a client", func(t *testing.T) {
		shim := legacy.NewShim(newShimProvider(t), nil)
		assert.Nil(t, shim.TranslateContent(context.Background(), "text", "de"))
	})

	t.Run("nil on empty text", func(t *testing.T) {
		shim := legacy.NewShim(newShimProvider(t), &fakeClient{})
		assert.Nil(t, shim.TranslateContent(context.Background(), "", "de"))
	})
}

func TestShimCacheSizeOption(t *testing.T) {
	client := &fakeClient{}
	shim := legacy.NewShim(newShimProvider(t), client, legacy.WithCacheSize(1))

	shim.DetectLanguage(context.Background(), "first")
	shim.DetectLanguage(context.Background(), "second")
	// "first" was evicted by "second".
	shim.DetectLanguage(context.Background(), "first")
	assert.Equal(t, int32(3), client.detects.Load())
}
