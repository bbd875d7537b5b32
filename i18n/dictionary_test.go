package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planora/localekit/i18n"
)

func sampleDictionary() i18n.Dictionary {
	return i18n.Dictionary{
		"hello": "Hello",
		"dashboard": map[string]any{
			"title":    "Portfolio overview",
			"greeting": "Welcome back, {name}!",
			"open_tasks": map[string]any{
				"one":   "{count} open task",
				"other": "{count} open tasks",
			},
		},
	}
}

func TestDictionaryGet(t *testing.T) {
	dict := sampleDictionary()

	val, ok := dict.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, "Hello", val)

	val, ok = dict.Get("dashboard.title")
	assert.True(t, ok)
	assert.Equal(t, "Portfolio overview", val)

	// A nested node is not a string leaf.
	_, ok = dict.Get("dashboard")
	assert.False(t, ok)

	_, ok = dict.Get("dashboard.missing")
	assert.False(t, ok)

	_, ok = dict.Get("dashboard.title.deeper")
	assert.False(t, ok)

	_, ok = dict.Get("")
	assert.False(t, ok)
}

func TestDictionaryGetAnyKeyedMaps(t *testing.T) {
	// Decoders may produce map[any]any for nested mappings.
	dict := i18n.Dictionary{
		"nav": map[any]any{
			"projects": "Projects",
		},
	}

	val, ok := dict.Get("nav.projects")
	assert.True(t, ok)
	assert.Equal(t, "Projects", val)
}

func TestDictionaryVariants(t *testing.T) {
	dict := sampleDictionary()

	variants, ok := dict.Variants("dashboard.open_tasks")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{
		"one":   "{count} open task",
		"other": "{count} open tasks",
	}, variants)

	_, ok = dict.Variants("dashboard.title")
	assert.False(t, ok)

	_, ok = dict.Variants("missing")
	assert.False(t, ok)
}

func TestDictionaryFlatten(t *testing.T) {
	keys := sampleDictionary().Flatten()
	assert.Equal(t, []string{
		"dashboard.greeting",
		"dashboard.open_tasks.one",
		"dashboard.open_tasks.other",
		"dashboard.title",
		"hello",
	}, keys)
}

func TestDictionaryDiff(t *testing.T) {
	reference := sampleDictionary()
	partial := i18n.Dictionary{
		"hello": "Hallo",
		"dashboard": map[string]any{
			"title": "Portfolioübersicht",
		},
	}

	missing := partial.Diff(reference)
	assert.Equal(t, []string{
		"dashboard.greeting",
		"dashboard.open_tasks.one",
		"dashboard.open_tasks.other",
	}, missing)

	assert.Empty(t, reference.Diff(reference))
}
