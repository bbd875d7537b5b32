package i18n

import (
	"sort"
	"strings"
)

// Dictionary is a nested mapping from string keys to string leaf values.
// Leaf values are templates that may contain {name} placeholder tokens or
// plural variant sub-maps keyed by CLDR category names.
type Dictionary map[string]any

// Get looks up a dot-delimited key and returns its string leaf value.
// Keys that resolve to a nested node (for example a plural variant set)
// are reported as not found.
func (d Dictionary) Get(key string) (string, bool) {
	node, ok := d.node(key)
	if !ok {
		return "", false
	}
	s, ok := node.(string)
	return s, ok
}

// Variants looks up a dot-delimited key and returns its plural variant
// set: a mapping from category name (one, few, other, ...) to template.
func (d Dictionary) Variants(key string) (map[string]string, bool) {
	node, ok := d.node(key)
	if !ok {
		return nil, false
	}
	m, ok := asMap(node)
	if !ok {
		return nil, false
	}
	variants := make(map[string]string, len(m))
	for category, v := range m {
		s, ok := v.(string)
		if !ok {
			continue
		}
		variants[category] = s
	}
	if len(variants) == 0 {
		return nil, false
	}
	return variants, true
}

// Has reports whether key resolves to a string leaf.
func (d Dictionary) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// node walks the nested map along the dot-delimited key.
func (d Dictionary) node(key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	current := map[string]any(d)
	parts := strings.Split(key, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		current, ok = asMap(next)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Flatten returns the sorted set of dot-delimited keys for all string
// leaves in the dictionary.
func (d Dictionary) Flatten() []string {
	keys := flattenInto(nil, "", map[string]any(d))
	sort.Strings(keys)
	return keys
}

// Diff returns the reference keys that are missing from this dictionary.
// It is used by the offline parity checker and by development-mode
// startup validation.
func (d Dictionary) Diff(reference Dictionary) []string {
	var missing []string
	for _, key := range reference.Flatten() {
		if !d.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

func flattenInto(keys []string, prefix string, m map[string]any) []string {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			keys = append(keys, key)
		default:
			if nested, ok := asMap(val); ok {
				keys = flattenInto(keys, key, nested)
			}
		}
	}
	return keys
}

// asMap normalizes nested nodes to map[string]any. Some decoders produce
// map[any]any for nested mappings.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Dictionary:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			converted[ks] = val
		}
		return converted, true
	default:
		return nil, false
	}
}
