package i18n

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser decodes YAML dictionaries.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements the Parser interface.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	if data == nil {
		return nil, errors.Join(ErrParse, errors.New("empty document"))
	}
	return Dictionary(data), nil
}

// SupportsFileExtension implements the Parser interface.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
