package i18n

import (
	"context"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser decodes TOML dictionaries, kept for teams maintaining their
// message files in TOML.
type TOMLParser struct{}

// NewTOMLParser creates a new TOMLParser instance.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse implements the Parser interface.
func (p *TOMLParser) Parse(ctx context.Context, content []byte) (Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	var data map[string]any
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return Dictionary(data), nil
}

// SupportsFileExtension implements the Parser interface.
func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}
