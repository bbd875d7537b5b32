package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser decodes JSON dictionaries, the primary format served to the
// web frontend.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements the Parser interface.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return Dictionary(data), nil
}

// SupportsFileExtension implements the Parser interface.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
