package i18n

import (
	"context"
	"strings"
)

// Parser decodes a single locale's dictionary from raw file content.
type Parser interface {
	// Parse decodes content into a Dictionary. Undecodable content is
	// reported as an ErrParse-classified error.
	Parse(ctx context.Context, content []byte) (Dictionary, error)

	// SupportsFileExtension reports whether the parser handles files with
	// the given extension. The extension may carry a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser matching the file's extension, or nil
// when the format is not supported.
func ParserForFile(filename string) Parser {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}
	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}
