package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Source fetches a single locale's dictionary from its backing storage.
// Implementations classify failures with the package sentinels: ErrLoad
// for transient I/O failures, ErrParse for undecodable content and
// ErrNotFound for locales the source does not carry.
type Source interface {
	Fetch(ctx context.Context, locale string) (Dictionary, error)
}

// MapSource serves dictionaries from an in-memory map. It is used in
// tests and for applications that compile their dictionaries in.
type MapSource map[string]Dictionary

// Fetch implements the Source interface.
func (s MapSource) Fetch(_ context.Context, locale string) (Dictionary, error) {
	dict, ok := s[locale]
	if !ok {
		return nil, fmt.Errorf("%w: locale %q", ErrNotFound, locale)
	}
	return dict, nil
}

// dictionaryExtensions lists the file extensions probed by file-based
// sources, in preference order.
var dictionaryExtensions = []string{"json", "yaml", "yml", "toml"}

// DirSource serves one dictionary file per locale from a directory,
// e.g. translations/en.json. The parser is picked by file extension.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource reading from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Fetch implements the Source interface.
func (s *DirSource) Fetch(ctx context.Context, locale string) (Dictionary, error) {
	if s.dir == "" {
		return nil, fmt.Errorf("%w: directory path is empty", ErrLoad)
	}

	for _, ext := range dictionaryExtensions {
		path := filepath.Join(s.dir, locale+"."+ext)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Join(ErrLoad, err)
		}
		return parseDictionary(ctx, path, content)
	}
	return nil, fmt.Errorf("%w: no dictionary file for locale %q in %s", ErrNotFound, locale, s.dir)
}

// FSSource serves dictionaries from an fs.FS, typically an embed.FS so
// dictionaries ship inside the binary.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates an FSSource reading from dir within fsys. An empty
// dir reads from the filesystem root.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	return &FSSource{fsys: fsys, dir: dir}
}

// Fetch implements the Source interface.
func (s *FSSource) Fetch(ctx context.Context, locale string) (Dictionary, error) {
	if s.fsys == nil {
		return nil, fmt.Errorf("%w: filesystem is nil", ErrLoad)
	}

	for _, ext := range dictionaryExtensions {
		name := locale + "." + ext
		if s.dir != "" {
			name = s.dir + "/" + name
		}
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrLoad, err)
		}
		return parseDictionary(ctx, name, content)
	}
	return nil, fmt.Errorf("%w: no dictionary file for locale %q", ErrNotFound, locale)
}

// HTTPSource fetches dictionaries over HTTP, one JSON document per
// locale at <base>/<locale>.json. Transport failures and server errors
// are transient; 404 and undecodable bodies are permanent.
type HTTPSource struct {
	client *http.Client
	base   string
	parser Parser
}

// NewHTTPSource creates an HTTPSource for the given base URL. A nil
// client falls back to http.DefaultClient.
func NewHTTPSource(client *http.Client, base string) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		client: client,
		base:   strings.TrimRight(base, "/"),
		parser: NewJSONParser(),
	}
}

// Fetch implements the Source interface.
func (s *HTTPSource) Fetch(ctx context.Context, locale string) (Dictionary, error) {
	url := s.base + "/" + locale + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned status %d", ErrLoad, url, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}
	return s.parser.Parse(ctx, content)
}

// parseDictionary decodes content with the parser matching the filename.
func parseDictionary(ctx context.Context, filename string, content []byte) (Dictionary, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: dictionary file %q is empty", ErrParse, filename)
	}
	parser := ParserForFile(filename)
	if parser == nil {
		return nil, fmt.Errorf("%w: unsupported dictionary format %q", ErrParse, filename)
	}
	return parser.Parse(ctx, content)
}
