package env

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/reqq/packages/core/naming"
	"github.com/abdul-hamid-achik/reqq/packages/core/source"
)

// Store is one environment document. It is created unloaded; Load reads the
// file once and Data parses the loaded text on every call.
type Store struct {
	root string
	file *source.File
}

func NewStore(root, path string, opts ...source.Option) *Store {
	return &Store{
		root: root,
		file: source.New(path, opts...),
	}
}

func (s *Store) Path() string {
	return s.file.Path()
}

// Name returns the logical environment name, e.g. envs/prod.json -> prod.
func (s *Store) Name() string {
	return naming.Derive(s.root, s.file.Path(), naming.EnvironmentExtensions)
}

// Format reports how the document is parsed, based on its extension.
// Files without a known extension are treated as JSON.
func (s *Store) Format() Format {
	return formatFor(s.file.Path())
}

// Load reads the document if it has not been read yet.
func (s *Store) Load() error {
	return s.file.Load()
}

func (s *Store) Loaded() bool {
	return s.file.Loaded()
}

// Text returns the raw, unparsed document text.
func (s *Store) Text() (string, error) {
	return s.file.Content()
}

// Data parses the loaded document. It fails with source.ErrNotLoaded when
// called before Load and with *ParseError when the text is not a well-formed
// object.
func (s *Store) Data() (*Document, error) {
	text, err := s.file.Content()
	if err != nil {
		return nil, err
	}

	format := s.Format()
	raw, err := decode(format, text)
	if err != nil {
		parseErr := &ParseError{Path: s.Path(), Format: format, Err: err}
		var le *lineError
		if errors.As(err, &le) {
			parseErr.Line = le.line
		}
		return nil, parseErr
	}

	return newDocument(s.Name(), raw), nil
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".env":
		return FormatDotEnv
	default:
		return FormatJSON
	}
}
