package source

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"
)

// ErrNotLoaded is returned when content is requested before Load succeeded.
var ErrNotLoaded = errors.New("source not loaded")

// ReadError reports a file that could not be read as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

var errInvalidText = errors.New("file is not valid UTF-8 text")

// ReadFunc reads the raw bytes of a file.
type ReadFunc func(path string) ([]byte, error)

// File is a lazily loaded text file. The zero value is not usable; use New.
type File struct {
	path string
	read ReadFunc

	mu      sync.Mutex
	content *string
}

type Option func(*File)

// WithReader replaces os.ReadFile, mostly for tests.
func WithReader(fn ReadFunc) Option {
	return func(f *File) {
		f.read = fn
	}
}

func New(path string, opts ...Option) *File {
	f := &File{
		path: path,
		read: os.ReadFile,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *File) Path() string {
	return f.path
}

// Load reads the file if it has not been read yet. Once loaded the content
// never changes; later calls are no-ops.
func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.content != nil {
		return nil
	}

	data, err := f.read(f.path)
	if err != nil {
		return &ReadError{Path: f.path, Err: err}
	}
	if !utf8.Valid(data) {
		return &ReadError{Path: f.path, Err: errInvalidText}
	}

	text := string(data)
	f.content = &text
	return nil
}

func (f *File) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content != nil
}

// Content returns the loaded text, or ErrNotLoaded.
func (f *File) Content() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.content == nil {
		return "", fmt.Errorf("%s: %w", f.path, ErrNotLoaded)
	}
	return *f.content, nil
}
