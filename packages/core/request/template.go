package request

import (
	"fmt"

	"github.com/abdul-hamid-achik/reqq/packages/core/env"
	"github.com/abdul-hamid-achik/reqq/packages/core/naming"
	"github.com/abdul-hamid-achik/reqq/packages/core/source"
)

// Template is one request definition on disk.
type Template struct {
	root string
	exts []string
	file *source.File
}

type Option func(*Template)

// WithExtensions sets the extensions stripped when deriving the name.
func WithExtensions(exts []string) Option {
	return func(t *Template) {
		t.exts = exts
	}
}

// WithSourceOptions passes options through to the underlying source.File.
func WithSourceOptions(opts ...source.Option) Option {
	return func(t *Template) {
		t.file = source.New(t.file.Path(), opts...)
	}
}

func New(root, path string, opts ...Option) *Template {
	t := &Template{
		root: root,
		exts: naming.DefaultRequestExtensions,
		file: source.New(path),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Template) Path() string {
	return t.file.Path()
}

// Name returns the logical request name, e.g. users/get.http -> users/get.
func (t *Template) Name() string {
	return naming.Derive(t.root, t.file.Path(), t.exts)
}

// Load reads the template text if it has not been read yet.
func (t *Template) Load() error {
	return t.file.Load()
}

func (t *Template) Loaded() bool {
	return t.file.Loaded()
}

// Text returns the raw, unresolved template.
func (t *Template) Text() (string, error) {
	return t.file.Content()
}

// Placeholders lists the placeholders used by the loaded template.
func (t *Template) Placeholders() ([]Placeholder, error) {
	text, err := t.file.Content()
	if err != nil {
		return nil, err
	}
	phs, err := Placeholders(text)
	if err != nil {
		return nil, attachTemplate(err, t.Name())
	}
	return phs, nil
}

// Resolve substitutes placeholders using the given environment. With a nil
// environment the raw text is returned unchanged and not scanned at all.
// The environment is loaded if needed but never modified.
func (t *Template) Resolve(environment *env.Store) (string, error) {
	text, err := t.file.Content()
	if err != nil {
		return "", err
	}
	if environment == nil {
		return text, nil
	}

	doc, err := documentOf(environment)
	if err != nil {
		return "", err
	}

	out, err := Render(text, doc)
	if err != nil {
		return "", attachTemplate(err, t.Name())
	}
	return out, nil
}

// Unresolved lists every placeholder the environment cannot satisfy.
func (t *Template) Unresolved(environment *env.Store) ([]error, error) {
	text, err := t.file.Content()
	if err != nil {
		return nil, err
	}
	doc, err := documentOf(environment)
	if err != nil {
		return nil, err
	}

	problems, err := Unresolved(text, doc)
	if err != nil {
		return nil, attachTemplate(err, t.Name())
	}
	for _, p := range problems {
		attachTemplate(p, t.Name())
	}
	return problems, nil
}

func documentOf(environment *env.Store) (*env.Document, error) {
	if err := environment.Load(); err != nil {
		return nil, fmt.Errorf("loading environment %s: %w", environment.Name(), err)
	}
	doc, err := environment.Data()
	if err != nil {
		return nil, fmt.Errorf("parsing environment %s: %w", environment.Name(), err)
	}
	return doc, nil
}
