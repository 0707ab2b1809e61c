package catalog

import (
	"log/slog"
	"path/filepath"

	"github.com/abdul-hamid-achik/reqq/packages/core/env"
	"github.com/abdul-hamid-achik/reqq/packages/core/naming"
	"github.com/abdul-hamid-achik/reqq/packages/core/request"
	"github.com/abdul-hamid-achik/reqq/packages/logging"
)

// Catalog is the in-memory index of one root directory. It is immutable
// after New apart from the load-once caches of its entries, which are safe
// for concurrent use.
type Catalog struct {
	root     string
	requests []*request.Template
	envs     []*env.Store

	requestIndex map[string]int
	envIndex     map[string]int

	logger *slog.Logger
}

type config struct {
	scan       ScanFunc
	logger     *slog.Logger
	extensions []string
}

type Option func(*config)

// WithScanner replaces the filesystem walk used to discover files.
func WithScanner(fn ScanFunc) Option {
	return func(c *config) {
		c.scan = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithRequestExtensions sets the extensions stripped from request names.
// An empty list keeps the defaults.
func WithRequestExtensions(exts []string) Option {
	return func(c *config) {
		if len(exts) > 0 {
			c.extensions = exts
		}
	}
}

// New scans root once and builds the catalog.
func New(root string, opts ...Option) (*Catalog, error) {
	cfg := &config{
		scan:       WalkFiles,
		logger:     logging.Discard(),
		extensions: naming.DefaultRequestExtensions,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	root = filepath.Clean(root)
	paths, err := cfg.scan(root)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		root:         root,
		requestIndex: make(map[string]int),
		envIndex:     make(map[string]int),
		logger:       cfg.logger,
	}

	envDir := filepath.Join(root, naming.EnvsDir)
	for _, path := range paths {
		path = filepath.Clean(path)
		if path == root || path == envDir {
			continue
		}

		if naming.InEnvsDir(root, path) {
			c.addEnvironment(env.NewStore(root, path))
		} else {
			c.addRequest(request.New(root, path, request.WithExtensions(cfg.extensions)))
		}
	}

	c.logger.Debug("catalog scanned",
		"root", root,
		"requests", len(c.requests),
		"environments", len(c.envs))

	return c, nil
}

func (c *Catalog) addRequest(t *request.Template) {
	name := t.Name()
	if prev, ok := c.requestIndex[name]; ok {
		c.logger.Warn("duplicate request name, keeping first",
			"name", name,
			"kept", c.requests[prev].Path(),
			"ignored", t.Path())
	} else {
		c.requestIndex[name] = len(c.requests)
	}
	c.requests = append(c.requests, t)
}

func (c *Catalog) addEnvironment(s *env.Store) {
	name := s.Name()
	if prev, ok := c.envIndex[name]; ok {
		c.logger.Warn("duplicate environment name, keeping first",
			"name", name,
			"kept", c.envs[prev].Path(),
			"ignored", s.Path())
	} else {
		c.envIndex[name] = len(c.envs)
	}
	c.envs = append(c.envs, s)
}

func (c *Catalog) Root() string {
	return c.root
}

// RequestNames returns request names in discovery order.
func (c *Catalog) RequestNames() []string {
	names := make([]string, len(c.requests))
	for i, t := range c.requests {
		names[i] = t.Name()
	}
	return names
}

// EnvironmentNames returns environment names in discovery order.
func (c *Catalog) EnvironmentNames() []string {
	names := make([]string, len(c.envs))
	for i, s := range c.envs {
		names[i] = s.Name()
	}
	return names
}

func (c *Catalog) Requests() []*request.Template {
	return append([]*request.Template(nil), c.requests...)
}

func (c *Catalog) Environments() []*env.Store {
	return append([]*env.Store(nil), c.envs...)
}

// Request looks up a template by exact, case-sensitive name.
func (c *Catalog) Request(name string) (*request.Template, error) {
	i, ok := c.requestIndex[name]
	if !ok {
		return nil, &RequestNotFoundError{Name: name}
	}
	return c.requests[i], nil
}

// Environment looks up an environment by exact, case-sensitive name.
func (c *Catalog) Environment(name string) (*env.Store, error) {
	i, ok := c.envIndex[name]
	if !ok {
		return nil, &EnvNotFoundError{Name: name}
	}
	return c.envs[i], nil
}

// Execute resolves the named request. An empty envName resolves without an
// environment, returning the template text unchanged. Both names are
// checked before anything is read from disk.
func (c *Catalog) Execute(requestName, envName string) (string, error) {
	tmpl, err := c.Request(requestName)
	if err != nil {
		return "", err
	}

	var store *env.Store
	if envName != "" {
		store, err = c.Environment(envName)
		if err != nil {
			return "", err
		}
	}

	if err := tmpl.Load(); err != nil {
		return "", err
	}

	out, err := tmpl.Resolve(store)
	if err != nil {
		return "", err
	}

	c.logger.Debug("request resolved",
		"request", requestName,
		"environment", envName,
		"bytes", len(out))

	return out, nil
}
