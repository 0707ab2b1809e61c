package output

import (
	"io"
	"os"
)

type settings struct {
	writer    io.Writer
	errWriter io.Writer
	verbose   bool
	noColor   bool
}

type Option func(*settings)

func newSettings(opts []Option) *settings {
	s := &settings{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.writer = w
	}
}

func WithErrorWriter(w io.Writer) Option {
	return func(s *settings) {
		s.errWriter = w
	}
}

func WithVerbose(v bool) Option {
	return func(s *settings) {
		s.verbose = v
	}
}

func WithNoColor(nc bool) Option {
	return func(s *settings) {
		s.noColor = nc
	}
}
