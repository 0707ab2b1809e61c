package env

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatDotEnv Format = "dotenv"
)

// ParseError reports an environment document that is not a well-formed
// key/value object. Err carries the decoder's diagnostic.
type ParseError struct {
	Path   string
	Format Format
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cannot parse %s environment %s (line %d): %v", e.Format, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("cannot parse %s environment %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errNotObject = errors.New("top level of an environment must be an object")

// decode turns document text into canonical JSON bytes for lookup. JSON
// documents are validated and kept as written so numbers keep their form.
func decode(format Format, text string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(text)
	case FormatYAML:
		var data map[string]any
		if err := yaml.Unmarshal([]byte(text), &data); err != nil {
			return nil, err
		}
		return marshalObject(data)
	case FormatTOML:
		var data map[string]any
		if err := toml.Unmarshal([]byte(text), &data); err != nil {
			return nil, err
		}
		return marshalObject(data)
	case FormatDotEnv:
		data, err := parseDotEnv(text)
		if err != nil {
			return nil, err
		}
		return marshalObject(data)
	default:
		return nil, fmt.Errorf("unsupported environment format %q", format)
	}
}

func decodeJSON(text string) ([]byte, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &lineError{line: lineOf(text, syntaxErr.Offset), err: err}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, errNotObject
		}
		return nil, err
	}
	if data == nil {
		return nil, errNotObject
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalObject(data map[string]any) ([]byte, error) {
	if data == nil {
		// An empty YAML or TOML file is an empty environment.
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("unsupported value: %w", err)
	}
	return raw, nil
}

// lineError attaches a 1-based line number to a decoder error.
type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string { return e.err.Error() }
func (e *lineError) Unwrap() error { return e.err }

func lineOf(text string, offset int64) int {
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	return strings.Count(text[:offset], "\n") + 1
}
