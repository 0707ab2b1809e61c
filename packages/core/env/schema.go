package env

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaError lists the violations found when validating an environment
// against a JSON Schema.
type SchemaError struct {
	Environment string
	Violations  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("environment %s does not match schema: %s", e.Environment, strings.Join(e.Violations, "; "))
}

// SchemaValidator checks environment documents against one JSON Schema.
type SchemaValidator struct {
	schema *gojsonschema.Schema
}

// NewSchemaValidator compiles the schema stored at path.
func NewSchemaValidator(path string) (*SchemaValidator, error) {
	loader := gojsonschema.NewReferenceLoader("file://" + toURIPath(path))
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", path, err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// NewSchemaValidatorFromString compiles an inline schema.
func NewSchemaValidatorFromString(schema string) (*SchemaValidator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return &SchemaValidator{schema: compiled}, nil
}

// Validate returns a *SchemaError when doc violates the schema.
func (v *SchemaValidator) Validate(doc *Document) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc.JSON()))
	if err != nil {
		return fmt.Errorf("validating environment %s: %w", doc.Name(), err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return &SchemaError{Environment: doc.Name(), Violations: violations}
}

// toURIPath turns a filesystem path into the path part of a file:// URI.
func toURIPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		// Windows drive letters: C:/x -> /C:/x
		path = "/" + path
	}
	return path
}
