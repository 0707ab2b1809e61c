package request

import (
	"fmt"

	"github.com/abdul-hamid-achik/reqq/packages/core/env"
)

// Position locates a byte in a template. Line and Column are 1-based;
// Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// MalformedError reports invalid placeholder syntax.
type MalformedError struct {
	Template string
	Pos      Position
	Reason   string
}

func (e *MalformedError) Error() string {
	if e.Template != "" {
		return fmt.Sprintf("malformed template %s at %s: %s", e.Template, e.Pos, e.Reason)
	}
	return fmt.Sprintf("malformed template at %s: %s", e.Pos, e.Reason)
}

// MissingKeyError reports a placeholder whose key is absent from the
// environment.
type MissingKeyError struct {
	Template    string
	Key         string
	Environment string
	Pos         Position
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s{{%s}} at %s: key %q not found in environment %q",
		templatePrefix(e.Template), e.Key, e.Pos, e.Key, e.Environment)
}

// NonScalarError reports a placeholder that resolves to an object or array.
type NonScalarError struct {
	Template    string
	Key         string
	Environment string
	Kind        env.Kind
	Pos         Position
}

func (e *NonScalarError) Error() string {
	return fmt.Sprintf("%s{{%s}} at %s: key %q in environment %q is an %s, not a scalar",
		templatePrefix(e.Template), e.Key, e.Pos, e.Key, e.Environment, e.Kind)
}

func templatePrefix(name string) string {
	if name == "" {
		return ""
	}
	return name + ": "
}

// attachTemplate records the template name on engine errors.
func attachTemplate(err error, name string) error {
	switch e := err.(type) {
	case *MalformedError:
		e.Template = name
	case *MissingKeyError:
		e.Template = name
	case *NonScalarError:
		e.Template = name
	}
	return err
}
