package request

import (
	"strings"

	"github.com/abdul-hamid-achik/reqq/packages/core/env"
)

// Render resolves every placeholder in text against doc. It returns no
// output at all when any placeholder fails to resolve.
func Render(text string, doc *env.Document) (string, error) {
	segments, err := Parse(text)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(text))

	for _, seg := range segments {
		if seg.Placeholder == nil {
			out.WriteString(seg.Text)
			continue
		}
		value, err := lookup(seg.Placeholder, doc)
		if err != nil {
			return "", err
		}
		out.WriteString(value)
	}

	return out.String(), nil
}

func lookup(ph *Placeholder, doc *env.Document) (string, error) {
	v, ok := doc.Lookup(ph.Path)
	if !ok {
		return "", &MissingKeyError{Key: ph.Key, Environment: doc.Name(), Pos: ph.Pos}
	}
	if !v.IsScalar() {
		return "", &NonScalarError{Key: ph.Key, Environment: doc.Name(), Kind: v.Kind, Pos: ph.Pos}
	}
	return v.String(), nil
}

// Placeholders returns the placeholders of text in document order.
func Placeholders(text string) ([]Placeholder, error) {
	segments, err := Parse(text)
	if err != nil {
		return nil, err
	}

	var out []Placeholder
	for _, seg := range segments {
		if seg.Placeholder != nil {
			out = append(out, *seg.Placeholder)
		}
	}
	return out, nil
}

// Unresolved reports every placeholder in text that doc cannot satisfy,
// each as a *MissingKeyError or *NonScalarError. Unlike Render it does not
// stop at the first failure.
func Unresolved(text string, doc *env.Document) ([]error, error) {
	placeholders, err := Placeholders(text)
	if err != nil {
		return nil, err
	}

	var problems []error
	for i := range placeholders {
		if _, err := lookup(&placeholders[i], doc); err != nil {
			problems = append(problems, err)
		}
	}
	return problems, nil
}
