package catalog

import (
	"github.com/abdul-hamid-achik/reqq/packages/core/env"
)

type EntryKind string

const (
	KindRequest     EntryKind = "request"
	KindEnvironment EntryKind = "environment"
)

// CheckResult is the outcome of validating one catalog entry. Err is nil
// for valid entries.
type CheckResult struct {
	Kind EntryKind
	Name string
	Path string
	Err  error
}

// Validate loads every entry and checks it: templates for placeholder
// syntax, environments for well-formed documents and, when schema is not
// nil, for conformance to the schema. Results follow discovery order,
// requests first.
func (c *Catalog) Validate(schema *env.SchemaValidator) []CheckResult {
	results := make([]CheckResult, 0, len(c.requests)+len(c.envs))

	for _, tmpl := range c.requests {
		res := CheckResult{Kind: KindRequest, Name: tmpl.Name(), Path: tmpl.Path()}
		if err := tmpl.Load(); err != nil {
			res.Err = err
		} else if _, err := tmpl.Placeholders(); err != nil {
			res.Err = err
		}
		results = append(results, res)
	}

	for _, store := range c.envs {
		res := CheckResult{Kind: KindEnvironment, Name: store.Name(), Path: store.Path()}
		res.Err = checkEnvironment(store, schema)
		results = append(results, res)
	}

	return results
}

func checkEnvironment(store *env.Store, schema *env.SchemaValidator) error {
	if err := store.Load(); err != nil {
		return err
	}
	doc, err := store.Data()
	if err != nil {
		return err
	}
	if schema != nil {
		return schema.Validate(doc)
	}
	return nil
}
