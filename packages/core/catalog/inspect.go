package catalog

import (
	"errors"

	"github.com/abdul-hamid-achik/reqq/packages/core/request"
)

// Coverage describes how well one environment satisfies a template.
type Coverage struct {
	Environment string
	Missing     []string
	NonScalar   []string
	// Err is set when the environment itself could not be loaded or parsed.
	Err error
}

// Complete reports whether the template resolves cleanly in this environment.
func (c Coverage) Complete() bool {
	return c.Err == nil && len(c.Missing) == 0 && len(c.NonScalar) == 0
}

// Inspection summarises the placeholders of one request.
type Inspection struct {
	Request  string
	Path     string
	Keys     []string
	Coverage []Coverage
}

// Inspect loads the named request and reports its placeholder keys and,
// for every environment, which keys cannot be resolved.
func (c *Catalog) Inspect(requestName string) (*Inspection, error) {
	tmpl, err := c.Request(requestName)
	if err != nil {
		return nil, err
	}
	if err := tmpl.Load(); err != nil {
		return nil, err
	}

	placeholders, err := tmpl.Placeholders()
	if err != nil {
		return nil, err
	}

	ins := &Inspection{
		Request: requestName,
		Path:    tmpl.Path(),
		Keys:    uniqueKeys(placeholders),
	}

	for _, store := range c.envs {
		cov := Coverage{Environment: store.Name()}

		problems, err := tmpl.Unresolved(store)
		if err != nil {
			cov.Err = err
			ins.Coverage = append(ins.Coverage, cov)
			continue
		}

		for _, p := range problems {
			var missing *request.MissingKeyError
			var nonScalar *request.NonScalarError
			switch {
			case errors.As(p, &missing):
				cov.Missing = appendUnique(cov.Missing, missing.Key)
			case errors.As(p, &nonScalar):
				cov.NonScalar = appendUnique(cov.NonScalar, nonScalar.Key)
			}
		}
		ins.Coverage = append(ins.Coverage, cov)
	}

	return ins, nil
}

func uniqueKeys(placeholders []request.Placeholder) []string {
	var keys []string
	for _, ph := range placeholders {
		keys = appendUnique(keys, ph.Key)
	}
	return keys
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
