package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/reqq/packages/core/catalog"
	"github.com/abdul-hamid-achik/reqq/packages/history"
)

// Execution is the result of resolving one request.
type Execution struct {
	Request     string
	Environment string
	Text        string
	Duration    time.Duration
}

// Formatter renders command results.
type Formatter interface {
	FormatNames(kind string, names []string)
	FormatExecution(e *Execution)
	FormatInspection(ins *catalog.Inspection)
	FormatValidation(results []catalog.CheckResult)
	FormatHistory(entries []history.Entry)
	FormatError(err error)
}

// New returns the formatter for format ("console" or "json").
func New(format string, opts ...Option) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return NewConsoleFormatter(opts...), nil
	case "json":
		return NewJSONFormatter(opts...), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console or json)", format)
	}
}
