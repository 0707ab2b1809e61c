package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/reqq/packages/core/catalog"
	"github.com/abdul-hamid-achik/reqq/packages/core/env"
	"github.com/abdul-hamid-achik/reqq/packages/core/request"
	"github.com/abdul-hamid-achik/reqq/packages/core/source"
)

// Exit codes for reqq CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitFailure indicates a failure without a more specific code,
	// including failed validation
	ExitFailure = 1

	// ExitMalformedTemplate indicates invalid placeholder syntax
	ExitMalformedTemplate = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNotFound indicates an unknown request or environment name
	ExitNotFound = 4

	// ExitReadError indicates a template or environment file could not be read
	ExitReadError = 5

	// ExitParseError indicates an environment document is not valid
	ExitParseError = 6

	// ExitUnresolved indicates a placeholder key is missing or not a scalar
	ExitUnresolved = 7

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// configError marks failures to load configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return "config: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// usageError marks invalid command-line usage detected by a command.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// exitCode maps an error to the process exit code for its kind.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		cfgErr       *configError
		usageErr     *usageError
		malformedErr *request.MalformedError
		missingErr   *request.MissingKeyError
		nonScalarErr *request.NonScalarError
		reqNotFound  *catalog.RequestNotFoundError
		envNotFound  *catalog.EnvNotFoundError
		readErr      *source.ReadError
		parseErr     *env.ParseError
	)

	switch {
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.As(err, &malformedErr):
		return ExitMalformedTemplate
	case errors.As(err, &reqNotFound), errors.As(err, &envNotFound):
		return ExitNotFound
	case errors.As(err, &readErr):
		return ExitReadError
	case errors.As(err, &parseErr):
		return ExitParseError
	case errors.As(err, &missingErr), errors.As(err, &nonScalarErr):
		return ExitUnresolved
	default:
		return ExitFailure
	}
}
