package catalog

import "fmt"

// RequestNotFoundError is returned when no request has the given name.
type RequestNotFoundError struct {
	Name string
}

func (e *RequestNotFoundError) Error() string {
	return fmt.Sprintf("request not found: %s", e.Name)
}

// EnvNotFoundError is returned when no environment has the given name.
type EnvNotFoundError struct {
	Name string
}

func (e *EnvNotFoundError) Error() string {
	return fmt.Sprintf("environment not found: %s", e.Name)
}
