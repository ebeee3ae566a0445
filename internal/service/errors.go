package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for well-formed input that matches no catalog
// entry or stored row, so handlers can respond with 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports input rejected before any external call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// UpstreamError carries a failure from the payment processor or the backend
// with the status and message it reported.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ConfigurationError means a required secret or setting is missing.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration %s", e.Setting)
}
