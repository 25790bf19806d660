// Package errors provides standardized error handling for codedeck.
// It defines common error types, constants, and helper functions for
// consistent error creation, wrapping, and handling across the
// application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Remote fetch error kinds
	FetchFailed
	NotFound
	RateLimited
	// Content error kinds
	DecodeFailed
	// Config error kinds
	InvalidConfig
	MissingCredentials
	// Execution error kinds
	ExecutionFailed
	UpstreamUnavailable
)

// Common error constants for frequently occurring errors
var (
	ErrNotFound           = NewFetchError("resource not found", "", NotFound, nil)
	ErrMissingCredentials = NewConfigError("execution credentials are not configured", "", MissingCredentials, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FetchError represents errors talking to the repository hosting API
type FetchError struct {
	ApplicationError
	url string
}

// NewFetchError creates a new fetch error
func NewFetchError(msg string, url string, kind ErrorKind, err error) *FetchError {
	return &FetchError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		url: url,
	}
}

// Error returns the fetch error message
func (e *FetchError) Error() string {
	if e.url != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.url, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.url)
	}
	return e.ApplicationError.Error()
}

// URL returns the request URL associated with the error
func (e *FetchError) URL() string {
	return e.url
}

// DecodeError represents errors decoding fetched file content
type DecodeError struct {
	ApplicationError
	path string
}

// NewDecodeError creates a new decode error
func NewDecodeError(msg string, path string, err error) *DecodeError {
	return &DecodeError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: DecodeFailed,
		},
		path: path,
	}
}

// Error returns the decode error message
func (e *DecodeError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *DecodeError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ExecError represents errors from the remote execution service
type ExecError struct {
	ApplicationError
	language string
}

// NewExecError creates a new execution error
func NewExecError(msg string, language string, kind ErrorKind, err error) *ExecError {
	return &ExecError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		language: language,
	}
}

// Error returns the execution error message
func (e *ExecError) Error() string {
	if e.language != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.language, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.language)
	}
	return e.ApplicationError.Error()
}

// Language returns the execution language associated with the error
func (e *ExecError) Language() string {
	return e.language
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsNotFound checks if the error is a not-found fetch error
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind() == NotFound
	}
	return false
}

// IsFetchError checks if the error came from the hosting API
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsDecodeError checks if the error is a content decode error
func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsMissingCredentials checks if the error reports absent execution
// credentials
func IsMissingCredentials(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == MissingCredentials
	}
	return false
}

// IsExecError checks if the error came from the execution service
func IsExecError(err error) bool {
	var execErr *ExecError
	return errors.As(err, &execErr)
}
