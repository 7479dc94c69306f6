// Package apperrors defines the error kinds shared by the upstream
// provider clients, the normalizing services, and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure from an upstream provider or from local
// configuration checks.
type Kind int

const (
	// KindUnavailable covers any non-success upstream response that is
	// not more specifically classified.
	KindUnavailable Kind = iota

	// KindUnauthorized indicates a bad or rejected credential (HTTP 401
	// from a provider).
	KindUnauthorized

	// KindNotFound indicates the upstream reports no such symbol,
	// location, or coin.
	KindNotFound

	// KindNetwork indicates a transport-level failure, e.g. no
	// connectivity. It is a subtype of unavailability that callers may
	// want to surface differently.
	KindNetwork

	// KindConfiguration indicates a required credential is absent. It is
	// detected before any call is attempted.
	KindConfiguration
)

// Error is the error type returned by provider clients and services.
// Message is user-facing; Err is the wrapped cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with a user-facing message and no cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error carrying a wrapped cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Errors that are not
// *Error default to KindUnavailable.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// UserMessage extracts the user-facing message from an error chain,
// falling back to the plain error text.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsNotFound reports whether the error chain carries KindNotFound.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsUnauthorized reports whether the error chain carries KindUnauthorized.
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }

// IsConfiguration reports whether the error chain carries KindConfiguration.
func IsConfiguration(err error) bool { return isKind(err, KindConfiguration) }

// IsNetwork reports whether the error chain carries KindNetwork.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

func isKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Domain entity errors represent missing or invalid lookups in the
// working set. These errors indicate that a requested record does not
// exist locally, as opposed to an upstream NotFound.
var (
	// ErrAssetNotFound indicates that a symbol is not in the working set.
	ErrAssetNotFound = errors.New("asset not found in working set")

	// ErrLocationNotFound indicates that a location ID is not in the
	// working set.
	ErrLocationNotFound = errors.New("location not found in working set")
)

// Validation errors for required request fields.
var (
	ErrInvalidSymbol    = errors.New("symbol is required")
	ErrInvalidAssetType = errors.New("type must be stock or crypto")
	ErrInvalidQuery     = errors.New("query is required")
	ErrInvalidSortKey   = errors.New("sort key must be name, price, change or marketcap")
)
