package paramstore

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrefix is returned when a resolution is attempted with an
	// empty path prefix (or one that is empty after trimming its trailing
	// separator). The prefix doubles as the key-stripping length, so an
	// empty one would produce nonsense keys.
	ErrEmptyPrefix = errors.New("path prefix is empty")

	// ErrNoPrefixes is returned by [Resolver.ResolveOverlays] when called
	// without any path prefixes.
	ErrNoPrefixes = errors.New("at least one path prefix is required")

	// ErrPrefixMismatch indicates that the store returned a parameter whose
	// name does not start with the requested prefix plus separator. It is
	// only surfaced when the resolver runs with [WithStrictPrefix];
	// otherwise such parameters are skipped.
	ErrPrefixMismatch = errors.New("parameter name does not match path prefix")
)

// Kind classifies a resolution failure into one of the two failure domains a
// caller can meaningfully react to.
type Kind int

const (
	// KindFetch covers everything that went wrong talking to the remote
	// parameter store: authentication, permissions, throttling, network
	// failures, malformed requests. Connectivity-class problems.
	KindFetch Kind = iota + 1

	// KindDecode covers failures turning the fetched values into the
	// target struct: a missing required field, a value that cannot be
	// coerced to the field's type. Configuration-shape problems.
	KindDecode
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the single error type returned by every resolution operation,
// regardless of which internal stage failed. The underlying cause is
// preserved verbatim and reachable through [errors.Is] and [errors.As], so
// callers can still match on store-specific error types when they need to.
type Error struct {
	// Kind tells which failure domain produced the error.
	Kind Kind

	// Err is the underlying error, unmodified.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("paramstore: %s: %s", e.Kind, e.Err)
}

// Unwrap exposes the underlying error to the errors package helpers.
func (e *Error) Unwrap() error {
	return e.Err
}

func newFetchError(err error) *Error {
	return &Error{Kind: KindFetch, Err: err}
}

func newDecodeError(err error) *Error {
	return &Error{Kind: KindDecode, Err: err}
}

// IsFetchError reports whether err is (or wraps) a [*Error] of [KindFetch].
func IsFetchError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindFetch
}

// IsDecodeError reports whether err is (or wraps) a [*Error] of [KindDecode].
func IsDecodeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindDecode
}
