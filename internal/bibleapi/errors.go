package bibleapi

import (
	"errors"
	"fmt"
)

// ErrorKind partitions fetch failures. Every failure crossing the package
// boundary is a *FetchError carrying one of these kinds.
type ErrorKind string

const (
	// KindNetwork covers connect, read and timeout failures.
	KindNetwork ErrorKind = "network"
	// KindServer covers non-2xx responses; StatusCode carries the status.
	KindServer ErrorKind = "server"
	// KindParse covers malformed bodies or missing JSON fields.
	KindParse ErrorKind = "parse"
)

// FetchError is the only error type returned by the client. Callers treat
// fetches as best-effort, so the kind mostly matters for logging.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("bibleapi: server returned status %d", e.StatusCode)
	case KindParse:
		return fmt.Sprintf("bibleapi: parse response: %v", e.Err)
	default:
		return fmt.Sprintf("bibleapi: network failure: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a transport-level fetch failure.
func IsNetworkError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindNetwork
}

// IsServerError reports whether err is a non-2xx response.
func IsServerError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindServer
}

// IsParseError reports whether err is a malformed-response failure.
func IsParseError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindParse
}
