package store

import "errors"

// ErrUnavailable indicates the underlying store could not service the request
// (connection failure, serialization abort, resource exhaustion). All mutations
// run as single transactions, so the whole operation is safe to retry.
var ErrUnavailable = errors.New("store temporarily unavailable")

// IsUnavailable checks if an error is a transient store failure
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
