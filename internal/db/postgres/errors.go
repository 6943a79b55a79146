package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Shibaboard/internal/core/store"
)

// transientClasses are the pq error classes that indicate a retryable store
// failure rather than a bug or bad input: connection exceptions (08),
// transaction rollbacks such as serialization failures and deadlocks (40),
// resource exhaustion (53) and operator intervention (57)
var transientClasses = map[string]struct{}{
	"08": {},
	"40": {},
	"53": {},
	"57": {},
}

// wrapErr wraps a driver error for the given operation, translating
// transient failures into store.ErrUnavailable so callers can offer a
// retry without ever leaking driver internals
func wrapErr(op string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("failed to %s: %w", op, store.ErrUnavailable)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func isTransient(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		_, ok := transientClasses[string(pqErr.Code.Class())]
		return ok
	}
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded)
}
