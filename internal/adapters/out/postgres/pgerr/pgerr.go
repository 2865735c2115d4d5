// Package pgerr translates PostgreSQL driver errors into the errs taxonomy.
package pgerr

import (
	"errors"

	"deliveryhub/internal/pkg/errs"

	"github.com/lib/pq"
)

// ForeignKeyViolation is raised when a referenced row is deleted or a
// referencing row points at nothing.
const ForeignKeyViolation = pq.ErrorCode("23503")

// IsForeignKeyViolation reports whether err carries SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == ForeignKeyViolation
}

// Translate turns a foreign key violation into an errs.ConflictError with the given reason.
// Other errors are returned unchanged.
func Translate(err error, reason string) error {
	if IsForeignKeyViolation(err) {
		return errs.NewConflictErrorWithCause(reason, err)
	}
	return err
}
