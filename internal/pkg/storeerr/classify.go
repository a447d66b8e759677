// Package storeerr translates data store failures into the errs taxonomy so
// callers above the adapters never inspect driver errors.
package storeerr

import (
	"context"
	"errors"
	"fmt"

	"cafe/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes that describe a conflicting write rather than a broken store.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// ErrCorruptData marks stored rows the domain refuses to restore, such as a
// negative price. It is a store fault, never a caller mistake, and repeating
// the read does not help.
var ErrCorruptData = errors.New("stored data is inconsistent")

// Corrupt reports that the rows read by op could not be restored. The
// domain error is kept as text only, so it cannot be mistaken for invalid
// input of the caller.
func Corrupt(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %s", op, ErrCorruptData, err.Error())
}

// Classify wraps err for operation op:
//   - errors already in the taxonomy are returned unchanged
//   - unique and foreign key violations become errs.ConflictError
//   - everything else, timeouts included, becomes errs.StoreUnavailableError
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isClassified(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation:
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("%s violates %s", op, pgErr.ConstraintName), err)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConflictErrorWithCause(op, err)
	}

	return errs.NewStoreUnavailableError(op, err)
}

// IsTransient reports whether repeating a read may succeed.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return errors.Is(err, errs.ErrStoreUnavailable)
}

func isClassified(err error) bool {
	for _, sentinel := range []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrConflict,
		errs.ErrAccessDenied,
		errs.ErrStoreUnavailable,
		errs.ErrPartialFailure,
		ErrCorruptData,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
