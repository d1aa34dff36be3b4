package postgres

import (
	"errors"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// translateStoreError maps driver-level failures onto the domain taxonomy.
// Unique violations become duplicate-resource errors, foreign key violations
// become in-use errors, serialization conflicts and deadlocks become
// retryable transient errors, everything else passes through wrapped by the
// caller.
func translateStoreError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return &domain.DuplicateResourceError{Msg: "resource already exists"}
	case pgForeignKeyViolation:
		return &domain.ResourceInUseError{Msg: "resource is still referenced by other records"}
	case pgSerializationFailure, pgDeadlockDetected:
		return &domain.TransientStoreError{Msg: "store conflict, retry the operation"}
	default:
		return err
	}
}
