package store

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup by key produces no record.
	ErrNotFound = errors.New("record was not found")

	// ErrListAlreadyExists is returned when a list with the same normalized
	// name already exists on the server.
	ErrListAlreadyExists = errors.New("list already exists")

	// ErrStorageUnavailable wraps every driver-level failure of the client
	// durable store. Callers treat it as recoverable and fall back to the
	// in-memory store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrOperationNotFound is returned when a queued operation referenced by
	// id has already been removed.
	ErrOperationNotFound = errors.New("queued operation was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingPayload is returned when a queued operation payload cannot
	// be encoded or decoded.
	ErrEncodingPayload = errors.New("failed to encode operation payload")
)

// unavailable marks a low-level failure of the durable store as recoverable.
// A cancelled or expired context says nothing about the store and is left
// unmarked.
func unavailable(kind, err error) error {
	if isContextErr(err) {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
