package service

import "errors"

// Validation errors. They are surfaced immediately and never queued.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyListName       = errors.New("list name is required")
	ErrListNameTooLong     = errors.New("list name is too long")
	ErrEmptyItemName       = errors.New("item name is required")
	ErrInvalidItemType     = errors.New("invalid item type")
	ErrNoUpdatesProvided   = errors.New("no item updates provided")
	ErrInvalidAction       = errors.New("invalid access action")
	ErrInvalidScope        = errors.New("invalid bulk scope")
	ErrInvalidUndoData     = errors.New("invalid undo data")
	ErrNothingToArchive    = errors.New("no bought items to archive")
	ErrInvalidSubscription = errors.New("invalid push subscription")
	ErrNoListSelected      = errors.New("no list selected")
)

// Permission errors.
var (
	// ErrPasswordRequired is returned when the list demands a password for
	// the attempted action and no valid access token is held.
	ErrPasswordRequired = errors.New("password required")

	// ErrWrongPassword is returned when the list password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// validation or belongs to another list.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Sync errors delivered through confirmations.
var (
	// ErrRetriesExhausted is returned when a queued operation failed on every
	// attempt and was dropped. The affected item is marked as failed.
	ErrRetriesExhausted = errors.New("operation dropped after exhausting retries")

	// ErrOperationDiscarded is returned when a queued operation was removed
	// before it reached the Remote Authority, because its item was deleted.
	ErrOperationDiscarded = errors.New("operation discarded")

	// ErrOffline is returned by operations that need the Remote Authority
	// while it is unreachable.
	ErrOffline = errors.New("remote authority is unreachable")
)

// Server errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("failed to create access token")
	ErrHashingPassword       = errors.New("failed to hash password")
)
