package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyListName       = errors.New("list name is required")
	ErrListNameTooLong     = errors.New("list name is too long")
	ErrEmptyPassword       = errors.New("password is required")
	ErrInvalidAction       = errors.New("action must be view or edit")
	ErrEmptyItemName       = errors.New("item name is required")
	ErrInvalidItemType     = errors.New("invalid item type")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrInvalidScope        = errors.New("scope must be bought or all")
	ErrInvalidUndoData     = errors.New("invalid undo data")
	ErrInvalidSubscription = errors.New("push subscription endpoint is required")
)
