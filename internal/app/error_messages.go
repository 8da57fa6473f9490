// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// shopman backend handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// the {"error": "..."} bodies of HTTP responses. The client matches on the
// same constants to turn a response back into a service error, so the wording
// must stay identical on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid request body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgListNameRequired is returned when a list is created without a name.
	MsgListNameRequired = "List name is required"

	// MsgListNameTooLong is returned when a list name exceeds the maximum
	// length.
	MsgListNameTooLong = "List name must be 100 characters or less"

	// MsgListAlreadyExists is returned when the normalized name is taken.
	MsgListAlreadyExists = "A list with this name already exists"

	// MsgListNotFound is returned when a list lookup produces no record.
	MsgListNotFound = "List not found"

	// MsgPasswordRequiredToView is returned when a view-protected list is
	// read without a valid view or edit token.
	MsgPasswordRequiredToView = "Password required to view this list"

	// MsgPasswordRequiredToEdit is returned when an edit-protected list is
	// modified without a valid edit token.
	MsgPasswordRequiredToEdit = "Password required to edit this list"

	// MsgPasswordRequired is returned when the list password is missing from
	// a request that always needs it (changing or deleting a protected list).
	MsgPasswordRequired = "Password is required"

	// MsgIncorrectPassword is returned when the supplied list password does
	// not match.
	MsgIncorrectPassword = "Incorrect password"

	// MsgInvalidAction is returned when a token is requested for an action
	// other than view or edit.
	MsgInvalidAction = "Action must be 'view' or 'edit'"

	// MsgItemNameRequired is returned when an item is added without a name.
	MsgItemNameRequired = "Item name is required"

	// MsgInvalidItemType is returned for an unknown item category.
	MsgInvalidItemType = "Invalid item type"

	// MsgNoUpdatesProvided is returned when an item update changes nothing.
	MsgNoUpdatesProvided = "Item ID and updates are required"

	// MsgItemNotFound is returned when an item lookup produces no record.
	MsgItemNotFound = "Item not found"

	// MsgNoBoughtItems is returned when archiving a list with nothing bought.
	MsgNoBoughtItems = "No bought items to archive"

	// MsgArchiveNotFound is returned when an archive lookup produces no
	// record.
	MsgArchiveNotFound = "Archive not found"

	// MsgInvalidScope is returned for a bulk delete scope other than
	// bought or all.
	MsgInvalidScope = "Scope must be 'bought' or 'all'"

	// MsgInvalidUndoData is returned when an undo payload cannot be applied.
	MsgInvalidUndoData = "Invalid undo data"

	// MsgInvalidSubscription is returned when a push subscription has no
	// endpoint.
	MsgInvalidSubscription = "Valid subscription object is required"
)
