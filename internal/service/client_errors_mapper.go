// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/shopman/internal/adapter"
	"github.com/MKhiriev/shopman/internal/app"
	"github.com/MKhiriev/shopman/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgListNameRequired:
			return ErrEmptyListName
		case app.MsgListNameTooLong:
			return ErrListNameTooLong
		case app.MsgItemNameRequired:
			return ErrEmptyItemName
		case app.MsgInvalidItemType:
			return ErrInvalidItemType
		case app.MsgNoUpdatesProvided:
			return ErrNoUpdatesProvided
		case app.MsgInvalidAction:
			return ErrInvalidAction
		case app.MsgInvalidScope:
			return ErrInvalidScope
		case app.MsgNoBoughtItems:
			return ErrNothingToArchive
		case app.MsgInvalidUndoData:
			return ErrInvalidUndoData
		case app.MsgInvalidSubscription:
			return ErrInvalidSubscription
		case app.MsgPasswordRequired:
			return ErrPasswordRequired
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongPassword

	case errors.Is(err, adapter.ErrForbidden):
		return ErrPasswordRequired

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrListAlreadyExists
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
