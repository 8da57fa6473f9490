// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Archive is a snapshot of bought items moved out of a list.
type Archive struct {
	ID         string    `json:"id"`
	ListID     string    `json:"list_id"`
	Items      []Item    `json:"items"`
	ArchivedAt time.Time `json:"archived_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// UndoType names the bulk action an [UndoData] reverts.
type UndoType string

const (
	UndoArchive       UndoType = "archive"
	UndoDeleteBought  UndoType = "delete_bought"
	UndoDeleteAll     UndoType = "delete_all"
	UndoDeleteArchive UndoType = "delete_archive"
)

// UndoData is returned by bulk actions and can be sent back to revert them.
type UndoData struct {
	Type    UndoType `json:"type"`
	Items   []Item   `json:"items,omitempty"`
	Archive *Archive `json:"archive,omitempty"`
}

// Valid reports whether u carries what its type needs to be reverted.
func (u UndoData) Valid() bool {
	switch u.Type {
	case UndoArchive, UndoDeleteBought, UndoDeleteAll:
		return u.Items != nil
	case UndoDeleteArchive:
		return u.Archive != nil
	default:
		return false
	}
}

// BulkResult is the response of archive and bulk delete actions.
type BulkResult struct {
	Success      bool     `json:"success"`
	Archive      *Archive `json:"archive,omitempty"`
	DeletedCount int      `json:"deleted_count,omitempty"`
	UndoData     UndoData `json:"undo_data"`
}

// UndoResult is the response of an undo call.
type UndoResult struct {
	Success       bool `json:"success"`
	RestoredCount int  `json:"restored_count,omitempty"`
}

// UndoRequest is the body of an undo call.
type UndoRequest struct {
	UndoData UndoData `json:"undo_data"`
}
