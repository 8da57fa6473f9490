// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Remote Authority Client: the thin request
// layer between the shopman client and the backend.
//
// The primary abstraction is [RemoteAuthority], which decouples the sync
// engine and client services from the underlying protocol. The package ships
// an HTTP/JSON implementation ([NewHTTPRemoteAuthority]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrConflict] for 409).
// Transport failures are wrapped with [ErrNetwork]; [IsTransient] tells the
// sync engine which failures are worth retrying.
package adapter

import (
	"context"

	"github.com/MKhiriev/shopman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_authority_mock.go -package=mock

// RemoteAuthority is the backend as seen by the client. Every list-scoped
// call accepts an optional bearer token obtained from VerifyPassword; an
// empty token sends no Authorization header.
type RemoteAuthority interface {
	// Ping checks that the backend is reachable. It drives the
	// connectivity monitor.
	Ping(ctx context.Context) error

	// Version returns the build of the running backend.
	Version(ctx context.Context) (models.VersionResponse, error)

	// GetListByName looks a list up by its normalized name. Returns
	// [ErrNotFound] (wrapped) when no list has that name.
	GetListByName(ctx context.Context, nameLowercase string) (models.List, error)

	// CreateList creates a list. Returns [ErrConflict] when the name is
	// taken and [ErrBadRequest] on validation failures.
	CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error)

	// VerifyPassword exchanges a list password for an access token.
	// Returns [ErrUnauthorized] for a wrong password.
	VerifyPassword(ctx context.Context, listID string, req models.VerifyPasswordRequest) (string, error)

	UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest, token string) error
	DeleteList(ctx context.Context, listID string, req models.DeleteListRequest, token string) error

	// GetItems returns the items of a list ordered by creation time.
	GetItems(ctx context.Context, listID, token string) ([]models.Item, error)
	AddItem(ctx context.Context, listID string, fields models.ItemFields, token string) (models.Item, error)
	// UpdateItem applies a partial update. A toggle is an update of the
	// bought flag alone.
	UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate, token string) (models.Item, error)
	DeleteItem(ctx context.Context, itemID, token string) error

	ArchiveBought(ctx context.Context, listID, token string) (models.BulkResult, error)
	DeleteItems(ctx context.Context, listID string, scope models.BulkScope, token string) (models.BulkResult, error)
	GetArchives(ctx context.Context, listID, token string) ([]models.Archive, error)
	DeleteArchive(ctx context.Context, listID, archiveID, token string) (models.BulkResult, error)
	Undo(ctx context.Context, listID string, undo models.UndoData, token string) (models.UndoResult, error)

	Subscribe(ctx context.Context, listID string, sub models.PushSubscription, token string) error
	Unsubscribe(ctx context.Context, listID, endpoint, token string) error
}
