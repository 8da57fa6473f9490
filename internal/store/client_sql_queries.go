// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/models"
)

const (
	localListsTable = "lists"
	localItemsTable = "items"
	localQueueTable = "sync_queue"
)

var localBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var localListColumns = []string{
	"id",
	"name",
	"name_lowercase",
	"has_password",
	"view_requires_password",
	"edit_requires_password",
	"created_at",
	"is_followed",
	"followed_at",
	"notifications_enabled",
	"saved_password",
	"push_subscription",
	"sync_status",
	"last_modified",
}

var localItemColumns = []string{
	"id",
	"list_id",
	"name",
	"amount",
	"type",
	"note",
	"is_bought",
	"created_at",
	"sync_status",
}

var localOperationColumns = []string{
	"id",
	"kind",
	"payload",
	"timestamp",
	"retries",
}

func buildSelectLocalListsQuery(where sq.Sqlizer) (string, []any, error) {
	query := localBuilder.
		Select(localListColumns...).
		From(localListsTable).
		OrderBy("created_at", "id")
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}

// buildPutLocalListQuery builds an idempotent upsert of list.
func buildPutLocalListQuery(list models.List) (string, []any, error) {
	var pushSubscription string
	if list.PushSubscription != nil {
		raw, err := json.Marshal(list.PushSubscription)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		pushSubscription = string(raw)
	}

	var followedAt any
	if list.FollowedAt != nil {
		followedAt = list.FollowedAt.UTC()
	}

	status := list.SyncStatus
	if status == "" {
		status = models.SyncStatusSynced
	}

	return localBuilder.
		Replace(localListsTable).
		Columns(localListColumns...).
		Values(
			list.ID,
			list.Name,
			models.NormalizeListName(list.Name),
			list.HasPassword,
			list.ViewRequiresPassword,
			list.EditRequiresPassword,
			list.CreatedAt.UTC(),
			list.IsFollowed,
			followedAt,
			list.NotificationsEnabled,
			list.SavedPassword,
			pushSubscription,
			string(status),
			list.LastModified.UTC(),
		).
		ToSql()
}

func buildSelectLocalItemsQuery(where sq.Sqlizer) (string, []any, error) {
	query := localBuilder.
		Select(localItemColumns...).
		From(localItemsTable).
		OrderBy("created_at", "id")
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}

// buildPutLocalItemsQuery builds one multi-row upsert for items.
func buildPutLocalItemsQuery(items []models.Item) (string, []any, error) {
	query := localBuilder.
		Replace(localItemsTable).
		Columns(localItemColumns...)

	for _, item := range items {
		status := item.SyncStatus
		if status == "" {
			status = models.SyncStatusSynced
		}
		query = query.Values(
			item.ID,
			item.ListID,
			item.Name,
			item.Amount,
			string(item.Type),
			item.Note,
			item.IsBought,
			item.CreatedAt.UTC(),
			string(status),
		)
	}

	return query.ToSql()
}

func buildDeleteLocalItemsQuery(where sq.Sqlizer) (string, []any, error) {
	return localBuilder.Delete(localItemsTable).Where(where).ToSql()
}

func buildSelectOperationsQuery(where sq.Sqlizer) (string, []any, error) {
	query := localBuilder.
		Select(localOperationColumns...).
		From(localQueueTable).
		OrderBy("id")
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}

func buildInsertOperationQuery(payload models.OperationPayload, at time.Time) (string, []any, error) {
	kind, raw, err := models.EncodePayload(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return localBuilder.
		Insert(localQueueTable).
		Columns("kind", "target_id", "payload", "timestamp", "retries").
		Values(string(kind), payload.TargetID(), string(raw), at.UTC(), 0).
		ToSql()
}

func buildUpdateOperationPayloadQuery(operationID int64, payload models.OperationPayload) (string, []any, error) {
	_, raw, err := models.EncodePayload(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return localBuilder.
		Update(localQueueTable).
		Set("target_id", payload.TargetID()).
		Set("payload", string(raw)).
		Where(sq.Eq{"id": operationID}).
		ToSql()
}
