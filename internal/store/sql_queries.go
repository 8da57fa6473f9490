package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/models"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var listColumns = []string{
	"id",
	"name",
	"name_lowercase",
	"password_hash IS NOT NULL",
	"view_requires_password",
	"edit_requires_password",
	"created_at",
}

var itemColumns = []string{
	"id",
	"list_id",
	"name",
	"amount",
	"type",
	"note",
	"is_bought",
	"created_at",
}

var archiveColumns = []string{
	"id",
	"list_id",
	"items",
	"archived_at",
	"created_at",
}

const returningItem = "RETURNING id, list_id, name, amount, type, note, is_bought, created_at"

func buildInsertListQuery(list models.List, passwordHash string) (string, []any, error) {
	var hash any
	if passwordHash != "" {
		hash = passwordHash
	}

	return pgBuilder.
		Insert("lists").
		Columns("id", "name", "name_lowercase", "password_hash", "view_requires_password", "edit_requires_password", "created_at").
		Values(list.ID, list.Name, models.NormalizeListName(list.Name), hash, list.ViewRequiresPassword, list.EditRequiresPassword, list.CreatedAt).
		Suffix("RETURNING id, name, name_lowercase, password_hash IS NOT NULL, view_requires_password, edit_requires_password, created_at").
		ToSql()
}

func buildSelectListQuery(where sq.Sqlizer) (string, []any, error) {
	return pgBuilder.Select(listColumns...).From("lists").Where(where).ToSql()
}

func buildUpdatePasswordQuery(listID, passwordHash string, viewRequires, editRequires bool) (string, []any, error) {
	var hash any
	if passwordHash != "" {
		hash = passwordHash
	}

	return pgBuilder.
		Update("lists").
		Set("password_hash", hash).
		Set("view_requires_password", viewRequires).
		Set("edit_requires_password", editRequires).
		Where(sq.Eq{"id": listID}).
		ToSql()
}

func buildSelectItemsQuery(where sq.Sqlizer) (string, []any, error) {
	return pgBuilder.
		Select(itemColumns...).
		From("items").
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildInsertItemQuery(item models.Item) (string, []any, error) {
	return pgBuilder.
		Insert("items").
		Columns(itemColumns...).
		Values(item.ID, item.ListID, item.Name, item.Amount, string(item.Type), item.Note, item.IsBought, item.CreatedAt).
		Suffix(returningItem).
		ToSql()
}

// buildUpdateItemQuery builds an UPDATE touching only the non-nil fields of
// update.
func buildUpdateItemQuery(itemID string, update models.ItemUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty update", ErrBuildingSQLQuery)
	}

	set := sq.Eq{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Amount != nil {
		set["amount"] = *update.Amount
	}
	if update.Type != nil {
		set["type"] = string(*update.Type)
	}
	if update.Note != nil {
		set["note"] = *update.Note
	}
	if update.IsBought != nil {
		set["is_bought"] = *update.IsBought
	}

	return pgBuilder.
		Update("items").
		SetMap(set).
		Where(sq.Eq{"id": itemID}).
		Suffix(returningItem).
		ToSql()
}

func buildDeleteItemsQuery(where sq.Sqlizer) (string, []any, error) {
	return pgBuilder.Delete("items").Where(where).Suffix(returningItem).ToSql()
}

// buildRestoreItemsQuery builds a multi-row upsert by item id.
func buildRestoreItemsQuery(items []models.Item) (string, []any, error) {
	query := pgBuilder.Insert("items").Columns(itemColumns...)
	for _, item := range items {
		query = query.Values(item.ID, item.ListID, item.Name, item.Amount, string(item.Type), item.Note, item.IsBought, item.CreatedAt)
	}

	return query.
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			amount = EXCLUDED.amount,
			type = EXCLUDED.type,
			note = EXCLUDED.note,
			is_bought = EXCLUDED.is_bought`).
		ToSql()
}

func buildInsertArchiveQuery(archive models.Archive, onConflictDoNothing bool) (string, []any, error) {
	items, err := json.Marshal(archive.Items)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query := pgBuilder.
		Insert("archives").
		Columns(archiveColumns...).
		Values(archive.ID, archive.ListID, string(items), archive.ArchivedAt, archive.CreatedAt)
	if onConflictDoNothing {
		query = query.Suffix("ON CONFLICT (id) DO NOTHING")
	}

	return query.ToSql()
}

func buildSelectArchivesQuery(where sq.Sqlizer) (string, []any, error) {
	return pgBuilder.
		Select(archiveColumns...).
		From("archives").
		Where(where).
		OrderBy("archived_at DESC").
		ToSql()
}
