package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

var testItemColumns = []string{"id", "list_id", "name", "amount", "type", "note", "is_bought", "created_at"}

func itemRows(items ...models.Item) *sqlmock.Rows {
	rows := sqlmock.NewRows(testItemColumns)
	for _, item := range items {
		rows.AddRow(item.ID, item.ListID, item.Name, item.Amount, string(item.Type), item.Note, item.IsBought, item.CreatedAt)
	}
	return rows
}

func TestGetItems_OrderedByCreation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery("SELECT .+ FROM items WHERE list_id = \\$1 ORDER BY created_at ASC, id ASC").
		WithArgs("l1").
		WillReturnRows(itemRows(
			models.Item{ID: "i1", ListID: "l1", Name: "Milk", Type: models.ItemTypeDairy, CreatedAt: now},
			models.Item{ID: "i2", ListID: "l1", Name: "Bread", CreatedAt: now.Add(time.Second)},
		))

	items, err := repo.GetItems(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, models.ItemTypeDairy, items[0].Type)
	assert.Equal(t, "i2", items[1].ID)
}

func TestGetItems_EmptyListReturnsEmptySlice(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM items").WithArgs("l1").WillReturnRows(itemRows())

	items, err := repo.GetItems(context.Background(), "l1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetBoughtItems(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM items WHERE is_bought = \\$1 AND list_id = \\$2").
		WithArgs(true, "l1").
		WillReturnRows(itemRows(models.Item{ID: "i1", ListID: "l1", Name: "Milk", IsBought: true}))

	items, err := repo.GetBoughtItems(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsBought)
}

func TestGetItem_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM items WHERE id = \\$1").WithArgs("i1").WillReturnRows(itemRows())

	_, err := repo.GetItem(context.Background(), "i1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetItems_NonRetryableErrorIsNotRepeated(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM items").
		WithArgs("l1").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.GetItems(context.Background(), "l1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateItem(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	now := time.Now()
	item := models.Item{ID: "i1", ListID: "l1", Name: "Milk", Amount: "1L", CreatedAt: now}

	mock.ExpectQuery("INSERT INTO items .+ RETURNING").
		WithArgs("i1", "l1", "Milk", "1L", "", "", false, now).
		WillReturnRows(itemRows(item))

	created, err := repo.CreateItem(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "1L", created.Amount)
}

func TestCreateItem_ForeignKeyViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO items").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateItem(context.Background(), models.Item{ID: "i1", ListID: "missing"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpdateItem(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	bought := true
	name := "Oat milk"
	mock.ExpectQuery("UPDATE items SET is_bought = \\$1, name = \\$2 WHERE id = \\$3 RETURNING").
		WithArgs(true, "Oat milk", "i1").
		WillReturnRows(itemRows(models.Item{ID: "i1", ListID: "l1", Name: name, IsBought: true}))

	updated, err := repo.UpdateItem(context.Background(), "i1", models.ItemUpdate{Name: &name, IsBought: &bought})
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", updated.Name)
	assert.True(t, updated.IsBought)
}

func TestUpdateItem_Missing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	bought := true
	mock.ExpectQuery("UPDATE items").WillReturnRows(itemRows())

	_, err := repo.UpdateItem(context.Background(), "i1", models.ItemUpdate{IsBought: &bought})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItem_EmptyUpdateReadsItem(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM items WHERE id = \\$1").
		WithArgs("i1").
		WillReturnRows(itemRows(models.Item{ID: "i1", Name: "Milk"}))

	item, err := repo.UpdateItem(context.Background(), "i1", models.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Milk", item.Name)
}

func TestDeleteItem(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectQuery("DELETE FROM items WHERE id = \\$1 RETURNING").
		WithArgs("i1").
		WillReturnRows(itemRows(models.Item{ID: "i1"}))
	mock.ExpectQuery("DELETE FROM items").
		WithArgs("i2").
		WillReturnRows(itemRows())

	assert.NoError(t, repo.DeleteItem(context.Background(), "i1"))
	assert.ErrorIs(t, repo.DeleteItem(context.Background(), "i2"), ErrNotFound)
}

func TestDeleteItems(t *testing.T) {
	tests := []struct {
		name       string
		boughtOnly bool
		pattern    string
		args       []driver.Value
	}{
		{name: "bought only", boughtOnly: true, pattern: "DELETE FROM items WHERE is_bought = \\$1 AND list_id = \\$2", args: []driver.Value{true, "l1"}},
		{name: "all", pattern: "DELETE FROM items WHERE list_id = \\$1", args: []driver.Value{"l1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewItemRepository(db, logger.Nop())

			mock.ExpectQuery(tt.pattern).
				WithArgs(tt.args...).
				WillReturnRows(itemRows(models.Item{ID: "i1", ListID: "l1", IsBought: true}))

			deleted, err := repo.DeleteItems(context.Background(), "l1", tt.boughtOnly)
			require.NoError(t, err)
			assert.Len(t, deleted, 1)
		})
	}
}

func TestRestoreItems(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO items .+ ON CONFLICT \\(id\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.RestoreItems(context.Background(), []models.Item{{ID: "i1"}, {ID: "i2"}})
	require.NoError(t, err)

	// nothing to restore → no statement
	require.NoError(t, repo.RestoreItems(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreItems_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewItemRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO items").WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.RestoreItems(context.Background(), []models.Item{{ID: "i1"}}), ErrExecutingQuery)
}
