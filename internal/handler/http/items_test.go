package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/shopman/internal/app"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetItems(t *testing.T) {
	h, m := newTestHandler(t)

	items := []models.Item{{ID: "a", ListID: "l1", Name: "Milk"}, {ID: "b", ListID: "l1", Name: "Bread"}}
	m.items.EXPECT().GetItems(gomock.Any(), "l1").Return(items, nil)

	rec := serve(t, h, http.MethodGet, "/api/lists/l1/items", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, items, decodeBody[[]models.Item](t, rec))
}

func TestGetItems_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t)
	m.items.EXPECT().GetItems(gomock.Any(), "l1").Return(nil, nil)

	rec := serve(t, h, http.MethodGet, "/api/lists/l1/items", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetItems_ViewProtected(t *testing.T) {
	h, m := newTestHandler(t)
	m.items.EXPECT().GetItems(gomock.Any(), "l1").Return(nil, service.ErrPasswordRequired)

	rec := serve(t, h, http.MethodGet, "/api/lists/l1/items", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgPasswordRequiredToView, errorBody(t, rec))
}

func TestAddItem(t *testing.T) {
	h, m := newTestHandler(t)

	fields := models.ItemFields{Name: "Milk", Amount: "2", Type: models.ItemTypeDairy}
	m.items.EXPECT().AddItem(gomock.Any(), "l1", fields).Return(models.Item{ID: "a", ListID: "l1", Name: "Milk"}, nil)

	rec := serve(t, h, http.MethodPost, "/api/lists/l1/items", models.AddItemRequest{Item: fields})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "a", decodeBody[models.Item](t, rec).ID)
}

func TestAddItem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "edit protected", err: service.ErrPasswordRequired, wantStatus: http.StatusForbidden, wantBody: app.MsgPasswordRequiredToEdit},
		{name: "no name", err: service.ErrEmptyItemName, wantStatus: http.StatusBadRequest, wantBody: app.MsgItemNameRequired},
		{name: "bad type", err: service.ErrInvalidItemType, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidItemType},
		{name: "unknown list", err: store.ErrNotFound, wantStatus: http.StatusNotFound, wantBody: app.MsgListNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.items.EXPECT().AddItem(gomock.Any(), "l1", gomock.Any()).Return(models.Item{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/api/lists/l1/items", models.AddItemRequest{Item: models.ItemFields{Name: "x"}})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rec))
		})
	}
}

func TestUpdateItem(t *testing.T) {
	h, m := newTestHandler(t)

	bought := true
	m.items.EXPECT().
		UpdateItem(gomock.Any(), "a", models.ItemUpdate{IsBought: &bought}).
		Return(models.Item{ID: "a", ListID: "l1", IsBought: true}, nil)

	rec := serve(t, h, http.MethodPatch, "/api/items/a", `{"is_bought":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[models.Item](t, rec).IsBought)
}

func TestUpdateItem_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "not found", err: store.ErrNotFound, wantStatus: http.StatusNotFound, wantBody: app.MsgItemNotFound},
		{name: "forbidden", err: service.ErrPasswordRequired, wantStatus: http.StatusForbidden, wantBody: app.MsgPasswordRequiredToEdit},
		{name: "nothing to update", err: service.ErrNoUpdatesProvided, wantStatus: http.StatusBadRequest, wantBody: app.MsgNoUpdatesProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.items.EXPECT().UpdateItem(gomock.Any(), "a", gomock.Any()).Return(models.Item{}, tt.err)

			rec := serve(t, h, http.MethodPatch, "/api/items/a", `{}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rec))
		})
	}
}

func TestDeleteItem(t *testing.T) {
	h, m := newTestHandler(t)

	m.items.EXPECT().DeleteItem(gomock.Any(), "a").Return(nil)
	m.items.EXPECT().DeleteItem(gomock.Any(), "b").Return(store.ErrNotFound)

	rec := serve(t, h, http.MethodDelete, "/api/items/a", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/items/b", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgItemNotFound, errorBody(t, rec))
}
