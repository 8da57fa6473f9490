package http

import (
	"fmt"
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

// ── GET /api/lists ──

func TestGetListByName(t *testing.T) {
	h, m := newTestHandler(t)

	list := models.List{ID: "l1", Name: "Family", NameLowercase: "family", HasPassword: true, SavedPassword: "c2VjcmV0"}
	m.lists.EXPECT().GetListByName(gomock.Any(), "family").Return(list, nil)

	rec := serve(t, h, http.MethodGet, "/api/lists?name=family", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "l1", got["id"])
	assert.Equal(t, true, got["has_password"])
	// локальные поля не уходят в ответ
	assert.NotContains(t, got, "SavedPassword")
	assert.NotContains(t, got, "password_hash")
}

func TestGetListByName_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "not found", err: fmt.Errorf("list search by name failed: %w", store.ErrNotFound), wantStatus: http.StatusNotFound, wantBody: app.MsgListNotFound},
		{name: "empty name", err: service.ErrEmptyListName, wantStatus: http.StatusBadRequest, wantBody: app.MsgListNameRequired},
		{name: "storage failure", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantBody: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.lists.EXPECT().GetListByName(gomock.Any(), "x").Return(models.List{}, tt.err)

			rec := serve(t, h, http.MethodGet, "/api/lists?name=x", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rec))
		})
	}
}

// ── POST /api/lists ──

func TestCreateList(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.CreateListRequest{Name: "Family", Password: "secret", EditRequiresPassword: true}
	m.lists.EXPECT().CreateList(gomock.Any(), req).Return(models.List{ID: "l1", Name: "Family", HasPassword: true, EditRequiresPassword: true}, nil)

	rec := serve(t, h, http.MethodPost, "/api/lists", req)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[models.List](t, rec)
	assert.Equal(t, "l1", got.ID)
	assert.True(t, got.EditRequiresPassword)
}

func TestCreateList_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "name taken", err: fmt.Errorf("list creation ended with error: %w", store.ErrListAlreadyExists), wantStatus: http.StatusConflict, wantBody: app.MsgListAlreadyExists},
		{name: "name too long", err: service.ErrListNameTooLong, wantStatus: http.StatusBadRequest, wantBody: app.MsgListNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.lists.EXPECT().CreateList(gomock.Any(), gomock.Any()).Return(models.List{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/api/lists", models.CreateListRequest{Name: "Family"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rec))
		})
	}
}

func TestCreateList_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodPost, "/api/lists", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, errorBody(t, rec))
}

// ── POST /api/lists/{listID}/verify ──

func TestVerifyPassword(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.VerifyPasswordRequest{Password: "secret", Action: models.AccessEdit}
	m.lists.EXPECT().VerifyPassword(gomock.Any(), "l1", req).Return(models.AccessToken{ListID: "l1", Action: models.AccessEdit, Token: "jwt"}, nil)

	rec := serve(t, h, http.MethodPost, "/api/lists/l1/verify", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VerifyPasswordResponse{Success: true, Token: "jwt"}, decodeBody[models.VerifyPasswordResponse](t, rec))
}

func TestVerifyPassword_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantBody: app.MsgIncorrectPassword},
		{name: "invalid action", err: service.ErrInvalidAction, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidAction},
		{name: "unknown list", err: store.ErrNotFound, wantStatus: http.StatusNotFound, wantBody: app.MsgListNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.lists.EXPECT().VerifyPassword(gomock.Any(), "l1", gomock.Any()).Return(models.AccessToken{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/api/lists/l1/verify", models.VerifyPasswordRequest{Password: "x", Action: models.AccessView})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, errorBody(t, rec))
		})
	}
}

// ── PUT /api/lists/{listID}/password, DELETE /api/lists/{listID} ──

func TestUpdatePassword(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "new", ViewRequiresPassword: true}
	m.lists.EXPECT().UpdatePassword(gomock.Any(), "l1", req).Return(nil)

	rec := serve(t, h, http.MethodPut, "/api/lists/l1/password", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[models.SuccessResponse](t, rec).Success)
}

func TestDeleteList(t *testing.T) {
	h, m := newTestHandler(t)

	m.lists.EXPECT().DeleteList(gomock.Any(), "l1", models.DeleteListRequest{Password: "secret"}).Return(nil)
	m.lists.EXPECT().DeleteList(gomock.Any(), "l2", models.DeleteListRequest{}).Return(service.ErrWrongPassword)

	rec := serve(t, h, http.MethodDelete, "/api/lists/l1", models.DeleteListRequest{Password: "secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// тело запроса необязательно
	rec = serve(t, h, http.MethodDelete, "/api/lists/l2", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
