package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

func (h *Handler) getListByName(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.ListService.GetListByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessView)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list, err := h.services.ListService.CreateList(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	logger.FromRequest(r).Info().Str("list_id", list.ID).Msg("list created")
	utils.WriteJSON(w, list, http.StatusCreated)
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.services.ListService.VerifyPassword(r.Context(), chi.URLParam(r, "listID"), req)
	if err != nil {
		writeServiceError(w, r, err, recordList, req.Action)
		return
	}

	utils.WriteJSON(w, models.VerifyPasswordResponse{Success: true, Token: token.Token}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.ListService.UpdatePassword(r.Context(), chi.URLParam(r, "listID"), req); err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteListRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	if err := h.services.ListService.DeleteList(r.Context(), chi.URLParam(r, "listID"), req); err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// decodeJSON reads the request body into dst and answers 400 when it is
// missing or malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeServiceError(w, r, ErrInvalidJSON, recordList, models.AccessView)
		return false
	}
	return true
}

// decodeOptionalJSON is decodeJSON for bodies that may be empty.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
	writeServiceError(w, r, ErrInvalidJSON, recordList, models.AccessView)
	return false
}
