package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.GetItems(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessView)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.services.ItemService.AddItem(r.Context(), chi.URLParam(r, "listID"), req.Item)
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var update models.ItemUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), chi.URLParam(r, "itemID"), update)
	if err != nil {
		writeServiceError(w, r, err, recordItem, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ItemService.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		writeServiceError(w, r, err, recordItem, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
