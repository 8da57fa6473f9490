package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var sub models.PushSubscription
	if !decodeJSON(w, r, &sub) {
		return
	}

	if err := h.services.PushService.Subscribe(r.Context(), chi.URLParam(r, "listID"), sub); err != nil {
		writeServiceError(w, r, err, recordList, models.AccessView)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	var sub models.PushSubscription
	if !decodeJSON(w, r, &sub) {
		return
	}

	if err := h.services.PushService.Unsubscribe(r.Context(), chi.URLParam(r, "listID"), sub.Endpoint); err != nil {
		writeServiceError(w, r, err, recordList, models.AccessView)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
