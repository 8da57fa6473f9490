package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

func (h *Handler) archiveBought(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.ArchiveService.ArchiveBought(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteItems(w http.ResponseWriter, r *http.Request) {
	scope := models.BulkScope(r.URL.Query().Get("scope"))

	result, err := h.services.ArchiveService.DeleteItems(r.Context(), chi.URLParam(r, "listID"), scope)
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getArchives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.services.ArchiveService.GetArchives(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessView)
		return
	}

	utils.WriteJSON(w, models.ArchivesResponse{Archives: archives}, http.StatusOK)
}

func (h *Handler) deleteArchive(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.ArchiveService.DeleteArchive(r.Context(), chi.URLParam(r, "listID"), chi.URLParam(r, "archiveID"))
	if err != nil {
		writeServiceError(w, r, err, recordArchive, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	var req models.UndoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.ArchiveService.Undo(r.Context(), chi.URLParam(r, "listID"), req.UndoData)
	if err != nil {
		writeServiceError(w, r, err, recordList, models.AccessEdit)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
