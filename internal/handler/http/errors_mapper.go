package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shopman/internal/app"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

type errorStatus struct {
	status  int
	message string
}

// errorStatusMap is consulted in order, the first matching error wins.
var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{service.ErrEmptyListName, errorStatus{http.StatusBadRequest, app.MsgListNameRequired}},
	{service.ErrListNameTooLong, errorStatus{http.StatusBadRequest, app.MsgListNameTooLong}},
	{service.ErrInvalidAction, errorStatus{http.StatusBadRequest, app.MsgInvalidAction}},
	{service.ErrEmptyItemName, errorStatus{http.StatusBadRequest, app.MsgItemNameRequired}},
	{service.ErrInvalidItemType, errorStatus{http.StatusBadRequest, app.MsgInvalidItemType}},
	{service.ErrNoUpdatesProvided, errorStatus{http.StatusBadRequest, app.MsgNoUpdatesProvided}},
	{service.ErrInvalidScope, errorStatus{http.StatusBadRequest, app.MsgInvalidScope}},
	{service.ErrInvalidUndoData, errorStatus{http.StatusBadRequest, app.MsgInvalidUndoData}},
	{service.ErrNothingToArchive, errorStatus{http.StatusBadRequest, app.MsgNoBoughtItems}},
	{service.ErrInvalidSubscription, errorStatus{http.StatusBadRequest, app.MsgInvalidSubscription}},
	{service.ErrInvalidDataProvided, errorStatus{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidJSON, errorStatus{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrWrongPassword, errorStatus{http.StatusUnauthorized, app.MsgIncorrectPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorStatus{http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)}},

	{store.ErrListAlreadyExists, errorStatus{http.StatusConflict, app.MsgListAlreadyExists}},
}

// notFoundMessages picks the body of a 404 by the kind of record requested.
var notFoundMessages = map[recordKind]string{
	recordList:    app.MsgListNotFound,
	recordItem:    app.MsgItemNotFound,
	recordArchive: app.MsgArchiveNotFound,
}

type recordKind int

const (
	recordList recordKind = iota
	recordItem
	recordArchive
)

// writeServiceError translates err into the response of the Remote
// Authority contract. kind selects the 404 message and action the 403 one.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, kind recordKind, action models.AccessAction) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrPasswordRequired):
		message := app.MsgPasswordRequiredToEdit
		if action == models.AccessView {
			message = app.MsgPasswordRequiredToView
		}
		log.Debug().Err(err).Msg("permission denied")
		utils.WriteError(w, message, http.StatusForbidden)
		return
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Err(err).Msg("record not found")
		utils.WriteError(w, notFoundMessages[kind], http.StatusNotFound)
		return
	}

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	utils.WriteError(w, message, status)
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
