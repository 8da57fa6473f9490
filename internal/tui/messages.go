package tui

import (
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/models"
)

// snapshotMsg carries a new application state into the program.
type snapshotMsg struct {
	snapshot state.Snapshot
}

type listOpenedMsg struct {
	name string
	list models.List
	err  error
}

type listCreatedMsg struct {
	list models.List
	err  error
}

type followedListsMsg struct {
	lists []models.List
	err   error
}

type passwordVerifiedMsg struct {
	err error
}

// mutationMsg reports the immediate outcome of an optimistic mutation.
type mutationMsg struct {
	name         string
	confirmation *service.Confirmation
	err          error
}

// confirmationMsg reports the late outcome of a queued mutation.
type confirmationMsg struct {
	name string
	err  error
}

type bulkDoneMsg struct {
	action pendingAction
	result models.BulkResult
	err    error
}

type undoDoneMsg struct {
	result models.UndoResult
	err    error
}

type archivesLoadedMsg struct {
	archives []models.Archive
	err      error
}

type followChangedMsg struct {
	followed bool
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
