// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders one shopping list in the terminal with bubbletea.
//
// The program never reads storage directly. It renders snapshots of the
// Application State Store and calls the client services for every user
// action; optimistic results arrive as new snapshots.
package tui

import (
	"context"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/service"
	"github.com/MKhiriev/shopman/internal/state"
	"github.com/MKhiriev/shopman/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the client.
type TUI struct {
	services  *service.ClientServices
	appStore  *state.AppStore
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI over services, watching appStore for state changes.
func New(services *service.ClientServices, appStore *state.AppStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		appStore:  appStore,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the program until the user quits or ctx is cancelled. When
// listName is not empty that list is opened right away. Returns
// [ErrUserQuit] when the user left the program.
func (t *TUI) Run(ctx context.Context, listName string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots := make(chan state.Snapshot, 1)
	unsubscribe := t.appStore.Subscribe(func(s state.Snapshot) {
		offerLatest(snapshots, s)
	})
	defer unsubscribe()

	model := newAppModel(ctx, t.services, snapshots, t.appStore.Snapshot(), t.buildInfo, listName)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// offerLatest puts s into a one-slot channel, replacing a snapshot the
// program has not picked up yet. It never blocks the publisher.
func offerLatest(ch chan state.Snapshot, s state.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
