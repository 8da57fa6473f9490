// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the observable status of the sync engine. It is never
// persisted; it is re-derived from the queue and the connectivity monitor.
type SyncState struct {
	IsOnline     bool
	IsSyncing    bool
	LastSyncTime *time.Time
	PendingCount int
}
