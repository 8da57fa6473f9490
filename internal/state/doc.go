// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the Application State Store: the in-memory snapshot of
// what the client is currently looking at (the open list, its items, loading
// and error flags, sync status) together with the list access tokens obtained
// during the session.
//
// The store is not durable. It is rebuilt from the durable local store and
// the Remote Authority on every navigation. Every mutation replaces the
// snapshot and notifies all subscribers synchronously before returning, so
// optimistic updates are observable immediately.
package state
