// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable shopman front end.
type Client interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the application. listName is
// the list to open on start, empty for the list picker.
type UI interface {
	Run(ctx context.Context, listName string) error
}

var _ Client = (*App)(nil)
