// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the sync engine, the periodic queue drain and the connectivity
// probe as background workers for the lifetime of the terminal UI.
package client
