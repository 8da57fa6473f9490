// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the requests of the reference backend before
// they reach the list, item and archive services.
//
// A validator is handed the request value plus the field names the caller
// cares about, so one validator serves every endpoint of a resource.
package validators

import "context"

// Validator checks v, limited to fields when any are named.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
