// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shopman/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "access", AccessCtxKey.String())
}

func TestGetAccessFromContext_Success(t *testing.T) {
	claims := &models.AccessClaims{Action: models.AccessEdit}
	claims.Subject = "l1"

	got, ok := GetAccessFromContext(WithAccess(context.Background(), claims))

	require.True(t, ok)
	assert.Equal(t, "l1", got.ListID())
	assert.Equal(t, models.AccessEdit, got.Action)
}

func TestGetAccessFromContext_Missing(t *testing.T) {
	got, ok := GetAccessFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetAccessFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccessCtxKey, "not-claims")

	_, ok := GetAccessFromContext(ctx)
	assert.False(t, ok)
}

func TestGetAccessFromContext_NilClaims(t *testing.T) {
	_, ok := GetAccessFromContext(WithAccess(context.Background(), nil))
	assert.False(t, ok)
}
