package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Family", want: "family"},
		{in: "  Weekend Trip  ", want: "weekend trip"},
		{in: "ПОКУПКИ", want: "покупки"},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeListName(tt.in))
		})
	}
}

func TestSavedPassword(t *testing.T) {
	assert.Empty(t, EncodeSavedPassword(""))

	encoded := EncodeSavedPassword("secret")
	assert.Equal(t, "c2VjcmV0", encoded)
	assert.Equal(t, "secret", DecodeSavedPassword(encoded))

	assert.Empty(t, DecodeSavedPassword("%%%"))
}

func TestList_MergeLocal(t *testing.T) {
	followedAt := time.Now()
	local := List{
		ID:                   "l1",
		Name:                 "Old name",
		IsFollowed:           true,
		FollowedAt:           &followedAt,
		NotificationsEnabled: true,
		SavedPassword:        "c2VjcmV0",
	}
	fetched := List{ID: "l1", Name: "New name", HasPassword: true}

	got := fetched.MergeLocal(local)

	assert.Equal(t, "New name", got.Name)
	assert.True(t, got.HasPassword)
	assert.True(t, got.IsFollowed)
	assert.Equal(t, &followedAt, got.FollowedAt)
	assert.True(t, got.NotificationsEnabled)
	assert.Equal(t, "c2VjcmV0", got.SavedPassword)
}

func TestList_LocalFieldsNotSerialized(t *testing.T) {
	raw, err := json.Marshal(List{ID: "l1", IsFollowed: true, SavedPassword: "c2VjcmV0"})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "c2VjcmV0")
	assert.NotContains(t, string(raw), "IsFollowed")
}

func TestAccessAction(t *testing.T) {
	assert.True(t, AccessView.Valid())
	assert.True(t, AccessEdit.Valid())
	assert.False(t, AccessAction("delete").Valid())

	assert.True(t, AccessEdit.Allows(AccessView))
	assert.True(t, AccessEdit.Allows(AccessEdit))
	assert.True(t, AccessView.Allows(AccessView))
	assert.False(t, AccessView.Allows(AccessEdit))
}

func TestUndoData_Valid(t *testing.T) {
	tests := []struct {
		name string
		undo UndoData
		want bool
	}{
		{name: "archive with items", undo: UndoData{Type: UndoArchive, Items: []Item{}}, want: true},
		{name: "delete all without items", undo: UndoData{Type: UndoDeleteAll}, want: false},
		{name: "delete archive", undo: UndoData{Type: UndoDeleteArchive, Archive: &Archive{ID: "a"}}, want: true},
		{name: "delete archive without archive", undo: UndoData{Type: UndoDeleteArchive}, want: false},
		{name: "unknown type", undo: UndoData{Type: "rewind", Items: []Item{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.undo.Valid())
		})
	}
}
