// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxListNameLength is the longest list name accepted by the Remote Authority.
const MaxListNameLength = 100

// List is a shared shopping list.
//
// Server-origin fields are owned by the Remote Authority and are overwritten
// on every fetch. Local-only fields (IsFollowed, FollowedAt,
// NotificationsEnabled, SavedPassword, PushSubscription) are owned by the
// client and never leave the device.
type List struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	NameLowercase        string    `json:"name_lowercase"`
	HasPassword          bool      `json:"has_password"`
	ViewRequiresPassword bool      `json:"view_requires_password"`
	EditRequiresPassword bool      `json:"edit_requires_password"`
	CreatedAt            time.Time `json:"created_at"`

	IsFollowed           bool              `json:"-"`
	FollowedAt           *time.Time        `json:"-"`
	NotificationsEnabled bool              `json:"-"`
	SavedPassword        string            `json:"-"`
	PushSubscription     *PushSubscription `json:"-"`
	SyncStatus           SyncStatus        `json:"-"`
	LastModified         time.Time         `json:"-"`
}

// MergeLocal copies the client-owned fields of local into a freshly fetched
// server copy so that a refresh never wipes follow state or saved passwords.
func (l List) MergeLocal(local List) List {
	l.IsFollowed = local.IsFollowed
	l.FollowedAt = local.FollowedAt
	l.NotificationsEnabled = local.NotificationsEnabled
	l.SavedPassword = local.SavedPassword
	l.PushSubscription = local.PushSubscription
	return l
}

// PushSubscription is a web-push endpoint registration for list changes.
type PushSubscription struct {
	Endpoint string               `json:"endpoint"`
	Keys     PushSubscriptionKeys `json:"keys"`
}

// PushSubscriptionKeys are the client keys of a push subscription.
type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

var nameFolder = cases.Lower(language.Und)

// NormalizeListName returns the uniqueness key of a list name:
// trimmed and lower-cased.
func NormalizeListName(name string) string {
	return nameFolder.String(strings.TrimSpace(name))
}

// EncodeSavedPassword encodes a list password for local convenience storage.
// It is an encoding, not encryption.
func EncodeSavedPassword(password string) string {
	if password == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// DecodeSavedPassword reverses [EncodeSavedPassword]. Malformed input yields
// an empty password.
func DecodeSavedPassword(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(raw)
}

// CreateListRequest is the body of a list creation call.
type CreateListRequest struct {
	Name                 string `json:"name"`
	Password             string `json:"password,omitempty"`
	ViewRequiresPassword bool   `json:"view_requires_password"`
	EditRequiresPassword bool   `json:"edit_requires_password"`
}

// UpdatePasswordRequest changes or removes the password of a list.
// An empty NewPassword removes protection entirely.
type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password,omitempty"`
	NewPassword          string `json:"new_password,omitempty"`
	ViewRequiresPassword bool   `json:"view_requires_password"`
	EditRequiresPassword bool   `json:"edit_requires_password"`
}

// DeleteListRequest carries the password needed to delete a protected list.
type DeleteListRequest struct {
	Password string `json:"password,omitempty"`
}
