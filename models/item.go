// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SyncStatus tracks whether a local record matches the last state confirmed
// by the Remote Authority.
type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPending SyncStatus = "pending"
	SyncStatusError   SyncStatus = "error"
)

// TempIDPrefix marks identifiers generated on the client before the server
// assigned a permanent one.
const TempIDPrefix = "temp_"

// NewTempID returns a placeholder identifier of the form
// temp_<unix millis>_<9 random chars>.
func NewTempID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s%d_%s", TempIDPrefix, now.UnixMilli(), random[:9])
}

// IsTempID reports whether id was generated locally by [NewTempID].
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// ItemType is the category of an item.
type ItemType string

const (
	ItemTypeProduce   ItemType = "produce"
	ItemTypeDairy     ItemType = "dairy"
	ItemTypeMeat      ItemType = "meat"
	ItemTypeBakery    ItemType = "bakery"
	ItemTypeFrozen    ItemType = "frozen"
	ItemTypePantry    ItemType = "pantry"
	ItemTypeBeverages ItemType = "beverages"
	ItemTypeSnacks    ItemType = "snacks"
	ItemTypeHousehold ItemType = "household"
	ItemTypePersonal  ItemType = "personal"
	ItemTypeOther     ItemType = "other"
)

// ItemTypes lists the known categories in display order.
var ItemTypes = []ItemType{
	ItemTypeProduce,
	ItemTypeDairy,
	ItemTypeMeat,
	ItemTypeBakery,
	ItemTypeFrozen,
	ItemTypePantry,
	ItemTypeBeverages,
	ItemTypeSnacks,
	ItemTypeHousehold,
	ItemTypePersonal,
	ItemTypeOther,
}

// Valid reports whether t is empty (uncategorized) or a known category.
func (t ItemType) Valid() bool {
	if t == "" {
		return true
	}
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Order returns the display position of t; uncategorized and unknown types
// sort last.
func (t ItemType) Order() int {
	for i, known := range ItemTypes {
		if t == known {
			return i
		}
	}
	return len(ItemTypes)
}

// Item is one entry of a shopping list.
type Item struct {
	ID         string     `json:"id"`
	ListID     string     `json:"list_id"`
	Name       string     `json:"name"`
	Amount     string     `json:"amount,omitempty"`
	Type       ItemType   `json:"type,omitempty"`
	Note       string     `json:"note,omitempty"`
	IsBought   bool       `json:"is_bought"`
	CreatedAt  time.Time  `json:"created_at"`
	SyncStatus SyncStatus `json:"-"`
}

// ItemFields are the user-editable attributes of a new item.
type ItemFields struct {
	Name   string   `json:"name"`
	Amount string   `json:"amount,omitempty"`
	Type   ItemType `json:"type,omitempty"`
	Note   string   `json:"note,omitempty"`
}

// Trim returns f with surrounding whitespace removed from text fields.
func (f ItemFields) Trim() ItemFields {
	return ItemFields{
		Name:   strings.TrimSpace(f.Name),
		Amount: strings.TrimSpace(f.Amount),
		Type:   f.Type,
		Note:   strings.TrimSpace(f.Note),
	}
}

// ItemUpdate is a partial set of item fields. Nil pointers are left untouched.
type ItemUpdate struct {
	Name     *string   `json:"name,omitempty"`
	Amount   *string   `json:"amount,omitempty"`
	Type     *ItemType `json:"type,omitempty"`
	Note     *string   `json:"note,omitempty"`
	IsBought *bool     `json:"is_bought,omitempty"`
}

// IsEmpty reports whether u changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Amount == nil && u.Type == nil && u.Note == nil && u.IsBought == nil
}

// Trim returns u with surrounding whitespace removed from the text fields it sets.
func (u ItemUpdate) Trim() ItemUpdate {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	u.Name = trim(u.Name)
	u.Amount = trim(u.Amount)
	u.Note = trim(u.Note)
	return u
}

// Apply returns a copy of i with every non-nil field of u applied.
func (i Item) Apply(u ItemUpdate) Item {
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.Amount != nil {
		i.Amount = *u.Amount
	}
	if u.Type != nil {
		i.Type = *u.Type
	}
	if u.Note != nil {
		i.Note = *u.Note
	}
	if u.IsBought != nil {
		i.IsBought = *u.IsBought
	}
	return i
}

// WithStatus returns a copy of i tagged with status.
func (i Item) WithStatus(status SyncStatus) Item {
	i.SyncStatus = status
	return i
}

// Fields returns the user-editable attributes of i.
func (i Item) Fields() ItemFields {
	return ItemFields{Name: i.Name, Amount: i.Amount, Type: i.Type, Note: i.Note}
}

// SortItemsForDisplay orders items by category in [ItemTypes] order,
// uncategorized last, keeping creation order within a category.
func SortItemsForDisplay(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(a.Type.Order(), b.Type.Order())
	})
}
