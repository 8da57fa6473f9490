// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OperationKind names the mutation recorded by a queued [Operation].
type OperationKind string

const (
	OperationAddItem    OperationKind = "ADD_ITEM"
	OperationUpdateItem OperationKind = "UPDATE_ITEM"
	OperationToggleItem OperationKind = "TOGGLE_ITEM"
	OperationDeleteItem OperationKind = "DELETE_ITEM"
)

// ErrUnknownOperationKind is returned when a stored operation carries a kind
// this build does not understand.
var ErrUnknownOperationKind = errors.New("unknown operation kind")

// Operation is a durable, not yet confirmed mutation waiting in the sync
// queue. Operations are ordered by Timestamp, then by ID.
type Operation struct {
	ID        int64
	Payload   OperationPayload
	Timestamp time.Time
	Retries   int
}

// Kind returns the kind of the operation payload.
func (o Operation) Kind() OperationKind {
	if o.Payload == nil {
		return ""
	}
	return o.Payload.Kind()
}

// OperationPayload is the closed set of payload shapes, one per
// [OperationKind]. Only the payload types of this package implement it.
type OperationPayload interface {
	Kind() OperationKind
	// TargetID is the identifier of the item the operation affects.
	TargetID() string
	// WithTargetID returns a copy of the payload pointing at id.
	WithTargetID(id string) OperationPayload

	isOperationPayload()
}

// AddItemPayload creates Item (carrying its temporary id) in ListID.
type AddItemPayload struct {
	ListID string `json:"listId"`
	Item   Item   `json:"item"`
}

// UpdateItemPayload applies Updates to the item ItemID.
type UpdateItemPayload struct {
	ItemID  string     `json:"itemId"`
	Updates ItemUpdate `json:"updates"`
}

// ToggleItemPayload sets the bought flag of the item ItemID.
type ToggleItemPayload struct {
	ItemID   string `json:"itemId"`
	IsBought bool   `json:"isBought"`
}

// DeleteItemPayload removes the item ItemID.
type DeleteItemPayload struct {
	ItemID string `json:"itemId"`
}

func (AddItemPayload) Kind() OperationKind    { return OperationAddItem }
func (UpdateItemPayload) Kind() OperationKind { return OperationUpdateItem }
func (ToggleItemPayload) Kind() OperationKind { return OperationToggleItem }
func (DeleteItemPayload) Kind() OperationKind { return OperationDeleteItem }

func (p AddItemPayload) TargetID() string    { return p.Item.ID }
func (p UpdateItemPayload) TargetID() string { return p.ItemID }
func (p ToggleItemPayload) TargetID() string { return p.ItemID }
func (p DeleteItemPayload) TargetID() string { return p.ItemID }

func (p AddItemPayload) WithTargetID(id string) OperationPayload {
	p.Item.ID = id
	return p
}

func (p UpdateItemPayload) WithTargetID(id string) OperationPayload {
	p.ItemID = id
	return p
}

func (p ToggleItemPayload) WithTargetID(id string) OperationPayload {
	p.ItemID = id
	return p
}

func (p DeleteItemPayload) WithTargetID(id string) OperationPayload {
	p.ItemID = id
	return p
}

func (AddItemPayload) isOperationPayload()    {}
func (UpdateItemPayload) isOperationPayload() {}
func (ToggleItemPayload) isOperationPayload() {}
func (DeleteItemPayload) isOperationPayload() {}

// EncodePayload serializes p for durable storage.
func EncodePayload(p OperationPayload) (OperationKind, []byte, error) {
	if p == nil {
		return "", nil, fmt.Errorf("encode payload: %w", ErrUnknownOperationKind)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s payload: %w", p.Kind(), err)
	}
	return p.Kind(), data, nil
}

// DecodePayload restores a payload stored by [EncodePayload].
func DecodePayload(kind OperationKind, data []byte) (OperationPayload, error) {
	var (
		payload OperationPayload
		err     error
	)

	switch kind {
	case OperationAddItem:
		var p AddItemPayload
		err = json.Unmarshal(data, &p)
		payload = p
	case OperationUpdateItem:
		var p UpdateItemPayload
		err = json.Unmarshal(data, &p)
		payload = p
	case OperationToggleItem:
		var p ToggleItemPayload
		err = json.Unmarshal(data, &p)
		payload = p
	case OperationDeleteItem:
		var p DeleteItemPayload
		err = json.Unmarshal(data, &p)
		payload = p
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperationKind, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}
	return payload, nil
}

// ItemChange is the local store mutation that must be committed together
// with an enqueued operation.
type ItemChange struct {
	Put    []Item
	Delete []string
}
