package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/shopman/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the list name of a create request.
	FieldName = "name"

	// FieldItemName targets the name of a new or updated item.
	FieldItemName = "item_name"

	// FieldItemType targets the category of a new or updated item.
	FieldItemType = "item_type"

	// FieldUpdates requires an item update to change at least one field.
	FieldUpdates = "updates"

	// FieldPassword targets the password of a verify request.
	FieldPassword = "password"

	// FieldAction targets the requested access action.
	FieldAction = "action"

	// FieldScope targets the scope of a bulk delete.
	FieldScope = "scope"

	// FieldUndoData targets the shape of undo data.
	FieldUndoData = "undo_data"

	// FieldEndpoint targets the endpoint of a push subscription.
	FieldEndpoint = "endpoint"
)

// RequestValidator implements [Validator] for the request bodies of the
// reference backend: [models.CreateListRequest], [models.VerifyPasswordRequest],
// [models.ItemFields], [models.ItemUpdate], [models.BulkScope],
// [models.UndoData] and [models.PushSubscription].
//
// Text fields are expected to be trimmed already.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateListRequest:
		return v.validateCreateList(value, fields...)
	case *models.CreateListRequest:
		return v.validateCreateList(*value, fields...)

	case models.VerifyPasswordRequest:
		return v.validateVerifyPassword(value, fields...)
	case *models.VerifyPasswordRequest:
		return v.validateVerifyPassword(*value, fields...)

	case models.ItemFields:
		return v.validateItemFields(value, fields...)
	case *models.ItemFields:
		return v.validateItemFields(*value, fields...)

	case models.ItemUpdate:
		return v.validateItemUpdate(value, fields...)
	case *models.ItemUpdate:
		return v.validateItemUpdate(*value, fields...)

	case models.BulkScope:
		if value != models.BulkScopeBought && value != models.BulkScopeAll {
			return ErrInvalidScope
		}
		return nil

	case models.UndoData:
		return v.validateUndoData(value)
	case *models.UndoData:
		return v.validateUndoData(*value)

	case models.PushSubscription:
		return v.validateSubscription(value)
	case *models.PushSubscription:
		return v.validateSubscription(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateList(req models.CreateListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateListName(req.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateVerifyPassword(req models.VerifyPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldAction}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldAction:
			if !req.Action.Valid() {
				return ErrInvalidAction
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateItemFields(item models.ItemFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemName, FieldItemType}
	}

	for _, f := range fields {
		switch f {
		case FieldItemName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyItemName
			}
		case FieldItemType:
			if !item.Type.Valid() {
				return ErrInvalidItemType
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateItemUpdate(update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdates, FieldItemName, FieldItemType}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdates:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldItemName:
			// absent name is fine, a blank one is not
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyItemName
			}
		case FieldItemType:
			if update.Type != nil && !update.Type.Valid() {
				return ErrInvalidItemType
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateUndoData(undo models.UndoData) error {
	if !undo.Valid() {
		return ErrInvalidUndoData
	}
	return nil
}

func (v *RequestValidator) validateSubscription(sub models.PushSubscription) error {
	if strings.TrimSpace(sub.Endpoint) == "" {
		return ErrInvalidSubscription
	}
	return nil
}

func validateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyListName
	}
	if utf8.RuneCountInString(name) > models.MaxListNameLength {
		return ErrListNameTooLong
	}
	return nil
}
