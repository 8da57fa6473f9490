package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shopman/internal/validators"
	"github.com/MKhiriev/shopman/models"
)

// validationErrors maps validator errors onto the errors callers of the
// services match against.
var validationErrors = map[error]error{
	validators.ErrEmptyListName:       ErrEmptyListName,
	validators.ErrListNameTooLong:     ErrListNameTooLong,
	validators.ErrEmptyPassword:       ErrWrongPassword,
	validators.ErrInvalidAction:       ErrInvalidAction,
	validators.ErrEmptyItemName:       ErrEmptyItemName,
	validators.ErrInvalidItemType:     ErrInvalidItemType,
	validators.ErrNoFieldsToUpdate:    ErrNoUpdatesProvided,
	validators.ErrInvalidScope:        ErrInvalidScope,
	validators.ErrInvalidUndoData:     ErrInvalidUndoData,
	validators.ErrInvalidSubscription: ErrInvalidSubscription,
}

func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	err := v.Validate(ctx, obj, fields...)
	if err == nil {
		return nil
	}
	for from, to := range validationErrors {
		if errors.Is(err, from) {
			return fmt.Errorf("%w: %w", to, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// ── List ──

type ListValidationService struct {
	inner     ListService
	validator validators.Validator
}

func NewListValidationService() ListServiceWrapper {
	return &ListValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ListValidationService) CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.List{}, err
	}
	return v.inner.CreateList(ctx, req)
}

func (v *ListValidationService) GetListByName(ctx context.Context, name string) (models.List, error) {
	if err := validate(ctx, v.validator, models.CreateListRequest{Name: name}, validators.FieldName); err != nil {
		return models.List{}, err
	}
	return v.inner.GetListByName(ctx, name)
}

func (v *ListValidationService) VerifyPassword(ctx context.Context, listID string, req models.VerifyPasswordRequest) (models.AccessToken, error) {
	// the password itself is checked by the inner service, an open list
	// issues tokens without one
	if err := validate(ctx, v.validator, req, validators.FieldAction); err != nil {
		return models.AccessToken{}, err
	}
	return v.inner.VerifyPassword(ctx, listID, req)
}

func (v *ListValidationService) UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest) error {
	return v.inner.UpdatePassword(ctx, listID, req)
}

func (v *ListValidationService) DeleteList(ctx context.Context, listID string, req models.DeleteListRequest) error {
	return v.inner.DeleteList(ctx, listID, req)
}

func (v *ListValidationService) ParseToken(ctx context.Context, tokenString string) (*models.AccessClaims, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *ListValidationService) Wrap(wrapped ListService) ListService {
	v.inner = wrapped
	return v
}

// ── Item ──

type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ItemValidationService) GetItems(ctx context.Context, listID string) ([]models.Item, error) {
	return v.inner.GetItems(ctx, listID)
}

func (v *ItemValidationService) AddItem(ctx context.Context, listID string, fields models.ItemFields) (models.Item, error) {
	if err := validate(ctx, v.validator, fields.Trim()); err != nil {
		return models.Item{}, err
	}
	return v.inner.AddItem(ctx, listID, fields)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error) {
	if err := validate(ctx, v.validator, update); err != nil {
		return models.Item{}, err
	}
	return v.inner.UpdateItem(ctx, itemID, update)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, itemID string) error {
	return v.inner.DeleteItem(ctx, itemID)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}

// ── Archive ──

type ArchiveValidationService struct {
	inner     ArchiveService
	validator validators.Validator
}

func NewArchiveValidationService() ArchiveServiceWrapper {
	return &ArchiveValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ArchiveValidationService) ArchiveBought(ctx context.Context, listID string) (models.BulkResult, error) {
	return v.inner.ArchiveBought(ctx, listID)
}

func (v *ArchiveValidationService) DeleteItems(ctx context.Context, listID string, scope models.BulkScope) (models.BulkResult, error) {
	if err := validate(ctx, v.validator, scope); err != nil {
		return models.BulkResult{}, err
	}
	return v.inner.DeleteItems(ctx, listID, scope)
}

func (v *ArchiveValidationService) GetArchives(ctx context.Context, listID string) ([]models.Archive, error) {
	return v.inner.GetArchives(ctx, listID)
}

func (v *ArchiveValidationService) DeleteArchive(ctx context.Context, listID, archiveID string) (models.BulkResult, error) {
	return v.inner.DeleteArchive(ctx, listID, archiveID)
}

func (v *ArchiveValidationService) Undo(ctx context.Context, listID string, undo models.UndoData) (models.UndoResult, error) {
	if err := validate(ctx, v.validator, undo); err != nil {
		return models.UndoResult{}, err
	}
	return v.inner.Undo(ctx, listID, undo)
}

func (v *ArchiveValidationService) Wrap(wrapped ArchiveService) ArchiveService {
	v.inner = wrapped
	return v
}
