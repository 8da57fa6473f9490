package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/store"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

// listService is the concrete implementation of ListService.
// It creates and protects lists and issues list access tokens.
type listService struct {
	// listRepository is the data-access layer of lists.
	listRepository store.ListStorage

	// ids issues identifiers of new lists.
	ids utils.IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify access tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long an issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for creation timestamps.
	now func() time.Time

	logger *logger.Logger
}

// NewListService constructs a ListService wired to the given ListStorage
// with token parameters from cfg.
func NewListService(listRepository store.ListStorage, ids utils.IDGenerator, cfg config.App, logger *logger.Logger) ListService {
	return &listService{
		listRepository: listRepository,
		ids:            ids,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateList stores a new list. The password, when given, is stored as a
// bcrypt hash; without one both protection flags are cleared.
//
// Returns the stored list or:
//   - ErrHashingPassword if the password cannot be hashed.
//   - store.ErrListAlreadyExists if the normalized name is taken.
func (l *listService) CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error) {
	log := logger.FromContext(ctx)

	list := models.List{
		ID:        l.ids.Generate(),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: l.now().UTC(),
	}

	var hash string
	if req.Password != "" {
		h, err := hashPassword(req.Password)
		if err != nil {
			log.Err(err).Str("func", "listService.CreateList").Msg("failed to hash password")
			return models.List{}, err
		}
		hash = h
		list.ViewRequiresPassword = req.ViewRequiresPassword
		list.EditRequiresPassword = req.EditRequiresPassword
	}

	created, err := l.listRepository.CreateList(ctx, list, hash)
	if err != nil {
		log.Err(err).Str("func", "listService.CreateList").Str("name", list.Name).Msg("list creation ended with error")
		return models.List{}, fmt.Errorf("list creation ended with error: %w", err)
	}

	return created, nil
}

// GetListByName looks a list up by its case-insensitive name.
func (l *listService) GetListByName(ctx context.Context, name string) (models.List, error) {
	key := models.NormalizeListName(name)
	if key == "" {
		return models.List{}, ErrEmptyListName
	}

	list, err := l.listRepository.FindListByName(ctx, key)
	if err != nil {
		return models.List{}, fmt.Errorf("list search by name failed: %w", err)
	}
	return list, nil
}

// VerifyPassword checks password against the list and issues a token for
// the requested action. When the action does not require a password the
// token is issued without checking it.
//
// Returns the token or:
//   - store.ErrNotFound if the list does not exist.
//   - ErrWrongPassword if the password does not match.
//   - ErrTokenCreationFailed if signing fails.
func (l *listService) VerifyPassword(ctx context.Context, listID string, req models.VerifyPasswordRequest) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	list, err := l.listRepository.FindListByID(ctx, listID)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("list %s: %w", listID, err)
	}

	required := list.ViewRequiresPassword
	if req.Action == models.AccessEdit {
		required = list.EditRequiresPassword
	}

	if required && list.HasPassword {
		if err = l.checkPassword(ctx, listID, req.Password); err != nil {
			log.Warn().Str("func", "listService.VerifyPassword").Str("list_id", listID).Msg("wrong password")
			return models.AccessToken{}, err
		}
	}

	token, err := utils.GenerateAccessToken(l.tokenIssuer, listID, req.Action, l.tokenDuration, l.tokenSignKey)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// UpdatePassword replaces or removes the list password. A protected list
// requires its current password. Removing the password clears both
// protection flags.
func (l *listService) UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := l.checkPassword(ctx, listID, req.CurrentPassword); err != nil {
		return err
	}

	var (
		hash                       string
		viewRequires, editRequires bool
	)
	if req.NewPassword != "" {
		h, err := hashPassword(req.NewPassword)
		if err != nil {
			log.Err(err).Str("func", "listService.UpdatePassword").Msg("failed to hash password")
			return err
		}
		hash = h
		viewRequires = req.ViewRequiresPassword
		editRequires = req.EditRequiresPassword
	}

	if err := l.listRepository.UpdatePassword(ctx, listID, hash, viewRequires, editRequires); err != nil {
		log.Err(err).Str("func", "listService.UpdatePassword").Str("list_id", listID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

// DeleteList removes the list with its items, archives and subscriptions.
// A protected list requires its password.
func (l *listService) DeleteList(ctx context.Context, listID string, req models.DeleteListRequest) error {
	if err := l.checkPassword(ctx, listID, req.Password); err != nil {
		return err
	}

	if err := l.listRepository.DeleteList(ctx, listID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listService.DeleteList").Str("list_id", listID).Msg("list deletion failed")
		return fmt.Errorf("list deletion failed: %w", err)
	}
	return nil
}

// ParseToken validates a raw bearer token. Any validation failure is
// normalised to ErrTokenIsExpiredOrInvalid.
func (l *listService) ParseToken(ctx context.Context, tokenString string) (*models.AccessClaims, error) {
	claims, err := utils.ValidateAccessToken(tokenString, l.tokenSignKey, l.tokenIssuer)
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}
	return claims, nil
}

// checkPassword compares password with the stored hash of the list. A list
// without a password accepts anything.
func (l *listService) checkPassword(ctx context.Context, listID, password string) error {
	hash, err := l.listRepository.GetPasswordHash(ctx, listID)
	if err != nil {
		return fmt.Errorf("list %s: %w", listID, err)
	}
	if hash == "" {
		return nil
	}
	if password == "" {
		return ErrWrongPassword
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrWrongPassword
	}
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}
