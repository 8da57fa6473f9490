package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// listRepository is the PostgreSQL-backed implementation of [ListStorage].
// It handles list creation, lookup and password settings against the
// "lists" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type listRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListRepository constructs a [ListStorage] backed by the provided
// database connection and logger.
func NewListRepository(db *DB, logger *logger.Logger) ListStorage {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		db:     db,
		logger: logger,
	}
}

// CreateList persists a new list and returns its canonical representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the lowercase name → [ErrListAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *listRepository) CreateList(ctx context.Context, list models.List, passwordHash string) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertListQuery(list, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Msg("failed to build query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanList(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Str("name", list.Name).Msg("error creating list")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.List{}, ErrListAlreadyExists
		default:
			return models.List{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindListByName returns the list whose normalized name equals nameLowercase.
// The password hash itself is never read, only its presence.
func (r *listRepository) FindListByName(ctx context.Context, nameLowercase string) (models.List, error) {
	return r.findOne(ctx, "*listRepository.FindListByName", sq.Eq{"name_lowercase": nameLowercase})
}

func (r *listRepository) FindListByID(ctx context.Context, listID string) (models.List, error) {
	return r.findOne(ctx, "*listRepository.FindListByID", sq.Eq{"id": listID})
}

func (r *listRepository) GetPasswordHash(ctx context.Context, listID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := pgBuilder.
		Select("COALESCE(password_hash, '')").
		From("lists").
		Where(sq.Eq{"id": listID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&hash)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetPasswordHash").Str("list_id", listID).Msg("error reading password hash")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return hash, nil
}

// UpdatePassword replaces the password hash and both gates. An empty
// passwordHash removes the password.
func (r *listRepository) UpdatePassword(ctx context.Context, listID, passwordHash string, viewRequires, editRequires bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(listID, passwordHash, viewRequires, editRequires)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UpdatePassword").Str("list_id", listID).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteList removes the list. Items, archives and push subscriptions are
// removed by ON DELETE CASCADE.
func (r *listRepository) DeleteList(ctx context.Context, listID string) error {
	log := logger.FromContext(ctx)

	query, args, err := pgBuilder.Delete("lists").Where(sq.Eq{"id": listID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Str("list_id", listID).Msg("error deleting list")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *listRepository) findOne(ctx context.Context, fn string, where sq.Sqlizer) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var list models.List
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		list, scanErr = scanList(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error finding list")
		return models.List{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return list, nil
}

func scanList(row *sql.Row) (models.List, error) {
	var list models.List
	err := row.Scan(
		&list.ID,
		&list.Name,
		&list.NameLowercase,
		&list.HasPassword,
		&list.ViewRequiresPassword,
		&list.EditRequiresPassword,
		&list.CreatedAt,
	)
	return list, err
}
