package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// archiveRepository is the PostgreSQL-backed implementation of
// [ArchiveStorage]. Archived items are kept as a JSONB snapshot.
type archiveRepository struct {
	*DB
	logger *logger.Logger
}

// NewArchiveRepository constructs an [ArchiveStorage] backed by the provided
// database connection and logger.
func NewArchiveRepository(db *DB, logger *logger.Logger) ArchiveStorage {
	return &archiveRepository{
		DB:     db,
		logger: logger,
	}
}

// ArchiveBought deletes every bought item of archive.ListID and stores them
// as a new archive in one transaction. [ErrNotFound] is returned when the
// list has no bought items; nothing is written in that case.
func (a *archiveRepository) ArchiveBought(ctx context.Context, archive models.Archive) (models.Archive, error) {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteItemsQuery(sq.Eq{"list_id": archive.ListID, "is_bought": true})
	if err != nil {
		return models.Archive{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = a.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		archive.Items, err = collectItems(rows)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if len(archive.Items) == 0 {
			return ErrNotFound
		}

		insertQuery, insertArgs, err := buildInsertArchiveQuery(archive, false)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "archiveRepository.ArchiveBought").
			Str("list_id", archive.ListID).
			Msg("failed to archive bought items")
		return models.Archive{}, err
	}

	log.Debug().
		Str("func", "archiveRepository.ArchiveBought").
		Str("archive_id", archive.ID).
		Int("items_count", len(archive.Items)).
		Msg("bought items archived")

	return archive, nil
}

// GetArchives returns the archives of a list, newest first.
func (a *archiveRepository) GetArchives(ctx context.Context, listID string) ([]models.Archive, error) {
	return a.selectArchives(ctx, "archiveRepository.GetArchives", sq.Eq{"list_id": listID})
}

func (a *archiveRepository) GetArchive(ctx context.Context, listID, archiveID string) (models.Archive, error) {
	archives, err := a.selectArchives(ctx, "archiveRepository.GetArchive", sq.Eq{"list_id": listID, "id": archiveID})
	if err != nil {
		return models.Archive{}, err
	}
	if len(archives) == 0 {
		return models.Archive{}, ErrNotFound
	}
	return archives[0], nil
}

func (a *archiveRepository) DeleteArchive(ctx context.Context, listID, archiveID string) error {
	log := logger.FromContext(ctx)

	query, args, err := pgBuilder.
		Delete("archives").
		Where(sq.Eq{"list_id": listID, "id": archiveID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := a.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "archiveRepository.DeleteArchive").Str("archive_id", archiveID).Msg("failed to delete archive")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLatestArchive removes the most recently archived snapshot of the
// list. A list without archives is left untouched.
func (a *archiveRepository) DeleteLatestArchive(ctx context.Context, listID string) error {
	log := logger.FromContext(ctx)

	latest := pgBuilder.
		Select("id").
		From("archives").
		Where(sq.Eq{"list_id": listID}).
		OrderBy("archived_at DESC").
		Limit(1)

	query, args, err := pgBuilder.
		Delete("archives").
		Where(sq.Expr("id = (?)", latest)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "archiveRepository.DeleteLatestArchive").Str("list_id", listID).Msg("failed to delete latest archive")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// RestoreArchive re-inserts a previously deleted archive. Restoring an
// archive that still exists is a no-op.
func (a *archiveRepository) RestoreArchive(ctx context.Context, archive models.Archive) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertArchiveQuery(archive, true)
	if err != nil {
		return err
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "archiveRepository.RestoreArchive").Str("archive_id", archive.ID).Msg("failed to restore archive")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (a *archiveRepository) selectArchives(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Archive, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArchivesQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var archives []models.Archive
	err = a.withRetry(ctx, func() error {
		rows, queryErr := a.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		archives, queryErr = collectArchives(rows)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query archives")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return archives, nil
}

func collectArchives(rows *sql.Rows) ([]models.Archive, error) {
	defer rows.Close()

	archives := make([]models.Archive, 0)
	for rows.Next() {
		var (
			archive models.Archive
			raw     []byte
		)
		if err := rows.Scan(&archive.ID, &archive.ListID, &raw, &archive.ArchivedAt, &archive.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &archive.Items); err != nil {
			return nil, fmt.Errorf("archive %s: %w", archive.ID, err)
		}
		archives = append(archives, archive)
	}

	return archives, rows.Err()
}
