package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// localListRepository is the sqlite-backed implementation of [ListRepository].
type localListRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalListRepository constructs a [ListRepository] over the client
// durable store.
func NewLocalListRepository(db *DB, logger *logger.Logger) ListRepository {
	return &localListRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localListRepository) GetList(ctx context.Context, listID string) (models.List, error) {
	return l.getOne(ctx, "localListRepository.GetList", sq.Eq{"id": listID})
}

func (l *localListRepository) GetListByName(ctx context.Context, nameLowercase string) (models.List, error) {
	return l.getOne(ctx, "localListRepository.GetListByName", sq.Eq{"name_lowercase": models.NormalizeListName(nameLowercase)})
}

func (l *localListRepository) GetAllLists(ctx context.Context) ([]models.List, error) {
	return l.getMany(ctx, "localListRepository.GetAllLists", nil)
}

func (l *localListRepository) PutList(ctx context.Context, list models.List) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutLocalListQuery(list)
	if err != nil {
		log.Err(err).Str("func", "localListRepository.PutList").Str("list_id", list.ID).Msg("failed to build query")
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localListRepository.PutList").Str("list_id", list.ID).Msg("failed to upsert list")
		return l.wrapErr(ErrExecutingQuery, err)
	}

	return nil
}

func (l *localListRepository) DeleteList(ctx context.Context, listID string) error {
	log := logger.FromContext(ctx)

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		if err := deleteLocalItemsTx(ctx, l.DB, tx, sq.Eq{"list_id": listID}); err != nil {
			return err
		}

		query, args, err := localBuilder.Delete(localListsTable).Where(sq.Eq{"id": listID}).ToSql()
		if err != nil {
			return l.wrapErr(ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return l.wrapErr(ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localListRepository.DeleteList").Str("list_id", listID).Msg("failed to delete list")
		return err
	}

	return nil
}

func (l *localListRepository) ClearLists(ctx context.Context) error {
	query, args, err := localBuilder.Delete(localListsTable).ToSql()
	if err != nil {
		return l.wrapErr(ErrBuildingSQLQuery, err)
	}
	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localListRepository.ClearLists").Msg("failed to clear lists")
		return l.wrapErr(ErrExecutingQuery, err)
	}
	return nil
}

func (l *localListRepository) getOne(ctx context.Context, fn string, where sq.Sqlizer) (models.List, error) {
	lists, err := l.getMany(ctx, fn, where)
	if err != nil {
		return models.List{}, err
	}
	if len(lists) == 0 {
		return models.List{}, ErrNotFound
	}
	return lists[0], nil
}

func (l *localListRepository) getMany(ctx context.Context, fn string, where sq.Sqlizer) ([]models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalListsQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return nil, l.wrapErr(ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query lists")
		return nil, l.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.List, 0)
	for rows.Next() {
		list, scanErr := scanLocalList(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan list row")
			return nil, l.wrapErr(ErrScanningRow, scanErr)
		}
		lists = append(lists, list)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, l.wrapErr(ErrScanningRow, err)
	}

	return lists, nil
}

func scanLocalList(rows *sql.Rows) (models.List, error) {
	var (
		list             models.List
		followedAt       sql.NullTime
		pushSubscription string
		status           string
	)

	err := rows.Scan(
		&list.ID,
		&list.Name,
		&list.NameLowercase,
		&list.HasPassword,
		&list.ViewRequiresPassword,
		&list.EditRequiresPassword,
		&list.CreatedAt,
		&list.IsFollowed,
		&followedAt,
		&list.NotificationsEnabled,
		&list.SavedPassword,
		&pushSubscription,
		&status,
		&list.LastModified,
	)
	if err != nil {
		return models.List{}, err
	}

	if followedAt.Valid {
		t := followedAt.Time
		list.FollowedAt = &t
	}
	if pushSubscription != "" {
		var sub models.PushSubscription
		if err = json.Unmarshal([]byte(pushSubscription), &sub); err != nil {
			return models.List{}, errors.Join(ErrScanningRow, err)
		}
		list.PushSubscription = &sub
	}
	list.SyncStatus = models.SyncStatus(status)

	return list, nil
}
