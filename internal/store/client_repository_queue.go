package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
)

// localQueueRepository is the sqlite-backed implementation of
// [QueueRepository].
type localQueueRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalQueueRepository constructs a [QueueRepository] over the client
// durable store.
func NewLocalQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &localQueueRepository{
		DB:     db,
		logger: logger,
	}
}

// Enqueue inserts the operation and applies change in one transaction, so
// the item state and its queue record become visible together.
func (l *localQueueRepository) Enqueue(ctx context.Context, payload models.OperationPayload, at time.Time, change models.ItemChange) (models.Operation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOperationQuery(payload, at)
	if err != nil {
		log.Err(err).Str("func", "localQueueRepository.Enqueue").Msg("failed to build query")
		return models.Operation{}, err
	}

	var operationID int64
	err = l.withTx(ctx, func(tx *sql.Tx) error {
		if err := applyItemChangeTx(ctx, l.DB, tx, change); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return l.wrapErr(ErrExecutingQuery, err)
		}

		operationID, err = res.LastInsertId()
		if err != nil {
			return l.wrapErr(ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.Enqueue").
			Str("kind", string(payload.Kind())).
			Str("target_id", payload.TargetID()).
			Msg("failed to enqueue operation")
		return models.Operation{}, err
	}

	log.Debug().
		Str("func", "localQueueRepository.Enqueue").
		Int64("operation_id", operationID).
		Str("kind", string(payload.Kind())).
		Msg("operation enqueued")

	return models.Operation{ID: operationID, Payload: payload, Timestamp: at}, nil
}

func (l *localQueueRepository) GetOperations(ctx context.Context) ([]models.Operation, error) {
	operations, err := selectOperations(ctx, l.DB, l.DB.DB, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localQueueRepository.GetOperations").Msg("failed to read queue")
	}
	return operations, err
}

func (l *localQueueRepository) CountOperations(ctx context.Context) (int, error) {
	query, args, err := localBuilder.Select("COUNT(*)").From(localQueueTable).ToSql()
	if err != nil {
		return 0, l.wrapErr(ErrBuildingSQLQuery, err)
	}

	var count int
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localQueueRepository.CountOperations").Msg("failed to count queue")
		return 0, l.wrapErr(ErrExecutingQuery, err)
	}
	return count, nil
}

func (l *localQueueRepository) UpdateRetries(ctx context.Context, operationID int64, retries int) error {
	query, args, err := localBuilder.
		Update(localQueueTable).
		Set("retries", retries).
		Where(sq.Eq{"id": operationID}).
		ToSql()
	if err != nil {
		return l.wrapErr(ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localQueueRepository.UpdateRetries").
			Int64("operation_id", operationID).
			Msg("failed to persist retry count")
		return l.wrapErr(ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrOperationNotFound
	}
	return nil
}

func (l *localQueueRepository) RemoveOperation(ctx context.Context, operationID int64, change models.ItemChange) error {
	err := l.withTx(ctx, func(tx *sql.Tx) error {
		if err := deleteOperationTx(ctx, l.DB, tx, operationID); err != nil {
			return err
		}
		return applyItemChangeTx(ctx, l.DB, tx, change)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localQueueRepository.RemoveOperation").
			Int64("operation_id", operationID).
			Msg("failed to remove operation")
	}
	return err
}

func (l *localQueueRepository) ResolveTempID(ctx context.Context, operationID int64, tempID string, item models.Item) error {
	log := logger.FromContext(ctx)

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		if err := deleteOperationTx(ctx, l.DB, tx, operationID); err != nil {
			return err
		}

		change := models.ItemChange{Delete: []string{tempID}, Put: []models.Item{item}}
		if err := applyItemChangeTx(ctx, l.DB, tx, change); err != nil {
			return err
		}

		dependent, err := selectOperations(ctx, l.DB, tx, sq.Eq{"target_id": tempID})
		if err != nil {
			return err
		}

		for _, op := range dependent {
			query, args, err := buildUpdateOperationPayloadQuery(op.ID, op.Payload.WithTargetID(item.ID))
			if err != nil {
				return l.wrapErr(ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return l.wrapErr(ErrExecutingQuery, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.ResolveTempID").
			Str("temp_id", tempID).
			Str("item_id", item.ID).
			Msg("failed to resolve temporary id")
		return err
	}

	log.Debug().
		Str("func", "localQueueRepository.ResolveTempID").
		Str("temp_id", tempID).
		Str("item_id", item.ID).
		Msg("temporary id resolved")
	return nil
}

func (l *localQueueRepository) DiscardItem(ctx context.Context, itemID string) (int, error) {
	var discarded int64

	err := l.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := localBuilder.Delete(localQueueTable).Where(sq.Eq{"target_id": itemID}).ToSql()
		if err != nil {
			return l.wrapErr(ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return l.wrapErr(ErrExecutingQuery, err)
		}
		discarded, _ = res.RowsAffected()

		return deleteLocalItemsTx(ctx, l.DB, tx, sq.Eq{"id": itemID})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localQueueRepository.DiscardItem").
			Str("item_id", itemID).
			Msg("failed to discard item")
		return 0, err
	}

	return int(discarded), nil
}

func (l *localQueueRepository) ClearOperations(ctx context.Context) error {
	query, args, err := localBuilder.Delete(localQueueTable).ToSql()
	if err != nil {
		return l.wrapErr(ErrBuildingSQLQuery, err)
	}
	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localQueueRepository.ClearOperations").Msg("failed to clear queue")
		return l.wrapErr(ErrExecutingQuery, err)
	}
	return nil
}

func deleteOperationTx(ctx context.Context, db *DB, q querier, operationID int64) error {
	query, args, err := localBuilder.Delete(localQueueTable).Where(sq.Eq{"id": operationID}).ToSql()
	if err != nil {
		return db.wrapErr(ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return db.wrapErr(ErrExecutingQuery, err)
	}
	return nil
}

func selectOperations(ctx context.Context, db *DB, q querier, where sq.Sqlizer) ([]models.Operation, error) {
	query, args, err := buildSelectOperationsQuery(where)
	if err != nil {
		return nil, db.wrapErr(ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	operations := make([]models.Operation, 0)
	for rows.Next() {
		var (
			op   models.Operation
			kind string
			raw  string
		)
		if err = rows.Scan(&op.ID, &kind, &raw, &op.Timestamp, &op.Retries); err != nil {
			return nil, db.wrapErr(ErrScanningRow, err)
		}

		op.Payload, err = models.DecodePayload(models.OperationKind(kind), []byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrEncodingPayload, op.ID, err)
		}
		operations = append(operations, op)
	}

	if err = rows.Err(); err != nil {
		return nil, db.wrapErr(ErrScanningRow, err)
	}

	return operations, nil
}
