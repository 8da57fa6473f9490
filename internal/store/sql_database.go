package store

import (
	"database/sql"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/migrations"
)

// DB is a database connection shared by the repositories of one role.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	local              bool
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the schema matching the connection role.
func (db *DB) Migrate() error {
	if db.local {
		return migrations.MigrateLocal(db.DB)
	}
	return migrations.Migrate(db.DB)
}
