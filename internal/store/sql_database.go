package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a SQL connection shared by the repositories together with the
// dialect-specific pieces they need: a query builder with the right
// placeholder format and a driver error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	builder            sq.StatementBuilderType
	dialect            string
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, placeholder sq.PlaceholderFormat, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: classificator,
		logger:             log,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		dialect:            dialect,
	}
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps a driver error to a repository sentinel. onUnique is
// returned for unique or primary key violations; foreign key violations
// become [ErrReferenceNotFound]. Anything else is wrapped with fallback.
func (db *DB) classify(err error, onUnique, fallback error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case ForeignKeyViolation:
		return ErrReferenceNotFound
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

// Close closes the underlying connection pool. Closing a nil DB is a no-op.
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
