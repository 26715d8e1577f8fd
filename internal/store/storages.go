package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// MemoryDSN selects the in-process storage backend.
const MemoryDSN = "memory"

// Storages bundles the repositories used by the service layer together with
// the connection that backs them.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DSN, applies migrations for
// SQL backends, and constructs the repositories:
//   - "memory" → in-process maps;
//   - "postgres://" or "postgresql://" → PostgreSQL via pgx;
//   - "sqlite://path" → SQLite file.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch {
	case cfg.DSN == MemoryDSN:
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(log), nil
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		db, err = NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages constructs SQL-backed repositories over an open connection.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}
}

// NewMemoryStorages constructs repositories sharing one in-process data set.
func NewMemoryStorages(log *logger.Logger) *Storages {
	state := newMemoryState()
	return &Storages{
		UserRepository: &memoryUserRepository{state: state, logger: log},
		NoteRepository: &memoryNoteRepository{state: state, logger: log},
	}
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	return s.db.Close()
}

// redactDSN drops everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return "..."
}
