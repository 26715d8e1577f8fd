package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table
// and the user side of sharing in "user_shared_notes".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. A zero CreatedAt is set to now.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error creating user")
		return models.User{}, r.db.classify(err, ErrUsernameAlreadyExists, ErrExecutingStatement)
	}

	user.SharedNotes = []string{}
	return user, nil
}

// FindUserByUsername retrieves the user record and its shared note ids.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery] or [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// find user by username
	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&foundUser.Username, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	sharedNotes, err := r.selectSharedNotes(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	foundUser.SharedNotes = sharedNotes

	return foundUser, nil
}

// AddSharedNote inserts a row into "user_shared_notes".
//
// Error handling:
//   - duplicate (username, note_id) → [ErrNoteAlreadyShared].
//   - unknown user or note → [ErrReferenceNotFound].
func (r *userRepository) AddSharedNote(ctx context.Context, username, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAddUserSharedNoteQuery(r.db.builder, username, noteID, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddSharedNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.AddSharedNote").
			Str("username", username).
			Str("note_id", noteID).
			Msg("error adding shared note to user")
		return r.db.classify(err, ErrNoteAlreadyShared, ErrExecutingStatement)
	}

	return nil
}

func (r *userRepository) selectSharedNotes(ctx context.Context, username string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserSharedNotesQuery(r.db.builder, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.selectSharedNotes").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	noteIDs := make([]string, 0)
	for rows.Next() {
		var noteID string
		if err = rows.Scan(&noteID); err != nil {
			log.Err(err).Str("func", "*userRepository.selectSharedNotes").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		noteIDs = append(noteIDs, noteID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return noteIDs, nil
}
