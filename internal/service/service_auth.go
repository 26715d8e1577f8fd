package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and resolution of
// bearer tokens to stored accounts.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords at signup and verifies them at login.
	hasher crypto.PasswordHasher

	// tokenService issues login tokens and verifies presented ones.
	tokenService TokenService

	// loginTokenDuration controls how long a token issued by Login remains valid.
	loginTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	loginTokenDuration := cfg.TokenDuration
	if loginTokenDuration <= 0 {
		loginTokenDuration = config.DefaultLoginTokenDuration
	}

	return &authService{
		userRepository:     userRepository,
		hasher:             hasher,
		tokenService:       tokenService,
		loginTokenDuration: loginTokenDuration,
		logger:             logger,
	}
}

// RegisterUser hashes the password and stores a new account.
//
// Returns the persisted user or:
//   - ErrUsernameTaken if the username is already registered.
//   - A wrapped hashing or storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Debug().Str("username", credentials.Username).Msg("username already registered")
			return models.User{}, fmt.Errorf("%w: %w", ErrUsernameTaken, err)
		}
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login verifies the credentials and issues a token for the user.
//
// An unknown username and a wrong password both return ErrWrongCredentials.
// A stored hash that bcrypt cannot read is a data-integrity failure and is
// returned wrapped, not as a credentials error.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", credentials.Username).Msg("login for unknown user")
			return models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(credentials.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("stored password hash is unusable")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("username", foundUser.Username).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	return a.tokenService.Issue(ctx, foundUser.Username, a.loginTokenDuration)
}

// ResolveCurrentUser maps a bearer token to the stored account it was issued for.
//
// Returns:
//   - ErrUnauthenticated wrapping ErrInvalidToken or ErrExpiredToken.
//   - ErrUserNotFound if the subject no longer exists.
func (a *authService) ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, err := a.tokenService.Verify(ctx, tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", username).Msg("token subject does not exist")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}
