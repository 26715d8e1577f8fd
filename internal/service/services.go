package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, logger)
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, hasher, tokenService, cfg.App, logger),
	)
	noteService := NewNoteValidationService().Wrap(
		NewNoteService(storages.UserRepository, storages.NoteRepository, utils.NewUUIDGenerator(), logger),
	)

	return &Services{
		AuthService:    authService,
		NoteService:    noteService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
