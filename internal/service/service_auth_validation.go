package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthValidationService checks credentials before they reach the wrapped
// AuthService. Malformed login credentials are reported as
// ErrWrongCredentials so the response does not reveal which rule failed.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during credentials validation: %w", err)
	}

	return v.inner.RegisterUser(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.ResolveCurrentUser(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
