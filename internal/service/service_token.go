package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs HS256 tokens with a key fixed at construction.
type tokenService struct {
	signKey    string
	issuer     string
	defaultTTL time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the App configuration.
// An unset default duration falls back to [config.DefaultTokenDuration].
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	defaultTTL := cfg.DefaultTokenDuration
	if defaultTTL <= 0 {
		defaultTTL = config.DefaultTokenDuration
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}

	return &tokenService{
		signKey:    cfg.TokenSignKey,
		issuer:     issuer,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, subject string, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	token, err := utils.GenerateJWTToken(s.issuer, subject, ttl, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.Issue").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token.Username, nil
}
