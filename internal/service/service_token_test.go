package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(signKey string) TokenService {
	return NewTokenService(config.App{
		TokenSignKey:         signKey,
		TokenIssuer:          "test-issuer",
		DefaultTokenDuration: 15 * time.Minute,
	}, logger.Nop())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService("secret")
	ctx := context.Background()

	token, err := svc.Issue(ctx, "alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	subject, err := svc.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_Issue_ZeroTTLUsesDefault(t *testing.T) {
	svc := newTestTokenService("secret")

	before := time.Now()
	token, err := svc.Issue(context.Background(), "alice", 0)
	require.NoError(t, err)

	ttl := token.ExpiresAt.Sub(before)
	assert.InDelta(t, (15 * time.Minute).Seconds(), ttl.Seconds(), 2)
}

func TestTokenService_Verify_SubjectIsNotInterchangeable(t *testing.T) {
	svc := newTestTokenService("secret")
	ctx := context.Background()

	tokenA, err := svc.Issue(ctx, "alice", time.Minute)
	require.NoError(t, err)
	tokenB, err := svc.Issue(ctx, "bob", time.Minute)
	require.NoError(t, err)

	subjectA, err := svc.Verify(ctx, tokenA.SignedString)
	require.NoError(t, err)
	subjectB, err := svc.Verify(ctx, tokenB.SignedString)
	require.NoError(t, err)

	assert.Equal(t, "alice", subjectA)
	assert.Equal(t, "bob", subjectB)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService("secret")

	expired, err := utils.GenerateJWTToken("test-issuer", "alice", time.Nanosecond, "secret")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.Verify(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Invalid(t *testing.T) {
	otherKey, err := utils.GenerateJWTToken("test-issuer", "alice", time.Minute, "other-secret")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "alice", time.Minute, "secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "wrong key", token: otherKey.SignedString},
		{name: "wrong issuer", token: otherIssuer.SignedString},
	}

	svc := newTestTokenService("secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_Issue_EmptySubject(t *testing.T) {
	_, err := newTestTokenService("secret").Issue(context.Background(), "", time.Minute)
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
