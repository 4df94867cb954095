package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

func TestTokenServiceIssueAndValidate(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "s3cret", Issuer: "kmq-gateway", TTL: time.Hour})
	svc.now = fixedClock

	token, expires, err := svc.Issue("reporting-bot", "read")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Hour), expires)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "reporting-bot", claims.Subject)
	assert.Equal(t, "read", claims.Scope)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "s3cret", TTL: time.Minute})
	svc.now = fixedClock
	token, _, err := svc.Issue("bot", "")
	require.NoError(t, err)

	svc.now = func() time.Time { return fixedNow.Add(2 * time.Minute) }
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestTokenServiceRejectsForeignTokens(t *testing.T) {
	issuer := NewTokenService(TokenConfig{Secret: "other", Issuer: "kmq-gateway"})
	token, _, err := issuer.Issue("bot", "")
	require.NoError(t, err)

	svc := NewTokenService(TokenConfig{Secret: "s3cret", Issuer: "kmq-gateway"})
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	wrongIssuer := NewTokenService(TokenConfig{Secret: "other", Issuer: "someone-else"})
	_, err = wrongIssuer.Validate(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.Validate("not.a.token")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}
