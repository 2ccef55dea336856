package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inn/config"
	"inn/infras/jwt"
)

func newTestService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "inn"
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpireMin = 60

	return jwt.New(cfg)
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateSessionToken("guest@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "guest@example.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, claims.TokenID, claims.ID)
}

func TestJWT_InvalidToken(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateSessionToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateSessionToken("guest@example.com")
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.Session.Secret = "another-secret"
	otherCfg.Session.ExpireMin = 60

	_, err = jwt.New(otherCfg).ValidateSessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_ExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpireMin = -1

	svc := jwt.New(cfg)

	token, err := svc.GenerateSessionToken("guest@example.com")
	assert.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
