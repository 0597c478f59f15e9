package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T, user, admin string) {
	t.Helper()
	t.Setenv("USER_TOKEN_SECRET", user)
	t.Setenv("ADMIN_TOKEN_SECRET", admin)
}

func TestLoad_Defaults(t *testing.T) {
	setSecrets(t, "user-secret", "admin-secret")
	t.Setenv("AUTH_USER_BINDING", "")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BindingBearer, cfg.Auth.UserBinding)
	assert.Equal(t, time.Duration(0), cfg.Auth.TokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "sid", cfg.Auth.SessionCookie)
}

func TestLoad_FailsClosedWithoutSecrets(t *testing.T) {
	setSecrets(t, "", "admin-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USER_TOKEN_SECRET")

	setSecrets(t, "user-secret", "")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_TOKEN_SECRET")
}

func TestLoad_RejectsSharedSecret(t *testing.T) {
	setSecrets(t, "same", "same")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestLoad_RejectsUnknownBinding(t *testing.T) {
	setSecrets(t, "user-secret", "admin-secret")
	t.Setenv("AUTH_USER_BINDING", "cookie-jar")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_SessionBindingAndTTL(t *testing.T) {
	setSecrets(t, "user-secret", "admin-secret")
	t.Setenv("AUTH_USER_BINDING", "Session")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BindingSession, cfg.Auth.UserBinding)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL())
}
