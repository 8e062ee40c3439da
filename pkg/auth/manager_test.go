package auth

import (
	"testing"
	"time"

	"github.com/crewreg/backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(config.JWTConfig{SigningKey: "", AccessTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "key", AccessTokenTTL: 0})
	assert.Error(t, err)
}

func TestNewJWTRoundTrip(t *testing.T) {
	m, err := NewManager(config.JWTConfig{SigningKey: "key", AccessTokenTTL: 24 * time.Hour})
	require.NoError(t, err)

	id := uuid.New()
	token, ttl, err := m.NewJWT(&id)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)

	sub, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), sub)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	m1, err := NewManager(config.JWTConfig{SigningKey: "key-one", AccessTokenTTL: time.Hour})
	require.NoError(t, err)
	m2, err := NewManager(config.JWTConfig{SigningKey: "key-two", AccessTokenTTL: time.Hour})
	require.NoError(t, err)

	id := uuid.New()
	token, _, err := m1.NewJWT(&id)
	require.NoError(t, err)

	_, err = m2.Parse(token)
	assert.Error(t, err)
}
