package jwtutil

import (
	"testing"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUtil() *JWTUtil {
	return NewJWTUtil(&config.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})
}

func TestGenerateAndValidate(t *testing.T) {
	j := newTestUtil()
	sess := model.Session{Username: "admin", Role: model.RoleAdmin}

	token, expiresAt, err := j.GenerateToken(sess)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sess, claims.Session())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateRejectsTampering(t *testing.T) {
	j := newTestUtil()
	token, _, err := j.GenerateToken(model.Session{Username: "bob", Role: model.RoleStaff})
	require.NoError(t, err)

	other := NewJWTUtil(&config.JWTConfig{SigningKey: "other-key", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = j.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	j := newTestUtil()
	token, _, err := j.GenerateToken(model.Session{Username: "bob", Role: model.RoleStaff})
	require.NoError(t, err)

	j.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = j.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRevoke(t *testing.T) {
	j := newTestUtil()
	token, _, err := j.GenerateToken(model.Session{Username: "bob", Role: model.RoleStaff})
	require.NoError(t, err)
	claims, err := j.ValidateToken(token)
	require.NoError(t, err)

	j.Revoke(claims)

	_, err = j.ValidateToken(token)
	assert.ErrorIs(t, err, ErrRevoked)

	fresh, _, err := j.GenerateToken(model.Session{Username: "bob", Role: model.RoleStaff})
	require.NoError(t, err)
	_, err = j.ValidateToken(fresh)
	assert.NoError(t, err)
}

func TestMissingConfig(t *testing.T) {
	j := NewJWTUtil(nil)
	_, _, err := j.GenerateToken(model.Session{Username: "x"})
	assert.Error(t, err)
	_, err = j.ValidateToken("x")
	assert.Error(t, err)
}
