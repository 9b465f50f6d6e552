package jwtutil

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrRevoked is returned for a token that was logged out
var ErrRevoked = errors.New("token has been revoked")

// UserClaims represents the JWT claims for an authenticated session
type UserClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session returns the session the token was issued for
func (c *UserClaims) Session() model.Session {
	return model.Session{Username: c.Username, Role: c.Role}
}

// JWTUtil is a utility for JWT token operations
type JWTUtil struct {
	config *config.JWTConfig
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewJWTUtil creates a new JWT utility with the given configuration
func NewJWTUtil(cfg *config.JWTConfig) *JWTUtil {
	return &JWTUtil{
		config:  cfg,
		now:     time.Now,
		revoked: map[string]time.Time{},
	}
}

// GenerateToken signs a token for the session. Each token carries a random id so it can be revoked.
func (j *JWTUtil) GenerateToken(session model.Session) (string, time.Time, error) {
	if j.config == nil || j.config.SigningKey == "" {
		return "", time.Time{}, errors.New("JWT configuration not provided")
	}

	now := j.now()
	expiresAt := now.Add(time.Duration(j.config.ExpirationHours) * time.Hour)
	claims := UserClaims{
		Username: session.Username,
		Role:     session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   session.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.config.SigningKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken validates and parses the JWT token
func (j *JWTUtil) ValidateToken(tokenString string) (*UserClaims, error) {
	if j.config == nil || j.config.SigningKey == "" {
		return nil, errors.New("JWT configuration not provided")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SigningKey), nil
		},
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if j.isRevoked(claims.ID) {
		return nil, ErrRevoked
	}
	return claims, nil
}

// Revoke rejects the token from now until it would have expired anyway
func (j *JWTUtil) Revoke(claims *UserClaims) {
	if claims.ID == "" {
		return
	}
	expires := j.now()
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.revoked[claims.ID] = expires
	j.pruneLocked()
}

func (j *JWTUtil) isRevoked(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, ok := j.revoked[id]
	return ok
}

func (j *JWTUtil) pruneLocked() {
	now := j.now()
	for id, exp := range j.revoked {
		if now.After(exp) {
			delete(j.revoked, id)
		}
	}
}
