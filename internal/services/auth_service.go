// auth_service.go
//
// Podcast onboarding service for Straw Hut Media.
// Copyright (c) 2026 Straw Hut Media

package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/strawhutmedia/onboarding/internal/config"
)

// AdminSessionTTL bounds how long an admin login stays valid.
const AdminSessionTTL = 12 * time.Hour

// AdminCookieName is the cookie carrying the signed admin token.
const AdminCookieName = "shm_admin_session"

type adminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService checks admin credentials and mints session tokens.
type AuthService struct {
	username string
	password string
	secret   []byte
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		secret:   []byte(cfg.SessionSecret),
	}
}

// Login validates credentials and returns a signed session token.
func (a *AuthService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return "", fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	claims := adminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminSessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses a session token and returns the admin username.
func (a *AuthService) Verify(token string) (string, error) {
	claims := &adminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid session")
	}
	return claims.Username, nil
}
