package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"food-donation-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed bearer token lifetime (604800 seconds, 7 days)
const TokenTTL = 604800 * time.Second

// ClaimsVersion marks the claims layout so stale tokens can be rejected
// if the payload shape ever changes.
const ClaimsVersion = 1

// AuthClaims represents JWT token claims. Deliberately narrow: identity plus a
// version marker, nothing that goes stale when the profile changes.
type AuthClaims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Version int    `json:"ver"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies bearer tokens
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{secret: []byte(cfg.JWTSecret)}
}

// GenerateJWT signs a token for the given user identity
func (s *AuthService) GenerateJWT(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:  userID.String(),
		Email:   email,
		Version: ClaimsVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "food-donation-backend",
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT verifies the signature and expiry of a token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// GenerateEmailToken returns an opaque random token for verification links
func GenerateEmailToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
