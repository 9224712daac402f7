package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	JWTSecret []byte
	TokenTTL  = 12 * time.Hour
)

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "BarSessionSecret"
	}
	JWTSecret = []byte(secret)
}

// ConfigureJWT replaces the signing secret and token lifetime.
func ConfigureJWT(secret string, ttl time.Duration) {
	if secret != "" {
		JWTSecret = []byte(secret)
	}
	if ttl > 0 {
		TokenTTL = ttl
	}
}

type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a session token for role.
func GenerateToken(role string) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "BarApp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

// ParseToken validates signature, expiry and revocation.
func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if IsTokenBlacklisted(claims.ID) {
		return nil, errors.New("token has been revoked")
	}

	return claims, nil
}
