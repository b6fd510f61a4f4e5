package auth

import (
	"fmt"
	"time"

	apperrors "garden-planner-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped on tokens generated by this service
const Issuer = "garden-planner-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Role                 string `json:"role,omitempty" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService signs and validates HS256 tokens with a shared secret
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, &apperrors.ConfigurationError{Message: "JWT secret is required"}
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// GenerateJWT creates a token for subject valid for ttl
func (s *AuthService) GenerateJWT(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}
