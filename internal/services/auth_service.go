package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = time.Hour

// ErrMissingSecret is returned when no signing secret is configured.
var ErrMissingSecret = errors.New("token signing secret is not configured")

// AuthService issues and validates identity tokens and answers role questions.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// WithClock replaces the clock used when issuing tokens.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// IssueToken signs payload as-is and adds exp and iat claims.
//
// The payload is not checked against any stored user: whoever calls this gets a token
// for whatever identity they claim. Callers downstream must treat the email claim as
// self-asserted and rely on IsAdmin for anything privileged.
func (s *AuthService) IssueToken(payload map[string]interface{}) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", ErrMissingSecret
	}

	now := s.now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenLifetime).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	if len(s.jwtSecret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// IsAdmin looks up the user registered under email and reports whether it has the admin role.
// An unknown email is not an error.
func (s *AuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}
