package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrMissingSecret = errors.New("auth: signing secret is empty")
	ErrInvalidToken  = errors.New("auth: invalid token")
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// TokenManager issues and verifies HS256 access tokens carrying a user id and
// an absolute expiry. Tokens are stateless; there is no revocation.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret []byte, ttl time.Duration) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: token lifetime must be positive, got %s", ttl)
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &TokenManager{secret: key, ttl: ttl, now: time.Now}, nil
}

func (m *TokenManager) Issue(userID string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify returns the user id carried by a valid token. Bad signatures,
// malformed tokens, foreign algorithms and expired tokens all yield
// ErrInvalidToken.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	// jwt-go treats a missing exp as valid
	if claims.ExpiresAt == 0 {
		return "", ErrInvalidToken
	}

	userID := claims.Subject
	if userID == "" {
		userID = claims.UserID
	}
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
