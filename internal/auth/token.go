package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"guestlink/internal/domain"
)

// Claims are the JWT claims carried by a staff bearer token.
type Claims struct {
	HotelID string `json:"hotel_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 staff tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager from the configured secret. An empty
// secret gets a random one, which invalidates all tokens on restart.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if secret == "" {
		b := make([]byte, 32)
		_, _ = rand.Read(b)
		secret = hex.EncodeToString(b)
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(staff domain.StaffAccount) (string, error) {
	now := time.Now()
	claims := Claims{
		HotelID: staff.HotelID,
		Role:    staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.ID,
			Issuer:    "guestlink",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify resolves a bearer token to a staff identity. Any parse, signature
// or expiry problem maps to domain.ErrUnauthorized.
func (m *TokenManager) Verify(token string) (domain.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if claims.Subject == "" || claims.HotelID == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return domain.Identity{
		StaffID: claims.Subject,
		HotelID: claims.HotelID,
		Role:    claims.Role,
	}, nil
}
