package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard_backend/internal/config"
)

// ErrInvalidToken is returned for every validation failure: bad signature,
// expiry, malformed token, wrong algorithm. Callers never learn which, so
// nothing about verification internals leaks to clients.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an access token: subject is the normalized email,
// role is re-checked against the database on every request anyway.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed access token for the given subject.
// Secret, algorithm and TTL come from process configuration.
func GenerateToken(email, role string) (string, error) {
	cfg := config.GetConfig()
	return generate(email, role, []byte(cfg.JWT.Secret), cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
}

func generate(email, role string, secret []byte, alg string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(signingMethod(alg), claims)
	return token.SignedString(secret)
}

// ParseToken validates a token and returns its claims, or ErrInvalidToken.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{signingMethod(cfg.JWT.Algorithm).Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func signingMethod(alg string) *jwt.SigningMethodHMAC {
	switch alg {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}
