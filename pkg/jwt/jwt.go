package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const defaultTTL = 24 * time.Hour

var ErrTokenNotValid = errors.New("token is not valid")

type JWT struct {
	secret []byte
	ttl    time.Duration
}

type option func(*JWT)

// TTL sets how long created tokens stay valid.
func TTL(ttl time.Duration) option {
	return func(j *JWT) {
		if ttl > 0 {
			j.ttl = ttl
		}
	}
}

func New(secret []byte, options ...option) *JWT {
	j := &JWT{
		secret: secret,
		ttl:    defaultTTL,
	}
	for _, opt := range options {
		opt(j)
	}
	return j
}

// Create signs a token carrying value under key.
func (j *JWT) Create(key, value string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		key:   value,
		"exp": time.Now().Add(j.ttl).Unix(),
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry and returns the value stored under key.
func (j *JWT) Verify(signed, key string) (string, bool, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrTokenNotValid, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", false, nil
	}
	value, ok := claims[key].(string)
	if !ok {
		return "", false, nil
	}

	return value, true, nil
}
