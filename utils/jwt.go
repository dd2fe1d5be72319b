package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var fallbackSecret string

// SessionSecret returns SESSION_SECRET, or a per-process random secret when
// unset (sessions then die with the process, which is acceptable for dev).
func SessionSecret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	if fallbackSecret == "" {
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		fallbackSecret = hex.EncodeToString(buf)
	}
	return []byte(fallbackSecret)
}

func GenerateSessionToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString(SessionSecret())
}

// ParseSessionToken validates an HS256 session token and returns the user id.
func ParseSessionToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return SessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	id, ok := claims["userId"].(float64) // JSON numbers decode as float64
	if !ok || id <= 0 {
		return 0, errors.New("userId claim missing")
	}
	return uint(id), nil
}
