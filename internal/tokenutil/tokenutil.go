package tokenutil

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type jwtClaims struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	jwt.RegisteredClaims
}

func CreateAccessToken(user *domain.User, secret string, expiryHours int) (string, error) {
	claims := &jwtClaims{
		Name: user.Name,
		ID:   user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expiryHours))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func CreateRefreshToken(user *domain.User, secret string, expiryHours int) (string, error) {
	claims := &jwtClaims{
		ID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expiryHours))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parse(requestToken, secret string) (*jwtClaims, error) {
	token, err := jwt.ParseWithClaims(requestToken, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func IsAuthorized(requestToken, secret string) (bool, error) {
	if _, err := parse(requestToken, secret); err != nil {
		return false, err
	}
	return true, nil
}

func ExtractIDFromToken(requestToken, secret string) (string, error) {
	claims, err := parse(requestToken, secret)
	if err != nil {
		return "", err
	}
	return claims.ID, nil
}
