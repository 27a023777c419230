package utils

import (
	"errors"
	"time"

	"nutriassist/config"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens carry the user's id and username, expire after an hour and have no
// refresh mechanism.
const tokenTTL = time.Hour

func GenerateJWT(userID uint, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       userID,
		"username": username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(config.JWTSecret())
}

// ParseJWT validates an HS256 token and returns the embedded id and username.
func ParseJWT(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	id, ok := claims["id"].(float64) // numbers decode as float64 from JSON
	if !ok {
		return 0, "", errors.New("id claim missing")
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return 0, "", errors.New("username claim missing")
	}
	return uint(id), username, nil
}
