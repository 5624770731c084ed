package utils

import (
	"errors"
	"time"

	"hotelier/config"

	"github.com/golang-jwt/jwt"
)

func jwtSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "hotelier-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject (userID),
// email and role. The token expires after the specified duration.
func GenerateToken(subject, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
}

// ExtractClaimsFromToken extracts the subject, email and role claims from a
// valid JWT token string.
func ExtractClaimsFromToken(tokenString string) (userID, email, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token claims")
	}
	userID, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	if userID == "" {
		return "", "", "", errors.New("token missing subject")
	}
	return userID, email, role, nil
}
