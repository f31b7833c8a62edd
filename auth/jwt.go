package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every session token.
type Claims struct {
	UserID  string
	Email   string
	Role    string
	Name    string
	Picture string
}

// IssueJWT signs a 24h session token for a user.
func IssueJWT(c Claims) (string, error) {
	claims := jwt.MapClaims{
		"user_id": c.UserID,
		"email":   c.Email,
		"role":    c.Role,
		"name":    c.Name,
		"picture": c.Picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseJWT validates a session token and returns its claims.
func ParseJWT(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	c := Claims{}
	c.UserID, _ = mapClaims["user_id"].(string)
	c.Email, _ = mapClaims["email"].(string)
	c.Role, _ = mapClaims["role"].(string)
	c.Name, _ = mapClaims["name"].(string)
	c.Picture, _ = mapClaims["picture"].(string)
	if c.UserID == "" {
		return Claims{}, errors.New("invalid token claims")
	}
	return c, nil
}
