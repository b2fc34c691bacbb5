package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT Secret Key, loaded from the environment at startup.
var JwtKey []byte

// tokenLifetime matches the 10-day sessions the storefront expects.
const tokenLifetime = 10 * 24 * time.Hour

// Claims represents the JWT claims. Only the email goes into the
// token; roles are looked up from the users collection on every
// gated request so a revoked role takes effect immediately.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateJWT signs a bearer token for an already-registered email.
func GenerateJWT(email string) (string, error) {
	expirationTime := time.Now().Add(tokenLifetime)
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
