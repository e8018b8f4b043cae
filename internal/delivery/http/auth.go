package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const userIDKey = "userID"

var errInvalidToken = errors.New("invalid token")

// AuthMiddleware verifies an HS256 bearer token issued by the external auth
// provider. The subject claim must be the user's UUID.
func AuthMiddleware(secret, issuer string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apiError(c, http.StatusUnauthorized, "Authorization header required")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			apiError(c, http.StatusUnauthorized, "Bearer token required")
			return
		}

		userID, err := parseUserToken(tokenString, key, issuer)
		if err != nil {
			apiError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// parseUserToken validates the token and returns its subject
func parseUserToken(tokenString string, key []byte, issuer string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errInvalidToken
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return uuid.Nil, fmt.Errorf("%w: issuer %q", errInvalidToken, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject: %v", errInvalidToken, err)
	}
	return userID, nil
}
