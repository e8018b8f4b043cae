package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "https://auth.nutriplan.io"
)

// signToken issues an HS256 token the way the auth provider does
func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID uuid.UUID) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func TestParseUserToken(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		got, err := parseUserToken(signToken(t, testSecret, validClaims(userID)), []byte(testSecret), testIssuer)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("issuer is not checked when unset", func(t *testing.T) {
		claims := validClaims(userID)
		claims.Issuer = "someone-else"
		got, err := parseUserToken(signToken(t, testSecret, claims), []byte(testSecret), "")
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	tests := []struct {
		name   string
		token  func() string
		issuer string
	}{
		{
			name:  "wrong secret",
			token: func() string { return signToken(t, "other-secret", validClaims(userID)) },
		},
		{
			name: "expired",
			token: func() string {
				claims := validClaims(userID)
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signToken(t, testSecret, claims)
			},
		},
		{
			name:   "wrong issuer",
			token:  func() string { return signToken(t, testSecret, validClaims(userID)) },
			issuer: "https://other.example.com",
		},
		{
			name: "subject is not a uuid",
			token: func() string {
				claims := validClaims(userID)
				claims.Subject = "user-42"
				return signToken(t, testSecret, claims)
			},
		},
		{
			name:  "garbage",
			token: func() string { return "not.a.jwt" },
		},
		{
			name: "unsigned token",
			token: func() string {
				signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims(userID)).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseUserToken(tt.token(), []byte(testSecret), tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	router := gin.New()
	router.Use(AuthMiddleware(testSecret, testIssuer))
	router.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, currentUserID(c).String())
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, testSecret, validClaims(userID)), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}
