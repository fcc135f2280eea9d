package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wargital/api/config"
	"github.com/wargital/api/middlewares"
	"github.com/wargital/api/utils"
)

func init() {
	config.SecretKey = []byte("test-secret")
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUserID uuid.UUID
	}{
		{"valid token", "Bearer " + token, http.StatusOK, userID},
		{"missing header", "", http.StatusUnauthorized, uuid.Nil},
		{"malformed header", "Token abc", http.StatusUnauthorized, uuid.Nil},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, uuid.Nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var gotUserID uuid.UUID
			handler := middlewares.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, err := middlewares.GetAuthenticatedUser(r)
				require.NoError(t, err)
				gotUserID = claims.UserID
			}))

			req := httptest.NewRequest("GET", "/user/addresses", nil)
			if testCase.authHeader != "" {
				req.Header.Set("Authorization", testCase.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, testCase.wantStatus, rec.Code)
			assert.Equal(t, testCase.wantUserID, gotUserID)
		})
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	claims := &middlewares.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.SecretKey))
	require.NoError(t, err)

	handler := middlewares.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareSubjectFallback(t *testing.T) {
	userID := uuid.New()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.SecretKey))
	require.NoError(t, err)

	handler := middlewares.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := middlewares.GetAuthenticatedUser(r)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
	}))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authHeader    string
		wantAnonymous bool
	}{
		{"anonymous request passes through", "", true},
		{"invalid token treated as anonymous", "Bearer junk", true},
		{"valid token resolves identity", "Bearer " + token, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler := middlewares.OptionalAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, err := middlewares.GetAuthenticatedUser(r)
				if testCase.wantAnonymous {
					assert.Error(t, err)
				} else {
					require.NoError(t, err)
					assert.Equal(t, userID, claims.UserID)
				}
			}))

			req := httptest.NewRequest("POST", "/order", nil)
			if testCase.authHeader != "" {
				req.Header.Set("Authorization", testCase.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
