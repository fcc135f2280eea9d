package utils_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wargital/api/config"
	"github.com/wargital/api/middlewares"
	"github.com/wargital/api/utils"
)

func init() {
	config.SecretKey = []byte("test-secret")
}

func TestHashPassword(t *testing.T) {
	hashed, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hashed)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("rahasia123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("salah")))
}

func TestGenerateTokensRoundTrip(t *testing.T) {
	userID := uuid.New()

	accessToken, refreshToken, err := utils.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)

	refreshClaims := &jwt.RegisteredClaims{}
	refreshObj, err := jwt.ParseWithClaims(refreshToken, refreshClaims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	require.NoError(t, err)
	require.True(t, refreshObj.Valid)
	assert.Equal(t, userID.String(), refreshClaims.Subject)
	assert.True(t, refreshClaims.ExpiresAt.After(claims.ExpiresAt.Time))
}

func TestRespondValidationError(t *testing.T) {
	var merr *multierror.Error
	merr = multierror.Append(merr, errors.New("label: required"))
	merr = multierror.Append(merr, errors.New("phone: must be at least 10 characters"))

	rec := httptest.NewRecorder()
	utils.RespondValidationError(rec, merr)

	assert.Equal(t, 400, rec.Code)

	var body struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "invalid payload", body.Message)
	assert.Equal(t, []string{"label: required", "phone: must be at least 10 characters"}, body.Errors)
}

func TestRespondValidationErrorPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.RespondValidationError(rec, errors.New("exactly one of restaurantId or menuItemId is required"))

	assert.Equal(t, 400, rec.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"exactly one of restaurantId or menuItemId is required"}, body.Errors)
}
