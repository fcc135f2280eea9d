package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wargital/api/server"
)

func TestHealthEndpoint(t *testing.T) {
	svr := server.SetupRoutes()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alive": true}`, rec.Body.String())
}

func TestUserRoutesRejectAnonymous(t *testing.T) {
	svr := server.SetupRoutes()

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/user/addresses"},
		{"POST", "/user/addresses"},
		{"GET", "/user/payment-methods"},
		{"GET", "/user/favorites"},
		{"PUT", "/user/profile"},
		{"GET", "/me"},
	}

	for _, testCase := range tests {
		t.Run(testCase.method+" "+testCase.path, func(t *testing.T) {
			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rec := httptest.NewRecorder()
			svr.Router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
