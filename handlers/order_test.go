package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wargital/api/handlers"
)

// These cover the request-validation surface of checkout, which fails before
// any store access.

func TestPlaceOrderRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"empty object", `{}`},
		{"missing items", `{"restaurantId":"5da90af2-3ab4-4b41-a7fa-28a0a37b4298"}`},
		{"empty items", `{"restaurantId":"5da90af2-3ab4-4b41-a7fa-28a0a37b4298","items":[]}`},
		{
			"zero quantity",
			`{"restaurantId":"5da90af2-3ab4-4b41-a7fa-28a0a37b4298","items":[{"menuItemId":"a53f7cbb-6fd0-4b37-9b2c-0d2cfb08f1ce","quantity":0}]}`,
		},
		{
			"negative quantity",
			`{"restaurantId":"5da90af2-3ab4-4b41-a7fa-28a0a37b4298","items":[{"menuItemId":"a53f7cbb-6fd0-4b37-9b2c-0d2cfb08f1ce","quantity":-2}]}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/order", strings.NewReader(testCase.body))
			rec := httptest.NewRecorder()

			handlers.PlaceOrder(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPlaceOrderValidationReportsFields(t *testing.T) {
	body := `{"items":[{"menuItemId":"a53f7cbb-6fd0-4b37-9b2c-0d2cfb08f1ce","quantity":0}]}`
	req := httptest.NewRequest("POST", "/order", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.PlaceOrder(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid payload", resp.Message)
	assert.Len(t, resp.Errors, 2)
}
