package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wargital/api/database"
	"github.com/wargital/api/handlers"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	database.Wargital = db
	t.Cleanup(func() { db.Close() })
	return mock
}

// Two requests registering the same email can both pass the existence check;
// the loser hits the unique constraint on users.email and should get the same
// response as if the check had caught it.
func TestRegisterDuplicateEmailRaceIsBadRequest(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("budi@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	mock.ExpectRollback()

	body := `{"email":"budi@example.com","password":"secret123"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "email already registered", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterExistingEmailIsBadRequest(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("budi@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{"email":"budi@example.com","password":"secret123"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
