package dbhelper_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wargital/api/database/dbhelper"
)

var (
	restaurantColumns = []string{"id", "name", "description", "distance", "image", "created_at"}
	menuItemColumns   = []string{"id", "restaurant_id", "name", "description", "price", "image"}
)

func TestListRestaurantsEmptyTableIsEmptyArray(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`FROM restaurants`).
		WillReturnRows(sqlmock.NewRows(restaurantColumns))
	mock.ExpectQuery(`FROM menu_items`).
		WillReturnRows(sqlmock.NewRows(menuItemColumns))

	restaurants, err := dbhelper.ListRestaurants()
	require.NoError(t, err)
	require.NotNil(t, restaurants)
	assert.Len(t, restaurants, 0)

	// an empty list must serialize as [] rather than null
	body, err := json.Marshal(restaurants)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRestaurantsGroupsMenuByRestaurant(t *testing.T) {
	mock := newMockDB(t)

	warungID := uuid.New()
	kedaiID := uuid.New()

	mock.ExpectQuery(`FROM restaurants`).
		WillReturnRows(sqlmock.NewRows(restaurantColumns).
			AddRow(kedaiID.String(), "Kedai Kopi", "Kopi dan camilan", "1.2 km", nil, time.Now()).
			AddRow(warungID.String(), "Wargital", "Masakan rumahan", "0.5 km", nil, time.Now()))
	mock.ExpectQuery(`FROM menu_items`).
		WillReturnRows(sqlmock.NewRows(menuItemColumns).
			AddRow(uuid.New().String(), warungID.String(), "Nasi Goreng Spesial", "Dengan telur", 25000, nil).
			AddRow(uuid.New().String(), warungID.String(), "Es Teh Manis", "Dingin", 5000, nil).
			AddRow(uuid.New().String(), kedaiID.String(), "Kopi Tubruk", "Hitam pekat", 8000, nil))

	restaurants, err := dbhelper.ListRestaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Len(t, restaurants[0].Menu, 1)
	assert.Len(t, restaurants[1].Menu, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
