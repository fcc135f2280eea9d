package dbhelper

import (
	"github.com/google/uuid"

	"github.com/wargital/api/database"
	"github.com/wargital/api/models"
)

func ListRestaurants() ([]models.Restaurant, error) {
	rows, err := database.Wargital.Query(`
		SELECT id, name, description, distance, image, created_at
		FROM restaurants
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var rest models.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Distance, &rest.Image, &rest.CreatedAt); err != nil {
			return nil, err
		}
		rest.Menu = []models.MenuItem{}
		index[rest.ID] = len(restaurants)
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	menuRows, err := database.Wargital.Query(`
		SELECT id, restaurant_id, name, description, price, image
		FROM menu_items`)
	if err != nil {
		return nil, err
	}
	defer menuRows.Close()

	for menuRows.Next() {
		var item models.MenuItem
		if err := menuRows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.Image); err != nil {
			return nil, err
		}
		if i, ok := index[item.RestaurantID]; ok {
			restaurants[i].Menu = append(restaurants[i].Menu, item)
		}
	}
	return restaurants, menuRows.Err()
}

func GetRestaurantByID(id uuid.UUID) (models.Restaurant, error) {
	var rest models.Restaurant
	err := database.Wargital.QueryRow(`
		SELECT id, name, description, distance, image, created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Distance, &rest.Image, &rest.CreatedAt)
	if err != nil {
		return models.Restaurant{}, err
	}

	rest.Menu, err = GetMenuByRestaurant(id)
	return rest, err
}

func GetMenuByRestaurant(restaurantID uuid.UUID) ([]models.MenuItem, error) {
	rows, err := database.Wargital.Query(`
		SELECT id, restaurant_id, name, description, price, image
		FROM menu_items
		WHERE restaurant_id = $1`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func IsRestaurantExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Wargital.QueryRow(`SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
