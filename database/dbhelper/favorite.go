package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/wargital/api/database"
	"github.com/wargital/api/models"
)

func ListFavorites(userID uuid.UUID) ([]models.Favorite, error) {
	rows, err := database.Wargital.Query(`
		SELECT f.id, f.user_id, f.restaurant_id, f.menu_item_id, f.created_at,
		       r.id, r.name, r.description, r.distance, r.image, r.created_at,
		       m.id, m.restaurant_id, m.name, m.description, m.price, m.image
		FROM favorites f
		LEFT JOIN restaurants r ON f.restaurant_id = r.id
		LEFT JOIN menu_items m ON f.menu_item_id = m.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var fav models.Favorite
		var restID, menuID *uuid.UUID
		var restName, restDescription, restDistance, restImage *string
		var restCreatedAt sql.NullTime
		var itemRestID *uuid.UUID
		var itemName, itemDescription, itemImage *string
		var itemPrice *int64

		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.RestaurantID, &fav.MenuItemID, &fav.CreatedAt,
			&restID, &restName, &restDescription, &restDistance, &restImage, &restCreatedAt,
			&menuID, &itemRestID, &itemName, &itemDescription, &itemPrice, &itemImage); err != nil {
			return nil, err
		}

		if restID != nil {
			fav.Restaurant = &models.Restaurant{
				ID:          *restID,
				Name:        *restName,
				Description: *restDescription,
				Distance:    restDistance,
				Image:       restImage,
				CreatedAt:   restCreatedAt.Time,
			}
		}
		if menuID != nil {
			fav.MenuItem = &models.MenuItem{
				ID:           *menuID,
				RestaurantID: *itemRestID,
				Name:         *itemName,
				Description:  *itemDescription,
				Price:        *itemPrice,
				Image:        itemImage,
			}
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

// FavoriteExists reports whether the user already bookmarked the restaurant or
// menu item; exactly one of the two ids is non-nil.
func FavoriteExists(userID uuid.UUID, restaurantID, menuItemID *uuid.UUID) (bool, error) {
	var exists bool
	var err error
	if restaurantID != nil {
		err = database.Wargital.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND restaurant_id = $2)`,
			userID, *restaurantID).Scan(&exists)
	} else {
		err = database.Wargital.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND menu_item_id = $2)`,
			userID, *menuItemID).Scan(&exists)
	}
	return exists, err
}

func CreateFavorite(userID uuid.UUID, restaurantID, menuItemID *uuid.UUID) (models.Favorite, error) {
	var fav models.Favorite
	err := database.Wargital.QueryRow(`
		INSERT INTO favorites (user_id, restaurant_id, menu_item_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, restaurant_id, menu_item_id, created_at`,
		userID, restaurantID, menuItemID).
		Scan(&fav.ID, &fav.UserID, &fav.RestaurantID, &fav.MenuItemID, &fav.CreatedAt)
	return fav, err
}

func DeleteFavoriteByRestaurant(userID, restaurantID uuid.UUID) error {
	res, err := database.Wargital.Exec(`
		DELETE FROM favorites WHERE user_id = $1 AND restaurant_id = $2`, userID, restaurantID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
