package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/wargital/api/database"
	"github.com/wargital/api/models"
)

// GetMenuItemsByIDs resolves the requested menu items in one batch lookup,
// keyed by id.
func GetMenuItemsByIDs(ids []uuid.UUID) (map[uuid.UUID]models.MenuItem, error) {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	rows, err := database.Wargital.Query(`
		SELECT id, restaurant_id, name, description, price, image
		FROM menu_items
		WHERE id = ANY($1::uuid[])`, pq.Array(strIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[uuid.UUID]models.MenuItem)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.Image); err != nil {
			return nil, err
		}
		found[item.ID] = item
	}
	return found, rows.Err()
}

// CreateOrder persists the order and every line item in one transaction; no
// partial order may exist without its items. Line items snapshot the unit
// price in effect at checkout.
func CreateOrder(order *models.Order, items []models.OrderItem) error {
	return database.Tx(func(tx *sql.Tx) error {
		err := tx.QueryRow(`
			INSERT INTO orders (restaurant_id, user_id, status, total)
			VALUES ($1, $2, $3, $4)
			RETURNING id, order_date`,
			order.RestaurantID, order.UserID, order.Status, order.Total).
			Scan(&order.ID, &order.OrderDate)
		if err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			err := tx.QueryRow(`
				INSERT INTO order_items (order_id, menu_item_id, quantity, price)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				items[i].OrderID, items[i].MenuItemID, items[i].Quantity, items[i].Price).
				Scan(&items[i].ID)
			if err != nil {
				return err
			}
		}

		order.Items = items
		return nil
	})
}

// GetOrderByID returns the order joined with its restaurant and line
// items with their menu items.
func GetOrderByID(id uuid.UUID) (models.Order, error) {
	var order models.Order
	var rest models.Restaurant
	err := database.Wargital.QueryRow(`
		SELECT o.id, o.restaurant_id, o.user_id, o.status, o.total, o.order_date,
		       r.id, r.name, r.description, r.distance, r.image, r.created_at
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.id = $1`, id).
		Scan(&order.ID, &order.RestaurantID, &order.UserID, &order.Status, &order.Total, &order.OrderDate,
			&rest.ID, &rest.Name, &rest.Description, &rest.Distance, &rest.Image, &rest.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}
	order.Restaurant = &rest

	order.Items, err = getOrderItems(order.ID)
	return order, err
}

// ListOrders returns every order, newest first, or only the given buyer's when
// userID is set.
func ListOrders(userID *uuid.UUID) ([]models.Order, error) {
	query := `
		SELECT o.id, o.restaurant_id, o.user_id, o.status, o.total, o.order_date,
		       r.id, r.name, r.description, r.distance, r.image, r.created_at
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id`
	args := []interface{}{}
	if userID != nil {
		query += ` WHERE o.user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY o.order_date DESC`

	rows, err := database.Wargital.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		var rest models.Restaurant
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.UserID, &order.Status, &order.Total, &order.OrderDate,
			&rest.ID, &rest.Name, &rest.Description, &rest.Distance, &rest.Image, &rest.CreatedAt); err != nil {
			return nil, err
		}
		order.Restaurant = &rest
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := getOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func getOrderItems(orderID uuid.UUID) ([]models.OrderItem, error) {
	rows, err := database.Wargital.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price,
		       m.id, m.restaurant_id, m.name, m.description, m.price, m.image
		FROM order_items oi
		JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		var menuItem models.MenuItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price,
			&menuItem.ID, &menuItem.RestaurantID, &menuItem.Name, &menuItem.Description, &menuItem.Price, &menuItem.Image); err != nil {
			return nil, err
		}
		item.MenuItem = &menuItem
		items = append(items, item)
	}
	return items, rows.Err()
}
