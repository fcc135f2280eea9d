package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusPreparing OrderStatus = "preparing"
	StatusEnRoute   OrderStatus = "en_route"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// statusTransitions is the full lifecycle. Checkout only ever writes
// StatusCreated; nothing in the API advances an order yet, so the table is
// validated but not driven by any endpoint.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusCreated:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusEnRoute, StatusCancelled},
	StatusEnRoute:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	RestaurantID uuid.UUID   `db:"restaurant_id" json:"restaurantId"`
	UserID       *uuid.UUID  `db:"user_id" json:"userId,omitempty"`
	Status       OrderStatus `db:"status" json:"status"`
	Total        int64       `db:"total" json:"total"`
	OrderDate    time.Time   `db:"order_date" json:"orderDate"`
	Restaurant   *Restaurant `db:"-" json:"restaurant,omitempty"`
	Items        []OrderItem `db:"-" json:"items"`
}

type OrderItem struct {
	ID         uuid.UUID `db:"id" json:"id"`
	OrderID    uuid.UUID `db:"order_id" json:"orderId"`
	MenuItemID uuid.UUID `db:"menu_item_id" json:"menuItemId"`
	Quantity   int       `db:"quantity" json:"quantity"`
	Price      int64     `db:"price" json:"price"`
	MenuItem   *MenuItem `db:"-" json:"menuItem,omitempty"`
}

// LineItem is a (menu item, quantity) pair submitted at checkout.
type LineItem struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

// MissingMenuItemIDs reports the requested ids that were not resolved against
// the menu, deduplicated, in request order.
func MissingMenuItemIDs(requested []LineItem, found map[uuid.UUID]MenuItem) []uuid.UUID {
	var missing []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, item := range requested {
		if _, ok := found[item.MenuItemID]; ok {
			continue
		}
		if seen[item.MenuItemID] {
			continue
		}
		seen[item.MenuItemID] = true
		missing = append(missing, item.MenuItemID)
	}
	return missing
}

// OrderTotal sums price*quantity over the resolved menu items. Prices come
// from the store, never from the caller.
func OrderTotal(requested []LineItem, found map[uuid.UUID]MenuItem) int64 {
	var total int64
	for _, item := range requested {
		if menuItem, ok := found[item.MenuItemID]; ok {
			total += menuItem.Price * int64(item.Quantity)
		}
	}
	return total
}
