package models

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Distance    *string    `db:"distance" json:"distance,omitempty"`
	Image       *string    `db:"image" json:"image,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	Menu        []MenuItem `db:"-" json:"menu"`
}

type MenuItem struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id" json:"restaurantId"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Price        int64     `db:"price" json:"price"`
	Image        *string   `db:"image" json:"image,omitempty"`
}
