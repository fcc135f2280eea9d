package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Name      *string   `db:"name" json:"name,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Address struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	Label       string    `db:"label" json:"label"`
	Recipient   string    `db:"recipient" json:"recipient"`
	Phone       string    `db:"phone" json:"phone"`
	FullAddress string    `db:"full_address" json:"fullAddress"`
	Detail      *string   `db:"detail" json:"detail,omitempty"`
	IsPrimary   bool      `db:"is_primary" json:"isPrimary"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type PaymentType string

const (
	PaymentEWallet      PaymentType = "E_WALLET"
	PaymentBankTransfer PaymentType = "BANK_TRANSFER"
	PaymentCard         PaymentType = "CARD"
)

func (t PaymentType) IsValid() bool {
	return t == PaymentEWallet || t == PaymentBankTransfer || t == PaymentCard
}

type PaymentMethod struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	UserID        uuid.UUID   `db:"user_id" json:"userId"`
	Type          PaymentType `db:"type" json:"type"`
	Provider      string      `db:"provider" json:"provider"`
	AccountNumber string      `db:"account_number" json:"accountNumber"`
	AccountName   string      `db:"account_name" json:"accountName"`
	IsPrimary     bool        `db:"is_primary" json:"isPrimary"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
}

// Favorite bookmarks either a restaurant or a single menu item, never both.
type Favorite struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	UserID       uuid.UUID   `db:"user_id" json:"userId"`
	RestaurantID *uuid.UUID  `db:"restaurant_id" json:"restaurantId,omitempty"`
	MenuItemID   *uuid.UUID  `db:"menu_item_id" json:"menuItemId,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	Restaurant   *Restaurant `db:"-" json:"restaurant,omitempty"`
	MenuItem     *MenuItem   `db:"-" json:"menuItem,omitempty"`
}
