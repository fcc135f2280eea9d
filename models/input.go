package models

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
)

type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

func (in RegisterInput) Validate() error {
	var result *multierror.Error
	if !emailPattern.MatchString(in.Email) {
		result = multierror.Append(result, errors.New("email: must be a valid email address"))
	}
	if len(in.Password) < 6 {
		result = multierror.Append(result, errors.New("password: must be at least 6 characters"))
	}
	return result.ErrorOrNil()
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	var result *multierror.Error
	if !emailPattern.MatchString(in.Email) {
		result = multierror.Append(result, errors.New("email: must be a valid email address"))
	}
	if in.Password == "" {
		result = multierror.Append(result, errors.New("password: required"))
	}
	return result.ErrorOrNil()
}

type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (in ProfileInput) Validate() error {
	var result *multierror.Error
	if in.Name == "" {
		result = multierror.Append(result, errors.New("name: required"))
	}
	if in.Phone != "" {
		if !phonePattern.MatchString(in.Phone) {
			result = multierror.Append(result, errors.New("phone: digits only"))
		} else if len(in.Phone) < 10 {
			result = multierror.Append(result, errors.New("phone: must be at least 10 digits"))
		}
	}
	return result.ErrorOrNil()
}

type AddressInput struct {
	Label       string  `json:"label"`
	Recipient   string  `json:"recipient"`
	Phone       string  `json:"phone"`
	FullAddress string  `json:"fullAddress"`
	Detail      *string `json:"detail,omitempty"`
	IsPrimary   bool    `json:"isPrimary"`
}

func (in AddressInput) Validate() error {
	var result *multierror.Error
	if in.Label == "" {
		result = multierror.Append(result, errors.New("label: required"))
	}
	if in.Recipient == "" {
		result = multierror.Append(result, errors.New("recipient: required"))
	}
	if len(in.Phone) < 10 {
		result = multierror.Append(result, errors.New("phone: must be at least 10 characters"))
	}
	if in.FullAddress == "" {
		result = multierror.Append(result, errors.New("fullAddress: required"))
	}
	return result.ErrorOrNil()
}

// AddressUpdateInput carries a partial update; nil means leave untouched.
type AddressUpdateInput struct {
	Label       *string `json:"label,omitempty"`
	Recipient   *string `json:"recipient,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	FullAddress *string `json:"fullAddress,omitempty"`
	Detail      *string `json:"detail,omitempty"`
	IsPrimary   *bool   `json:"isPrimary,omitempty"`
}

func (in AddressUpdateInput) Validate() error {
	var result *multierror.Error
	if in.Label != nil && *in.Label == "" {
		result = multierror.Append(result, errors.New("label: must not be empty"))
	}
	if in.Recipient != nil && *in.Recipient == "" {
		result = multierror.Append(result, errors.New("recipient: must not be empty"))
	}
	if in.Phone != nil && len(*in.Phone) < 10 {
		result = multierror.Append(result, errors.New("phone: must be at least 10 characters"))
	}
	if in.FullAddress != nil && *in.FullAddress == "" {
		result = multierror.Append(result, errors.New("fullAddress: must not be empty"))
	}
	return result.ErrorOrNil()
}

type PaymentMethodInput struct {
	Type          PaymentType `json:"type"`
	Provider      string      `json:"provider"`
	AccountNumber string      `json:"accountNumber"`
	AccountName   string      `json:"accountName"`
	IsPrimary     bool        `json:"isPrimary"`
}

func (in PaymentMethodInput) Validate() error {
	var result *multierror.Error
	if !in.Type.IsValid() {
		result = multierror.Append(result, errors.New("type: must be one of E_WALLET, BANK_TRANSFER, CARD"))
	}
	if in.Provider == "" {
		result = multierror.Append(result, errors.New("provider: required"))
	}
	if in.AccountNumber == "" {
		result = multierror.Append(result, errors.New("accountNumber: required"))
	}
	if in.AccountName == "" {
		result = multierror.Append(result, errors.New("accountName: required"))
	}
	return result.ErrorOrNil()
}

type PaymentMethodUpdateInput struct {
	Type          *PaymentType `json:"type,omitempty"`
	Provider      *string      `json:"provider,omitempty"`
	AccountNumber *string      `json:"accountNumber,omitempty"`
	AccountName   *string      `json:"accountName,omitempty"`
	IsPrimary     *bool        `json:"isPrimary,omitempty"`
}

func (in PaymentMethodUpdateInput) Validate() error {
	var result *multierror.Error
	if in.Type != nil && !in.Type.IsValid() {
		result = multierror.Append(result, errors.New("type: must be one of E_WALLET, BANK_TRANSFER, CARD"))
	}
	if in.Provider != nil && *in.Provider == "" {
		result = multierror.Append(result, errors.New("provider: must not be empty"))
	}
	if in.AccountNumber != nil && *in.AccountNumber == "" {
		result = multierror.Append(result, errors.New("accountNumber: must not be empty"))
	}
	if in.AccountName != nil && *in.AccountName == "" {
		result = multierror.Append(result, errors.New("accountName: must not be empty"))
	}
	return result.ErrorOrNil()
}

type FavoriteInput struct {
	RestaurantID *uuid.UUID `json:"restaurantId,omitempty"`
	MenuItemID   *uuid.UUID `json:"menuItemId,omitempty"`
}

func (in FavoriteInput) Validate() error {
	if (in.RestaurantID == nil) == (in.MenuItemID == nil) {
		return errors.New("exactly one of restaurantId or menuItemId is required")
	}
	return nil
}

type OrderInput struct {
	RestaurantID uuid.UUID  `json:"restaurantId"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	Items        []LineItem `json:"items"`
}

func (in OrderInput) Validate() error {
	var result *multierror.Error
	if in.RestaurantID == uuid.Nil {
		result = multierror.Append(result, errors.New("restaurantId: required"))
	}
	if len(in.Items) == 0 {
		result = multierror.Append(result, errors.New("items: at least one line item is required"))
	}
	for _, item := range in.Items {
		if item.MenuItemID == uuid.Nil {
			result = multierror.Append(result, errors.New("items: menuItemId required"))
			break
		}
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			result = multierror.Append(result, errors.New("items: quantity must be positive"))
			break
		}
	}
	return result.ErrorOrNil()
}
