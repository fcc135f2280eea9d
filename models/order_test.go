package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	nasiGoreng := uuid.New()
	esTeh := uuid.New()
	menu := map[uuid.UUID]MenuItem{
		nasiGoreng: {ID: nasiGoreng, Name: "Nasi Goreng Spesial", Price: 25000},
		esTeh:      {ID: esTeh, Name: "Es Teh Manis", Price: 5000},
	}

	tests := []struct {
		name  string
		items []LineItem
		want  int64
	}{
		{
			name: "two nasi goreng plus one es teh",
			items: []LineItem{
				{MenuItemID: nasiGoreng, Quantity: 2},
				{MenuItemID: esTeh, Quantity: 1},
			},
			want: 55000,
		},
		{
			name:  "single item",
			items: []LineItem{{MenuItemID: esTeh, Quantity: 3}},
			want:  15000,
		},
		{
			name:  "unresolved items contribute nothing",
			items: []LineItem{{MenuItemID: uuid.New(), Quantity: 5}},
			want:  0,
		},
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, OrderTotal(testCase.items, menu))
		})
	}
}

func TestMissingMenuItemIDs(t *testing.T) {
	known := uuid.New()
	unknownA := uuid.New()
	unknownB := uuid.New()
	menu := map[uuid.UUID]MenuItem{known: {ID: known, Price: 10000}}

	tests := []struct {
		name  string
		items []LineItem
		want  []uuid.UUID
	}{
		{
			name:  "all resolved",
			items: []LineItem{{MenuItemID: known, Quantity: 1}},
			want:  nil,
		},
		{
			name: "reports exactly the unknown ids in request order",
			items: []LineItem{
				{MenuItemID: unknownA, Quantity: 1},
				{MenuItemID: known, Quantity: 2},
				{MenuItemID: unknownB, Quantity: 1},
			},
			want: []uuid.UUID{unknownA, unknownB},
		},
		{
			name: "duplicate unknown id reported once",
			items: []LineItem{
				{MenuItemID: unknownA, Quantity: 1},
				{MenuItemID: unknownA, Quantity: 2},
			},
			want: []uuid.UUID{unknownA},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, MissingMenuItemIDs(testCase.items, menu))
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{"created to preparing", StatusCreated, StatusPreparing, true},
		{"created to cancelled", StatusCreated, StatusCancelled, true},
		{"created cannot skip to delivered", StatusCreated, StatusDelivered, false},
		{"preparing to en_route", StatusPreparing, StatusEnRoute, true},
		{"en_route to delivered", StatusEnRoute, StatusDelivered, true},
		{"en_route cannot cancel", StatusEnRoute, StatusCancelled, false},
		{"delivered is terminal", StatusDelivered, StatusCreated, false},
		{"cancelled is terminal", StatusCancelled, StatusPreparing, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.ok, testCase.from.CanTransitionTo(testCase.to))
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{StatusCreated, StatusPreparing, StatusEnRoute, StatusDelivered, StatusCancelled} {
		assert.True(t, status.IsValid(), string(status))
	}
	assert.False(t, OrderStatus("in transit").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
