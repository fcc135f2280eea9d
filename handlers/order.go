package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wargital/api/database/dbhelper"
	"github.com/wargital/api/middlewares"
	"github.com/wargital/api/models"
	"github.com/wargital/api/utils"
)

func PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	// an authenticated identity always wins over a caller-supplied userId
	buyerID := req.UserID
	if claims, err := middlewares.GetAuthenticatedUser(r); err == nil {
		buyerID = &claims.UserID
	}

	exists, err := dbhelper.IsRestaurantExists(req.RestaurantID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}
	if !exists {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.MenuItemID)
	}

	found, err := dbhelper.GetMenuItemsByIDs(ids)
	if err != nil {
		logrus.Printf("failed to resolve menu items, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to resolve menu items")
		return
	}

	if missing := models.MissingMenuItemIDs(req.Items, found); len(missing) > 0 {
		utils.RespondJSON(w, http.StatusNotFound, map[string]interface{}{
			"message": "line items not found",
			"missing": missing,
		})
		return
	}

	order := models.Order{
		RestaurantID: req.RestaurantID,
		UserID:       buyerID,
		Status:       models.StatusCreated,
		Total:        models.OrderTotal(req.Items, found),
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, models.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      found[line.MenuItemID].Price,
		})
	}

	if err := dbhelper.CreateOrder(&order, items); err != nil {
		logrus.Printf("failed to create order, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	created, err := dbhelper.GetOrderByID(order.ID)
	if err != nil {
		logrus.Printf("failed to load created order %s, error: %v", order.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load created order")
		return
	}

	if buyerID != nil {
		go func(userID uuid.UUID, order models.Order) {
			user, err := dbhelper.GetUserByID(userID)
			if err != nil {
				logrus.Warnf("no email sent for order %s: %v", order.ID, err)
				return
			}
			utils.SendOrderConfirmation(user.Email, &order)
		}(*buyerID, created)
	}

	utils.RespondJSON(w, http.StatusCreated, created)
}

func ListOrders(w http.ResponseWriter, r *http.Request) {
	var buyerID *uuid.UUID
	if claims, err := middlewares.GetAuthenticatedUser(r); err == nil {
		buyerID = &claims.UserID
	}

	orders, err := dbhelper.ListOrders(buyerID)
	if err != nil {
		logrus.Printf("failed to list orders, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to query orders")
		return
	}

	utils.RespondJSON(w, http.StatusOK, orders)
}
