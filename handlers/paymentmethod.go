package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/wargital/api/database/dbhelper"
	"github.com/wargital/api/middlewares"
	"github.com/wargital/api/models"
	"github.com/wargital/api/utils"
)

func ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	methods, err := dbhelper.ListPaymentMethods(claims.UserID)
	if err != nil {
		logrus.Printf("failed to list payment methods, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to query payment methods")
		return
	}

	utils.RespondJSON(w, http.StatusOK, methods)
}

func CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.PaymentMethodInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	method, err := dbhelper.CreatePaymentMethod(r.Context(), claims.UserID, req)
	if err != nil {
		logrus.Printf("failed to create payment method, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create payment method")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, method)
}

func UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid payment method id")
		return
	}

	var req models.PaymentMethodUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	method, err := dbhelper.UpdatePaymentMethod(r.Context(), claims.UserID, id, req)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "payment method not found")
		return
	} else if err != nil {
		logrus.Printf("failed to update payment method %s, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to update payment method")
		return
	}

	utils.RespondJSON(w, http.StatusOK, method)
}

func DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid payment method id")
		return
	}

	err = dbhelper.DeletePaymentMethod(claims.UserID, id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "payment method not found")
		return
	} else if err != nil {
		logrus.Printf("failed to delete payment method %s, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete payment method")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "payment method deleted"})
}
