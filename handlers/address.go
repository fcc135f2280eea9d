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

func ListAddresses(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	addresses, err := dbhelper.ListAddresses(claims.UserID)
	if err != nil {
		logrus.Printf("failed to list addresses, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to query addresses")
		return
	}

	utils.RespondJSON(w, http.StatusOK, addresses)
}

func CreateAddress(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.AddressInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	address, err := dbhelper.CreateAddress(r.Context(), claims.UserID, req)
	if err != nil {
		logrus.Printf("failed to create address, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create address")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, address)
}

func UpdateAddress(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid address id")
		return
	}

	var req models.AddressUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	address, err := dbhelper.UpdateAddress(r.Context(), claims.UserID, id, req)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "address not found")
		return
	} else if err != nil {
		logrus.Printf("failed to update address %s, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to update address")
		return
	}

	utils.RespondJSON(w, http.StatusOK, address)
}

func DeleteAddress(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid address id")
		return
	}

	err = dbhelper.DeleteAddress(claims.UserID, id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "address not found")
		return
	} else if err != nil {
		logrus.Printf("failed to delete address %s, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete address")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "address deleted"})
}
