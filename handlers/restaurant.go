package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/wargital/api/database/dbhelper"
	"github.com/wargital/api/utils"
)

func ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := dbhelper.ListRestaurants()
	if err != nil {
		logrus.Printf("failed to list restaurants, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to query restaurants")
		return
	}

	utils.RespondJSON(w, http.StatusOK, restaurants)
}

func GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	restaurant, err := dbhelper.GetRestaurantByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "restaurant not found")
		return
	} else if err != nil {
		logrus.Printf("failed to fetch restaurant %s, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch restaurant")
		return
	}

	utils.RespondJSON(w, http.StatusOK, restaurant)
}
