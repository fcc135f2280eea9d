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

func ListFavorites(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	favorites, err := dbhelper.ListFavorites(claims.UserID)
	if err != nil {
		logrus.Printf("failed to list favorites, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to query favorites")
		return
	}

	utils.RespondJSON(w, http.StatusOK, favorites)
}

func CreateFavorite(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.FavoriteInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	// saving the same favorite twice is fine, not an error
	exists, err := dbhelper.FavoriteExists(claims.UserID, req.RestaurantID, req.MenuItemID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}
	if exists {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "already a favorite"})
		return
	}

	favorite, err := dbhelper.CreateFavorite(claims.UserID, req.RestaurantID, req.MenuItemID)
	if err != nil {
		logrus.Printf("failed to create favorite, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create favorite")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, favorite)
}

func DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	err = dbhelper.DeleteFavoriteByRestaurant(claims.UserID, restaurantID)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "not in favorites")
		return
	} else if err != nil {
		logrus.Printf("failed to delete favorite, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete favorite")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "removed from favorites"})
}
