package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/wargital/api/cache"
	"github.com/wargital/api/config"
	"github.com/wargital/api/database"
	"github.com/wargital/api/database/dbhelper"
	"github.com/wargital/api/middlewares"
	"github.com/wargital/api/models"
	"github.com/wargital/api/utils"
)

func Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	exists, err := dbhelper.IsUserExists(req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to check user existence")
		return
	}
	if exists {
		utils.RespondError(w, http.StatusBadRequest, "email already registered")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	var user models.User
	txErr := database.Tx(func(tx *sql.Tx) error {
		user, err = dbhelper.CreateUser(tx, req.Email, hashedPassword, req.Name)
		return err
	})
	if txErr != nil {
		// a concurrent registration can win the race past IsUserExists
		var pqErr *pq.Error
		if errors.As(txErr, &pqErr) && pqErr.Code == "23505" {
			utils.RespondError(w, http.StatusBadRequest, "email already registered")
			return
		}
		logrus.Printf("failed to create user, error: %v", txErr)
		utils.RespondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID)
	if err != nil {
		logrus.Printf("failed to generate tokens, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	setRefreshCookie(w, refreshToken, time.Now().Add(utils.RefreshTokenTTL))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":         user,
		"access_token": accessToken,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	user, err := dbhelper.GetUserByPassword(req.Email, req.Password)
	if err == sql.ErrNoRows || err == dbhelper.ErrIncorrectPassword {
		utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate tokens")
		return
	}

	setRefreshCookie(w, refreshToken, time.Now().Add(utils.RefreshTokenTTL))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":         user,
		"access_token": accessToken,
	})
}

func RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "refresh token missing")
		return
	}
	refreshToken := cookie.Value

	if cache.Tokens != nil {
		revoked, err := cache.Tokens.IsRevoked(r.Context(), refreshToken)
		if err != nil {
			logrus.Warnf("revocation check failed: %v", err)
		} else if revoked {
			utils.RespondError(w, http.StatusUnauthorized, "refresh token revoked")
			return
		}
	}

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		utils.RespondError(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	userID := claims.UserID
	if userID == uuid.Nil {
		userID, err = uuid.Parse(claims.Subject)
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "invalid refresh token")
			return
		}
	}

	newAccessToken, newRefreshToken, err := utils.GenerateTokens(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	// rotate: the old refresh token must not stay usable
	if cache.Tokens != nil && claims.ExpiresAt != nil {
		if err := cache.Tokens.Revoke(r.Context(), refreshToken, time.Until(claims.ExpiresAt.Time)); err != nil {
			logrus.Warnf("failed to revoke rotated refresh token: %v", err)
		}
	}

	setRefreshCookie(w, newRefreshToken, time.Now().Add(utils.RefreshTokenTTL))
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"access_token": newAccessToken,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cache.Tokens != nil {
		ttl := utils.RefreshTokenTTL
		claims := &middlewares.Claims{}
		if _, parseErr := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(config.SecretKey), nil
		}); parseErr == nil && claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if err := cache.Tokens.Revoke(r.Context(), cookie.Value, ttl); err != nil {
			logrus.Warnf("failed to revoke refresh token on logout: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "successfully logged out",
	})
}

func Me(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := dbhelper.GetUserByID(claims.UserID)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "user not found")
		return
	} else if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, user)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationError(w, err)
		return
	}

	user, err := dbhelper.UpdateProfile(claims.UserID, req.Name, req.Phone)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "user not found")
		return
	} else if err != nil {
		logrus.Printf("failed to update profile, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	utils.RespondJSON(w, http.StatusOK, user)
}

func setRefreshCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		Expires:  expires,
	})
}
