package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wargital/api/database"
	"github.com/wargital/api/models"
)

var ErrIncorrectPassword = errors.New("incorrect password")

func CreateUser(tx *sql.Tx, email, hashedPassword string, name *string) (models.User, error) {
	var user models.User
	err := tx.QueryRow(`
		INSERT INTO users (email, password, name)
		VALUES (LOWER($1), $2, $3)
		RETURNING id, email, name, phone, created_at`,
		email, hashedPassword, name).
		Scan(&user.ID, &user.Email, &user.Name, &user.Phone, &user.CreatedAt)
	return user, err
}

func IsUserExists(email string) (bool, error) {
	var count int
	err := database.Wargital.QueryRow(`SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER($1)`, email).Scan(&count)
	return count > 0, err
}

func GetUserByPassword(email, password string) (models.User, error) {
	var user models.User
	var hashedPassword string

	err := database.Wargital.QueryRow(`
		SELECT id, email, password, name, phone, created_at FROM users
		WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&user.ID, &user.Email, &hashedPassword, &user.Name, &user.Phone, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) != nil {
		return models.User{}, ErrIncorrectPassword
	}

	return user, nil
}

func GetUserByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := database.Wargital.QueryRow(`
		SELECT id, email, name, phone, created_at FROM users
		WHERE id = $1`, id).
		Scan(&user.ID, &user.Email, &user.Name, &user.Phone, &user.CreatedAt)
	return user, err
}

func UpdateProfile(userID uuid.UUID, name, phone string) (models.User, error) {
	var user models.User
	err := database.Wargital.QueryRow(`
		UPDATE users
		SET name = $2, phone = NULLIF($3, '')
		WHERE id = $1
		RETURNING id, email, name, phone, created_at`,
		userID, name, phone).
		Scan(&user.ID, &user.Email, &user.Name, &user.Phone, &user.CreatedAt)
	return user, err
}
