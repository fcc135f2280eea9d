package dbhelper

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/wargital/api/database"
	"github.com/wargital/api/models"
)

func ListPaymentMethods(userID uuid.UUID) ([]models.PaymentMethod, error) {
	rows, err := database.Wargital.Query(`
		SELECT id, user_id, type, provider, account_number, account_name, is_primary, created_at
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY is_primary DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []models.PaymentMethod{}
	for rows.Next() {
		var method models.PaymentMethod
		if err := rows.Scan(&method.ID, &method.UserID, &method.Type, &method.Provider,
			&method.AccountNumber, &method.AccountName, &method.IsPrimary, &method.CreatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, rows.Err()
}

func CreatePaymentMethod(ctx context.Context, userID uuid.UUID, in models.PaymentMethodInput) (models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := database.TxSerializable(ctx, func(tx *sql.Tx) error {
		isPrimary, err := prepareCreatePrimary(tx, paymentMethodsTable, userID, in.IsPrimary)
		if err != nil {
			return err
		}

		return tx.QueryRow(`
			INSERT INTO payment_methods (user_id, type, provider, account_number, account_name, is_primary)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, user_id, type, provider, account_number, account_name, is_primary, created_at`,
			userID, in.Type, in.Provider, in.AccountNumber, in.AccountName, isPrimary).
			Scan(&method.ID, &method.UserID, &method.Type, &method.Provider,
				&method.AccountNumber, &method.AccountName, &method.IsPrimary, &method.CreatedAt)
	})
	return method, err
}

func UpdatePaymentMethod(ctx context.Context, userID, id uuid.UUID, in models.PaymentMethodUpdateInput) (models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := database.TxSerializable(ctx, func(tx *sql.Tx) error {
		if err := ensureOwned(tx, paymentMethodsTable, userID, id); err != nil {
			return err
		}

		if in.IsPrimary != nil && *in.IsPrimary {
			if err := unsetPrimaries(tx, paymentMethodsTable, userID, id); err != nil {
				return err
			}
		}

		return tx.QueryRow(`
			UPDATE payment_methods
			SET type           = COALESCE($3, type),
			    provider       = COALESCE($4, provider),
			    account_number = COALESCE($5, account_number),
			    account_name   = COALESCE($6, account_name),
			    is_primary     = COALESCE($7, is_primary)
			WHERE id = $1 AND user_id = $2
			RETURNING id, user_id, type, provider, account_number, account_name, is_primary, created_at`,
			id, userID, in.Type, in.Provider, in.AccountNumber, in.AccountName, in.IsPrimary).
			Scan(&method.ID, &method.UserID, &method.Type, &method.Provider,
				&method.AccountNumber, &method.AccountName, &method.IsPrimary, &method.CreatedAt)
	})
	return method, err
}

func DeletePaymentMethod(userID, id uuid.UUID) error {
	res, err := database.Wargital.Exec(`DELETE FROM payment_methods WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
