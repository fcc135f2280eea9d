package dbhelper

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/wargital/api/database"
	"github.com/wargital/api/models"
)

func ListAddresses(userID uuid.UUID) ([]models.Address, error) {
	rows, err := database.Wargital.Query(`
		SELECT id, user_id, label, recipient, phone, full_address, detail, is_primary, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_primary DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var addr models.Address
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.Label, &addr.Recipient, &addr.Phone,
			&addr.FullAddress, &addr.Detail, &addr.IsPrimary, &addr.CreatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, rows.Err()
}

func CreateAddress(ctx context.Context, userID uuid.UUID, in models.AddressInput) (models.Address, error) {
	var addr models.Address
	err := database.TxSerializable(ctx, func(tx *sql.Tx) error {
		isPrimary, err := prepareCreatePrimary(tx, addressesTable, userID, in.IsPrimary)
		if err != nil {
			return err
		}

		return tx.QueryRow(`
			INSERT INTO addresses (user_id, label, recipient, phone, full_address, detail, is_primary)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, user_id, label, recipient, phone, full_address, detail, is_primary, created_at`,
			userID, in.Label, in.Recipient, in.Phone, in.FullAddress, in.Detail, isPrimary).
			Scan(&addr.ID, &addr.UserID, &addr.Label, &addr.Recipient, &addr.Phone,
				&addr.FullAddress, &addr.Detail, &addr.IsPrimary, &addr.CreatedAt)
	})
	return addr, err
}

func UpdateAddress(ctx context.Context, userID, id uuid.UUID, in models.AddressUpdateInput) (models.Address, error) {
	var addr models.Address
	err := database.TxSerializable(ctx, func(tx *sql.Tx) error {
		if err := ensureOwned(tx, addressesTable, userID, id); err != nil {
			return err
		}

		if in.IsPrimary != nil && *in.IsPrimary {
			if err := unsetPrimaries(tx, addressesTable, userID, id); err != nil {
				return err
			}
		}

		return tx.QueryRow(`
			UPDATE addresses
			SET label        = COALESCE($3, label),
			    recipient    = COALESCE($4, recipient),
			    phone        = COALESCE($5, phone),
			    full_address = COALESCE($6, full_address),
			    detail       = COALESCE($7, detail),
			    is_primary   = COALESCE($8, is_primary)
			WHERE id = $1 AND user_id = $2
			RETURNING id, user_id, label, recipient, phone, full_address, detail, is_primary, created_at`,
			id, userID, in.Label, in.Recipient, in.Phone, in.FullAddress, in.Detail, in.IsPrimary).
			Scan(&addr.ID, &addr.UserID, &addr.Label, &addr.Recipient, &addr.Phone,
				&addr.FullAddress, &addr.Detail, &addr.IsPrimary, &addr.CreatedAt)
	})
	return addr, err
}

// DeleteAddress is unconditional: deleting the primary address leaves zero
// primaries until the user sets a new one.
func DeleteAddress(userID, id uuid.UUID) error {
	res, err := database.Wargital.Exec(`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
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
