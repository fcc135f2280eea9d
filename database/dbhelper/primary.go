package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Addresses and payment methods share the same rule: at most one record per
// user is primary, and the first record a user creates is always primary. The
// callers wrap these steps in a serializable transaction so two concurrent
// "set primary" requests cannot leave zero or two primaries.

type primaryTable string

const (
	addressesTable      primaryTable = "addresses"
	paymentMethodsTable primaryTable = "payment_methods"
)

func unsetPrimaries(tx *sql.Tx, table primaryTable, userID uuid.UUID, except uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET is_primary = false WHERE user_id = $1 AND NOT id = $2`, table)
	_, err := tx.Exec(query, userID, except)
	return err
}

func countOwned(tx *sql.Tx, table primaryTable, userID uuid.UUID) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id = $1`, table)
	err := tx.QueryRow(query, userID).Scan(&count)
	return count, err
}

// EffectivePrimary derives the flag for a record about to be created: the
// first record a user creates is always primary, regardless of the flag they
// passed.
func EffectivePrimary(requested bool, existing int) bool {
	return requested || existing == 0
}

// prepareCreatePrimary runs the unset step when primary was requested and
// derives the effective flag for the row about to be inserted.
func prepareCreatePrimary(tx *sql.Tx, table primaryTable, userID uuid.UUID, requested bool) (bool, error) {
	if requested {
		if err := unsetPrimaries(tx, table, userID, uuid.Nil); err != nil {
			return false, err
		}
	}
	count, err := countOwned(tx, table, userID)
	if err != nil {
		return false, err
	}
	return EffectivePrimary(requested, count), nil
}

// ensureOwned fails with sql.ErrNoRows both when the record is absent and when
// it belongs to someone else, so a caller cannot probe other users' records.
func ensureOwned(tx *sql.Tx, table primaryTable, userID, id uuid.UUID) error {
	var found uuid.UUID
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 AND user_id = $2 FOR UPDATE`, table)
	return tx.QueryRow(query, id, userID).Scan(&found)
}
