package repositories

import (
	"context"

	"gorm.io/gorm"
)

// EditionLockKey is the advisory lock taken by every transaction that changes the active edition.
const EditionLockKey int64 = 0x52495354434f4e // "RISTCON"

// LockEditions serializes edition lifecycle transactions on Postgres.
// Other dialects rely on the row locks and the partial unique index instead.
func LockEditions(ctx context.Context, tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", EditionLockKey).Error
}
