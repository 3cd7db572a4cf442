// Package patch applies partial updates to entity rows. Every generic
// update in the app goes through Apply, which intersects the caller's
// column assignments with a static per-table allow-list, bumps
// updated_at, and executes a single UPDATE scoped to active rows.
// Protected columns (id, timestamps, active, per-entity secrets like an
// artwork's QR code or a user's password) are simply absent from the
// allow-list, so no caller can reach them through this path.
package patch

import (
	"time"

	"gallery-app/internal/repo"

	"gorm.io/gorm"
)

// Apply filters changes through the table's allow-list, sets updated_at
// and runs UPDATE <table> SET ... WHERE id = ? AND active = true, then
// re-reads the row. An empty patch still executes and only touches
// updated_at. Returns repo.ErrNotFound when no active row matched.
func Apply[E any](db *gorm.DB, table string, id uint, changes map[string]any) (*E, error) {
	cols := Filter(table, changes)
	cols["updated_at"] = time.Now()

	var entity E
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Table(table).
			Where("id = ? AND active = ?", id, true).
			Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return tx.First(&entity, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Deactivate soft-deletes a row: active=false plus an updated_at bump,
// scoped to currently active rows so a second call reports false.
func Deactivate(db *gorm.DB, table string, id uint) (bool, error) {
	res := db.Table(table).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{
			"active":     false,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Filter returns only the assignments the table's allow-list permits.
// Unknown and protected columns are dropped silently; they are not
// errors, matching PATCH semantics.
func Filter(table string, changes map[string]any) map[string]any {
	allowed := Allowed[table]
	out := make(map[string]any, len(changes))
	for col, v := range changes {
		if allowed[col] {
			out[col] = v
		}
	}
	return out
}

// Set records a column assignment when the caller supplied a value.
func Set[T any](ch map[string]any, col string, v *T) {
	if v != nil {
		ch[col] = *v
	}
}

// SetNullable records a string column assignment, storing NULL when the
// caller explicitly passes an empty string to clear an optional field.
func SetNullable(ch map[string]any, col string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		ch[col] = nil
		return
	}
	ch[col] = *v
}
