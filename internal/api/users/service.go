package users

import (
	"errors"
	"time"

	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const table = "users"

func List(db *gorm.DB) ([]users.User, error) {
	var out []users.User
	err := db.Where("active = ?", true).Order("created_at DESC").Find(&out).Error
	return out, err
}

func GetByID(db *gorm.DB, id uint, includeInactive bool) (*users.User, error) {
	q := db.Model(&users.User{})
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var u users.User
	if err := q.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update applies a profile patch for the given principal. Fields the
// principal may not touch (email, role for non-admins) are filtered
// out silently before the engine runs; the caller still gets the
// updated row back.
func Update(db *gorm.DB, p access.Principal, subjectID uint, in users.UserPatch) (*users.User, error) {
	if err := access.CanActOnUser(p, subjectID); err != nil {
		return nil, err
	}
	in = access.FilterUserPatch(p, in)
	return patch.Apply[users.User](db, table, subjectID, in.Changes())
}

// ChangePassword verifies the subject's current password for
// self-service callers; an admin resetting someone else's password
// skips that check. A wrong current password comes back Forbidden.
func ChangePassword(db *gorm.DB, p access.Principal, subjectID uint, current, next string) error {
	if err := access.CanActOnUser(p, subjectID); err != nil {
		return err
	}

	u, err := GetByID(db, subjectID, false)
	if err != nil {
		return err
	}

	if access.MustVerifyCurrentPassword(p, subjectID) {
		if u.Password == nil ||
			bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(current)) != nil {
			return access.ErrForbidden
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res := db.Model(&users.User{}).
		Where("id = ? AND active = ?", subjectID, true).
		Updates(map[string]any{
			"password":   string(hashed),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// SoftDelete deactivates a user. Self-deactivation is rejected for
// every role before the store is touched.
func SoftDelete(db *gorm.DB, p access.Principal, subjectID uint) (bool, error) {
	if err := access.CanDeactivateUser(p, subjectID); err != nil {
		return false, err
	}
	return patch.Deactivate(db, table, subjectID)
}
