package sales

import (
	"errors"
	"time"

	"gallery-app/internal/api/artworks"
	"gallery-app/internal/domain/sales"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"

	"gorm.io/gorm"
)

const table = "sales"

type CreateInput struct {
	ArtworkID  uint
	UserID     *uint
	BuyerName  string
	BuyerEmail string
	Price      float64
}

func List(db *gorm.DB, status string) ([]sales.Sale, error) {
	q := db.Model(&sales.Sale{}).Where("active = ?", true)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []sales.Sale
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func GetByID(db *gorm.DB, id uint) (*sales.Sale, error) {
	var s sales.Sale
	if err := db.First(&s, "id = ? AND active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create records a pending sale. The referenced artwork must exist and
// be active; the availability flip happens only when the sale is paid.
func Create(db *gorm.DB, in CreateInput) (*sales.Sale, error) {
	if _, err := artworks.GetByID(db, in.ArtworkID, false); err != nil {
		return nil, err
	}
	s := sales.Sale{
		ArtworkID:  in.ArtworkID,
		UserID:     in.UserID,
		BuyerName:  in.BuyerName,
		BuyerEmail: in.BuyerEmail,
		Price:      in.Price,
		Status:     sales.StatusPending,
		Active:     true,
	}
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func Update(db *gorm.DB, id uint, p sales.SalePatch) (*sales.Sale, error) {
	return patch.Apply[sales.Sale](db, table, id, p.Changes())
}

// MarkPaid transitions a sale to paid and flips the owning artwork to
// unavailable in the same transaction, so the two writes commit or roll
// back together. Featured is left untouched. A sale that is already
// paid is returned as-is, which keeps webhook retries harmless; a
// cancelled sale cannot be paid.
func MarkPaid(db *gorm.DB, id uint) (*sales.Sale, error) {
	var s sales.Sale
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, "id = ? AND active = ?", id, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		switch s.Status {
		case sales.StatusPaid:
			return nil
		case sales.StatusCancelled:
			return repo.ErrConflict
		}

		if err := tx.Model(&sales.Sale{}).Where("id = ?", id).Updates(map[string]any{
			"status":     sales.StatusPaid,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}

		unavailable := false
		if _, err := artworks.SetAvailability(tx, s.ArtworkID, &unavailable, nil); err != nil {
			return err
		}

		return tx.First(&s, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Cancel moves a pending sale to cancelled; a paid sale stays paid.
func Cancel(db *gorm.DB, id uint) (*sales.Sale, error) {
	var s sales.Sale
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, "id = ? AND active = ?", id, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}
		if s.Status == sales.StatusPaid {
			return repo.ErrConflict
		}
		if err := tx.Model(&sales.Sale{}).Where("id = ?", id).Updates(map[string]any{
			"status":     sales.StatusCancelled,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}
		return tx.First(&s, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetStripeSession remembers the checkout session created for a sale
// so the webhook can resolve it back.
func SetStripeSession(db *gorm.DB, id uint, sessionID string) error {
	res := db.Model(&sales.Sale{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{
			"stripe_session_id": sessionID,
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// FindBySession resolves a sale from its checkout session id.
func FindBySession(db *gorm.DB, sessionID string) (*sales.Sale, error) {
	var s sales.Sale
	err := db.First(&s, "stripe_session_id = ? AND active = ?", sessionID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func SoftDelete(db *gorm.DB, id uint) (bool, error) {
	return patch.Deactivate(db, table, id)
}
