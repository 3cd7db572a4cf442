package inquiries

import (
	"errors"

	"gallery-app/internal/api/artworks"
	"gallery-app/internal/domain/inquiries"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"

	"gorm.io/gorm"
)

const table = "inquiries"

type CreateInput struct {
	ArtworkID uint
	UserID    *uint
	Name      string
	Email     string
	Phone     string
	Message   string
}

func List(db *gorm.DB, status string) ([]inquiries.Inquiry, error) {
	q := db.Model(&inquiries.Inquiry{}).Where("active = ?", true)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []inquiries.Inquiry
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func GetByID(db *gorm.DB, id uint) (*inquiries.Inquiry, error) {
	var inq inquiries.Inquiry
	if err := db.First(&inq, "id = ? AND active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &inq, nil
}

// Create records an inquiry about an artwork. Anonymous visitors are
// welcome; when the caller is authenticated their user id is attached.
func Create(db *gorm.DB, in CreateInput) (*inquiries.Inquiry, error) {
	if _, err := artworks.GetByID(db, in.ArtworkID, false); err != nil {
		return nil, err
	}
	inq := inquiries.Inquiry{
		ArtworkID: in.ArtworkID,
		UserID:    in.UserID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    inquiries.StatusPending,
		Active:    true,
	}
	if err := db.Create(&inq).Error; err != nil {
		return nil, err
	}
	return &inq, nil
}

func Update(db *gorm.DB, id uint, p inquiries.InquiryPatch) (*inquiries.Inquiry, error) {
	return patch.Apply[inquiries.Inquiry](db, table, id, p.Changes())
}

// SetStatus is the dedicated pending/answered transition.
func SetStatus(db *gorm.DB, id uint, status string) (*inquiries.Inquiry, error) {
	if status != inquiries.StatusPending && status != inquiries.StatusAnswered {
		return nil, repo.ErrConflict
	}
	return patch.Apply[inquiries.Inquiry](db, table, id, map[string]any{"status": status})
}

func SoftDelete(db *gorm.DB, id uint) (bool, error) {
	return patch.Deactivate(db, table, id)
}
