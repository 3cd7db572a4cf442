package inquiries

import (
	"time"

	"gallery-app/internal/patch"
)

const (
	StatusPending  = "pending"
	StatusAnswered = "answered"
)

type Inquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArtworkID uint  `gorm:"not null;index" json:"artwork_id"`
	UserID    *uint `gorm:"index" json:"user_id,omitempty"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `gorm:"not null" json:"message"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InquiryPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

func (p InquiryPatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "name", p.Name)
	patch.Set(ch, "email", p.Email)
	patch.Set(ch, "phone", p.Phone)
	patch.Set(ch, "message", p.Message)
	patch.Set(ch, "status", p.Status)
	return ch
}
