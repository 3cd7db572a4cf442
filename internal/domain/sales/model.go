package sales

import (
	"time"

	"gallery-app/internal/patch"
)

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArtworkID uint  `gorm:"not null;index" json:"artwork_id"`
	UserID    *uint `gorm:"index" json:"user_id,omitempty"`

	BuyerName  string  `json:"buyer_name"`
	BuyerEmail string  `json:"buyer_email"`
	Price      float64 `gorm:"not null;default:0" json:"price"`

	// Status moves only through the dedicated transitions (MarkPaid,
	// Cancel); marking a sale paid also flips the artwork to
	// unavailable inside the same transaction.
	Status string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	StripeSessionID *string `gorm:"column:stripe_session_id;index" json:"-"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SalePatch struct {
	BuyerName  *string  `json:"buyer_name"`
	BuyerEmail *string  `json:"buyer_email"`
	Price      *float64 `json:"price"`
}

func (p SalePatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "buyer_name", p.BuyerName)
	patch.Set(ch, "buyer_email", p.BuyerEmail)
	patch.Set(ch, "price", p.Price)
	return ch
}
