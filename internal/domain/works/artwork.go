package works

import (
	"time"

	"gallery-app/internal/patch"
)

type Artwork struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	ArtistID    uint   `gorm:"not null;index" json:"artist_id"`
	CategoryID  uint   `gorm:"not null;index" json:"category_id"`
	TechniqueID uint   `gorm:"not null;index" json:"technique_id"`

	Artist    *Artist    `gorm:"constraint:OnUpdate:CASCADE;" json:"artist,omitempty"`
	Category  *Category  `gorm:"constraint:OnUpdate:CASCADE;" json:"category,omitempty"`
	Technique *Technique `gorm:"constraint:OnUpdate:CASCADE;" json:"technique,omitempty"`

	Year     int     `json:"year,omitempty"`
	WidthCM  float64 `gorm:"column:width_cm" json:"width_cm,omitempty"`
	HeightCM float64 `gorm:"column:height_cm" json:"height_cm,omitempty"`
	Price    float64 `gorm:"not null;default:0" json:"price"`

	Description *string `json:"description,omitempty"`
	Story       *string `json:"story,omitempty"`

	Available bool `gorm:"not null;default:true" json:"available"`
	Featured  bool `gorm:"not null;default:false" json:"featured"`

	ImageURL *string `json:"image_url,omitempty"`

	// QR columns are written only by the dedicated SetQRCode operation,
	// never by the generic patch path.
	QRCode     *string `gorm:"column:qr_code;uniqueIndex:idx_artworks_qr_code" json:"qr_code,omitempty"`
	QRImageURL *string `gorm:"column:qr_image_url" json:"qr_image_url,omitempty"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArtworkPatch is the set of artwork fields the generic update path
// accepts. Nil means "leave unchanged"; empty strings clear the
// optional text fields.
type ArtworkPatch struct {
	Title       *string  `json:"title"`
	ArtistID    *uint    `json:"artist_id"`
	CategoryID  *uint    `json:"category_id"`
	TechniqueID *uint    `json:"technique_id"`
	Year        *int     `json:"year"`
	WidthCM     *float64 `json:"width_cm"`
	HeightCM    *float64 `json:"height_cm"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Story       *string  `json:"story"`
	Available   *bool    `json:"available"`
	Featured    *bool    `json:"featured"`
	ImageURL    *string  `json:"image_url"`
}

func (p ArtworkPatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "title", p.Title)
	patch.Set(ch, "artist_id", p.ArtistID)
	patch.Set(ch, "category_id", p.CategoryID)
	patch.Set(ch, "technique_id", p.TechniqueID)
	patch.Set(ch, "year", p.Year)
	patch.Set(ch, "width_cm", p.WidthCM)
	patch.Set(ch, "height_cm", p.HeightCM)
	patch.Set(ch, "price", p.Price)
	patch.SetNullable(ch, "description", p.Description)
	patch.SetNullable(ch, "story", p.Story)
	patch.Set(ch, "available", p.Available)
	patch.Set(ch, "featured", p.Featured)
	patch.SetNullable(ch, "image_url", p.ImageURL)
	return ch
}
