package works

import (
	"time"

	"gallery-app/internal/patch"
)

type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Lastname    string  `json:"lastname,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	BirthYear   *int    `json:"birth_year,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ArtistPatch struct {
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birth_year"`
	PhotoURL    *string `json:"photo_url"`
}

func (p ArtistPatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "name", p.Name)
	patch.Set(ch, "lastname", p.Lastname)
	patch.SetNullable(ch, "bio", p.Bio)
	patch.SetNullable(ch, "nationality", p.Nationality)
	patch.Set(ch, "birth_year", p.BirthYear)
	patch.SetNullable(ch, "photo_url", p.PhotoURL)
	return ch
}
