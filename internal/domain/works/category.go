package works

import (
	"time"

	"gallery-app/internal/patch"
)

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null;uniqueIndex:idx_categories_name" json:"name"`
	Description *string `json:"description,omitempty"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p CategoryPatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "name", p.Name)
	patch.SetNullable(ch, "description", p.Description)
	return ch
}
