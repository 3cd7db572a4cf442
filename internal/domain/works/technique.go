package works

import (
	"time"

	"gallery-app/internal/patch"
)

type Technique struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null;uniqueIndex:idx_techniques_name" json:"name"`
	Description *string `json:"description,omitempty"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TechniquePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p TechniquePatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "name", p.Name)
	patch.SetNullable(ch, "description", p.Description)
	return ch
}
