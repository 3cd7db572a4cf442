package users

import (
	"time"

	"gallery-app/internal/patch"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Tel      string `json:"tel,omitempty"`

	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `gorm:"" json:"-"`

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	Role       string `gorm:"not null;default:'client'" json:"role"`
	IsVerified bool   `json:"is_verified"`

	Active    bool      `gorm:"not null;default:true;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"not null;uniqueIndex"`
	Type      string `gorm:"type:varchar(30);not null;default:'verify'"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserPatch covers the profile fields reachable through the generic
// update path. Email and role survive only for admin callers; the
// access package clears them for everyone else before this reaches the
// engine. Password is never patchable, only the dedicated
// change-password operations touch it.
type UserPatch struct {
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Tel      *string `json:"tel"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

func (p UserPatch) Changes() map[string]any {
	ch := map[string]any{}
	patch.Set(ch, "name", p.Name)
	patch.Set(ch, "lastname", p.Lastname)
	patch.Set(ch, "tel", p.Tel)
	patch.Set(ch, "email", p.Email)
	patch.Set(ch, "role", p.Role)
	return ch
}
