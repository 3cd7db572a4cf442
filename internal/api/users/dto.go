package users

import "gallery-app/internal/domain/users"

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Tel        string `json:"tel,omitempty"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

func toDTO(u *users.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Lastname:   u.Lastname,
		Tel:        u.Tel,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password" binding:"required"`
}

type SetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}
