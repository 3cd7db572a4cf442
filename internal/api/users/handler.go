package users

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

func principalFrom(c *gin.Context) access.Principal {
	return access.Principal{
		ID:   c.GetUint("user_id"),
		Role: c.GetString("role"),
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// GET /me
func GetCurrentUser(c *gin.Context) {
	p := principalFrom(c)
	if p.IsAnonymous() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	u, err := GetByID(database.DB, p.ID, false)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, toDTO(u))
}

// PUT /me — profile self-service. Email and role in the body are
// dropped silently for non-admin callers, not rejected.
func UpdateCurrentUser(c *gin.Context) {
	p := principalFrom(c)
	if p.IsAnonymous() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	updateUser(c, p, p.ID)
}

// POST /change-password
func ChangeOwnPassword(c *gin.Context) {
	p := principalFrom(c)
	if p.IsAnonymous() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ChangePassword(database.DB, p, p.ID, req.OldPassword, req.NewPassword)
	if errors.Is(err, access.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Incorrect current password"})
		return
	}
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	out, err := List(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	dtos := make([]UserDTO, 0, len(out))
	for i := range out {
		dtos = append(dtos, toDTO(&out[i]))
	}
	c.JSON(http.StatusOK, dtos)
}

// GET /admin/users/:id — ?include_inactive=true also resolves
// soft-deleted users.
func GetUserDetails(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	includeInactive := c.Query("include_inactive") == "true"

	u, err := GetByID(database.DB, id, includeInactive)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, toDTO(u))
}

// PUT /admin/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	updateUser(c, principalFrom(c), id)
}

func updateUser(c *gin.Context, p access.Principal, subjectID uint) {
	var in users.UserPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Role != nil && *in.Role != users.RoleAdmin && *in.Role != users.RoleClient {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	u, err := Update(database.DB, p, subjectID, in)
	if errors.Is(err, access.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, toDTO(u))
}

// PUT /admin/users/:id/password — admin reset, no current password
// required.
func SetUserPassword(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ChangePassword(database.DB, principalFrom(c), id, "", req.NewPassword)
	if errors.Is(err, access.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// DELETE /admin/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := SoftDelete(database.DB, principalFrom(c), id)
	if errors.Is(err, access.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot deactivate your own account"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
