package inquiries

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/domain/inquiries"
	"gallery-app/internal/infra/mailer"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type CreateInquiryRequest struct {
	ArtworkID uint   `json:"artwork_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" binding:"required"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending answered"`
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry id"})
		return 0, false
	}
	return uint(id), true
}

// POST /inquiries — open to anonymous visitors; the optional-auth
// middleware attaches user_id when a valid token came along.
func CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *uint
	if id := c.GetUint("user_id"); id != 0 {
		userID = &id
	}

	inq, err := Create(database.DB, CreateInput{
		ArtworkID: req.ArtworkID,
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inquiry"})
		return
	}

	// Delivery failure never rolls back the committed inquiry.
	if config.GALLERY_EMAIL != "" {
		mailer.SendAsync(config.GALLERY_EMAIL, "New artwork inquiry",
			fmt.Sprintf("%s (%s) asks about artwork #%d:\n\n%s",
				inq.Name, inq.Email, inq.ArtworkID, inq.Message))
	}

	c.JSON(http.StatusCreated, inq)
}

// GET /admin/inquiries
func ListInquiries(c *gin.Context) {
	out, err := List(database.DB, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/inquiries/:id
func GetInquiry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inq, err := GetByID(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiry"})
		return
	}
	c.JSON(http.StatusOK, inq)
}

// PUT /admin/inquiries/:id
func UpdateInquiry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p inquiries.InquiryPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inq, err := Update(database.DB, id, p)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}
	c.JSON(http.StatusOK, inq)
}

// PUT /admin/inquiries/:id/status
func SetInquiryStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inq, err := SetStatus(database.DB, id, req.Status)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry status"})
		return
	}
	c.JSON(http.StatusOK, inq)
}

// DELETE /admin/inquiries/:id
func DeleteInquiry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := SoftDelete(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
