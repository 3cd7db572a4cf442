package sales

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/sales"
	"gallery-app/internal/infra/mailer"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type CreateSaleRequest struct {
	ArtworkID  uint    `json:"artwork_id" binding:"required"`
	UserID     *uint   `json:"user_id"`
	BuyerName  string  `json:"buyer_name" binding:"required"`
	BuyerEmail string  `json:"buyer_email" binding:"required,email"`
	Price      float64 `json:"price" binding:"gte=0"`
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id"})
		return 0, false
	}
	return uint(id), true
}

// GET /admin/sales
func ListSales(c *gin.Context) {
	out, err := List(database.DB, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/sales/:id
func GetSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s, err := GetByID(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sale"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /admin/sales
func CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := Create(database.DB, CreateInput{
		ArtworkID:  req.ArtworkID,
		UserID:     req.UserID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Price:      req.Price,
	})
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /admin/sales/:id
func UpdateSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p sales.SalePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Price != nil && *p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
		return
	}
	s, err := Update(database.DB, id, p)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /admin/sales/:id/pay — manual transition, used when payment
// happens outside Stripe (bank transfer, in person).
func MarkSalePaid(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s, err := MarkPaid(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if errors.Is(err, repo.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Sale is cancelled"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark sale paid"})
		return
	}

	if s.BuyerEmail != "" {
		mailer.SendAsync(s.BuyerEmail, "Your purchase is confirmed",
			fmt.Sprintf("Thank you %s, your payment of %.2f was received.", s.BuyerName, s.Price))
	}

	c.JSON(http.StatusOK, s)
}

// POST /admin/sales/:id/cancel
func CancelSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s, err := Cancel(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if errors.Is(err, repo.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Sale is already paid"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel sale"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /admin/sales/:id
func DeleteSale(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := SoftDelete(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
}
