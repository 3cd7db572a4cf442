package admin

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/inquiries"
	"gallery-app/internal/domain/sales"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	db := database.DB

	var artworkCount, artistCount, userCount, pendingInquiries, paidSales int64
	var revenue float64

	db.Model(&works.Artwork{}).Where("active = ?", true).Count(&artworkCount)
	db.Model(&works.Artist{}).Where("active = ?", true).Count(&artistCount)
	db.Model(&users.User{}).Where("active = ?", true).Count(&userCount)
	db.Model(&inquiries.Inquiry{}).
		Where("active = ? AND status = ?", true, inquiries.StatusPending).
		Count(&pendingInquiries)
	db.Model(&sales.Sale{}).
		Where("active = ? AND status = ?", true, sales.StatusPaid).
		Count(&paidSales)
	db.Model(&sales.Sale{}).
		Where("active = ? AND status = ?", true, sales.StatusPaid).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue)

	c.JSON(http.StatusOK, gin.H{
		"artworks":          artworkCount,
		"artists":           artistCount,
		"users":             userCount,
		"pending_inquiries": pendingInquiries,
		"paid_sales":        paidSales,
		"revenue":           revenue,
	})
}
