package routes

import (
	"time"

	"gallery-app/config"
	adminapi "gallery-app/internal/api/admin"
	"gallery-app/internal/api/artists"
	"gallery-app/internal/api/artworks"
	"gallery-app/internal/api/auth"
	"gallery-app/internal/api/catalog"
	"gallery-app/internal/api/inquiries"
	"gallery-app/internal/api/sales"
	stripewebhooks "gallery-app/internal/api/stripewebhook"
	usersapi "gallery-app/internal/api/users"
	"gallery-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, rdb *redis.Client) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.Static("/uploads", config.UPLOAD_DIR)

	// Public catalog reads, cached when Redis is around
	gallery := r.Group("/")
	gallery.Use(middleware.CacheResponse(rdb, 60*time.Second))
	gallery.GET("/artworks", artworks.ListArtworks)
	gallery.GET("/artworks/:id", artworks.GetArtwork)
	gallery.GET("/artists", artists.ListArtists)
	gallery.GET("/artists/:id", artists.GetArtist)
	gallery.GET("/categories", catalog.ListCategoriesHandler)
	gallery.GET("/categories/:id", catalog.GetCategoryHandler)
	gallery.GET("/techniques", catalog.ListTechniquesHandler)
	gallery.GET("/techniques/:id", catalog.GetTechniqueHandler)

	// Public writes get input sanitizing
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", auth.Register)
	public.POST("/login", auth.Login)
	public.GET("/verify", auth.VerifyEmail)
	public.POST("/resend-verification", auth.ResendVerification)
	public.POST("/request-password-reset", auth.RequestPasswordReset)
	public.POST("/reset-password", auth.ResetPassword)

	// Anyone may ask about an artwork; an authenticated caller gets
	// their identity attached to the inquiry.
	public.POST("/inquiries",
		middleware.RateLimit(rdb, 10, time.Minute),
		middleware.OptionalAuth(),
		inquiries.CreateInquiry)

	if config.GoogleEnabled() {
		public.GET("/auth/google", auth.GoogleStart)
		public.GET("/auth/google/callback", auth.GoogleCallback)
	}

	// Authenticated self-service
	authd := r.Group("/")
	authd.Use(middleware.AuthMiddleware())
	authd.GET("/me", usersapi.GetCurrentUser)
	authd.PUT("/me", usersapi.UpdateCurrentUser)
	authd.POST("/change-password", usersapi.ChangeOwnPassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)

	admin.POST("/artworks", artworks.CreateArtwork)
	admin.PUT("/artworks/:id", artworks.UpdateArtwork)
	admin.PUT("/artworks/:id/availability", artworks.UpdateAvailability)
	admin.POST("/artworks/:id/image", artworks.UploadArtworkImage)
	admin.DELETE("/artworks/:id", artworks.DeleteArtwork)

	admin.POST("/artists", artists.CreateArtist)
	admin.PUT("/artists/:id", artists.UpdateArtist)
	admin.DELETE("/artists/:id", artists.DeleteArtist)

	admin.POST("/categories", catalog.CreateCategoryHandler)
	admin.PUT("/categories/:id", catalog.UpdateCategoryHandler)
	admin.DELETE("/categories/:id", catalog.DeleteCategoryHandler)

	admin.POST("/techniques", catalog.CreateTechniqueHandler)
	admin.PUT("/techniques/:id", catalog.UpdateTechniqueHandler)
	admin.DELETE("/techniques/:id", catalog.DeleteTechniqueHandler)

	admin.GET("/inquiries", inquiries.ListInquiries)
	admin.GET("/inquiries/:id", inquiries.GetInquiry)
	admin.PUT("/inquiries/:id", inquiries.UpdateInquiry)
	admin.PUT("/inquiries/:id/status", inquiries.SetInquiryStatus)
	admin.DELETE("/inquiries/:id", inquiries.DeleteInquiry)

	admin.GET("/sales", sales.ListSales)
	admin.GET("/sales/:id", sales.GetSale)
	admin.POST("/sales", sales.CreateSale)
	admin.PUT("/sales/:id", sales.UpdateSale)
	admin.POST("/sales/:id/pay", sales.MarkSalePaid)
	admin.POST("/sales/:id/cancel", sales.CancelSale)
	admin.POST("/sales/:id/checkout", sales.CreateCheckoutSession)
	admin.DELETE("/sales/:id", sales.DeleteSale)

	admin.GET("/users", usersapi.ListAllUsers)
	admin.GET("/users/:id", usersapi.GetUserDetails)
	admin.PUT("/users/:id", usersapi.UpdateUser)
	admin.PUT("/users/:id/password", usersapi.SetUserPassword)
	admin.DELETE("/users/:id", usersapi.DeleteUser)
}
