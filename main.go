package main

import (
	"log"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/api/artworks"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/infra/cache"
	"gallery-app/internal/infra/logger"
	"gallery-app/internal/infra/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	zl := logger.Init()
	defer zl.Sync()

	st, err := storage.NewLocal(config.UPLOAD_DIR, config.PUBLIC_BASE_URL)
	if err != nil {
		log.Fatal("❌ Failed to init file storage:", err)
	}
	artworks.Storage = st

	rdb := cache.NewRedisClient()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, rdb)

	r.Run(":" + config.PORT)
}
