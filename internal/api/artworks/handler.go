package artworks

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/infra/logger"
	"gallery-app/internal/infra/qr"
	"gallery-app/internal/infra/storage"
	"gallery-app/internal/repo"

	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Storage is wired in main before routes register.
var Storage storage.Store

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork id"})
		return 0, false
	}
	return uint(id), true
}

// GET /artworks
func ListArtworks(c *gin.Context) {
	out, err := List(database.DB, filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /artworks/:id — pass ?by=qr to resolve :id as a QR token instead
// of a numeric identifier.
func GetArtwork(c *gin.Context) {
	var (
		a   *works.Artwork
		err error
	)
	if c.Query("by") == "qr" {
		a, err = GetByQR(database.DB, c.Param("id"))
	} else {
		id, ok := idParam(c)
		if !ok {
			return
		}
		a, err = GetByID(database.DB, id, false)
	}

	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /admin/artworks
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := Create(database.DB, CreateInput{
		Title:       req.Title,
		ArtistID:    req.ArtistID,
		CategoryID:  req.CategoryID,
		TechniqueID: req.TechniqueID,
		Year:        req.Year,
		WidthCM:     req.WidthCM,
		HeightCM:    req.HeightCM,
		Price:       req.Price,
		Description: req.Description,
		Story:       req.Story,
		Featured:    req.Featured,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork", "details": err.Error()})
		return
	}

	// Best effort: the artwork stands even if the QR artifact fails;
	// an admin can re-run it through the availability endpoint later.
	attachQR(a)

	c.JSON(http.StatusCreated, a)
}

func attachQR(a *works.Artwork) {
	if Storage == nil {
		return
	}
	token := newQRToken()
	detailURL := fmt.Sprintf("%s/artworks/%d", config.PUBLIC_BASE_URL, a.ID)
	imageURL, err := qr.Generate(Storage, token, detailURL)
	if err != nil {
		logger.L().Error("qr generation failed", zap.Uint("artwork_id", a.ID), zap.Error(err))
		return
	}
	if err := SetQRCode(database.DB, a.ID, token, imageURL); err != nil {
		logger.L().Error("qr attach failed", zap.Uint("artwork_id", a.ID), zap.Error(err))
		return
	}
	a.QRCode = &token
	a.QRImageURL = &imageURL
}

func newQRToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// PUT /admin/artworks/:id
func UpdateArtwork(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var p works.ArtworkPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Price != nil && *p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
		return
	}

	a, err := Update(database.DB, id, p)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// PUT /admin/artworks/:id/availability
func UpdateAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := SetAvailability(database.DB, id, req.Available, req.Featured)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /admin/artworks/:id/image
func UploadArtworkImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	url, err := Storage.Store("artworks", file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	a, err := Update(database.DB, id, works.ArtworkPatch{ImageURL: &url})
	if errors.Is(err, repo.ErrNotFound) {
		_ = Storage.Delete(url)
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach image"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DELETE /admin/artworks/:id
func DeleteArtwork(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := SoftDelete(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}
