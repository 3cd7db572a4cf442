package artists

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type CreateArtistRequest struct {
	Name        string  `json:"name" binding:"required"`
	Lastname    string  `json:"lastname"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birth_year"`
	PhotoURL    *string `json:"photo_url"`
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist id"})
		return 0, false
	}
	return uint(id), true
}

// GET /artists
func ListArtists(c *gin.Context) {
	out, err := List(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /artists/:id
func GetArtist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := GetByID(database.DB, id, false)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /admin/artists
func CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := Create(database.DB, CreateInput{
		Name:        req.Name,
		Lastname:    req.Lastname,
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// PUT /admin/artists/:id
func UpdateArtist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var p works.ArtistPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := Update(database.DB, id, p)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DELETE /admin/artists/:id
func DeleteArtist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := SoftDelete(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}
