package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type CreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GET /categories
func ListCategoriesHandler(c *gin.Context) {
	out, err := ListCategories(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /categories/:id
func GetCategoryHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := GetCategory(database.DB, id, false)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// POST /admin/categories
func CreateCategoryHandler(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := CreateCategory(database.DB, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category may already exist"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// PUT /admin/categories/:id
func UpdateCategoryHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p works.CategoryPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := UpdateCategory(database.DB, id, p)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DELETE /admin/categories/:id
func DeleteCategoryHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := SoftDeleteCategory(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// GET /techniques
func ListTechniquesHandler(c *gin.Context) {
	out, err := ListTechniques(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load techniques"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /techniques/:id
func GetTechniqueHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := GetTechnique(database.DB, id, false)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technique not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load technique"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /admin/techniques
func CreateTechniqueHandler(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := CreateTechnique(database.DB, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Technique may already exist"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /admin/techniques/:id
func UpdateTechniqueHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p works.TechniquePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := UpdateTechnique(database.DB, id, p)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technique not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update technique"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /admin/techniques/:id
func DeleteTechniqueHandler(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := SoftDeleteTechnique(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete technique"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technique not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technique deleted"})
}
