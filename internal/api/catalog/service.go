// Package catalog groups the two lookup entities artworks reference:
// categories and techniques. Both are flat name/description rows with
// the same lifecycle, so they share one handler package.
package catalog

import (
	"errors"

	"gallery-app/internal/domain/works"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"

	"gorm.io/gorm"
)

func ListCategories(db *gorm.DB) ([]works.Category, error) {
	var out []works.Category
	err := db.Where("active = ?", true).Order("name ASC").Find(&out).Error
	return out, err
}

func GetCategory(db *gorm.DB, id uint, includeInactive bool) (*works.Category, error) {
	q := db.Model(&works.Category{})
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var cat works.Category
	if err := q.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func CreateCategory(db *gorm.DB, name string, description *string) (*works.Category, error) {
	cat := works.Category{Name: name, Description: description, Active: true}
	if err := db.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func UpdateCategory(db *gorm.DB, id uint, p works.CategoryPatch) (*works.Category, error) {
	return patch.Apply[works.Category](db, "categories", id, p.Changes())
}

func SoftDeleteCategory(db *gorm.DB, id uint) (bool, error) {
	return patch.Deactivate(db, "categories", id)
}

func ListTechniques(db *gorm.DB) ([]works.Technique, error) {
	var out []works.Technique
	err := db.Where("active = ?", true).Order("name ASC").Find(&out).Error
	return out, err
}

func GetTechnique(db *gorm.DB, id uint, includeInactive bool) (*works.Technique, error) {
	q := db.Model(&works.Technique{})
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var t works.Technique
	if err := q.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func CreateTechnique(db *gorm.DB, name string, description *string) (*works.Technique, error) {
	t := works.Technique{Name: name, Description: description, Active: true}
	if err := db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func UpdateTechnique(db *gorm.DB, id uint, p works.TechniquePatch) (*works.Technique, error) {
	return patch.Apply[works.Technique](db, "techniques", id, p.Changes())
}

func SoftDeleteTechnique(db *gorm.DB, id uint) (bool, error) {
	return patch.Deactivate(db, "techniques", id)
}
