package artists

import (
	"errors"

	"gallery-app/internal/domain/works"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"

	"gorm.io/gorm"
)

const table = "artists"

type CreateInput struct {
	Name        string
	Lastname    string
	Bio         *string
	Nationality *string
	BirthYear   *int
	PhotoURL    *string
}

func List(db *gorm.DB) ([]works.Artist, error) {
	var out []works.Artist
	err := db.Where("active = ?", true).Order("name ASC, lastname ASC").Find(&out).Error
	return out, err
}

func GetByID(db *gorm.DB, id uint, includeInactive bool) (*works.Artist, error) {
	q := db.Model(&works.Artist{})
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var a works.Artist
	if err := q.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func Create(db *gorm.DB, in CreateInput) (*works.Artist, error) {
	a := works.Artist{
		Name:        in.Name,
		Lastname:    in.Lastname,
		Bio:         in.Bio,
		Nationality: in.Nationality,
		BirthYear:   in.BirthYear,
		PhotoURL:    in.PhotoURL,
		Active:      true,
	}
	if err := db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func Update(db *gorm.DB, id uint, p works.ArtistPatch) (*works.Artist, error) {
	return patch.Apply[works.Artist](db, table, id, p.Changes())
}

func SoftDelete(db *gorm.DB, id uint) (bool, error) {
	return patch.Deactivate(db, table, id)
}
