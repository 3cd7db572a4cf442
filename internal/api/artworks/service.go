package artworks

import (
	"errors"
	"strings"
	"time"

	"gallery-app/internal/domain/works"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"

	"gorm.io/gorm"
)

const table = "artworks"

// Filter narrows artwork listings. Nil fields are ignored. Sort is one
// of newest, oldest, price_asc, price_desc, title_asc, title_desc;
// anything else falls back to featured-first then newest-first.
type Filter struct {
	ArtistID    *uint
	CategoryID  *uint
	TechniqueID *uint
	PriceMin    *float64
	PriceMax    *float64
	YearMin     *int
	YearMax     *int
	Available   *bool
	Search      string
	Sort        string
}

type CreateInput struct {
	Title       string
	ArtistID    uint
	CategoryID  uint
	TechniqueID uint
	Year        int
	WidthCM     float64
	HeightCM    float64
	Price       float64
	Description *string
	Story       *string
	Featured    bool
	ImageURL    *string
}

func List(db *gorm.DB, f Filter) ([]works.Artwork, error) {
	q := db.Model(&works.Artwork{}).Where("artworks.active = ?", true)

	if f.ArtistID != nil {
		q = q.Where("artist_id = ?", *f.ArtistID)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.TechniqueID != nil {
		q = q.Where("technique_id = ?", *f.TechniqueID)
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.YearMin != nil {
		q = q.Where("year >= ?", *f.YearMin)
	}
	if f.YearMax != nil {
		q = q.Where("year <= ?", *f.YearMax)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	q = q.Order(orderClause(f.Sort))

	var out []works.Artwork
	err := q.Preload("Artist").Preload("Category").Preload("Technique").Find(&out).Error
	return out, err
}

func orderClause(sort string) string {
	switch sort {
	case "newest":
		return "created_at DESC"
	case "oldest":
		return "created_at ASC"
	case "price_asc":
		return "price ASC"
	case "price_desc":
		return "price DESC"
	case "title_asc":
		return "title ASC"
	case "title_desc":
		return "title DESC"
	default:
		return "featured DESC, created_at DESC"
	}
}

func GetByID(db *gorm.DB, id uint, includeInactive bool) (*works.Artwork, error) {
	q := db.Preload("Artist").Preload("Category").Preload("Technique")
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var a works.Artwork
	if err := q.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetByQR resolves an artwork by its QR token. The caller chooses this
// path with an explicit flag; it is never inferred from the value's
// shape.
func GetByQR(db *gorm.DB, token string) (*works.Artwork, error) {
	var a works.Artwork
	err := db.Preload("Artist").Preload("Category").Preload("Technique").
		First(&a, "qr_code = ? AND active = ?", token, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func Create(db *gorm.DB, in CreateInput) (*works.Artwork, error) {
	a := works.Artwork{
		Title:       in.Title,
		ArtistID:    in.ArtistID,
		CategoryID:  in.CategoryID,
		TechniqueID: in.TechniqueID,
		Year:        in.Year,
		WidthCM:     in.WidthCM,
		HeightCM:    in.HeightCM,
		Price:       in.Price,
		Description: in.Description,
		Story:       in.Story,
		Available:   true,
		Featured:    in.Featured,
		ImageURL:    in.ImageURL,
		Active:      true,
	}
	if err := db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func Update(db *gorm.DB, id uint, p works.ArtworkPatch) (*works.Artwork, error) {
	return patch.Apply[works.Artwork](db, table, id, p.Changes())
}

// SetAvailability is the dedicated transition for the availability and
// featured flags. An omitted flag keeps its current value; neither is
// ever nulled out.
func SetAvailability(db *gorm.DB, id uint, available, featured *bool) (*works.Artwork, error) {
	var a works.Artwork
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ? AND active = ?", id, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		next := map[string]any{
			"available":  a.Available,
			"featured":   a.Featured,
			"updated_at": time.Now(),
		}
		if available != nil {
			next["available"] = *available
		}
		if featured != nil {
			next["featured"] = *featured
		}

		if err := tx.Model(&works.Artwork{}).Where("id = ?", id).Updates(next).Error; err != nil {
			return err
		}
		return tx.First(&a, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetQRCode attaches the QR token and its rendered image to an artwork.
// The QR columns are protected from the generic patch path; this is the
// only operation that writes them.
func SetQRCode(db *gorm.DB, id uint, token, imageURL string) error {
	res := db.Model(&works.Artwork{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{
			"qr_code":      token,
			"qr_image_url": imageURL,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func SoftDelete(db *gorm.DB, id uint) (bool, error) {
	return patch.Deactivate(db, table, id)
}
