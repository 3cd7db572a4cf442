package artworks

type CreateArtworkRequest struct {
	Title       string  `json:"title" binding:"required"`
	ArtistID    uint    `json:"artist_id" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	TechniqueID uint    `json:"technique_id" binding:"required"`
	Year        int     `json:"year"`
	WidthCM     float64 `json:"width_cm" binding:"gte=0"`
	HeightCM    float64 `json:"height_cm" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description *string `json:"description"`
	Story       *string `json:"story"`
	Featured    bool    `json:"featured"`
	ImageURL    *string `json:"image_url"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
	Featured  *bool `json:"featured"`
}
