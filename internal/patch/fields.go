package patch

// Allowed maps each table to the columns the generic update path may
// write. Adding a field to an entity does not make it patchable until
// it is listed here; everything else (id, created_at, updated_at,
// active, artwork QR columns, user password, sale status) stays out of
// reach of Apply and is mutated only by its dedicated operation.
var Allowed = map[string]map[string]bool{
	"artists": {
		"name":        true,
		"lastname":    true,
		"bio":         true,
		"nationality": true,
		"birth_year":  true,
		"photo_url":   true,
	},
	"categories": {
		"name":        true,
		"description": true,
	},
	"techniques": {
		"name":        true,
		"description": true,
	},
	"artworks": {
		"title":        true,
		"artist_id":    true,
		"category_id":  true,
		"technique_id": true,
		"year":         true,
		"width_cm":     true,
		"height_cm":    true,
		"price":        true,
		"description":  true,
		"story":        true,
		"available":    true,
		"featured":     true,
		"image_url":    true,
	},
	"users": {
		"name":     true,
		"lastname": true,
		"tel":      true,
		"email":    true,
		"role":     true,
	},
	"inquiries": {
		"name":    true,
		"email":   true,
		"phone":   true,
		"message": true,
		"status":  true,
	},
	"sales": {
		"buyer_name":  true,
		"buyer_email": true,
		"price":       true,
	},
}
