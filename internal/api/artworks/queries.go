package artworks

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// filterFromQuery maps listing query parameters onto a Filter. Bad
// numbers are ignored rather than rejected; filters are a convenience,
// not a contract.
func filterFromQuery(c *gin.Context) Filter {
	f := Filter{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
	f.ArtistID = uintParam(c, "artist_id")
	f.CategoryID = uintParam(c, "category_id")
	f.TechniqueID = uintParam(c, "technique_id")
	f.PriceMin = floatParam(c, "price_min")
	f.PriceMax = floatParam(c, "price_max")
	f.YearMin = intParam(c, "year_min")
	f.YearMax = intParam(c, "year_max")

	if v := c.Query("available"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Available = &b
		}
	}
	return f
}

func uintParam(c *gin.Context, name string) *uint {
	if v := c.Query(name); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(n)
			return &u
		}
	}
	return nil
}

func intParam(c *gin.Context, name string) *int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func floatParam(c *gin.Context, name string) *float64 {
	if v := c.Query(name); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return &n
		}
	}
	return nil
}
