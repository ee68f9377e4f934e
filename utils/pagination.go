package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

// Pagination is the page window for catalog listings, derived from the
// page and limit query params.
type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// GetPagination reads page and limit from the request, clamping both so
// a bad or missing value falls back to page 1 with the default size.
func GetPagination(c *gin.Context) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	return Pagination{Page: page, Limit: limit, Skip: (page - 1) * limit}
}
