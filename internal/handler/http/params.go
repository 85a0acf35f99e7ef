package http

import (
	"net/http"
	"strconv"

	"github.com/campus-hr/payroll-backend-go/internal/handler/http/response"
)

func parsePagination(r *http.Request) (page int, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func paginationMeta(page, limit int, totalItems int64) *response.Meta {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// optionalQuery returns nil when the query parameter is absent or empty.
func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}
