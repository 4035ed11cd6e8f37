package persistence

import (
	"strings"

	"github.com/agency/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// sortableColumns is the allow-list of columns exposed for ordering.
var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"category":   true,
	"sort_order": true,
}

// applyPagination applies pagination and ordering from the filter.
// Unknown order columns fall back to the repository's default ordering.
func applyPagination(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" && sortableColumns[filter.OrderBy] {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + orderDir)
	}
	return query.Order(defaultOrder)
}
