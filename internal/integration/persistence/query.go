package persistence

import (
	"time"

	"gorm.io/gorm"
)

const defaultPageLimit = 20

// applyDateRange restricts query to rows dated between start and end inclusive.
// A nil bound is open.
func applyDateRange(query *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		query = query.Where("date >= ?", start.UTC())
	}
	if end != nil {
		query = query.Where("date <= ?", end.UTC())
	}
	return query
}

// paginate normalizes page and limit and derives the offset and page count.
func paginate(page, limit int, total int64) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}
	return page, limit, (page - 1) * limit, totalPages
}
