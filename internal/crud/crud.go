// Package crud holds the one list/pagination routine shared by every
// resource, so pagination semantics are identical system-wide.
package crud

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-backend/internal/models"
	"pos-backend/internal/response"
)

type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

// ParseListParams reads page/per_page/search from the query string.
// page defaults to 1, per_page to 10. per_page=0 is the documented
// "unlimited" contract: all rows, one page. Negative values are rejected.
func ParseListParams(c *fiber.Ctx) (ListParams, error) {
	p := ListParams{Search: strings.TrimSpace(c.Query("search"))}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return p, fiber.NewError(fiber.StatusBadRequest, "page must be a number")
	}
	if page < 1 {
		page = 1
	}
	p.Page = page

	perPage, err := strconv.Atoi(c.Query("per_page", "10"))
	if err != nil {
		return p, fiber.NewError(fiber.StatusBadRequest, "per_page must be a number")
	}
	if perPage < 0 {
		return p, fiber.NewError(fiber.StatusBadRequest, "per_page must be 0 (unlimited) or positive")
	}
	p.PerPage = perPage

	return p, nil
}

// TotalPages implements the page-count contract: ceil(total/perPage) for a
// positive perPage, and a single page (or none, when empty) for the
// unlimited case.
func TotalPages(total int64, perPage int) int {
	if perPage == 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// List runs the shared paginated query: optional case-insensitive substring
// search OR-ed across the given columns, newest rows first, soft-deleted rows
// excluded by the default scope.
func List[T any](db *gorm.DB, p ListParams, searchColumns ...string) ([]T, response.Paginator, error) {
	var rows []T
	pg := response.Paginator{Page: p.Page, PerPage: p.PerPage}

	q := db.Model(new(T))
	if p.Search != "" && len(searchColumns) > 0 {
		clause := make([]string, 0, len(searchColumns))
		args := make([]any, 0, len(searchColumns))
		for _, col := range searchColumns {
			clause = append(clause, col+" ILIKE ?")
			args = append(args, "%"+p.Search+"%")
		}
		q = q.Where(strings.Join(clause, " OR "), args...)
	}

	if err := q.Count(&pg.Total).Error; err != nil {
		return nil, pg, err
	}

	q = q.Order("created_at DESC")
	if p.PerPage > 0 {
		q = q.Offset((p.Page - 1) * p.PerPage).Limit(p.PerPage)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, pg, err
	}

	pg.TotalPages = TotalPages(pg.Total, p.PerPage)
	return rows, pg, nil
}

// GetByID fetches a single non-deleted row or a 404.
func GetByID[T any](db *gorm.DB, id string, preloads ...string) (*T, error) {
	var row T
	q := db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return nil, err
	}
	return &row, nil
}

// GetByIDUnscoped also finds soft-deleted rows; used for direct reads on
// soft-delete resources, where a deleted row stays retrievable by id.
func GetByIDUnscoped[T any](db *gorm.DB, id string) (*T, error) {
	var row T
	if err := db.Unscoped().First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return nil, err
	}
	return &row, nil
}

// Exists reports whether a non-deleted row with the numeric id is present.
func Exists[T any](db *gorm.DB, id uint) bool {
	var count int64
	db.Model(new(T)).Where("id = ?", id).Count(&count)
	return count > 0
}

// Delete removes a row according to the entity's declared deletion policy.
func Delete[T any](db *gorm.DB, id string, policy models.DeletionPolicy) error {
	q := db
	if policy == models.DeletionHard {
		q = db.Unscoped()
	}
	res := q.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "record not found")
	}
	return nil
}
