// utils/pagination.go - shared pagination for list endpoints
package utils

import (
	"net/url"
	"strconv"

	"gorm.io/gorm"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Params carries the requested page and page size.
type Params struct {
	Page  int
	Limit int
}

// ParamsFromQuery reads page/limit with the defaults the original clients
// expect (page 1, ten records).
func ParamsFromQuery(values url.Values) Params {
	page, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))
	if limit == 0 {
		limit = defaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Normalize clamps page and limit to at least 1 and caps limit at 100.
// Out-of-range values are a policy decision here, not an error.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Page is one page of records plus the totals for the whole filtered set.
type Page[T any] struct {
	Data        []T   `json:"data"`
	Count       int64 `json:"count"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
}

// PageCount returns ceil(count/limit).
func PageCount(count int64, limit int) int {
	if limit < 1 {
		limit = 1
	}
	return int((count + int64(limit) - 1) / int64(limit))
}

// Paginate runs the count and page queries for one model type. Count ignores
// pagination, so it is invariant under page/limit for a fixed filter; pages
// beyond the last return an empty data slice with the real totals. Preloads
// name related records to fetch alongside the page.
func Paginate[T any](db *gorm.DB, params Params, filters *Filters, preloads ...string) (*Page[T], error) {
	params = params.Normalize()

	var model T
	var count int64
	if err := filters.Apply(db.Model(&model)).Count(&count).Error; err != nil {
		return nil, err
	}

	query := filters.Apply(db.Model(&model))
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	data := make([]T, 0, params.Limit)
	offset := (params.Page - 1) * params.Limit
	if err := query.Offset(offset).Limit(params.Limit).Find(&data).Error; err != nil {
		return nil, err
	}

	return &Page[T]{
		Data:        data,
		Count:       count,
		Pages:       PageCount(count, params.Limit),
		CurrentPage: params.Page,
	}, nil
}
