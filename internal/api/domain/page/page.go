// Package page holds limit/offset pagination shared by the read endpoints.
package page

import (
	"errors"
	"fmt"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var ErrInvalid = errors.New("invalid pagination")

type Page struct {
	Limit  int
	Offset int
}

// New validates limit/offset. A zero limit means DefaultLimit.
func New(limit, offset int) (Page, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > MaxLimit {
		return Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalid, MaxLimit)
	}
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must not be negative", ErrInvalid)
	}
	return Page{Limit: limit, Offset: offset}, nil
}

func Default() Page {
	return Page{Limit: DefaultLimit}
}

type Result[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func NewResult[T any](items []T, total int, p Page) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, Total: total, Limit: p.Limit, Offset: p.Offset}
}
