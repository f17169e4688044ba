package item

import (
	"context"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package item

type ItemRepo interface {
	UpsertItems(ctx context.Context, items []Item) error
	ListItems(ctx context.Context, accountID uuid.UUID, p page.Page) ([]Item, int, error)
}
