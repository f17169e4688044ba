package order

import (
	"context"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package order

type OrderRepo interface {
	UpsertOrders(ctx context.Context, orders []Order) error
	ListOrders(ctx context.Context, accountID uuid.UUID, p page.Page) ([]Order, int, error)
}
