package order

import (
	"context"
	"fmt"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

type OrderService struct {
	orderRepo OrderRepo
}

func NewOrderService(orderRepo OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) List(ctx context.Context, accountID uuid.UUID, p page.Page) (page.Result[Order], error) {
	orders, total, err := s.orderRepo.ListOrders(ctx, accountID, p)
	if err != nil {
		return page.Result[Order]{}, fmt.Errorf("list orders: %w", err)
	}
	return page.NewResult(orders, total, p), nil
}

func (s *OrderService) Save(ctx context.Context, orders ...Order) error {
	if len(orders) == 0 {
		return nil
	}
	if err := s.orderRepo.UpsertOrders(ctx, orders); err != nil {
		return fmt.Errorf("upsert orders: %w", err)
	}
	return nil
}
