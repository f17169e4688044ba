package item

import (
	"context"
	"fmt"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

type ItemService struct {
	repo ItemRepo
}

func NewItemService(repo ItemRepo) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List(ctx context.Context, accountID uuid.UUID, p page.Page) (page.Result[Item], error) {
	items, total, err := s.repo.ListItems(ctx, accountID, p)
	if err != nil {
		return page.Result[Item]{}, fmt.Errorf("list items: %w", err)
	}
	return page.NewResult(items, total, p), nil
}

func (s *ItemService) Save(ctx context.Context, items ...Item) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.repo.UpsertItems(ctx, items); err != nil {
		return fmt.Errorf("upsert items: %w", err)
	}
	return nil
}
