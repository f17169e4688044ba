package question

import (
	"context"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package question

type QuestionRepo interface {
	UpsertQuestions(ctx context.Context, questions []Question) error
	ListQuestions(ctx context.Context, accountID uuid.UUID, q Query, p page.Page) ([]Question, int, error)
}
