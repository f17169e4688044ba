package question

import (
	"context"
	"fmt"
	"strings"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

type QuestionService struct {
	repo QuestionRepo
}

func NewQuestionService(repo QuestionRepo) *QuestionService {
	return &QuestionService{repo: repo}
}

func (s *QuestionService) List(ctx context.Context, accountID uuid.UUID, q Query, p page.Page) (page.Result[Question], error) {
	q.Status = strings.ToUpper(q.Status)
	if err := q.Validate(); err != nil {
		return page.Result[Question]{}, err
	}

	questions, total, err := s.repo.ListQuestions(ctx, accountID, q, p)
	if err != nil {
		return page.Result[Question]{}, fmt.Errorf("list questions: %w", err)
	}
	return page.NewResult(questions, total, p), nil
}

func (s *QuestionService) Save(ctx context.Context, questions ...Question) error {
	if len(questions) == 0 {
		return nil
	}
	if err := s.repo.UpsertQuestions(ctx, questions); err != nil {
		return fmt.Errorf("upsert questions: %w", err)
	}
	return nil
}
