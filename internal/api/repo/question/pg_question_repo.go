package question_repo

import (
	"context"
	"fmt"
	"slices"

	"sellerops/internal/api/domain/page"
	"sellerops/internal/api/domain/question"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var questionColumns = []string{
	"account_id", "id", "item_id", "text", "status", "answer_text", "answer_date", "from_id", "date_created",
}

type PgQuestionRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgQuestionRepo(pg *postgres.Postgres) question.QuestionRepo {
	return &PgQuestionRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgQuestionRepo) UpsertQuestions(ctx context.Context, questions []question.Question) error {
	if len(questions) == 0 {
		return nil
	}

	insert := r.builder.Insert("questions").Columns(questionColumns...)
	for _, q := range questions {
		insert = insert.Values(q.AccountID, q.ID, q.ItemID, q.Text, q.Status, q.AnswerText, q.AnswerDate, q.FromID, q.DateCreated)
	}

	query, args, err := insert.
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "id"}, questionColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert questions query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert questions: %w", err)
	}
	return nil
}

func (r *PgQuestionRepo) ListQuestions(ctx context.Context, accountID uuid.UUID, q question.Query, p page.Page) ([]question.Question, int, error) {
	sel := r.builder.Select(slices.Concat(questionColumns, []string{"created_at", "updated_at", "count(*) OVER() AS total"})...).
		From("questions").
		Where(squirrel.Eq{"account_id": accountID})
	if q.Status != "" {
		sel = sel.Where(squirrel.Eq{"status": q.Status})
	}

	query, args, err := sel.
		OrderBy("date_created DESC", "id DESC").
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var (
		questions []question.Question
		total     int
	)
	for rows.Next() {
		var qq question.Question
		err := rows.Scan(&qq.AccountID, &qq.ID, &qq.ItemID, &qq.Text, &qq.Status, &qq.AnswerText, &qq.AnswerDate,
			&qq.FromID, &qq.DateCreated, &qq.CreatedAt, &qq.UpdatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan question row: %w", err)
		}
		questions = append(questions, qq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate question rows: %w", err)
	}
	return questions, total, nil
}
