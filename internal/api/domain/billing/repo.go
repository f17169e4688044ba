package billing

import (
	"context"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package billing

type BillingRepo interface {
	TxBillingRepo
	InTransaction(ctx context.Context, fn func(repo TxBillingRepo) error) error
}

type TxBillingRepo interface {
	UpsertPeriod(ctx context.Context, p Period) error
	UpsertExpenses(ctx context.Context, expenses []Expense) error
	UpsertTaxes(ctx context.Context, taxes []Tax) error

	ListPeriods(ctx context.Context, accountID uuid.UUID, p page.Page) ([]Period, int, error)
	ListExpenses(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) ([]Expense, int, error)
	ListTaxes(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) ([]Tax, int, error)
}
