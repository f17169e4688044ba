package billing

import (
	"context"
	"fmt"
	"time"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
)

type BillingService struct {
	repo BillingRepo
}

func NewBillingService(repo BillingRepo) *BillingService {
	return &BillingService{repo: repo}
}

// SaveStatement stores a period and its charges atomically.
func (s *BillingService) SaveStatement(ctx context.Context, st Statement) error {
	return s.repo.InTransaction(ctx, func(tx TxBillingRepo) error {
		if err := tx.UpsertPeriod(ctx, st.Period); err != nil {
			return fmt.Errorf("upsert period %s: %w", st.Period.Key, err)
		}
		if len(st.Expenses) > 0 {
			if err := tx.UpsertExpenses(ctx, st.Expenses); err != nil {
				return fmt.Errorf("upsert expenses: %w", err)
			}
		}
		if len(st.Taxes) > 0 {
			if err := tx.UpsertTaxes(ctx, st.Taxes); err != nil {
				return fmt.Errorf("upsert taxes: %w", err)
			}
		}
		return nil
	})
}

func (s *BillingService) Periods(ctx context.Context, accountID uuid.UUID, p page.Page) (page.Result[Period], error) {
	periods, total, err := s.repo.ListPeriods(ctx, accountID, p)
	if err != nil {
		return page.Result[Period]{}, fmt.Errorf("list billing periods: %w", err)
	}
	return page.NewResult(periods, total, p), nil
}

func (s *BillingService) Expenses(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) (page.Result[Expense], error) {
	if err := ValidatePeriodKey(periodKey); err != nil {
		return page.Result[Expense]{}, err
	}
	expenses, total, err := s.repo.ListExpenses(ctx, accountID, periodKey, p)
	if err != nil {
		return page.Result[Expense]{}, fmt.Errorf("list expenses: %w", err)
	}
	return page.NewResult(expenses, total, p), nil
}

func (s *BillingService) Taxes(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) (page.Result[Tax], error) {
	if err := ValidatePeriodKey(periodKey); err != nil {
		return page.Result[Tax]{}, err
	}
	taxes, total, err := s.repo.ListTaxes(ctx, accountID, periodKey, p)
	if err != nil {
		return page.Result[Tax]{}, fmt.Errorf("list taxes: %w", err)
	}
	return page.NewResult(taxes, total, p), nil
}

// ValidatePeriodKey accepts the YYYY-MM-DD keys the marketplace uses for periods.
func ValidatePeriodKey(key string) error {
	if _, err := time.Parse(time.DateOnly, key); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPeriodKey, key)
	}
	return nil
}
