package account

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package account

type AccountRepo interface {
	TxAccountRepo
	InTransaction(ctx context.Context, fn func(repo TxAccountRepo) error) error
}

type TxAccountRepo interface {
	UpsertAccount(ctx context.Context, a NewAccount) (Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (Account, error)
	GetAccountByMarketplaceUserID(ctx context.Context, userID int64) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	UpsertToken(ctx context.Context, t Token) error
	GetToken(ctx context.Context, accountID uuid.UUID) (Token, error)
}
