package account_repo

import (
	"context"
	"fmt"
	"strings"

	"sellerops/internal/api/domain/account"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var accountColumns = []string{"id", "marketplace_user_id", "nickname", "email", "site_id", "created_at", "updated_at"}

type PgAccountRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgAccountRepo(pg *postgres.Postgres) account.AccountRepo {
	return &PgAccountRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgAccountRepo) InTransaction(ctx context.Context, fn func(repo account.TxAccountRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		return fn(&repo{db: tx, builder: r.pg.Builder})
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) UpsertAccount(ctx context.Context, a account.NewAccount) (account.Account, error) {
	query, args, err := r.builder.Insert("accounts").
		Columns("marketplace_user_id", "nickname", "email", "site_id").
		Values(a.MarketplaceUserID, a.Nickname, a.Email, a.SiteID).
		Suffix(postgres.OnConflictUpdate([]string{"marketplace_user_id"}, "nickname", "email", "site_id")).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		ToSql()
	if err != nil {
		return account.Account{}, fmt.Errorf("build upsert account query: %w", err)
	}

	acc, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return account.Account{}, fmt.Errorf("upsert account: %w", err)
	}
	return acc, nil
}

func (r *repo) GetAccount(ctx context.Context, id uuid.UUID) (account.Account, error) {
	return r.getAccountBy(ctx, squirrel.Eq{"id": id})
}

func (r *repo) GetAccountByMarketplaceUserID(ctx context.Context, userID int64) (account.Account, error) {
	return r.getAccountBy(ctx, squirrel.Eq{"marketplace_user_id": userID})
}

func (r *repo) getAccountBy(ctx context.Context, where squirrel.Eq) (account.Account, error) {
	query, args, err := r.builder.Select(accountColumns...).
		From("accounts").
		Where(where).
		ToSql()
	if err != nil {
		return account.Account{}, fmt.Errorf("build get account query: %w", err)
	}

	acc, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return account.Account{}, account.ErrNotFound
	}
	if err != nil {
		return account.Account{}, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

func (r *repo) ListAccounts(ctx context.Context) ([]account.Account, error) {
	query, args, err := r.builder.Select(accountColumns...).
		From("accounts").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list accounts query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}

func (r *repo) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.builder.Delete("accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete account query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *repo) UpsertToken(ctx context.Context, t account.Token) error {
	query, args, err := r.builder.Insert("tokens").
		Columns("account_id", "access_token", "refresh_token", "token_type", "scope", "expires_at").
		Values(t.AccountID, t.AccessToken, t.RefreshToken, t.TokenType, t.Scope, t.ExpiresAt).
		Suffix(postgres.OnConflictUpdate([]string{"account_id"},
			"access_token", "refresh_token", "token_type", "scope", "expires_at")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorForeignKeyViolation(err) {
			return account.ErrNotFound
		}
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (r *repo) GetToken(ctx context.Context, accountID uuid.UUID) (account.Token, error) {
	query, args, err := r.builder.Select("account_id", "access_token", "refresh_token", "token_type", "scope", "expires_at", "updated_at").
		From("tokens").
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return account.Token{}, fmt.Errorf("build get token query: %w", err)
	}

	var t account.Token
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&t.AccountID, &t.AccessToken, &t.RefreshToken, &t.TokenType, &t.Scope, &t.ExpiresAt, &t.UpdatedAt)
	if postgres.IsNoRows(err) {
		return account.Token{}, account.ErrTokenNotFound
	}
	if err != nil {
		return account.Token{}, fmt.Errorf("get token: %w", err)
	}
	return t, nil
}

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(&a.ID, &a.MarketplaceUserID, &a.Nickname, &a.Email, &a.SiteID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
