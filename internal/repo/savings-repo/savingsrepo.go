package savingsrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ownedAccounts = `
	SELECT s.id, s.wallet_id, s.name, s.goal, s.balance
	FROM saving_accounts s JOIN wallets w ON w.id = s.wallet_id
	WHERE w.user_id = $1`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, account *domain.SavingsAccount) (*domain.SavingsAccount, error) {
	query := `
		INSERT INTO saving_accounts (wallet_id, name, goal, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, account.WalletID, account.Name, account.Goal, account.Balance).Scan(&account.ID)
	if err != nil {
		zap.L().Error("can't create saving account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, userID, id int) (*domain.SavingsAccount, error) {
	var account domain.SavingsAccount
	err := r.db.QueryRow(ctx, ownedAccounts+" AND s.id = $2", userID, id).
		Scan(&account.ID, &account.WalletID, &account.Name, &account.Goal, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find saving account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) List(ctx context.Context, userID int) ([]domain.SavingsAccount, error) {
	rows, err := r.db.Query(ctx, ownedAccounts+" ORDER BY s.id", userID)
	if err != nil {
		zap.L().Error("can't get saving accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.SavingsAccount
	for rows.Next() {
		var account domain.SavingsAccount
		if err := rows.Scan(&account.ID, &account.WalletID, &account.Name, &account.Goal, &account.Balance); err != nil {
			zap.L().Error("can't scan saving account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *Repository) Count(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT count(*)
		FROM saving_accounts s JOIN wallets w ON w.id = s.wallet_id
		WHERE w.user_id = $1
	`
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count saving accounts", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Debit takes amount from the account only if the balance covers it.
func (r *Repository) Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE saving_accounts
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING balance
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		zap.L().Error("can't debit saving account", zap.Int("savings_id", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, "UPDATE saving_accounts SET balance = balance + $1 WHERE id = $2 RETURNING balance", amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		zap.L().Error("can't credit saving account", zap.Int("savings_id", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM saving_accounts WHERE id = $1 AND balance <= 0", id)
	if err != nil {
		zap.L().Error("can't delete saving account", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNonZeroBalance
	}
	return nil
}
