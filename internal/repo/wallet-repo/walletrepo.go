package walletrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet := domain.Wallet{UserID: userID}
	err := r.db.QueryRow(ctx, "INSERT INTO wallets (user_id) VALUES ($1) RETURNING id", userID).Scan(&wallet.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, "SELECT id, user_id FROM wallets WHERE user_id = $1", userID).Scan(&wallet.ID, &wallet.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
