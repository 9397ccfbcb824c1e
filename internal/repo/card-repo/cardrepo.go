package cardrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cardColumns = "c.id, c.wallet_id, c.cardholder_name, c.cardholder_surname, c.number, c.expiration_date, c.cvv, c.balance"

// Every owner-scoped lookup joins through the caller's wallet.
const ownedCards = "SELECT " + cardColumns + " FROM cards c JOIN wallets w ON w.id = c.wallet_id WHERE w.user_id = $1"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
		INSERT INTO cards (wallet_id, cardholder_name, cardholder_surname, number, expiration_date, cvv, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		card.WalletID, card.CardholderName, card.CardholderSurname, card.Number, card.ExpirationDate, card.CVV, card.Balance,
	).Scan(&card.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		zap.L().Error("can't create card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) ExistsNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM cards WHERE number = $1)", number).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check card number", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindByNumber(ctx context.Context, userID int, number string) (*domain.Card, error) {
	return r.findOne(ctx, ownedCards+" AND c.number = $2", userID, number)
}

// FindByNumberAny resolves a card regardless of its owner. Only transfer
// receivers are looked up this way.
func (r *Repository) FindByNumberAny(ctx context.Context, number string) (*domain.Card, error) {
	return r.findOne(ctx, "SELECT "+cardColumns+" FROM cards c WHERE c.number = $1", number)
}

func (r *Repository) FindByID(ctx context.Context, userID, id int) (*domain.Card, error) {
	return r.findOne(ctx, ownedCards+" AND c.id = $2", userID, id)
}

func (r *Repository) FindByLastDigits(ctx context.Context, userID int, lastDigits string) (*domain.Card, error) {
	return r.findOne(ctx, ownedCards+" AND right(c.number, 4) = $2 ORDER BY c.id LIMIT 1", userID, lastDigits)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Card, error) {
	var card domain.Card
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&card.ID, &card.WalletID, &card.CardholderName, &card.CardholderSurname,
		&card.Number, &card.ExpirationDate, &card.CVV, &card.Balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find card", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *Repository) List(ctx context.Context, userID int) ([]domain.Card, error) {
	rows, err := r.db.Query(ctx, ownedCards+" ORDER BY c.id", userID)
	if err != nil {
		zap.L().Error("can't get cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		err := rows.Scan(
			&card.ID, &card.WalletID, &card.CardholderName, &card.CardholderSurname,
			&card.Number, &card.ExpirationDate, &card.CVV, &card.Balance,
		)
		if err != nil {
			zap.L().Error("can't scan card row", zap.Error(err))
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// Debit takes amount from the card only if the balance covers it and
// returns the new balance.
func (r *Repository) Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE cards
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
		zap.L().Error("can't debit card", zap.Int("card_id", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, "UPDATE cards SET balance = balance + $1 WHERE id = $2 RETURNING balance", amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		zap.L().Error("can't credit card", zap.Int("card_id", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// Delete removes an empty card. A funded card is left in place.
func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM cards WHERE id = $1 AND balance <= 0", id)
	if err != nil {
		zap.L().Error("can't delete card", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNonZeroBalance
	}
	return nil
}
