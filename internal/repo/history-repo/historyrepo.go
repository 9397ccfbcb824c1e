package historyrepo

import (
	"context"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
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

// Append writes one ledger row. Rows are never updated afterwards.
func (r *Repository) Append(ctx context.Context, record *domain.TransferRecord) (*domain.TransferRecord, error) {
	query := `
		INSERT INTO transfer_history (transfer_type, from_user_card_number, from_user, to_user_card_number, to_user, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, time
	`
	err := r.db.QueryRow(ctx, query,
		string(record.Type), record.FromCardNumber, record.From, record.ToCardNumber, record.To, record.Amount,
	).Scan(&record.ID, &record.Time)
	if err != nil {
		zap.L().Error("can't append transfer history", zap.Error(err))
		return nil, err
	}
	return record, nil
}

// ListByCardNumber returns rows where the card is either side, newest first.
func (r *Repository) ListByCardNumber(ctx context.Context, number string) ([]domain.TransferRecord, error) {
	query := `
		SELECT id, transfer_type, from_user_card_number, from_user, to_user_card_number, to_user, amount, time
		FROM transfer_history
		WHERE from_user_card_number = $1 OR to_user_card_number = $1
		ORDER BY time DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, number)
	if err != nil {
		zap.L().Error("can't get transfer history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.TransferRecord
	for rows.Next() {
		var (
			record       domain.TransferRecord
			transferType string
		)
		err := rows.Scan(&record.ID, &transferType, &record.FromCardNumber, &record.From,
			&record.ToCardNumber, &record.To, &record.Amount, &record.Time)
		if err != nil {
			zap.L().Error("can't scan transfer history row", zap.Error(err))
			return nil, err
		}
		record.Type = domain.TransferType(transferType)
		records = append(records, record)
	}
	return records, rows.Err()
}
