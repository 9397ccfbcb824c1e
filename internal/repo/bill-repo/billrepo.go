package billrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const ownedBills = `
	SELECT b.id, b.wallet_id, b.name, b.amount, b.due_date, b.paid
	FROM bills b JOIN wallets w ON w.id = b.wallet_id
	WHERE w.user_id = $1`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error) {
	query := `
		INSERT INTO bills (wallet_id, name, amount, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, paid
	`
	err := r.db.QueryRow(ctx, query, bill.WalletID, bill.Name, bill.Amount, bill.DueDate).Scan(&bill.ID, &bill.Paid)
	if err != nil {
		zap.L().Error("can't create bill", zap.Error(err))
		return nil, err
	}
	return bill, nil
}

func (r *Repository) FindByID(ctx context.Context, userID, id int) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.QueryRow(ctx, ownedBills+" AND b.id = $2", userID, id).
		Scan(&bill.ID, &bill.WalletID, &bill.Name, &bill.Amount, &bill.DueDate, &bill.Paid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bill", zap.Error(err))
		return nil, err
	}
	return &bill, nil
}

func (r *Repository) List(ctx context.Context, userID int) ([]domain.Bill, error) {
	rows, err := r.db.Query(ctx, ownedBills+" ORDER BY b.due_date, b.id", userID)
	if err != nil {
		zap.L().Error("can't get bills", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var bill domain.Bill
		if err := rows.Scan(&bill.ID, &bill.WalletID, &bill.Name, &bill.Amount, &bill.DueDate, &bill.Paid); err != nil {
			zap.L().Error("can't scan bill row", zap.Error(err))
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}

func (r *Repository) CountUnpaid(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT count(*)
		FROM bills b JOIN wallets w ON w.id = b.wallet_id
		WHERE w.user_id = $1 AND NOT b.paid
	`
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count unpaid bills", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// MarkPaid flips the paid flag once. A second call reports ErrAlreadyPaid.
func (r *Repository) MarkPaid(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "UPDATE bills SET paid = TRUE WHERE id = $1 AND paid = FALSE", id)
	if err != nil {
		zap.L().Error("can't mark bill paid", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyPaid
	}
	return nil
}
