package billservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/internal/service/cardservice"
)

//go:generate mockgen -source=billservice.go -destination=mock_billservice.go -package=billservice

type Repo interface {
	Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
	FindByID(ctx context.Context, userID, id int) (*domain.Bill, error)
	List(ctx context.Context, userID int) ([]domain.Bill, error)
	CountUnpaid(ctx context.Context, userID int) (int, error)
	MarkPaid(ctx context.Context, id int) error
}

type Service struct {
	repo        Repo
	cardRepo    cardservice.Repo
	walletRepo  cardservice.WalletRepo
	historyRepo cardservice.HistoryRepo
	txManager   pg.TXManager
}

func New(repo Repo, cardRepo cardservice.Repo, walletRepo cardservice.WalletRepo, historyRepo cardservice.HistoryRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		cardRepo:    cardRepo,
		walletRepo:  walletRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
	}
}

func (s *Service) CreateBill(ctx context.Context, userID int, name string, amount decimal.Decimal, dueDate time.Time) (*domain.Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty name: %w", domain.ErrBadRequest)
	}
	if !domain.ValidAmount(amount) {
		return nil, fmt.Errorf("amount %s: %w", amount, domain.ErrBadRequest)
	}

	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
	}

	bill, err := s.repo.Create(ctx, &domain.Bill{
		WalletID: wallet.ID,
		Name:     name,
		Amount:   amount,
		DueDate:  dueDate,
	})
	if err != nil {
		zap.L().Error("failed to create bill", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return bill, nil
}

func (s *Service) ListBills(ctx context.Context, userID int) ([]domain.Bill, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
	}
	return s.repo.List(ctx, userID)
}

// PayBill settles the bill from one of the user's cards. A bill is paid at
// most once; that is checked before the card balance.
func (s *Service) PayBill(ctx context.Context, userID, billID int, cardNumber string) (*domain.BillPayment, error) {
	payment := &domain.BillPayment{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
		}
		bill, err := s.repo.FindByID(ctx, userID, billID)
		if err != nil {
			return err
		}
		if bill == nil {
			return fmt.Errorf("bill %d: %w", billID, domain.ErrNotFound)
		}
		card, err := s.cardRepo.FindByNumber(ctx, userID, cardNumber)
		if err != nil {
			return err
		}
		if card == nil {
			return fmt.Errorf("card: %w", domain.ErrNotFound)
		}

		if bill.Paid {
			return domain.ErrAlreadyPaid
		}
		if card.Balance.LessThan(bill.Amount) {
			return domain.ErrInsufficientFunds
		}

		if err := s.repo.MarkPaid(ctx, bill.ID); err != nil {
			return err
		}
		payment.RemainingCardBalance, err = s.cardRepo.Debit(ctx, card.ID, bill.Amount)
		if err != nil {
			return err
		}

		payment.Record, err = s.historyRepo.Append(ctx, &domain.TransferRecord{
			Type:           domain.TransferTypeBill,
			FromCardNumber: &card.Number,
			From:           card.HolderName(),
			To:             bill.Label(),
			Amount:         bill.Amount,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("bill paid", zap.Int("user_id", userID), zap.Int("bill_id", billID))
	return payment, nil
}
