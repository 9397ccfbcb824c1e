package savingsservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/internal/service/cardservice"
)

//go:generate mockgen -source=savingsservice.go -destination=mock_savingsservice.go -package=savingsservice

type Repo interface {
	Create(ctx context.Context, account *domain.SavingsAccount) (*domain.SavingsAccount, error)
	FindByID(ctx context.Context, userID, id int) (*domain.SavingsAccount, error)
	List(ctx context.Context, userID int) ([]domain.SavingsAccount, error)
	Count(ctx context.Context, userID int) (int, error)
	Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	Delete(ctx context.Context, id int) error
}

var DefaultSavingsBalance = decimal.NewFromInt(200)

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

func (s *Service) CreateSavings(ctx context.Context, userID int, name string, goal decimal.Decimal) (*domain.SavingsAccount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty name: %w", domain.ErrBadRequest)
	}
	if !domain.ValidAmount(goal) {
		return nil, fmt.Errorf("goal %s: %w", goal, domain.ErrBadRequest)
	}

	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
	}

	account, err := s.repo.Create(ctx, &domain.SavingsAccount{
		WalletID: wallet.ID,
		Name:     name,
		Goal:     goal,
		Balance:  DefaultSavingsBalance,
	})
	if err != nil {
		zap.L().Error("failed to create saving account", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) ListSavings(ctx context.Context, userID int) ([]domain.SavingsAccount, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
	}
	return s.repo.List(ctx, userID)
}

// TopUp moves amount from the card into the saving account.
func (s *Service) TopUp(ctx context.Context, userID, savingsID, cardID int, amount decimal.Decimal) (*domain.TransferRecord, error) {
	var record *domain.TransferRecord
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, card, err := s.resolve(ctx, userID, savingsID, cardID)
		if err != nil {
			return err
		}
		if !domain.ValidAmount(amount) {
			return fmt.Errorf("amount %s: %w", amount, domain.ErrBadRequest)
		}
		if card.Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		// cards before saving_accounts, same as Withdraw
		if _, err := s.cardRepo.Debit(ctx, card.ID, amount); err != nil {
			return err
		}
		if _, err := s.repo.Credit(ctx, account.ID, amount); err != nil {
			return err
		}

		record, err = s.historyRepo.Append(ctx, &domain.TransferRecord{
			Type:           domain.TransferTypeSavingsTopUp,
			FromCardNumber: &card.Number,
			From:           card.HolderName(),
			To:             account.Label(),
			Amount:         amount,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Withdraw moves amount from the saving account back to the card.
func (s *Service) Withdraw(ctx context.Context, userID, savingsID, cardID int, amount decimal.Decimal) (*domain.TransferRecord, error) {
	var record *domain.TransferRecord
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, card, err := s.resolve(ctx, userID, savingsID, cardID)
		if err != nil {
			return err
		}
		if !domain.ValidAmount(amount) {
			return fmt.Errorf("amount %s: %w", amount, domain.ErrBadRequest)
		}
		if account.Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		if _, err := s.cardRepo.Credit(ctx, card.ID, amount); err != nil {
			return err
		}
		if _, err := s.repo.Debit(ctx, account.ID, amount); err != nil {
			return err
		}

		record, err = s.historyRepo.Append(ctx, &domain.TransferRecord{
			Type:         domain.TransferTypeSavingsWithdraw,
			From:         account.Label(),
			ToCardNumber: &card.Number,
			To:           card.HolderName(),
			Amount:       amount,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) resolve(ctx context.Context, userID, savingsID, cardID int) (*domain.SavingsAccount, *domain.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, userID, cardID)
	if err != nil {
		return nil, nil, err
	}
	if card == nil {
		return nil, nil, fmt.Errorf("card %d: %w", cardID, domain.ErrNotFound)
	}
	account, err := s.repo.FindByID(ctx, userID, savingsID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, fmt.Errorf("saving account %d: %w", savingsID, domain.ErrNotFound)
	}
	return account, card, nil
}

func (s *Service) DeleteSavings(ctx context.Context, userID, savingsID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByID(ctx, userID, savingsID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("saving account %d: %w", savingsID, domain.ErrNotFound)
		}
		if account.Balance.IsPositive() {
			return domain.ErrNonZeroBalance
		}
		return s.repo.Delete(ctx, account.ID)
	})
}

