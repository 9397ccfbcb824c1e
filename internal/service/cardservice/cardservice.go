package cardservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/pkg/validate"
)

//go:generate mockgen -source=cardservice.go -destination=mock_cardservice.go -package=cardservice

type Repo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	ExistsNumber(ctx context.Context, number string) (bool, error)
	FindByNumber(ctx context.Context, userID int, number string) (*domain.Card, error)
	FindByNumberAny(ctx context.Context, number string) (*domain.Card, error)
	FindByID(ctx context.Context, userID, id int) (*domain.Card, error)
	FindByLastDigits(ctx context.Context, userID int, lastDigits string) (*domain.Card, error)
	List(ctx context.Context, userID int) ([]domain.Card, error)
	Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	Delete(ctx context.Context, id int) error
}

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type HistoryRepo interface {
	Append(ctx context.Context, record *domain.TransferRecord) (*domain.TransferRecord, error)
	ListByCardNumber(ctx context.Context, number string) ([]domain.TransferRecord, error)
}

var DefaultCardBalance = decimal.NewFromInt(50)

const (
	cardLifetimeYears = 5
	numberAttempts    = 10
)

type Service struct {
	repo        Repo
	walletRepo  WalletRepo
	userRepo    UserRepo
	historyRepo HistoryRepo
	txManager   pg.TXManager

	generateNumber func() (string, error)
	generateCVV    func() (string, error)
	now            func() time.Time
}

func New(repo Repo, walletRepo WalletRepo, userRepo UserRepo, historyRepo HistoryRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:           repo,
		walletRepo:     walletRepo,
		userRepo:       userRepo,
		historyRepo:    historyRepo,
		txManager:      txManager,
		generateNumber: validate.GenerateCardNumber,
		generateCVV:    randomCVV,
		now:            time.Now,
	}
}

// CreateCard issues a new card on the user's wallet with the starting balance.
func (s *Service) CreateCard(ctx context.Context, userID int) (*domain.Card, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}

	cvv, err := s.generateCVV()
	if err != nil {
		return nil, err
	}
	expiration := s.now().UTC().AddDate(cardLifetimeYears, 0, 0).Format("01/06")

	for attempt := 0; attempt < numberAttempts; attempt++ {
		number, err := s.freeNumber(ctx)
		if err != nil {
			return nil, err
		}
		card, err := s.repo.Create(ctx, &domain.Card{
			WalletID:          wallet.ID,
			CardholderName:    user.FirstName,
			CardholderSurname: user.LastName,
			Number:            number,
			ExpirationDate:    expiration,
			CVV:               cvv,
			Balance:           DefaultCardBalance,
		})
		if errors.Is(err, domain.ErrConflict) {
			// number was taken between the check and the insert
			zap.L().Warn("card number taken, retrying", zap.Int("user_id", userID))
			continue
		}
		if err != nil {
			zap.L().Error("failed to create card", zap.Int("user_id", userID), zap.Error(err))
			return nil, err
		}
		return card, nil
	}
	return nil, fmt.Errorf("card number kept colliding after %d attempts", numberAttempts)
}

func (s *Service) freeNumber(ctx context.Context) (string, error) {
	for i := 0; i < numberAttempts; i++ {
		number, err := s.generateNumber()
		if err != nil {
			return "", err
		}
		taken, err := s.repo.ExistsNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", fmt.Errorf("no free card number after %d attempts", numberAttempts)
}

func randomCVV() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03d", n.Int64()), nil
}

func (s *Service) GetCard(ctx context.Context, userID int, lastDigits string) (*domain.Card, error) {
	if !validate.IsLastDigits(lastDigits) {
		return nil, fmt.Errorf("last digits %q: %w", lastDigits, domain.ErrBadRequest)
	}
	card, err := s.repo.FindByLastDigits(ctx, userID, lastDigits)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card *%s: %w", lastDigits, domain.ErrNotFound)
	}
	return card, nil
}

func (s *Service) ListCards(ctx context.Context, userID int) ([]domain.Card, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
	}
	return s.repo.List(ctx, userID)
}

// DeleteCard removes an owned card with no money on it.
func (s *Service) DeleteCard(ctx context.Context, userID int, number string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		card, err := s.repo.FindByNumber(ctx, userID, number)
		if err != nil {
			return err
		}
		if card == nil {
			return fmt.Errorf("card: %w", domain.ErrNotFound)
		}
		if card.Balance.IsPositive() {
			return domain.ErrNonZeroBalance
		}
		return s.repo.Delete(ctx, card.ID)
	})
}

// Transfer moves amount from one of the user's cards to any card and
// records a single TRANSFER row.
func (s *Service) Transfer(ctx context.Context, userID int, from, to string, amount decimal.Decimal) (*domain.TransferRecord, error) {
	if !domain.ValidAmount(amount) {
		return nil, fmt.Errorf("amount %s: %w", amount, domain.ErrBadRequest)
	}
	if from == to {
		return nil, fmt.Errorf("transfer to the same card: %w", domain.ErrBadRequest)
	}

	var record *domain.TransferRecord
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		sender, err := s.repo.FindByNumber(ctx, userID, from)
		if err != nil {
			return err
		}
		if sender == nil {
			return fmt.Errorf("sender card: %w", domain.ErrNotFound)
		}
		receiver, err := s.repo.FindByNumberAny(ctx, to)
		if err != nil {
			return err
		}
		if receiver == nil {
			return fmt.Errorf("receiver card: %w", domain.ErrNotFound)
		}
		if sender.Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		if err := s.move(ctx, sender.ID, receiver.ID, amount); err != nil {
			return err
		}

		record, err = s.historyRepo.Append(ctx, &domain.TransferRecord{
			Type:           domain.TransferTypeTransfer,
			FromCardNumber: &sender.Number,
			From:           sender.HolderName(),
			ToCardNumber:   &receiver.Number,
			To:             receiver.HolderName(),
			Amount:         amount,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("transfer completed", zap.Int("user_id", userID), zap.String("amount", amount.String()))
	return record, nil
}

// move updates both rows in ascending id order so concurrent transfers
// between the same pair of cards cannot deadlock.
func (s *Service) move(ctx context.Context, senderID, receiverID int, amount decimal.Decimal) error {
	if senderID < receiverID {
		if _, err := s.repo.Debit(ctx, senderID, amount); err != nil {
			return err
		}
		_, err := s.repo.Credit(ctx, receiverID, amount)
		return err
	}
	if _, err := s.repo.Credit(ctx, receiverID, amount); err != nil {
		return err
	}
	_, err := s.repo.Debit(ctx, senderID, amount)
	return err
}

// History lists the ledger rows touching one of the user's cards.
func (s *Service) History(ctx context.Context, userID int, number string) ([]domain.TransferRecord, error) {
	card, err := s.repo.FindByNumber(ctx, userID, number)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card: %w", domain.ErrNotFound)
	}
	return s.historyRepo.ListByCardNumber(ctx, card.Number)
}
