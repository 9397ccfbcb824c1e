package billservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/internal/service/cardservice"
)

type mocks struct {
	repo        *MockRepo
	cardRepo    *cardservice.MockRepo
	walletRepo  *cardservice.MockWalletRepo
	historyRepo *cardservice.MockHistoryRepo
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		cardRepo:    cardservice.NewMockRepo(ctrl),
		walletRepo:  cardservice.NewMockWalletRepo(ctrl),
		historyRepo: cardservice.NewMockHistoryRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	return New(m.repo, m.cardRepo, m.walletRepo, m.historyRepo, m.txManager), m
}

func (m *mocks) expectTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

const cardNumber = "4111111111111111"

var due = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testBill(paid bool) *domain.Bill {
	return &domain.Bill{ID: 5, WalletID: 10, Name: "Rent", Amount: decimal.NewFromInt(120), DueDate: due, Paid: paid}
}

func testCard(balance int64) *domain.Card {
	return &domain.Card{ID: 3, WalletID: 10, CardholderName: "Ada", CardholderSurname: "Lovelace", Number: cardNumber, Balance: decimal.NewFromInt(balance)}
}

func TestCreateBill(t *testing.T) {
	tests := []struct {
		name        string
		billName    string
		amount      decimal.Decimal
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:     "Created unpaid",
			billName: "Rent",
			amount:   decimal.NewFromInt(120),
			prepareMock: func(m *mocks) {
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Bill) (*domain.Bill, error) {
						b.ID = 5
						return b, nil
					},
				)
			},
		},
		{
			name:        "Zero amount",
			billName:    "Rent",
			amount:      decimal.Zero,
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrBadRequest,
		},
		{
			name:     "No wallet",
			billName: "Rent",
			amount:   decimal.NewFromInt(120),
			prepareMock: func(m *mocks) {
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			bill, err := service.CreateBill(context.Background(), 1, tt.billName, tt.amount, due)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, bill.ID)
			assert.False(t, bill.Paid)
			assert.Equal(t, due, bill.DueDate)
		})
	}
}

func TestListBills(t *testing.T) {
	service, m := NewMock(t)

	m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
	m.repo.EXPECT().List(gomock.Any(), 1).Return([]domain.Bill{*testBill(false)}, nil)

	bills, err := service.ListBills(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, bills, 1)

	m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
	_, err = service.ListBills(context.Background(), 1)
	assert.Error(t, err)
}

func TestPayBill(t *testing.T) {
	amount := decimal.NewFromInt(120)

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Paid from the card",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 1, 5).Return(testBill(false), nil)
				m.cardRepo.EXPECT().FindByNumber(gomock.Any(), 1, cardNumber).Return(testCard(150), nil)
				m.repo.EXPECT().MarkPaid(gomock.Any(), 5).Return(nil)
				m.cardRepo.EXPECT().Debit(gomock.Any(), 3, amount).Return(decimal.NewFromInt(30), nil)
				m.historyRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.TransferRecord) (*domain.TransferRecord, error) {
						return r, nil
					},
				).Times(1)
			},
		},
		{
			name: "Already paid is reported before funds",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 1, 5).Return(testBill(true), nil)
				m.cardRepo.EXPECT().FindByNumber(gomock.Any(), 1, cardNumber).Return(testCard(0), nil)
			},
			expectedErr: domain.ErrAlreadyPaid,
		},
		{
			name: "Paid concurrently",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 1, 5).Return(testBill(false), nil)
				m.cardRepo.EXPECT().FindByNumber(gomock.Any(), 1, cardNumber).Return(testCard(150), nil)
				m.repo.EXPECT().MarkPaid(gomock.Any(), 5).Return(domain.ErrAlreadyPaid)
			},
			expectedErr: domain.ErrAlreadyPaid,
		},
		{
			name: "Card cannot cover the bill",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 1, 5).Return(testBill(false), nil)
				m.cardRepo.EXPECT().FindByNumber(gomock.Any(), 1, cardNumber).Return(testCard(100), nil)
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name: "Unknown bill",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 1, 5).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Unknown card",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), 1, 5).Return(testBill(false), nil)
				m.cardRepo.EXPECT().FindByNumber(gomock.Any(), 1, cardNumber).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "No wallet",
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			payment, err := service.PayBill(context.Background(), 1, 5, cardNumber)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(30).Equal(payment.RemainingCardBalance))
			record := payment.Record
			assert.Equal(t, domain.TransferTypeBill, record.Type)
			assert.Equal(t, "Bill - Rent", record.To)
			assert.Nil(t, record.ToCardNumber)
			assert.True(t, amount.Equal(record.Amount))
		})
	}
}

func TestPayBill_RemainingCardBalance(t *testing.T) {
	service, m := NewMock(t)

	bill := &domain.Bill{ID: 7, WalletID: 10, Name: "Insurance", Amount: decimal.NewFromInt(999), DueDate: due}
	m.expectTx()
	m.walletRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
	m.repo.EXPECT().FindByID(gomock.Any(), 1, 7).Return(bill, nil)
	m.cardRepo.EXPECT().FindByNumber(gomock.Any(), 1, cardNumber).Return(testCard(1500), nil)
	m.repo.EXPECT().MarkPaid(gomock.Any(), 7).Return(nil)
	m.cardRepo.EXPECT().Debit(gomock.Any(), 3, decimal.NewFromInt(999)).Return(decimal.NewFromInt(501), nil)
	m.historyRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.TransferRecord) (*domain.TransferRecord, error) {
			return r, nil
		},
	)

	payment, err := service.PayBill(context.Background(), 1, 7, cardNumber)
	require.NoError(t, err)
	assert.Equal(t, "501", payment.RemainingCardBalance.String())
	assert.Equal(t, "Bill - Insurance", payment.Record.To)
	assert.True(t, decimal.NewFromInt(999).Equal(payment.Record.Amount))
}
