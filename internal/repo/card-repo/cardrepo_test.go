package cardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var cardRowColumns = []string{"id", "wallet_id", "cardholder_name", "cardholder_surname", "number", "expiration_date", "cvv", "balance"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	balance := decimal.NewFromInt(50)

	newCard := func() *domain.Card {
		return &domain.Card{
			WalletID: 10, CardholderName: "Ada", CardholderSurname: "Lovelace",
			Number: "4111111111111111", ExpirationDate: "05/29", CVV: "123", Balance: balance,
		}
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cards")).
					WithArgs(10, "Ada", "Lovelace", "4111111111111111", "05/29", "123", balance).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
			},
		},
		{
			name: "Number taken concurrently",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cards")).
					WithArgs(10, "Ada", "Lovelace", "4111111111111111", "05/29", "123", balance).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			card, err := repo.Create(context.Background(), newCard())
			if tt.expectErr {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 3, card.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistsNumber(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM cards WHERE number = $1)")).
		WithArgs("4111111111111111").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsNumber(context.Background(), "4111111111111111")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByNumber(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Card
	}{
		{
			name: "Owned card",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN wallets w ON w.id = c.wallet_id WHERE w.user_id = $1 AND c.number = $2")).
					WithArgs(1, "4111111111111111").
					WillReturnRows(pgxmock.NewRows(cardRowColumns).
						AddRow(3, 10, "Ada", "Lovelace", "4111111111111111", "05/29", "123", decimal.NewFromInt(100)))
			},
			result: &domain.Card{
				ID: 3, WalletID: 10, CardholderName: "Ada", CardholderSurname: "Lovelace",
				Number: "4111111111111111", ExpirationDate: "05/29", CVV: "123", Balance: decimal.NewFromInt(100),
			},
		},
		{
			name: "Someone else's card looks missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN wallets w ON w.id = c.wallet_id WHERE w.user_id = $1 AND c.number = $2")).
					WithArgs(1, "4111111111111111").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN wallets w ON w.id = c.wallet_id WHERE w.user_id = $1 AND c.number = $2")).
					WithArgs(1, "4111111111111111").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			card, err := repo.FindByNumber(context.Background(), 1, "4111111111111111")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, card)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_OtherLookups(t *testing.T) {
	repo, mock := NewMock(t)
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(cardRowColumns).
			AddRow(4, 11, "Alan", "Turing", "5555555555554444", "06/29", "321", decimal.Zero)
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM cards c WHERE c.number = $1")).
		WithArgs("5555555555554444").
		WillReturnRows(row())
	card, err := repo.FindByNumberAny(context.Background(), "5555555555554444")
	require.NoError(t, err)
	assert.Equal(t, 4, card.ID)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE w.user_id = $1 AND c.id = $2")).
		WithArgs(2, 4).
		WillReturnRows(row())
	card, err = repo.FindByID(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", card.HolderName())

	mock.ExpectQuery(regexp.QuoteMeta("AND right(c.number, 4) = $2")).
		WithArgs(2, "4444").
		WillReturnRows(row())
	card, err = repo.FindByLastDigits(context.Background(), 2, "4444")
	require.NoError(t, err)
	assert.Equal(t, "4444", card.LastDigits())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Cards found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE w.user_id = $1 ORDER BY c.id")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(cardRowColumns).
				AddRow(3, 10, "Ada", "Lovelace", "4111111111111111", "05/29", "123", decimal.NewFromInt(100)).
				AddRow(5, 10, "Ada", "Lovelace", "5555555555554444", "05/29", "456", decimal.Zero))

		cards, err := repo.List(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, cards, 2)
		assert.Equal(t, "4444", cards[1].LastDigits())
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE w.user_id = $1 ORDER BY c.id")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), 1)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.NewFromInt(50)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
		balance     decimal.Decimal
	}{
		{
			name: "Enough funds",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND balance >= $1")).
					WithArgs(amount, 3).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(decimal.NewFromInt(50)))
			},
			balance: decimal.NewFromInt(50),
		},
		{
			name: "Balance does not cover the amount",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND balance >= $1")).
					WithArgs(amount, 3).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr:   true,
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND balance >= $1")).
					WithArgs(amount, 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.Debit(context.Background(), 3, amount)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.True(t, tt.balance.Equal(balance))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.NewFromInt(50)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE cards SET balance = balance + $1 WHERE id = $2 RETURNING balance")).
		WithArgs(amount, 4).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(decimal.NewFromInt(50)))

	balance, err := repo.Credit(context.Background(), 4, amount)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(balance))

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE cards SET balance = balance + $1 WHERE id = $2 RETURNING balance")).
		WithArgs(amount, 99).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.Credit(context.Background(), 99, amount)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards WHERE id = $1 AND balance <= 0")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards WHERE id = $1 AND balance <= 0")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), domain.ErrNonZeroBalance)

	assert.NoError(t, mock.ExpectationsWereMet())
}
