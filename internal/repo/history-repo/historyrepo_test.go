package historyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
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

func strPtr(s string) *string { return &s }

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(50)
	from := strPtr("4111111111111111")

	tests := []struct {
		name      string
		record    *domain.TransferRecord
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Bill payment has no destination card",
			record: &domain.TransferRecord{
				Type: domain.TransferTypeBill, FromCardNumber: from, From: "Ada Lovelace", To: "Bill - Rent", Amount: amount,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transfer_history")).
					WithArgs("BILL", from, "Ada Lovelace", (*string)(nil), "Bill - Rent", amount).
					WillReturnRows(pgxmock.NewRows([]string{"id", "time"}).AddRow(1, at))
			},
		},
		{
			name: "Database error",
			record: &domain.TransferRecord{
				Type: domain.TransferTypeBill, FromCardNumber: from, From: "Ada Lovelace", To: "Bill - Rent", Amount: amount,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transfer_history")).
					WithArgs("BILL", from, "Ada Lovelace", (*string)(nil), "Bill - Rent", amount).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			record, err := repo.Append(context.Background(), tt.record)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, record.ID)
				assert.Equal(t, at, record.Time)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByCardNumber(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	number := "4111111111111111"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE from_user_card_number = $1 OR to_user_card_number = $1")).
		WithArgs(number).
		WillReturnRows(pgxmock.NewRows([]string{"id", "transfer_type", "from_user_card_number", "from_user", "to_user_card_number", "to_user", "amount", "time"}).
			AddRow(2, "TRANSFER", strPtr("5555555555554444"), "Alan Turing", strPtr(number), "Ada Lovelace", decimal.NewFromInt(10), at).
			AddRow(1, "SAVINGS_TOPUP", strPtr(number), "Ada Lovelace", (*string)(nil), "Saving Account - Trip", decimal.NewFromInt(5), at.Add(-time.Hour)))

	records, err := repo.ListByCardNumber(context.Background(), number)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.TransferTypeTransfer, records[0].Type)
	assert.Equal(t, number, *records[0].ToCardNumber)
	assert.Nil(t, records[1].ToCardNumber)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transfer_history")).
		WithArgs(number).
		WillReturnError(errors.New("database error"))

	_, err = repo.ListByCardNumber(context.Background(), number)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
