package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
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

var userRowColumns = []string{
	"id", "first_name", "last_name", "email", "phone_number", "date_of_birth", "social_security",
	"address", "city", "state", "post_code", "password_hash", "created_at",
	"twofa_code", "twofa_issued_at", "reset_token", "reset_token_issued_at",
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestRepository_IdentityTaken(t *testing.T) {
	repo, mock := NewMock(t)
	contacts := domain.Contacts{Email: "ada@example.com", PhoneNumber: "+15550100", SocialSecurity: "123-45-6789"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Taken",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
					WithArgs(contacts.Email, contacts.PhoneNumber, contacts.SocialSecurity).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			result: true,
		},
		{
			name: "Free",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
					WithArgs(contacts.Email, contacts.PhoneNumber, contacts.SocialSecurity).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			result: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
					WithArgs(contacts.Email, contacts.PhoneNumber, contacts.SocialSecurity).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.IdentityTaken(context.Background(), contacts)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateUnverified(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO unverified_users")).
					WithArgs("ada@example.com", "+15550100", "123-45-6789", "AB12CD34").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))
			},
		},
		{
			name: "Duplicate contact",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO unverified_users")).
					WithArgs("ada@example.com", "+15550100", "123-45-6789", "AB12CD34").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO unverified_users")).
					WithArgs("ada@example.com", "+15550100", "123-45-6789", "AB12CD34").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateUnverified(context.Background(), &domain.UnverifiedUser{
				Email:          "ada@example.com",
				PhoneNumber:    "+15550100",
				SocialSecurity: "123-45-6789",
				Code:           "AB12CD34",
			})
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, 7, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindUnverified(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM unverified_users")).
			WithArgs("ada@example.com", "AB12CD34").
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "phone_number", "social_security", "code", "created_at"}).
				AddRow(7, "ada@example.com", "+15550100", "123-45-6789", "AB12CD34", createdAt))

		result, err := repo.FindUnverified(context.Background(), "ada@example.com", "AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, &domain.UnverifiedUser{
			ID: 7, Email: "ada@example.com", PhoneNumber: "+15550100", SocialSecurity: "123-45-6789",
			Code: "AB12CD34", CreatedAt: createdAt,
		}, result)
	})

	t.Run("Wrong code", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM unverified_users")).
			WithArgs("ada@example.com", "ZZ99ZZ99").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindUnverified(context.Background(), "ada@example.com", "ZZ99ZZ99")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteUnverifiedBefore(t *testing.T) {
	repo, mock := NewMock(t)
	before := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM unverified_users WHERE created_at < $1")).
		WithArgs(before).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	count, err := repo.DeleteUnverifiedBefore(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM unverified_users WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.DeleteUnverified(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	dob := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	newUser := func() *domain.User {
		return &domain.User{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PhoneNumber: "+15550100",
			DateOfBirth: dob, SocialSecurity: "123-45-6789", Address: "1 Main St", City: "London",
			State: "LDN", PostCode: "N1", PasswordHash: "hashed_password",
		}
	}
	args := []any{"Ada", "Lovelace", "ada@example.com", "+15550100", dob, "123-45-6789", "1 Main St", "London", "LDN", "N1", "hashed_password"}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(args...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
		},
		{
			name: "Unique violation",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(args...).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), newUser())
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	dob := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	issuedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User with pending 2fa code",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ada@example.com").
					WillReturnRows(pgxmock.NewRows(userRowColumns).AddRow(
						1, "Ada", "Lovelace", "ada@example.com", "+15550100", dob, "123-45-6789",
						"1 Main St", "London", "LDN", "N1", "hashed_password", createdAt,
						strPtr("AB12CD34"), timePtr(issuedAt), (*string)(nil), (*time.Time)(nil),
					))
			},
			result: &domain.User{
				ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PhoneNumber: "+15550100",
				DateOfBirth: dob, SocialSecurity: "123-45-6789", Address: "1 Main St", City: "London",
				State: "LDN", PostCode: "N1", PasswordHash: "hashed_password", CreatedAt: createdAt,
				TwoFA: &domain.Pending{Value: "AB12CD34", IssuedAt: issuedAt},
			},
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ada@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ada@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), "ada@example.com")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByContactsAndResetToken(t *testing.T) {
	repo, mock := NewMock(t)
	contacts := domain.Contacts{Email: "ada@example.com", PhoneNumber: "+15550100", SocialSecurity: "123-45-6789"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1 AND phone_number = $2 AND social_security = $3")).
		WithArgs(contacts.Email, contacts.PhoneNumber, contacts.SocialSecurity).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByContacts(context.Background(), contacts)
	assert.NoError(t, err)
	assert.Nil(t, user)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(1).
		WillReturnError(errors.New("database error"))

	_, err = repo.FindByID(context.Background(), 1)
	assert.Error(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE reset_token = $1")).
		WithArgs("token").
		WillReturnError(pgx.ErrNoRows)

	user, err = repo.FindByResetToken(context.Background(), "token")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TwoFA(t *testing.T) {
	repo, mock := NewMock(t)
	issuedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET twofa_code = $1, twofa_issued_at = $2 WHERE id = $3")).
		WithArgs("AB12CD34", issuedAt, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetTwoFA(context.Background(), 1, domain.Pending{Value: "AB12CD34", IssuedAt: issuedAt}))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET twofa_code = NULL")).
		WithArgs(1, "AB12CD34").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	consumed, err := repo.ConsumeTwoFA(context.Background(), 1, "AB12CD34")
	require.NoError(t, err)
	assert.True(t, consumed)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET twofa_code = NULL")).
		WithArgs(1, "AB12CD34").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	consumed, err = repo.ConsumeTwoFA(context.Background(), 1, "AB12CD34")
	require.NoError(t, err)
	assert.False(t, consumed, "a code is usable once")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ResetToken(t *testing.T) {
	repo, mock := NewMock(t)
	issuedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	token := domain.Pending{Value: "4a0d5d6e-8f3b-4a8e-9d7e-1c2b3a4d5e6f", IssuedAt: issuedAt}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reset_token = $1")).
		WithArgs(token.Value, issuedAt, 1).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.SetResetToken(context.Background(), 1, token), domain.ErrConflict)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reset_token = $1")).
		WithArgs(token.Value, issuedAt, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetResetToken(context.Background(), 1, token))

	mock.ExpectExec(regexp.QuoteMeta("SET password_hash = $1, reset_token = NULL")).
		WithArgs("new_hash", 1, token.Value).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	updated, err := repo.ResetPassword(context.Background(), 1, token.Value, "new_hash")
	require.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(regexp.QuoteMeta("SET password_hash = $1, reset_token = NULL")).
		WithArgs("new_hash", 1, token.Value).
		WillReturnError(errors.New("database error"))
	_, err = repo.ResetPassword(context.Background(), 1, token.Value, "new_hash")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
