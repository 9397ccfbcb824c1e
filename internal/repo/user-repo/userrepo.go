package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, first_name, last_name, email, phone_number, date_of_birth, social_security,
	address, city, state, post_code, password_hash, created_at,
	twofa_code, twofa_issued_at, reset_token, reset_token_issued_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// IdentityTaken reports whether any of the contacts is already used by a
// user or by a registration in progress.
func (repo *Repository) IdentityTaken(ctx context.Context, c domain.Contacts) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 OR phone_number = $2 OR social_security = $3
			UNION ALL
			SELECT 1 FROM unverified_users WHERE email = $1 OR phone_number = $2 OR social_security = $3
		)
	`
	var taken bool
	err := repo.db.QueryRow(ctx, query, c.Email, c.PhoneNumber, c.SocialSecurity).Scan(&taken)
	if err != nil {
		zap.L().Error("can't check identity", zap.Error(err))
		return false, err
	}
	return taken, nil
}

func (repo *Repository) CreateUnverified(ctx context.Context, u *domain.UnverifiedUser) (*domain.UnverifiedUser, error) {
	query := `
		INSERT INTO unverified_users (email, phone_number, social_security, code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, u.Email, u.PhoneNumber, u.SocialSecurity, u.Code).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		zap.L().Error("can't save unverified user", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (repo *Repository) FindUnverified(ctx context.Context, email, code string) (*domain.UnverifiedUser, error) {
	query := `
		SELECT id, email, phone_number, social_security, code, created_at
		FROM unverified_users
		WHERE email = $1 AND code = $2
	`
	var u domain.UnverifiedUser
	err := repo.db.QueryRow(ctx, query, email, code).Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.SocialSecurity, &u.Code, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find unverified user", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (repo *Repository) DeleteUnverified(ctx context.Context, id int) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM unverified_users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete unverified user", zap.Error(err))
		return err
	}
	return nil
}

// DeleteUnverifiedBefore removes registrations started before the given time.
func (repo *Repository) DeleteUnverifiedBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM unverified_users WHERE created_at < $1", before)
	if err != nil {
		zap.L().Error("can't delete stale registrations", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, phone_number, date_of_birth, social_security,
			address, city, state, post_code, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.DateOfBirth, user.SocialSecurity,
		user.Address, user.City, user.State, user.PostCode, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (repo *Repository) FindByContacts(ctx context.Context, c domain.Contacts) (*domain.User, error) {
	return repo.findOne(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1 AND phone_number = $2 AND social_security = $3",
		c.Email, c.PhoneNumber, c.SocialSecurity,
	)
}

func (repo *Repository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE reset_token = $1", token)
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var (
		user                  domain.User
		twofaCode, resetToken *string
		twofaAt, resetAt      *time.Time
	)
	err := repo.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PhoneNumber, &user.DateOfBirth,
		&user.SocialSecurity, &user.Address, &user.City, &user.State, &user.PostCode, &user.PasswordHash,
		&user.CreatedAt, &twofaCode, &twofaAt, &resetToken, &resetAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	user.TwoFA = pending(twofaCode, twofaAt)
	user.Reset = pending(resetToken, resetAt)
	return &user, nil
}

func pending(value *string, issuedAt *time.Time) *domain.Pending {
	if value == nil || issuedAt == nil {
		return nil
	}
	return &domain.Pending{Value: *value, IssuedAt: *issuedAt}
}

func (repo *Repository) SetTwoFA(ctx context.Context, userID int, code domain.Pending) error {
	_, err := repo.db.Exec(ctx,
		"UPDATE users SET twofa_code = $1, twofa_issued_at = $2 WHERE id = $3",
		code.Value, code.IssuedAt, userID,
	)
	if err != nil {
		zap.L().Error("can't store 2fa code", zap.Error(err))
		return err
	}
	return nil
}

// ConsumeTwoFA clears the stored code if it still equals code. It reports
// false when another request already used it.
func (repo *Repository) ConsumeTwoFA(ctx context.Context, userID int, code string) (bool, error) {
	tag, err := repo.db.Exec(ctx,
		"UPDATE users SET twofa_code = NULL, twofa_issued_at = NULL WHERE id = $1 AND twofa_code = $2",
		userID, code,
	)
	if err != nil {
		zap.L().Error("can't clear 2fa code", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) SetResetToken(ctx context.Context, userID int, token domain.Pending) error {
	_, err := repo.db.Exec(ctx,
		"UPDATE users SET reset_token = $1, reset_token_issued_at = $2 WHERE id = $3",
		token.Value, token.IssuedAt, userID,
	)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.ErrConflict
		}
		zap.L().Error("can't store reset token", zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword stores the new hash and clears the token in one statement,
// so a token can change the password only once.
func (repo *Repository) ResetPassword(ctx context.Context, userID int, token, passwordHash string) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_issued_at = NULL
		WHERE id = $2 AND reset_token = $3
	`
	tag, err := repo.db.Exec(ctx, query, passwordHash, userID, token)
	if err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
