package authservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/mail"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	IdentityTaken(ctx context.Context, c domain.Contacts) (bool, error)
	CreateUnverified(ctx context.Context, u *domain.UnverifiedUser) (*domain.UnverifiedUser, error)
	FindUnverified(ctx context.Context, email, code string) (*domain.UnverifiedUser, error)
	DeleteUnverified(ctx context.Context, id int) error
	DeleteUnverifiedBefore(ctx context.Context, before time.Time) (int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByContacts(ctx context.Context, c domain.Contacts) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	SetTwoFA(ctx context.Context, userID int, code domain.Pending) error
	ConsumeTwoFA(ctx context.Context, userID int, code string) (bool, error)
	SetResetToken(ctx context.Context, userID int, token domain.Pending) error
	ResetPassword(ctx context.Context, userID int, token, passwordHash string) (bool, error)
}

type WalletRepo interface {
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
}

type CardLister interface {
	List(ctx context.Context, userID int) ([]domain.Card, error)
}

type SavingsCounter interface {
	Count(ctx context.Context, userID int) (int, error)
}

type BillCounter interface {
	CountUnpaid(ctx context.Context, userID int) (int, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject string, kind mail.Kind, params map[string]string) error
}

// OverviewSources feed the signed-in user's dashboard.
type OverviewSources struct {
	Cards   CardLister
	Savings SavingsCounter
	Bills   BillCounter
}

type Config struct {
	FrontendLink string
	// CodeTTL bounds 2FA codes and reset tokens.
	CodeTTL time.Duration
	// UnverifiedTTL is how long a registration may wait for verification.
	UnverifiedTTL time.Duration
}

const resetTokenAttempts = 5

// VerifyInput is the full profile submitted together with the emailed code.
type VerifyInput struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	DateOfBirth    time.Time
	SocialSecurity string
	Address        string
	City           string
	State          string
	PostCode       string
	Password       string
	Code           string
}

type Service struct {
	userRepo    Repo
	walletRepo  WalletRepo
	overview    OverviewSources
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	codes       auth.CodeGeneratorInterface
	mailer      Mailer
	cfg         Config
	now         func() time.Time
}

func New(
	repo Repo,
	walletRepo WalletRepo,
	overview OverviewSources,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	codes auth.CodeGeneratorInterface,
	mailer Mailer,
	cfg Config,
) *Service {
	if cfg.CodeTTL == 0 {
		cfg.CodeTTL = time.Hour
	}
	if cfg.UnverifiedTTL == 0 {
		cfg.UnverifiedTTL = 24 * time.Hour
	}
	return &Service{
		userRepo:    repo,
		walletRepo:  walletRepo,
		overview:    overview,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		codes:       codes,
		mailer:      mailer,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Register starts a registration: the contacts are reserved and a code is
// mailed. Nothing is kept if the mail can't be sent.
func (s *Service) Register(ctx context.Context, c domain.Contacts) error {
	if c.Email == "" || c.PhoneNumber == "" || c.SocialSecurity == "" {
		return fmt.Errorf("missing contact field: %w", domain.ErrBadRequest)
	}

	taken, err := s.userRepo.IdentityTaken(ctx, c)
	if err != nil {
		return err
	}
	if taken {
		zap.L().Info("identity already registered", zap.String("email", c.Email))
		return domain.ErrConflict
	}

	code, err := s.codes.VerificationCode()
	if err != nil {
		zap.L().Error("can't generate verification code", zap.Error(err))
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.userRepo.CreateUnverified(ctx, &domain.UnverifiedUser{
			Email:          c.Email,
			PhoneNumber:    c.PhoneNumber,
			SocialSecurity: c.SocialSecurity,
			Code:           code,
		})
		if err != nil {
			return err
		}
		err = s.mailer.Send(ctx, c.Email, "Email Verification", mail.KindRegistrationCode, map[string]string{"Code": code})
		if err != nil {
			return fmt.Errorf("verification email: %v: %w", err, domain.ErrBadRequest)
		}
		return nil
	})
}

// Verify turns a pending registration into a user with a wallet and
// returns a session token for it.
func (s *Service) Verify(ctx context.Context, in VerifyInput) (string, error) {
	pending, err := s.userRepo.FindUnverified(ctx, in.Email, in.Code)
	if err != nil {
		return "", err
	}
	if pending == nil || s.now().Sub(pending.CreatedAt) > s.cfg.UnverifiedTTL {
		return "", domain.ErrInvalidCode
	}

	hash, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) || errors.Is(err, auth.ErrPasswordTooLong) {
			return "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
		}
		zap.L().Error("can't hash password", zap.Error(err))
		return "", err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.DeleteUnverified(ctx, pending.ID); err != nil {
			return err
		}
		user, err := s.userRepo.Create(ctx, &domain.User{
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			Email:          in.Email,
			PhoneNumber:    in.PhoneNumber,
			DateOfBirth:    in.DateOfBirth,
			SocialSecurity: in.SocialSecurity,
			Address:        in.Address,
			City:           in.City,
			State:          in.State,
			PostCode:       in.PostCode,
			PasswordHash:   hash,
		})
		if err != nil {
			return err
		}
		_, err = s.walletRepo.Create(ctx, user.ID)
		return err
	})
	if err != nil {
		return "", err
	}

	zap.L().Info("user successfully registered", zap.String("email", in.Email))
	return s.GenerateToken(in.Email)
}

// RequestTwoFA checks the password and mails a fresh login code. A new
// request replaces any code sent before.
func (s *Service) RequestTwoFA(ctx context.Context, email, password string) error {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	code, err := s.codes.VerificationCode()
	if err != nil {
		zap.L().Error("can't generate 2fa code", zap.Error(err))
		return err
	}
	if err := s.userRepo.SetTwoFA(ctx, user.ID, domain.Pending{Value: code, IssuedAt: s.now()}); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, user.Email, "Login 2FA code", mail.KindTwoFA, map[string]string{"Code": code}); err != nil {
		zap.L().Warn("2fa code not delivered", zap.Int("user_id", user.ID), zap.Error(err))
	}
	return nil
}

func (s *Service) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// ConfirmTwoFA spends the login code and returns a session token.
func (s *Service) ConfirmTwoFA(ctx context.Context, email, code string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !user.TwoFA.Matches(code, s.now(), s.cfg.CodeTTL) {
		return "", domain.ErrUnauthorized
	}

	consumed, err := s.userRepo.ConsumeTwoFA(ctx, user.ID, code)
	if err != nil {
		return "", err
	}
	if !consumed {
		return "", domain.ErrUnauthorized
	}

	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return s.GenerateToken(user.Email)
}

// RequestPasswordReset mails a reset link when all three contacts belong
// to the same user.
func (s *Service) RequestPasswordReset(ctx context.Context, c domain.Contacts) error {
	user, err := s.userRepo.FindByContacts(ctx, c)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthorized
	}

	var token string
	for i := 0; ; i++ {
		if i == resetTokenAttempts {
			return fmt.Errorf("no unique reset token after %d attempts", resetTokenAttempts)
		}
		token = s.codes.ResetToken()
		err = s.userRepo.SetResetToken(ctx, user.ID, domain.Pending{Value: token, IssuedAt: s.now()})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}

	link := s.cfg.FrontendLink + "/reset?token=" + url.QueryEscape(token)
	if err := s.mailer.Send(ctx, user.Email, "Password reset", mail.KindPasswordReset, map[string]string{"Link": link}); err != nil {
		zap.L().Warn("reset link not delivered", zap.Int("user_id", user.ID), zap.Error(err))
	}
	return nil
}

// ConfirmPasswordReset sets a new password using a still valid token.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return domain.ErrUnauthorized
	}
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil || !user.Reset.Matches(token, s.now(), s.cfg.CodeTTL) {
		return domain.ErrUnauthorized
	}

	hash, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) || errors.Is(err, auth.ErrPasswordTooLong) {
			return fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
		}
		return err
	}

	updated, err := s.userRepo.ResetPassword(ctx, user.ID, token, hash)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrUnauthorized
	}
	zap.L().Info("password reset", zap.Int("user_id", user.ID))
	return nil
}

// Me loads the dashboard parts in parallel.
func (s *Service) Me(ctx context.Context, userID int) (*domain.Overview, error) {
	var (
		user     *domain.User
		overview domain.Overview
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userRepo.FindByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		overview.Cards, err = s.overview.Cards.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		overview.SavingsCount, err = s.overview.Savings.Count(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		overview.UnpaidBills, err = s.overview.Bills.CountUnpaid(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load overview", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	overview.FirstName = user.FirstName
	overview.LastName = user.LastName
	return &overview, nil
}

// CleanupUnverified drops registrations that were never verified in time.
func (s *Service) CleanupUnverified(ctx context.Context) (int64, error) {
	deleted, err := s.userRepo.DeleteUnverifiedBefore(ctx, s.now().Add(-s.cfg.UnverifiedTTL))
	if err != nil {
		return 0, err
	}
	zap.L().Info("stale registrations removed", zap.Int64("count", deleted))
	return deleted, nil
}

// ResolveSubject maps a session subject to the user ID.
func (s *Service) ResolveSubject(ctx context.Context, email string) (int, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, domain.ErrUnauthorized
	}
	return user.ID, nil
}

func (s *Service) GenerateToken(email string) (string, error) {
	token, err := s.jwtService.GenerateJWT(email, s.now().Add(s.jwtService.TTL()))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) SessionTTL() time.Duration {
	return s.jwtService.TTL()
}
