package service

import (
	"github.com/GlebRadaev/bankapi/internal/handlers/auth"
	"github.com/GlebRadaev/bankapi/internal/handlers/bills"
	"github.com/GlebRadaev/bankapi/internal/handlers/cards"
	"github.com/GlebRadaev/bankapi/internal/handlers/savings"

	pkgauth "github.com/GlebRadaev/bankapi/pkg/auth"

	"github.com/GlebRadaev/bankapi/internal/pg"
	"github.com/GlebRadaev/bankapi/internal/repo"
	"github.com/GlebRadaev/bankapi/internal/service/authservice"
	"github.com/GlebRadaev/bankapi/internal/service/billservice"
	"github.com/GlebRadaev/bankapi/internal/service/cardservice"
	"github.com/GlebRadaev/bankapi/internal/service/savingsservice"
)

type Services struct {
	AuthService    auth.Service
	CardService    cards.Service
	SavingsService savings.Service
	BillService    bills.Service
}

func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	jwtService pkgauth.JWTServiceInterface,
	mailer authservice.Mailer,
	cfg authservice.Config,
) *Services {
	cardService := cardservice.New(repo.CardRepo, repo.WalletRepo, repo.UserRepo, repo.HistoryRepo, txManager)
	savingsService := savingsservice.New(repo.SavingsRepo, repo.CardRepo, repo.WalletRepo, repo.HistoryRepo, txManager)
	billService := billservice.New(repo.BillRepo, repo.CardRepo, repo.WalletRepo, repo.HistoryRepo, txManager)
	authService := authservice.New(
		repo.UserRepo,
		repo.WalletRepo,
		authservice.OverviewSources{Cards: repo.CardRepo, Savings: repo.SavingsRepo, Bills: repo.BillRepo},
		txManager,
		&pkgauth.HashService{},
		jwtService,
		&pkgauth.CodeGenerator{},
		mailer,
		cfg,
	)

	return &Services{
		AuthService:    authService,
		CardService:    cardService,
		SavingsService: savingsService,
		BillService:    billService,
	}
}
