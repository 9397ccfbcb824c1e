package repo

import (
	"github.com/GlebRadaev/bankapi/internal/pg"
	billrepo "github.com/GlebRadaev/bankapi/internal/repo/bill-repo"
	cardrepo "github.com/GlebRadaev/bankapi/internal/repo/card-repo"
	historyrepo "github.com/GlebRadaev/bankapi/internal/repo/history-repo"
	savingsrepo "github.com/GlebRadaev/bankapi/internal/repo/savings-repo"
	userrepo "github.com/GlebRadaev/bankapi/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/bankapi/internal/repo/wallet-repo"
	"github.com/GlebRadaev/bankapi/internal/service/authservice"
	"github.com/GlebRadaev/bankapi/internal/service/billservice"
	"github.com/GlebRadaev/bankapi/internal/service/cardservice"
	"github.com/GlebRadaev/bankapi/internal/service/savingsservice"
)

// WalletRepo is used both when a user is created and when money moves.
type WalletRepo interface {
	authservice.WalletRepo
	cardservice.WalletRepo
}

type Repositories struct {
	UserRepo    authservice.Repo
	WalletRepo  WalletRepo
	CardRepo    cardservice.Repo
	SavingsRepo savingsservice.Repo
	BillRepo    billservice.Repo
	HistoryRepo cardservice.HistoryRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		WalletRepo:  walletrepo.New(conn),
		CardRepo:    cardrepo.New(conn),
		SavingsRepo: savingsrepo.New(conn),
		BillRepo:    billrepo.New(conn),
		HistoryRepo: historyrepo.New(conn),
	}
}
