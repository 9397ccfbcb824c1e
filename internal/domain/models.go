package domain

import (
	"crypto/subtle"
	"time"

	"github.com/shopspring/decimal"
)

// Pending is a one-time secret (2FA code or reset token) with its issuance time.
// A user holds at most one of each kind; issuing a new one overwrites the old.
type Pending struct {
	Value    string
	IssuedAt time.Time
}

// Matches reports whether value equals the stored secret and the secret was
// issued no longer than window ago.
func (p *Pending) Matches(value string, now time.Time, window time.Duration) bool {
	if p == nil || value == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(p.Value), []byte(value)) != 1 {
		return false
	}
	return !p.Expired(now, window)
}

func (p *Pending) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(p.IssuedAt) > window
}

type User struct {
	ID             int       `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	PhoneNumber    string    `db:"phone_number"`
	DateOfBirth    time.Time `db:"date_of_birth"`
	SocialSecurity string    `db:"social_security"`
	Address        string    `db:"address"`
	City           string    `db:"city"`
	State          string    `db:"state"`
	PostCode       string    `db:"post_code"`
	PasswordHash   string    `db:"password_hash"`
	CreatedAt      time.Time `db:"created_at"`

	TwoFA *Pending
	Reset *Pending
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Contacts are the three identity fields that must be unique across users
// and registrations in progress.
type Contacts struct {
	Email          string
	PhoneNumber    string
	SocialSecurity string
}

type UnverifiedUser struct {
	ID             int       `db:"id"`
	Email          string    `db:"email"`
	PhoneNumber    string    `db:"phone_number"`
	SocialSecurity string    `db:"social_security"`
	Code           string    `db:"code"`
	CreatedAt      time.Time `db:"created_at"`
}

type Wallet struct {
	ID     int `db:"id"`
	UserID int `db:"user_id"`
}

type Card struct {
	ID                int             `db:"id"`
	WalletID          int             `db:"wallet_id"`
	CardholderName    string          `db:"cardholder_name"`
	CardholderSurname string          `db:"cardholder_surname"`
	Number            string          `db:"number"`
	ExpirationDate    string          `db:"expiration_date"`
	CVV               string          `db:"cvv"`
	Balance           decimal.Decimal `db:"balance"`
}

func (c *Card) HolderName() string {
	return c.CardholderName + " " + c.CardholderSurname
}

func (c *Card) LastDigits() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

type SavingsAccount struct {
	ID       int             `db:"id"`
	WalletID int             `db:"wallet_id"`
	Name     string          `db:"name"`
	Goal     decimal.Decimal `db:"goal"`
	Balance  decimal.Decimal `db:"balance"`
}

// Remain is how much is still missing to reach the goal.
func (s *SavingsAccount) Remain() decimal.Decimal {
	return s.Goal.Sub(s.Balance)
}

func (s *SavingsAccount) Label() string {
	return "Saving Account - " + s.Name
}

type Bill struct {
	ID       int             `db:"id"`
	WalletID int             `db:"wallet_id"`
	Name     string          `db:"name"`
	Amount   decimal.Decimal `db:"amount"`
	DueDate  time.Time       `db:"due_date"`
	Paid     bool            `db:"paid"`
}

func (b *Bill) Label() string {
	return "Bill - " + b.Name
}

type TransferType string

const (
	TransferTypeTransfer        TransferType = "TRANSFER"
	TransferTypeIncome          TransferType = "INCOME"
	TransferTypePurchase        TransferType = "PURCHASE"
	TransferTypeBill            TransferType = "BILL"
	TransferTypeSavingsTopUp    TransferType = "SAVINGS_TOPUP"
	TransferTypeSavingsWithdraw TransferType = "SAVINGS_WITHDRAW"
)

// TransferRecord is one append-only row of the transfer history.
// Card numbers are nil when the side is a savings account or a bill.
type TransferRecord struct {
	ID             int             `db:"id"`
	Type           TransferType    `db:"transfer_type"`
	FromCardNumber *string         `db:"from_user_card_number"`
	From           string          `db:"from_user"`
	ToCardNumber   *string         `db:"to_user_card_number"`
	To             string          `db:"to_user"`
	Amount         decimal.Decimal `db:"amount"`
	Time           time.Time       `db:"time"`
}

// BillPayment is the result of settling a bill from a card.
type BillPayment struct {
	Record               *TransferRecord
	RemainingCardBalance decimal.Decimal
}

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// DirectionFor tells whether money left or reached the card with number.
func (r *TransferRecord) DirectionFor(number string) Direction {
	if r.FromCardNumber != nil && *r.FromCardNumber == number {
		return DirectionOut
	}
	return DirectionIn
}

// ValidAmount accepts positive sums with at most two decimal places.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

// Overview is the dashboard summary returned for the signed-in user.
type Overview struct {
	FirstName    string
	LastName     string
	Cards        []Card
	SavingsCount int
	UnpaidBills  int
}
