package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBillRequestDTO struct {
	Name    string          `json:"name" example:"Rent"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"number" example:"120"`
	DueDate time.Time       `json:"due_date" example:"2024-06-01T00:00:00Z"`
}

type BillResponseDTO struct {
	ID      int             `json:"id" example:"5"`
	Name    string          `json:"name" example:"Rent"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"number" example:"120"`
	DueDate time.Time       `json:"due_date" example:"2024-06-01T00:00:00Z"`
	Paid    bool            `json:"paid" example:"false"`
}

type PayBillRequestDTO struct {
	BillID     int    `json:"bill_id" example:"5"`
	CardNumber string `json:"card_number" example:"4111111111120443"`
}

type PayBillResponseDTO struct {
	Status               string          `json:"status" example:"paid"`
	BillID               int             `json:"bill_id" example:"5"`
	Amount               decimal.Decimal `json:"amount" swaggertype:"number" example:"120"`
	RemainingCardBalance decimal.Decimal `json:"remaining_card_balance" swaggertype:"number" example:"30"`
}
