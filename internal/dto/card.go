package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CardResponseDTO struct {
	ID                int             `json:"id" example:"3"`
	CardholderName    string          `json:"cardholder_name" example:"Ada"`
	CardholderSurname string          `json:"cardholder_surname" example:"Lovelace"`
	Number            string          `json:"number" example:"4111111111120443"`
	ExpirationDate    string          `json:"expiration_date" example:"05/29"`
	CVV               string          `json:"cvv" example:"042"`
	Balance           decimal.Decimal `json:"balance" swaggertype:"number" example:"50"`
}

type CardNumberRequestDTO struct {
	CardNumber string `json:"card_number" example:"4111111111120443"`
}

type TransferRequestDTO struct {
	FromCardNumber string          `json:"from_card_number" example:"4111111111120443"`
	ToCardNumber   string          `json:"to_card_number" example:"5555555555554444"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"number" example:"10.5"`
}

type HistoryRecordDTO struct {
	Direction      string          `json:"direction" example:"out"`
	From           string          `json:"from" example:"Ada Lovelace"`
	FromCardNumber *string         `json:"from_card_number" example:"4111111111120443"`
	To             string          `json:"to" example:"Saving Account - Trip"`
	ToCardNumber   *string         `json:"to_card_number"`
	TransferType   string          `json:"transfer_type" example:"SAVINGS_TOPUP"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"number" example:"25"`
	Time           time.Time       `json:"time" example:"2024-05-01T12:00:00Z"`
}

type HistoryResponseDTO struct {
	History []HistoryRecordDTO `json:"history"`
}
