package dto

import "github.com/shopspring/decimal"

type CreateSavingsRequestDTO struct {
	Name string          `json:"name" example:"Trip"`
	Goal decimal.Decimal `json:"goal" swaggertype:"number" example:"1000"`
}

type SavingsResponseDTO struct {
	ID      int             `json:"id" example:"4"`
	Name    string          `json:"name" example:"Trip"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"200"`
	Goal    decimal.Decimal `json:"goal" swaggertype:"number" example:"1000"`
	Remain  decimal.Decimal `json:"remain" swaggertype:"number" example:"800"`
}

// SavingsMoveRequestDTO is shared by top-up and decrease.
type SavingsMoveRequestDTO struct {
	Amount          decimal.Decimal `json:"amount" swaggertype:"number" example:"25"`
	SavingAccountID int             `json:"saving_account_id" example:"4"`
	CardID          int             `json:"card_id" example:"3"`
}

type DeleteSavingsRequestDTO struct {
	SavingAccountID int `json:"saving_account_id" example:"4"`
}

type DeleteSavingsResponseDTO struct {
	Status          string `json:"status" example:"deleted"`
	SavingAccountID int    `json:"saving_account_id" example:"4"`
}
