package dto

import "github.com/shopspring/decimal"

type RegisterRequestDTO struct {
	Email          string `json:"email" example:"ada@example.com"`
	PhoneNumber    string `json:"phone_number" example:"+15550100"`
	SocialSecurity string `json:"social_security" example:"123-45-6789"`
}

type VerifyEmailRequestDTO struct {
	FirstName        string `json:"first_name" example:"Ada"`
	LastName         string `json:"last_name" example:"Lovelace"`
	Email            string `json:"email" example:"ada@example.com"`
	PhoneNumber      string `json:"phone_number" example:"+15550100"`
	DateOfBirth      string `json:"date_of_birth" example:"1990-12-10"`
	SocialSecurity   string `json:"social_security" example:"123-45-6789"`
	Address          string `json:"address" example:"12 Analytical St"`
	City             string `json:"city" example:"London"`
	State            string `json:"state" example:"LDN"`
	PostCode         string `json:"post_code" example:"NW1"`
	Password         string `json:"password" example:"s3cret-pass"`
	VerificationCode string `json:"verification_code" example:"AB12CD34"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type TwoFAConfirmRequestDTO struct {
	Email     string `json:"email" example:"ada@example.com"`
	TwoFACode string `json:"twofa_code" example:"ZX98YW76"`
}

type PasswordResetRequestDTO struct {
	Email          string `json:"email" example:"ada@example.com"`
	PhoneNumber    string `json:"phone_number" example:"+15550100"`
	SocialSecurity string `json:"social_security" example:"123-45-6789"`
}

type PasswordResetConfirmDTO struct {
	Token       string `json:"token" example:"3f1c0d5e-8d4b-4a57-9f0e-2b7f6c1d9a10"`
	NewPassword string `json:"new_password" example:"n3w-pass"`
}

type CardSummaryDTO struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"50"`
	Last4   string          `json:"last4" example:"0443"`
}

type MeResponseDTO struct {
	Name         string           `json:"name" example:"Ada"`
	Surname      string           `json:"surname" example:"Lovelace"`
	Cards        []CardSummaryDTO `json:"cards"`
	SavingsCount int              `json:"savings_count" example:"2"`
	UnpaidBills  int              `json:"unpaid_bills" example:"1"`
}
