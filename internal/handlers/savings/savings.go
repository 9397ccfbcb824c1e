package savings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/internal/handlers/httperr"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

//go:generate mockgen -source=savings.go -destination=mock_savings.go -package=savings

type Service interface {
	CreateSavings(ctx context.Context, userID int, name string, goal decimal.Decimal) (*domain.SavingsAccount, error)
	ListSavings(ctx context.Context, userID int) ([]domain.SavingsAccount, error)
	TopUp(ctx context.Context, userID, savingsID, cardID int, amount decimal.Decimal) (*domain.TransferRecord, error)
	Withdraw(ctx context.Context, userID, savingsID, cardID int, amount decimal.Decimal) (*domain.TransferRecord, error)
	DeleteSavings(ctx context.Context, userID, savingsID int) error
}

type SavingsHandler struct {
	savingsService Service
}

func New(savingsService Service) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
	}
}

func toSavingsDTO(s *domain.SavingsAccount) dto.SavingsResponseDTO {
	return dto.SavingsResponseDTO{
		ID:      s.ID,
		Name:    s.Name,
		Balance: s.Balance,
		Goal:    s.Goal,
		Remain:  s.Remain(),
	}
}

// CreateSavings godoc
//
//	@Summary		Open a savings account
//	@Description	Open a named savings account with a goal and the starting balance.
//	@Tags			Savings
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSavingsRequestDTO	true	"Name and goal"
//	@Success		201		{object}	dto.SavingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid name or goal"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		406		{object}	utils.Response	"User has no wallet"
//	@Router			/savings/create [post]
func (h *SavingsHandler) CreateSavings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateSavingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.savingsService.CreateSavings(r.Context(), userID, req.Name, req.Goal)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSavingsDTO(account))
}

// ListSavings godoc
//
//	@Summary		List savings accounts
//	@Tags			Savings
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{array}		dto.SavingsResponseDTO
//	@Success		204	{string}	string			"No savings accounts"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		406	{object}	utils.Response	"User has no wallet"
//	@Router			/savings [get]
func (h *SavingsHandler) ListSavings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	accounts, err := h.savingsService.ListSavings(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(accounts) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.SavingsResponseDTO, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toSavingsDTO(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// TopUp godoc
//
//	@Summary		Top up savings
//	@Description	Move money from a card into a savings account. The move is written to history.
//	@Tags			Savings
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SavingsMoveRequestDTO	true	"Amount, account and card"
//	@Success		200		{object}	utils.Response				"Topped up"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Card has not enough funds"
//	@Failure		406		{object}	utils.Response				"No such card or savings account"
//	@Router			/savings/topUp [post]
func (h *SavingsHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.savingsService.TopUp, "Top up for ")
}

// Withdraw godoc
//
//	@Summary		Decrease savings
//	@Description	Move money from a savings account back to a card. The move is written to history.
//	@Tags			Savings
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SavingsMoveRequestDTO	true	"Amount, account and card"
//	@Success		200		{object}	utils.Response				"Decreased"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Savings account has not enough funds"
//	@Failure		406		{object}	utils.Response				"No such card or savings account"
//	@Router			/savings/decrease [post]
func (h *SavingsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.savingsService.Withdraw, "Decreased by ")
}

type moveFn func(ctx context.Context, userID, savingsID, cardID int, amount decimal.Decimal) (*domain.TransferRecord, error)

func (h *SavingsHandler) move(w http.ResponseWriter, r *http.Request, fn moveFn, message string) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SavingsMoveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	record, err := fn(r.Context(), userID, req.SavingAccountID, req.CardID, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, message+record.Amount.String())
}

// DeleteSavings godoc
//
//	@Summary		Close a savings account
//	@Description	Only empty savings accounts can be closed.
//	@Tags			Savings
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeleteSavingsRequestDTO	true	"Account to close"
//	@Success		200		{object}	dto.DeleteSavingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Account still holds money"
//	@Failure		406		{object}	utils.Response	"No such savings account"
//	@Router			/savings/delete [delete]
func (h *SavingsHandler) DeleteSavings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DeleteSavingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.savingsService.DeleteSavings(r.Context(), userID, req.SavingAccountID); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteSavingsResponseDTO{
		Status:          "deleted",
		SavingAccountID: req.SavingAccountID,
	})
}
