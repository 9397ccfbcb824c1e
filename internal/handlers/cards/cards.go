package cards

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/internal/handlers/httperr"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
	"github.com/GlebRadaev/bankapi/pkg/validate"
)

//go:generate mockgen -source=cards.go -destination=mock_cards.go -package=cards

type Service interface {
	CreateCard(ctx context.Context, userID int) (*domain.Card, error)
	GetCard(ctx context.Context, userID int, lastDigits string) (*domain.Card, error)
	ListCards(ctx context.Context, userID int) ([]domain.Card, error)
	DeleteCard(ctx context.Context, userID int, number string) error
	Transfer(ctx context.Context, userID int, from, to string, amount decimal.Decimal) (*domain.TransferRecord, error)
	History(ctx context.Context, userID int, number string) ([]domain.TransferRecord, error)
}

type CardHandler struct {
	cardService Service
}

func New(cardService Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

func toCardDTO(c *domain.Card) dto.CardResponseDTO {
	return dto.CardResponseDTO{
		ID:                c.ID,
		CardholderName:    c.CardholderName,
		CardholderSurname: c.CardholderSurname,
		Number:            c.Number,
		ExpirationDate:    c.ExpirationDate,
		CVV:               c.CVV,
		Balance:           c.Balance,
	}
}

// CreateCard godoc
//
//	@Summary		Issue a card
//	@Description	Issue a new card to the signed-in user with the starting balance.
//	@Tags			Cards
//	@Security		CookieAuth
//	@Produce		json
//	@Success		201	{object}	dto.CardResponseDTO
//	@Failure		400	{object}	utils.Response	"Internal error"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		406	{object}	utils.Response	"User has no wallet"
//	@Router			/card/create [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	card, err := h.cardService.CreateCard(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCardDTO(card))
}

// GetCard godoc
//
//	@Summary		Card by last digits
//	@Description	Find one of the user's cards by the last four digits of its number.
//	@Tags			Cards
//	@Security		CookieAuth
//	@Produce		json
//	@Param			four_digits	path		string	true	"Last four digits"	example(0443)
//	@Success		200			{object}	dto.CardResponseDTO
//	@Failure		400			{object}	utils.Response	"Not four digits"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		406			{object}	utils.Response	"No such card"
//	@Router			/card/{four_digits} [get]
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	card, err := h.cardService.GetCard(r.Context(), userID, chi.URLParam(r, "four_digits"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCardDTO(card))
}

// ListCards godoc
//
//	@Summary		List cards
//	@Tags			Cards
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{array}		dto.CardResponseDTO
//	@Success		204	{string}	string			"No cards"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		406	{object}	utils.Response	"User has no wallet"
//	@Router			/card [get]
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	cards, err := h.cardService.ListCards(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(cards) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.CardResponseDTO, 0, len(cards))
	for i := range cards {
		resp = append(resp, toCardDTO(&cards[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DeleteCard godoc
//
//	@Summary		Delete a card
//	@Description	Only cards with no money left can be deleted.
//	@Tags			Cards
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CardNumberRequestDTO	true	"Card to delete"
//	@Success		200		{object}	utils.Response				"Card deleted"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Card still holds money"
//	@Failure		406		{object}	utils.Response				"No such card"
//	@Router			/card/delete [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CardNumberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.cardService.DeleteCard(r.Context(), userID, req.CardNumber); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Card deleted")
}

// Transfer godoc
//
//	@Summary		Card to card transfer
//	@Description	Move money from one of the user's cards to any card. The transfer is written to history.
//	@Tags			Cards
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer"
//	@Success		200		{object}	utils.Response			"Transferred amount"
//	@Failure		400		{object}	utils.Response			"Invalid amount, card number or same card"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not enough funds"
//	@Failure		406		{object}	utils.Response			"Sender or receiver card missing"
//	@Router			/card/transfer [post]
func (h *CardHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsCardNumber(req.ToCardNumber) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card number")
		return
	}
	record, err := h.cardService.Transfer(r.Context(), userID, req.FromCardNumber, req.ToCardNumber, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Transferred "+record.Amount.String())
}

// History godoc
//
//	@Summary		Card history
//	@Description	Transfers that touched the card, newest first, with their direction.
//	@Tags			Cards
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CardNumberRequestDTO	true	"Card"
//	@Success		200		{object}	dto.HistoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		406		{object}	utils.Response	"No such card"
//	@Router			/card/history [post]
func (h *CardHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CardNumberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	records, err := h.cardService.History(r.Context(), userID, req.CardNumber)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	resp := dto.HistoryResponseDTO{History: make([]dto.HistoryRecordDTO, 0, len(records))}
	for i := range records {
		rec := &records[i]
		resp.History = append(resp.History, dto.HistoryRecordDTO{
			Direction:      string(rec.DirectionFor(req.CardNumber)),
			From:           rec.From,
			FromCardNumber: rec.FromCardNumber,
			To:             rec.To,
			ToCardNumber:   rec.ToCardNumber,
			TransferType:   string(rec.Type),
			Amount:         rec.Amount,
			Time:           rec.Time,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
