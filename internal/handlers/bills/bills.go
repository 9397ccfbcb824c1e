package bills

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/internal/handlers/httperr"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

//go:generate mockgen -source=bills.go -destination=mock_bills.go -package=bills

type Service interface {
	CreateBill(ctx context.Context, userID int, name string, amount decimal.Decimal, dueDate time.Time) (*domain.Bill, error)
	ListBills(ctx context.Context, userID int) ([]domain.Bill, error)
	PayBill(ctx context.Context, userID, billID int, cardNumber string) (*domain.BillPayment, error)
}

type BillHandler struct {
	billService Service
}

func New(billService Service) *BillHandler {
	return &BillHandler{
		billService: billService,
	}
}

func toBillDTO(b *domain.Bill) dto.BillResponseDTO {
	return dto.BillResponseDTO{
		ID:      b.ID,
		Name:    b.Name,
		Amount:  b.Amount,
		DueDate: b.DueDate,
		Paid:    b.Paid,
	}
}

// CreateBill godoc
//
//	@Summary		Create a bill
//	@Tags			Bills
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBillRequestDTO	true	"Bill"
//	@Success		201		{object}	dto.BillResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		406		{object}	utils.Response	"User has no wallet"
//	@Router			/bills/create [post]
func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	bill, err := h.billService.CreateBill(r.Context(), userID, req.Name, req.Amount, req.DueDate)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBillDTO(bill))
}

// ListBills godoc
//
//	@Summary		List bills
//	@Description	All bills of the user, paid and unpaid, by due date.
//	@Tags			Bills
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{array}		dto.BillResponseDTO
//	@Success		204	{string}	string			"No bills"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		406	{object}	utils.Response	"User has no wallet"
//	@Router			/bills [get]
func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bills, err := h.billService.ListBills(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(bills) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.BillResponseDTO, 0, len(bills))
	for i := range bills {
		resp = append(resp, toBillDTO(&bills[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PayBill godoc
//
//	@Summary		Pay a bill
//	@Description	Pay the bill in full from one of the user's cards. The payment is written to history.
//	@Tags			Bills
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayBillRequestDTO	true	"Bill and card"
//	@Success		200		{object}	dto.PayBillResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Already paid or not enough funds"
//	@Failure		406		{object}	utils.Response	"No such bill or card"
//	@Router			/bills/pay [post]
func (h *BillHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PayBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.billService.PayBill(r.Context(), userID, req.BillID, req.CardNumber)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayBillResponseDTO{
		Status:               "paid",
		BillID:               req.BillID,
		Amount:               payment.Record.Amount,
		RemainingCardBalance: payment.RemainingCardBalance,
	})
}
