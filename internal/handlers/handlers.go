package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/bankapi/docs"
	authhandlers "github.com/GlebRadaev/bankapi/internal/handlers/auth"
	billshandlers "github.com/GlebRadaev/bankapi/internal/handlers/bills"
	cardshandlers "github.com/GlebRadaev/bankapi/internal/handlers/cards"
	savingshandlers "github.com/GlebRadaev/bankapi/internal/handlers/savings"
	"github.com/GlebRadaev/bankapi/internal/service"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
	RequestTwoFA(w http.ResponseWriter, r *http.Request)
	ConfirmTwoFA(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	RequestPasswordReset(w http.ResponseWriter, r *http.Request)
	ConfirmPasswordReset(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	CleanupUnverified(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	CreateCard(w http.ResponseWriter, r *http.Request)
	GetCard(w http.ResponseWriter, r *http.Request)
	ListCards(w http.ResponseWriter, r *http.Request)
	DeleteCard(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type SavingsHandler interface {
	CreateSavings(w http.ResponseWriter, r *http.Request)
	ListSavings(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	DeleteSavings(w http.ResponseWriter, r *http.Request)
}

type BillHandler interface {
	CreateBill(w http.ResponseWriter, r *http.Request)
	ListBills(w http.ResponseWriter, r *http.Request)
	PayBill(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CardHandler    CardHandler
	SavingsHandler SavingsHandler
	BillHandler    BillHandler

	// Authenticate guards every route that needs a signed-in user.
	Authenticate func(http.Handler) http.Handler
	CORSOrigins  []string
}

func New(s *service.Services, tokens auth.JWTServiceInterface, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CardHandler:    cardshandlers.New(s.CardService),
		SavingsHandler: savingshandlers.New(s.SavingsService),
		BillHandler:    billshandlers.New(s.BillService),
		Authenticate:   auth.AuthMiddleware(tokens, s.AuthService),
		CORSOrigins:    corsOrigins,
	}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		Maintenance
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/ [get]
func Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithMessage(w, http.StatusOK, "Server up and running")
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
	)
	r.Get("/", Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Delete("/cleanup-unverified", h.AuthHandler.CleanupUnverified)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/verify-email", h.AuthHandler.VerifyEmail)
		r.Post("/2fa/request", h.AuthHandler.RequestTwoFA)
		r.Post("/2fa/confirm", h.AuthHandler.ConfirmTwoFA)
		r.Post("/reset", h.AuthHandler.RequestPasswordReset)
		r.Patch("/reset", h.AuthHandler.ConfirmPasswordReset)
		r.Post("/logout", h.AuthHandler.Logout)
		r.With(h.Authenticate).Get("/me", h.AuthHandler.Me)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)
		r.Route("/card", func(r chi.Router) {
			r.Get("/", h.CardHandler.ListCards)
			r.Post("/create", h.CardHandler.CreateCard)
			r.Delete("/delete", h.CardHandler.DeleteCard)
			r.Post("/transfer", h.CardHandler.Transfer)
			r.Post("/history", h.CardHandler.History)
			r.Get("/{four_digits}", h.CardHandler.GetCard)
		})
		r.Route("/savings", func(r chi.Router) {
			r.Get("/", h.SavingsHandler.ListSavings)
			r.Post("/create", h.SavingsHandler.CreateSavings)
			r.Post("/topUp", h.SavingsHandler.TopUp)
			r.Post("/decrease", h.SavingsHandler.Withdraw)
			r.Delete("/delete", h.SavingsHandler.DeleteSavings)
		})
		r.Route("/bills", func(r chi.Router) {
			r.Get("/", h.BillHandler.ListBills)
			r.Post("/create", h.BillHandler.CreateBill)
			r.Post("/pay", h.BillHandler.PayBill)
		})
	})

	return r
}
