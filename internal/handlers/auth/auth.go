package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/internal/handlers/httperr"
	"github.com/GlebRadaev/bankapi/internal/service/authservice"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, c domain.Contacts) error
	Verify(ctx context.Context, in authservice.VerifyInput) (string, error)
	RequestTwoFA(ctx context.Context, email, password string) error
	ConfirmTwoFA(ctx context.Context, email, code string) (string, error)
	RequestPasswordReset(ctx context.Context, c domain.Contacts) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	Me(ctx context.Context, userID int) (*domain.Overview, error)
	CleanupUnverified(ctx context.Context) (int64, error)
	ResolveSubject(ctx context.Context, email string) (int, error)
	SessionTTL() time.Duration
}

const dateLayout = "2006-01-02"

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Start registration
//	@Description	Reserve the contact fields and mail a one-time verification code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Contact fields"
//	@Success		200		{object}	utils.Response			"Mail has been sent"
//	@Failure		400		{object}	utils.Response			"Invalid request body or mail failure"
//	@Failure		409		{object}	utils.Response			"Contacts already registered"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.authService.Register(r.Context(), domain.Contacts{
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		SocialSecurity: req.SocialSecurity,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Mail has been sent")
}

// VerifyEmail godoc
//
//	@Summary		Complete registration
//	@Description	Create the account from the full profile and the emailed code, then sign in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyEmailRequestDTO	true	"Profile and verification code"
//	@Success		200		{object}	utils.Response				"Registered; session cookie set"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		406		{object}	utils.Response				"Wrong verification code"
//	@Failure		409		{object}	utils.Response				"Profile conflicts with an existing user"
//	@Router			/auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyEmailRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	born, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date of birth")
		return
	}

	token, err := h.authService.Verify(r.Context(), authservice.VerifyInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		DateOfBirth:    born,
		SocialSecurity: req.SocialSecurity,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		PostCode:       req.PostCode,
		Password:       req.Password,
		Code:           req.VerificationCode,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	auth.SetSessionCookie(w, token, h.authService.SessionTTL())
	utils.RespondWithMessage(w, http.StatusOK, "User successfully registered")
}

// RequestTwoFA godoc
//
//	@Summary		First login step
//	@Description	Check email and password and mail a login code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Credentials"
//	@Success		200		{object}	utils.Response		"Code sent"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"Invalid credentials"
//	@Router			/auth/2fa/request [post]
func (h *AuthHandler) RequestTwoFA(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.authService.RequestTwoFA(r.Context(), req.Email, req.Password); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Code sent")
}

// ConfirmTwoFA godoc
//
//	@Summary		Last login step
//	@Description	Exchange the mailed code for a session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TwoFAConfirmRequestDTO	true	"Email and code"
//	@Success		200		{object}	utils.Response				"Signed in; session cookie set"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Wrong or expired code"
//	@Router			/auth/2fa/confirm [post]
func (h *AuthHandler) ConfirmTwoFA(w http.ResponseWriter, r *http.Request) {
	var req dto.TwoFAConfirmRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.ConfirmTwoFA(r.Context(), req.Email, req.TwoFACode)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	auth.SetSessionCookie(w, token, h.authService.SessionTTL())
	utils.RespondWithMessage(w, http.StatusOK, "User successfully authenticated")
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Name, card balances and counters for the dashboard.
//	@Tags			Auth
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	dto.MeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	overview, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	cards := make([]dto.CardSummaryDTO, 0, len(overview.Cards))
	for _, c := range overview.Cards {
		cards = append(cards, dto.CardSummaryDTO{Balance: c.Balance, Last4: c.LastDigits()})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MeResponseDTO{
		Name:         overview.FirstName,
		Surname:      overview.LastName,
		Cards:        cards,
		SavingsCount: overview.SavingsCount,
		UnpaidBills:  overview.UnpaidBills,
	})
}

// RequestPasswordReset godoc
//
//	@Summary		Request password reset
//	@Description	Mail a reset link when all three contact fields match one account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PasswordResetRequestDTO	true	"Contact fields"
//	@Success		200		{object}	utils.Response				"Reset link sent"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"No matching account"
//	@Router			/auth/reset [post]
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordResetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.authService.RequestPasswordReset(r.Context(), domain.Contacts{
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		SocialSecurity: req.SocialSecurity,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Reset link sent")
}

// ConfirmPasswordReset godoc
//
//	@Summary		Set a new password
//	@Description	Replace the password using the token from the reset link.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PasswordResetConfirmDTO	true	"Token and new password"
//	@Success		200		{object}	utils.Response				"Password changed"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Invalid or expired token"
//	@Router			/auth/reset [patch]
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordResetConfirmDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.authService.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Password changed")
}

// Logout godoc
//
//	@Summary		Sign out
//	@Description	Drop the session cookie. Succeeds without a session too.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Goodbye"
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	utils.RespondWithMessage(w, http.StatusOK, "Goodbye")
}

// CleanupUnverified godoc
//
//	@Summary		Remove stale registrations
//	@Description	Delete registrations that were not verified within 24 hours.
//	@Tags			Maintenance
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Number of removed registrations"
//	@Failure		400	{object}	utils.Response	"Internal error"
//	@Router			/cleanup-unverified [delete]
func (h *AuthHandler) CleanupUnverified(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.authService.CleanupUnverified(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, fmt.Sprintf("Removed %d expired unverified users.", deleted))
}
