// Package httperr turns service errors into HTTP answers.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

const internalMessage = "Internal error"

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrNonZeroBalance, http.StatusForbidden},
	{domain.ErrAlreadyPaid, http.StatusForbidden},
	{domain.ErrInsufficientFunds, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotAcceptable},
	{domain.ErrInvalidCode, http.StatusNotAcceptable},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrBadRequest, http.StatusBadRequest},
}

// Status returns the HTTP status and a client-safe message for err.
// Only the sentinel text is exposed; wrapped details stay in the logs.
func Status(err error) (int, string) {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status, s.err.Error()
		}
	}
	return http.StatusBadRequest, internalMessage
}

func Respond(w http.ResponseWriter, err error) {
	status, message := Status(err)
	if message == internalMessage {
		zap.L().Error("unhandled error", zap.Error(err))
	} else {
		zap.L().Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	utils.RespondWithError(w, status, message)
}
