package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{name: "Unauthorized", err: domain.ErrUnauthorized, expectedCode: http.StatusUnauthorized, expectedMessage: domain.ErrUnauthorized.Error()},
		{name: "Non-zero balance", err: domain.ErrNonZeroBalance, expectedCode: http.StatusForbidden, expectedMessage: domain.ErrNonZeroBalance.Error()},
		{name: "Already paid", err: domain.ErrAlreadyPaid, expectedCode: http.StatusForbidden, expectedMessage: domain.ErrAlreadyPaid.Error()},
		{name: "Insufficient funds", err: domain.ErrInsufficientFunds, expectedCode: http.StatusForbidden, expectedMessage: domain.ErrInsufficientFunds.Error()},
		{name: "Not found", err: domain.ErrNotFound, expectedCode: http.StatusNotAcceptable, expectedMessage: domain.ErrNotFound.Error()},
		{name: "Invalid code", err: domain.ErrInvalidCode, expectedCode: http.StatusNotAcceptable, expectedMessage: domain.ErrInvalidCode.Error()},
		{name: "Conflict", err: domain.ErrConflict, expectedCode: http.StatusConflict, expectedMessage: domain.ErrConflict.Error()},
		{
			name:            "Wrapped bad request hides details",
			err:             fmt.Errorf("verification email: dial tcp 10.0.0.1:587: %w", domain.ErrBadRequest),
			expectedCode:    http.StatusBadRequest,
			expectedMessage: domain.ErrBadRequest.Error(),
		},
		{name: "Unknown error", err: errors.New("connection reset"), expectedCode: http.StatusBadRequest, expectedMessage: "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := Status(tt.err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestRespond(t *testing.T) {
	rr := httptest.NewRecorder()

	Respond(rr, fmt.Errorf("card 7: %w", domain.ErrNotFound))

	assert.Equal(t, http.StatusNotAcceptable, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "not found", resp.Message)
}
