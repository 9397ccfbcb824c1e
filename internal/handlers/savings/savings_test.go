package savings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"github.com/GlebRadaev/bankapi/internal/dto"
	"github.com/GlebRadaev/bankapi/pkg/auth"
	"github.com/GlebRadaev/bankapi/pkg/utils"
)

func NewMock(t *testing.T) (*SavingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authorized(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestCreateSavingsHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Opened",
			body: `{"name":"Trip","goal":1000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateSavings(gomock.Any(), 1, "Trip", decimal.NewFromInt(1000)).Return(&domain.SavingsAccount{
					ID: 4, Name: "Trip", Goal: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(200),
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Negative goal",
			body: `{"name":"Trip","goal":-1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateSavings(gomock.Any(), 1, "Trip", gomock.Any()).Return(nil, domain.ErrBadRequest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{"goal":"abc"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := authorized(httptest.NewRequest(http.MethodPost, "/savings/create", bytes.NewReader([]byte(tt.body))))
			rr := httptest.NewRecorder()
			handler.CreateSavings(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusCreated {
				var resp dto.SavingsResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, decimal.NewFromInt(800).Equal(resp.Remain))
			}
		})
	}
}

func TestListSavingsHandler(t *testing.T) {
	t.Run("Accounts listed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListSavings(gomock.Any(), 1).Return([]domain.SavingsAccount{
			{ID: 4, Name: "Trip", Goal: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(250)},
		}, nil)

		req := authorized(httptest.NewRequest(http.MethodGet, "/savings", nil))
		rr := httptest.NewRecorder()
		handler.ListSavings(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.SavingsResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.True(t, decimal.NewFromInt(750).Equal(resp[0].Remain))
	})

	t.Run("Nothing yet", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListSavings(gomock.Any(), 1).Return(nil, nil)

		req := authorized(httptest.NewRequest(http.MethodGet, "/savings", nil))
		rr := httptest.NewRecorder()
		handler.ListSavings(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestMoveHandlers(t *testing.T) {
	body := `{"amount":25,"saving_account_id":4,"card_id":3}`

	tests := []struct {
		name            string
		call            func(h *SavingsHandler) http.HandlerFunc
		prepareMock     func(service *MockService)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Top up",
			call: func(h *SavingsHandler) http.HandlerFunc { return h.TopUp },
			prepareMock: func(service *MockService) {
				service.EXPECT().TopUp(gomock.Any(), 1, 4, 3, decimal.NewFromInt(25)).
					Return(&domain.TransferRecord{Amount: decimal.NewFromInt(25)}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Top up for 25",
		},
		{
			name: "Top up without funds",
			call: func(h *SavingsHandler) http.HandlerFunc { return h.TopUp },
			prepareMock: func(service *MockService) {
				service.EXPECT().TopUp(gomock.Any(), 1, 4, 3, gomock.Any()).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: domain.ErrInsufficientFunds.Error(),
		},
		{
			name: "Decrease",
			call: func(h *SavingsHandler) http.HandlerFunc { return h.Withdraw },
			prepareMock: func(service *MockService) {
				service.EXPECT().Withdraw(gomock.Any(), 1, 4, 3, decimal.NewFromInt(25)).
					Return(&domain.TransferRecord{Amount: decimal.NewFromInt(25)}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Decreased by 25",
		},
		{
			name: "Decrease into unknown card",
			call: func(h *SavingsHandler) http.HandlerFunc { return h.Withdraw },
			prepareMock: func(service *MockService) {
				service.EXPECT().Withdraw(gomock.Any(), 1, 4, 3, gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedCode:    http.StatusNotAcceptable,
			expectedMessage: domain.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := authorized(httptest.NewRequest(http.MethodPost, "/savings/topUp", bytes.NewReader([]byte(body))))
			rr := httptest.NewRecorder()
			tt.call(handler)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestDeleteSavingsHandler(t *testing.T) {
	t.Run("Closed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().DeleteSavings(gomock.Any(), 1, 4).Return(nil)

		req := authorized(httptest.NewRequest(http.MethodDelete, "/savings/delete",
			bytes.NewReader([]byte(`{"saving_account_id":4}`))))
		rr := httptest.NewRecorder()
		handler.DeleteSavings(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.DeleteSavingsResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, dto.DeleteSavingsResponseDTO{Status: "deleted", SavingAccountID: 4}, resp)
	})

	t.Run("Still funded", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().DeleteSavings(gomock.Any(), 1, 4).Return(domain.ErrNonZeroBalance)

		req := authorized(httptest.NewRequest(http.MethodDelete, "/savings/delete",
			bytes.NewReader([]byte(`{"saving_account_id":4}`))))
		rr := httptest.NewRecorder()
		handler.DeleteSavings(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
