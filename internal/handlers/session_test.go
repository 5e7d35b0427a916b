package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/middleware"
	"github.com/hubcoin/miniapp/internal/mocks/service_mocks"
	"github.com/hubcoin/miniapp/internal/models"
	"github.com/hubcoin/miniapp/internal/service"
)

func withIdentity(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.IdentityKey, models.Identity{UserID: 7, InitData: "blob"})
	return req.WithContext(ctx)
}

func TestHandler_SelectMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"method":"Bkash"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SelectMethod(int64(7), "Bkash").
					Return(models.SessionView{Method: "Bkash", AccountLabel: "Account Number"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "empty method",
			body:           `{"method":""}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown method",
			body: `{"method":"Paypal"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SelectMethod(int64(7), "Paypal").
					Return(models.SessionView{}, apperrors.ErrUnknownMethod)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "account not loaded",
			body: `{"method":"Bkash"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SelectMethod(int64(7), "Bkash").
					Return(models.SessionView{}, apperrors.ErrAccountNotLoaded)
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/method", strings.NewReader(tt.body)))
			w := httptest.NewRecorder()
			h.SelectMethod(w, req)
			assert.Equal(t, tt.wantStatusCode, w.Result().StatusCode)
		})
	}

	t.Run("missing identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/session/method", strings.NewReader(`{"method":"Bkash"}`))
		w := httptest.NewRecorder()
		h.SelectMethod(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})
}

func TestHandler_SelectPreset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"amount":500}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SelectPreset(int64(7), float64(500)).
					Return(models.SessionView{RequiredGems: 29}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "non-preset amount",
			body: `{"amount":777}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SelectPreset(int64(7), float64(777)).
					Return(models.SessionView{}, apperrors.ErrInvalidAmount)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "no method selected",
			body: `{"amount":500}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SelectPreset(int64(7), float64(500)).
					Return(models.SessionView{}, apperrors.ErrNoMethodSelected)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/amount", strings.NewReader(tt.body)))
			w := httptest.NewRecorder()
			h.SelectPreset(w, req)
			assert.Equal(t, tt.wantStatusCode, w.Result().StatusCode)
		})
	}
}

func TestHandler_EnterCustomAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	t.Run("raw value forwarded for boundary parsing", func(t *testing.T) {
		mockWithdrawals.EXPECT().EnterCustomAmount(int64(7), "600").
			Return(models.SessionView{RequiredGems: 100, IsCustom: true}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/custom-amount", strings.NewReader(`{"value":"600"}`)))
		w := httptest.NewRecorder()
		h.EnterCustomAmount(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), `"required_gems":100`)
	})

	t.Run("custom mode not active", func(t *testing.T) {
		mockWithdrawals.EXPECT().EnterCustomAmount(int64(7), "600").
			Return(models.SessionView{}, apperrors.ErrInvalidRequest)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/custom-amount", strings.NewReader(`{"value":"600"}`)))
		w := httptest.NewRecorder()
		h.EnterCustomAmount(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}

func TestHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "success",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Submit(gomock.Any(), models.Identity{UserID: 7, InitData: "blob"}).
					Return(service.SubmitOutcome{
						Message: "Withdrawal request submitted!",
						Account: models.Account{Balance: 1500, Gems: 71},
					}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       "Withdrawal request submitted!",
		},
		{
			name: "gate closed",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(service.SubmitOutcome{}, apperrors.ErrSubmissionBlocked)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "already in flight",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(service.SubmitOutcome{}, apperrors.ErrSubmissionInFlight)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "remote rejection is shown verbatim",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(service.SubmitOutcome{}, &apperrors.RemoteRejection{Message: "Insufficient balance."})
			},
			wantStatusCode: http.StatusBadGateway,
			wantBody:       "Insufficient balance.",
		},
		{
			name: "network failure is generic",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(service.SubmitOutcome{}, apperrors.ErrNetworkFailure)
			},
			wantStatusCode: http.StatusBadGateway,
			wantBody:       apperrors.ErrNetworkFailure.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/submit", nil))
			w := httptest.NewRecorder()
			h.Submit(w, req)
			assert.Equal(t, tt.wantStatusCode, w.Result().StatusCode)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
