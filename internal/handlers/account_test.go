package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/mocks/service_mocks"
	"github.com/hubcoin/miniapp/internal/models"
)

func TestHandler_Bootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := service_mocks.NewMockAccountService(ctrl)
	h := &Handler{accountService: mockAccounts}

	t.Run("returns account, ref link and method table", func(t *testing.T) {
		mockAccounts.EXPECT().Bootstrap(gomock.Any(), models.Identity{UserID: 7, InitData: "blob"}).
			Return(&models.Account{Balance: 120.5, Gems: 30}, nil)
		mockAccounts.EXPECT().ReferralLink(int64(7)).
			Return("https://t.me/HubCoin_minerbot?start=7")

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/bootstrap", nil))
		w := httptest.NewRecorder()
		h.Bootstrap(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		body := w.Body.String()
		assert.Contains(t, body, `"balance":120.5`)
		assert.Contains(t, body, "https://t.me/HubCoin_minerbot?start=7")
		assert.Contains(t, body, `"Bkash"`)
		assert.Contains(t, body, `"Binance Pay ID"`)
	})

	t.Run("fetch failure", func(t *testing.T) {
		mockAccounts.EXPECT().Bootstrap(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrNetworkFailure)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/session/bootstrap", nil))
		w := httptest.NewRecorder()
		h.Bootstrap(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Result().StatusCode)
	})

	t.Run("missing identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/session/bootstrap", nil)
		w := httptest.NewRecorder()
		h.Bootstrap(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})
}

func TestHandler_ClaimGems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := service_mocks.NewMockAccountService(ctrl)
	h := &Handler{accountService: mockAccounts}

	t.Run("success", func(t *testing.T) {
		mockAccounts.EXPECT().ClaimGems(gomock.Any(), gomock.Any()).
			Return("2 Gems claimed!", &models.Account{Gems: 12}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/claim-gems", nil))
		w := httptest.NewRecorder()
		h.ClaimGems(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), "2 Gems claimed!")
	})

	t.Run("limit reached", func(t *testing.T) {
		mockAccounts.EXPECT().ClaimGems(gomock.Any(), gomock.Any()).
			Return("", nil, &apperrors.RemoteRejection{Message: "Daily gem claiming limit reached (6/day)."})

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/claim-gems", nil))
		w := httptest.NewRecorder()
		h.ClaimGems(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), "Daily gem claiming limit reached (6/day).")
	})
}

func TestHandler_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAccounts := service_mocks.NewMockAccountService(ctrl)
	h := &Handler{accountService: mockAccounts}

	t.Run("success", func(t *testing.T) {
		mockAccounts.EXPECT().Leaderboard(gomock.Any()).
			Return(&models.Leaderboard{Players: []models.LeaderboardPlayer{
				{Rank: 1, Username: "alice", TotalWithdrawn: 1500},
			}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
		w := httptest.NewRecorder()
		h.Leaderboard(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("failure", func(t *testing.T) {
		mockAccounts.EXPECT().Leaderboard(gomock.Any()).
			Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
		w := httptest.NewRecorder()
		h.Leaderboard(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
