package handlers

import (
	"net/http"

	"github.com/hubcoin/miniapp/internal/middleware"
	"github.com/hubcoin/miniapp/internal/models"
	"github.com/hubcoin/miniapp/internal/payment"
)

type methodInfo struct {
	Method        string    `json:"method"`
	Currency      string    `json:"currency"`
	PresetAmounts []float64 `json:"preset_amounts"`
	PresetGems    []int     `json:"preset_gems"`
	AccountLabel  string    `json:"account_label"`
}

type bootstrapResponse struct {
	Account models.Account `json:"account"`
	RefLink string         `json:"ref_link"`
	Methods []methodInfo   `json:"methods"`
}

type claimResponse struct {
	Message string          `json:"message"`
	Account *models.Account `json:"account,omitempty"`
}

// Bootstrap fetches the authoritative account snapshot and returns everything
// the web view needs to render: balances, the referral link and the static
// payout method table. Without it there is no withdrawal UI.
func (h *Handler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	account, err := h.accountService.Bootstrap(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	methods := make([]methodInfo, 0, len(payment.Methods()))
	for _, m := range payment.Methods() {
		cfg, _ := payment.Lookup(m)
		methods = append(methods, methodInfo{
			Method:        string(m),
			Currency:      string(cfg.Currency),
			PresetAmounts: cfg.PresetAmounts,
			PresetGems:    cfg.PresetGems,
			AccountLabel:  payment.AccountLabel(m),
		})
	}

	writeJSON(w, http.StatusOK, bootstrapResponse{
		Account: *account,
		RefLink: h.accountService.ReferralLink(identity.UserID),
		Methods: methods,
	})
}

func (h *Handler) ClaimGems(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	message, account, err := h.accountService.ClaimGems(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, claimResponse{Message: message, Account: account})
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.accountService.Leaderboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}
