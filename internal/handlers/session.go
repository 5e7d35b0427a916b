package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hubcoin/miniapp/internal/middleware"
	"github.com/hubcoin/miniapp/internal/models"
)

type selectMethodRequest struct {
	Method string `json:"method"`
}

type selectAmountRequest struct {
	Amount float64 `json:"amount"`
}

// Custom values arrive as the raw input-field text; parsing happens in the
// service so a non-numeric string fails closed instead of turning into NaN.
type customAmountRequest struct {
	Value string `json:"value"`
}

type setAccountRequest struct {
	Account string `json:"account"`
}

type submitResponse struct {
	Message string             `json:"message"`
	Account models.Account     `json:"account"`
	Session models.SessionView `json:"session"`
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.withdrawalService.View(identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req selectMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	view, err := h.withdrawalService.SelectMethod(identity.UserID, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) SelectPreset(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req selectAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	view, err := h.withdrawalService.SelectPreset(identity.UserID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) SelectCustom(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.withdrawalService.SelectCustom(identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) EnterCustomAmount(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req customAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	view, err := h.withdrawalService.EnterCustomAmount(identity.UserID, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) SetAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req setAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	view, err := h.withdrawalService.SetAccount(identity.UserID, req.Account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.withdrawalService.Reset(identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	outcome, err := h.withdrawalService.Submit(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Message: outcome.Message,
		Account: outcome.Account,
		Session: outcome.Session,
	})
}
