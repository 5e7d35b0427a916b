package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError funnels every failure into the single notification channel the
// web view reads. Backend rejection messages pass through verbatim; network
// failures collapse into one generic notice.
func writeError(w http.ResponseWriter, err error) {
	var rejection *apperrors.RemoteRejection

	switch {
	case errors.Is(err, apperrors.ErrAccountNotLoaded),
		errors.Is(err, apperrors.ErrSubmissionBlocked),
		errors.Is(err, apperrors.ErrSubmissionInFlight):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidAmount):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnknownMethod),
		errors.Is(err, apperrors.ErrNoMethodSelected),
		errors.Is(err, apperrors.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &rejection):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: rejection.Message})
	case errors.Is(err, apperrors.ErrNetworkFailure):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: apperrors.ErrNetworkFailure.Error()})
	default:
		logger.Log.Error("unhandled error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
