package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the offending fields of a rejected request.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON encodes payload into a pooled buffer before writing so an
// encoding failure never leaves a half-written body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with its mapped status.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "error", err)
	} else {
		log.Info(LogMsgServiceError, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceError converts domain errors into an HTTP status and a message
// safe to show a player. Unknown errors never leak their text.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrDropPending):
		return http.StatusConflict, ErrMsgDropPendingError
	case errors.Is(err, domain.ErrNoPendingDrop):
		return http.StatusConflict, ErrMsgNoPendingDropError
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, ErrMsgInsufficientStockErr
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusConflict, ErrMsgEmptyPoolError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgInsufficientFundsErr
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrInvalidMode):
		return http.StatusBadRequest, ErrMsgInvalidModeError
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusBadRequest, ErrMsgInvalidTierError
	case errors.Is(err, domain.ErrInvalidChoice):
		return http.StatusBadRequest, ErrMsgInvalidChoiceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNoOutputCandidate):
		return http.StatusUnprocessableEntity, ErrMsgNoOutputCandidateErr
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
