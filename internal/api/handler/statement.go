// internal/api/handler/statement.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finledger/internal/api/middleware"
	"finledger/internal/service"
	"finledger/internal/util"
)

// StatementHandler handles HTTP requests related to ledger operations.
type StatementHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(svc service.LedgerService, logger *slog.Logger) *StatementHandler {
	return &StatementHandler{
		service: svc,
		logger:  logger,
	}
}

// OperationRequest represents the request body for deposit, withdraw and transfer.
type OperationRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (h *StatementHandler) decodeOperation(w http.ResponseWriter, r *http.Request) (OperationRequest, bool) {
	var req OperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return req, false
	}
	return req, true
}

// Deposit handles the deposit request.
// POST /api/v1/statements/deposit
func (h *StatementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUserNotFound)
		return
	}

	req, ok := h.decodeOperation(w, r)
	if !ok {
		return
	}

	statement, err := h.service.Deposit(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, statement)
}

// Withdraw handles the withdraw request.
// POST /api/v1/statements/withdraw
func (h *StatementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUserNotFound)
		return
	}

	req, ok := h.decodeOperation(w, r)
	if !ok {
		return
	}

	statement, err := h.service.Withdraw(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, statement)
}

// Transfer handles the transfer request. The authenticated user is the
// sender; the recipient comes from the URL.
// POST /api/v1/statements/transfers/{recipientID}
func (h *StatementHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	senderID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUserNotFound)
		return
	}

	recipientID, err := uuid.Parse(chi.URLParam(r, "recipientID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	req, ok := h.decodeOperation(w, r)
	if !ok {
		return
	}

	statement, err := h.service.Transfer(r.Context(), senderID, recipientID, req.Amount, req.Description)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, statement)
}

// GetBalance handles the balance request.
// GET /api/v1/statements/balance
func (h *StatementHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUserNotFound)
		return
	}

	report, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, report)
}

// GetStatementOperation handles the single-statement lookup request.
// GET /api/v1/statements/{statementID}
func (h *StatementHandler) GetStatementOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUserNotFound)
		return
	}

	statementID, err := uuid.Parse(chi.URLParam(r, "statementID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	statement, err := h.service.GetStatementOperation(r.Context(), userID, statementID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, statement)
}
