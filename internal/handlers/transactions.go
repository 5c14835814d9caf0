package handlers

import (
	"net/http"

	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/utils"
)

// RecordTransaction records a transaction against a child the caller owns.
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.NewTransaction
	if !decodeJSON(w, r, &req) {
		return
	}
	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.accountService.GetAccount(r.Context(), parent, id); err != nil {
		writeError(w, r, err)
		return
	}

	tx, err := h.ledgerService.RecordTransaction(r.Context(), id, req.Type, amount, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (h *Handler) GetChildTransactions(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	transactions, err := h.queryService.TransactionsByAccount(r.Context(), parent, id, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (h *Handler) GetRecentTransactions(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	transactions, err := h.queryService.RecentTransactions(r.Context(), parent, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []models.TransactionView{}
	}
	writeJSON(w, http.StatusOK, transactions)
}
