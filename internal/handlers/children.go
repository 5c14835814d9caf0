package handlers

import (
	"net/http"

	"github.com/a2sh3r/familyledger/internal/models"
)

func (h *Handler) ListChildren(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(r.Context(), parent)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *Handler) CreateChild(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}

	var req models.NewAccount
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), parent, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *Handler) GetChild(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), parent, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) UpdateAllowance(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.AllowanceUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accountService.UpdateAllowance(r.Context(), parent, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) UpdateThreshold(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.ThresholdUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accountService.UpdateSpendingThreshold(r.Context(), parent, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// AuditChild recomputes the child's balances from its transaction log.
func (h *Handler) AuditChild(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.accountService.GetAccount(r.Context(), parent, id); err != nil {
		writeError(w, r, err)
		return
	}

	audit, err := h.ledgerService.VerifyAccount(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}
