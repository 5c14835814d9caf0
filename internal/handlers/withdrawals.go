package handlers

import (
	"net/http"

	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/utils"
)

func (h *Handler) CreateWithdrawalRequest(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}

	var req models.NewWithdrawalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.AccountID <= 0 {
		http.Error(w, "child_id is required", http.StatusBadRequest)
		return
	}
	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.accountService.GetAccount(r.Context(), parent, req.AccountID); err != nil {
		writeError(w, r, err)
		return
	}

	request, err := h.withdrawalService.CreateRequest(r.Context(), req.AccountID, amount, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

// DecideWithdrawal approves or denies a pending request. The body must carry "approved".
func (h *Handler) DecideWithdrawal(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.WithdrawalDecision
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Approved == nil {
		http.Error(w, "approved is required", http.StatusBadRequest)
		return
	}

	request, err := h.withdrawalService.Decide(r.Context(), id, *req.Approved, parent)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *Handler) GetPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	parent, ok := parentID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	requests, err := h.queryService.PendingWithdrawals(r.Context(), parent, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []models.WithdrawalRequestView{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *Handler) GetChildWithdrawals(w http.ResponseWriter, r *http.Request) {
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

	requests, err := h.queryService.WithdrawalsByAccount(r.Context(), parent, id, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []models.WithdrawalRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
