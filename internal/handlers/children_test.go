package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_CreateChild(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *mocks)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"name":"Mia","age":7}`,
			mockSetup: func(m *mocks) {
				m.accounts.EXPECT().CreateAccount(gomock.Any(), "parent-1", models.NewAccount{Name: "Mia", Age: 7}).
					Return(&models.Account{ID: 1, Name: "Mia"}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "validation error",
			body: `{"name":"","age":7}`,
			mockSetup: func(m *mocks) {
				m.accounts.EXPECT().CreateAccount(gomock.Any(), "parent-1", gomock.Any()).Return(nil, apperrors.ErrMissingField)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           `{`,
			mockSetup:      func(m *mocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name":"Mia","age":7}`,
			mockSetup: func(m *mocks) {
				m.accounts.EXPECT().CreateAccount(gomock.Any(), "parent-1", gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.mockSetup(m)
			w := serve(t, router, http.MethodPost, "/api/children", "parent-1", tt.body)
			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}

func TestHandler_GetChild(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(m *mocks)
		wantStatusCode int
	}{
		{
			name: "owned",
			path: "/api/children/3",
			mockSetup: func(m *mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "parent-1", int64(3)).
					Return(&models.Account{ID: 3, SpendingBalance: decimal.RequireFromString("0.0005")}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "other parent",
			path: "/api/children/3",
			mockSetup: func(m *mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "parent-1", int64(3)).Return(nil, apperrors.ErrNotAccountOwner)
			},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name: "missing",
			path: "/api/children/9",
			mockSetup: func(m *mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "parent-1", int64(9)).Return(nil, apperrors.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "bad id",
			path:           "/api/children/abc",
			mockSetup:      func(m *mocks) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.mockSetup(m)
			w := serve(t, router, http.MethodGet, tt.path, "parent-1", "")
			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}

func TestHandler_GetChild_MoneyAsStrings(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().GetAccount(gomock.Any(), "parent-1", int64(3)).
		Return(&models.Account{ID: 3, SpendingBalance: decimal.RequireFromString("0.0005")}, nil)

	w := serve(t, router, http.MethodGet, "/api/children/3", "parent-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0.0005", body["spending_balance"])
}

func TestHandler_ListChildren_Empty(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().ListAccounts(gomock.Any(), "parent-1").Return(nil, nil)

	w := serve(t, router, http.MethodGet, "/api/children", "parent-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_UpdateAllowance(t *testing.T) {
	router, m := newTestRouter(t)
	day := 5
	m.accounts.EXPECT().UpdateAllowance(gomock.Any(), "parent-1", int64(2),
		models.AllowanceUpdate{WeeklyAllowance: "0.0002", AllowanceDay: &day}).
		Return(&models.Account{ID: 2, AllowanceDay: 5}, nil)

	w := serve(t, router, http.MethodPatch, "/api/children/2/allowance", "parent-1",
		`{"weekly_allowance":"0.0002","allowance_day":5}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateThreshold_InvalidAmount(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().UpdateSpendingThreshold(gomock.Any(), "parent-1", int64(2),
		models.ThresholdUpdate{SpendingThreshold: "-1"}).
		Return(nil, apperrors.ErrInvalidAmount)

	w := serve(t, router, http.MethodPatch, "/api/children/2/threshold", "parent-1", `{"spending_threshold":"-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AuditChild(t *testing.T) {
	router, m := newTestRouter(t)
	gomock.InOrder(
		m.accounts.EXPECT().GetAccount(gomock.Any(), "parent-1", int64(2)).Return(&models.Account{ID: 2}, nil),
		m.ledger.EXPECT().VerifyAccount(gomock.Any(), int64(2)).Return(&models.LedgerAudit{AccountID: 2, Consistent: true}, nil),
	)

	w := serve(t, router, http.MethodGet, "/api/children/2/audit", "parent-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var audit models.LedgerAudit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &audit))
	assert.True(t, audit.Consistent)
}
