package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	service_mocks "github.com/a2sh3r/familyledger/internal/mocks/service_mocks"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "test"

type mocks struct {
	users       *service_mocks.MockUserService
	accounts    *service_mocks.MockAccountService
	ledger      *service_mocks.MockLedgerService
	withdrawals *service_mocks.MockWithdrawalService
	queries     *service_mocks.MockQueryService
}

func newTestRouter(t *testing.T) (chi.Router, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:       service_mocks.NewMockUserService(ctrl),
		accounts:    service_mocks.NewMockAccountService(ctrl),
		ledger:      service_mocks.NewMockLedgerService(ctrl),
		withdrawals: service_mocks.NewMockWithdrawalService(ctrl),
		queries:     service_mocks.NewMockQueryService(ctrl),
	}
	h := NewHandler(m.users, m.accounts, m.ledger, m.withdrawals, m.queries, testSecret)
	return NewRouter(h, testSecret, nil), m
}

func bearer(t *testing.T, parentID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": parentID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(t *testing.T, router http.Handler, method, path, parentID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if parentID != "" {
		req.Header.Set("Authorization", bearer(t, parentID))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decimalEq matches a decimal.Decimal argument by value rather than representation.
type decimalEq struct{ want decimal.Decimal }

func eqDecimal(s string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(s)}
}

func (m decimalEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return "is decimal " + m.want.String()
}
