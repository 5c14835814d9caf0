package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/notify"
	"github.com/a2sh3r/familyledger/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

// stepClock returns strictly increasing times so ordering by created_at is deterministic.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{now: start}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type testEnv struct {
	store       *repository.MemoryStore
	clock       *stepClock
	publisher   *recordingPublisher
	accounts    AccountService
	ledger      LedgerService
	withdrawals WithdrawalService
	queries     QueryService
}

var testStart = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := repository.NewMemoryStore(5 * time.Second)
	clock := newStepClock(testStart)
	publisher := &recordingPublisher{}

	accounts := NewAccountService(store)
	accounts.(*accountService).now = clock.Now

	ledger := NewLedgerService(store, publisher, DefaultConflictRetries)
	ledger.(*ledgerService).now = clock.Now

	withdrawals := NewWithdrawalService(store, store, store, publisher, DefaultConflictRetries)
	withdrawals.(*withdrawalService).now = clock.Now

	return &testEnv{
		store:       store,
		clock:       clock,
		publisher:   publisher,
		accounts:    accounts,
		ledger:      ledger,
		withdrawals: withdrawals,
		queries:     NewQueryService(store, store, store),
	}
}

// newAccount creates an account and funds it through the ledger, so every
// starting balance is backed by transactions.
func (e *testEnv) newAccount(t *testing.T, parentID, threshold, spending, savings string) *models.Account {
	t.Helper()
	ctx := context.Background()

	account, err := e.accounts.CreateAccount(ctx, parentID, models.NewAccount{
		Name:              "Kid",
		Age:               8,
		SpendingThreshold: "99999999",
	})
	require.NoError(t, err)

	if dec(spending).IsPositive() {
		_, err = e.ledger.RecordTransaction(ctx, account.ID, models.TransactionTypeAllowance, dec(spending), "seed spending")
		require.NoError(t, err)
	}
	if dec(savings).IsPositive() {
		_, err = e.accounts.UpdateSpendingThreshold(ctx, parentID, account.ID, models.ThresholdUpdate{SpendingThreshold: "0"})
		require.NoError(t, err)
		_, err = e.ledger.RecordTransaction(ctx, account.ID, models.TransactionTypeSavingsDeposit, dec(savings), "seed savings")
		require.NoError(t, err)
	}

	account, err = e.accounts.UpdateSpendingThreshold(ctx, parentID, account.ID, models.ThresholdUpdate{SpendingThreshold: threshold})
	require.NoError(t, err)
	assertDecimal(t, spending, account.SpendingBalance)
	assertDecimal(t, savings, account.SavingsBalance)

	e.publisher.mu.Lock()
	e.publisher.events = nil
	e.publisher.mu.Unlock()
	return account
}

func (e *testEnv) balances(t *testing.T, accountID int64) (spending, savings decimal.Decimal) {
	t.Helper()
	account, err := e.store.GetAccount(context.Background(), accountID)
	require.NoError(t, err)
	return account.SpendingBalance, account.SavingsBalance
}

func (e *testEnv) requireConsistent(t *testing.T, accountID int64) {
	t.Helper()
	audit, err := e.ledger.VerifyAccount(context.Background(), accountID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent, "ledger drift: %+v", audit)
	assert.False(t, audit.SpendingBalance.IsNegative())
	assert.False(t, audit.SavingsBalance.IsNegative())
}
