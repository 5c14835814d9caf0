package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStores struct {
	users       UserRepository
	accounts    AccountRepository
	withdrawals WithdrawalRepository
	ledger      LedgerRepository
}

// forEachStore runs fn against the in-memory store and, when configured, against Postgres.
func forEachStore(t *testing.T, fn func(t *testing.T, s testStores)) {
	t.Run("memory", func(t *testing.T) {
		m := NewMemoryStore(time.Second)
		fn(t, testStores{users: m, accounts: m, withdrawals: m, ledger: m})
	})
	t.Run("postgres", func(t *testing.T) {
		db := requireDB(t)
		fn(t, testStores{
			users:       NewUserRepository(db),
			accounts:    NewAccountRepository(db),
			withdrawals: NewWithdrawalRepository(db),
			ledger:      NewLedgerRepository(db, time.Second),
		})
	})
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func createAccount(t *testing.T, s testStores, parentID, name string) *models.Account {
	t.Helper()
	a := newTestAccount(parentID, name)
	require.NoError(t, s.accounts.CreateAccount(context.Background(), a))
	require.NotZero(t, a.ID)
	return a
}

func TestStore_Users(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		user := &models.User{ID: "parent-1", Login: "alice", Password: "hash", CreatedAt: testNow}

		tests := []struct {
			name    string
			user    *models.User
			wantErr error
		}{
			{name: "create new user", user: user},
			{
				name:    "create user with existing login",
				user:    &models.User{ID: "parent-2", Login: "alice", Password: "other", CreatedAt: testNow},
				wantErr: apperrors.ErrUserAlreadyExists,
			},
			{
				name: "create another user",
				user: &models.User{ID: "parent-3", Login: "bob", Password: "hash", CreatedAt: testNow},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := s.users.CreateUser(ctx, tt.user)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				assert.NoError(t, err)
			})
		}

		got, err := s.users.GetUserByLogin(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "parent-1", got.ID)
		assert.Equal(t, "hash", got.Password)

		got, err = s.users.GetUserByID(ctx, "parent-3")
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Login)

		_, err = s.users.GetUserByLogin(ctx, "nobody")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

		_, err = s.users.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestStore_Accounts(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()

		first := createAccount(t, s, "p1", "Ann")
		second := newTestAccount("p1", "Ben")
		second.CreatedAt = testNow.Add(time.Minute)
		second.UpdatedAt = second.CreatedAt
		second.WeeklyAllowance = decimal.Zero
		require.NoError(t, s.accounts.CreateAccount(ctx, second))
		other := createAccount(t, s, "p2", "Cid")

		got, err := s.accounts.GetAccount(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "p1", got.ParentID)
		assertDecimal(t, "0.001", got.SpendingThreshold)
		assertDecimal(t, "0", got.SavingsBalance)

		_, err = s.accounts.GetAccount(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		list, err := s.accounts.GetAccountsByParent(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)

		list, err = s.accounts.GetAccountsByParent(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, list)

		due, err := s.accounts.GetAccountsByAllowanceDay(ctx, 1)
		require.NoError(t, err)
		ids := make([]int64, 0, len(due))
		for _, a := range due {
			ids = append(ids, a.ID)
		}
		assert.ElementsMatch(t, []int64{first.ID, other.ID}, ids)

		later := testNow.Add(time.Hour)
		updated, err := s.accounts.UpdateAllowance(ctx, second.ID, dec("0.0005"), 3, later)
		require.NoError(t, err)
		assertDecimal(t, "0.0005", updated.WeeklyAllowance)
		assert.Equal(t, 3, updated.AllowanceDay)
		assert.True(t, later.Equal(updated.UpdatedAt))

		updated, err = s.accounts.UpdateSpendingThreshold(ctx, second.ID, dec("0.002"), later)
		require.NoError(t, err)
		assertDecimal(t, "0.002", updated.SpendingThreshold)
		assertDecimal(t, "0.0005", updated.WeeklyAllowance)

		_, err = s.accounts.UpdateAllowance(ctx, 9999, dec("1"), 1, later)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = s.accounts.UpdateSpendingThreshold(ctx, 9999, dec("1"), later)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestStore_WithAccountLock(t *testing.T) {
	errBoom := errors.New("boom")

	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		account := createAccount(t, s, "p1", "Ann")

		tests := []struct {
			name         string
			accountID    int64
			fn           LedgerFunc
			wantErr      error
			wantSpending string
			wantSavings  string
			wantTxCount  int
		}{
			{
				name:      "commit applies balances and transaction",
				accountID: account.ID,
				fn: func(tx LedgerTx, a *models.Account) error {
					if err := tx.UpdateBalances(ctx, a.ID, dec("0.0004"), dec("0.001"), testNow); err != nil {
						return err
					}
					return tx.InsertTransaction(ctx, &models.Transaction{
						AccountID:     a.ID,
						Type:          models.TransactionTypeAllowance,
						Amount:        dec("0.0014"),
						SpendingDelta: dec("0.001"),
						SavingsDelta:  dec("0.0004"),
						Description:   "weekly allowance",
						Status:        models.TransactionStatusCompleted,
						CreatedAt:     testNow,
					})
				},
				wantSpending: "0.001",
				wantSavings:  "0.0004",
				wantTxCount:  1,
			},
			{
				name:      "error discards every write",
				accountID: account.ID,
				fn: func(tx LedgerTx, a *models.Account) error {
					if err := tx.UpdateBalances(ctx, a.ID, decimal.Zero, decimal.Zero, testNow); err != nil {
						return err
					}
					if err := tx.InsertTransaction(ctx, &models.Transaction{
						AccountID:     a.ID,
						Type:          models.TransactionTypeSpending,
						Amount:        dec("0.001"),
						SpendingDelta: dec("-0.001"),
						SavingsDelta:  decimal.Zero,
						Description:   "candy",
						Status:        models.TransactionStatusCompleted,
						CreatedAt:     testNow,
					}); err != nil {
						return err
					}
					return errBoom
				},
				wantErr:      errBoom,
				wantSpending: "0.001",
				wantSavings:  "0.0004",
				wantTxCount:  1,
			},
			{
				name:         "unknown account",
				accountID:    9999,
				fn:           func(LedgerTx, *models.Account) error { return nil },
				wantErr:      apperrors.ErrAccountNotFound,
				wantSpending: "0.001",
				wantSavings:  "0.0004",
				wantTxCount:  1,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := s.ledger.WithAccountLock(ctx, tt.accountID, tt.fn)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}

				got, err := s.accounts.GetAccount(ctx, account.ID)
				require.NoError(t, err)
				assertDecimal(t, tt.wantSpending, got.SpendingBalance)
				assertDecimal(t, tt.wantSavings, got.SavingsBalance)

				txs, err := s.ledger.GetTransactionsByAccount(ctx, account.ID, 0, 0)
				require.NoError(t, err)
				assert.Len(t, txs, tt.wantTxCount)
			})
		}
	})
}

func TestStore_LockedAccountSeesCurrentBalances(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		account := createAccount(t, s, "p1", "Ann")

		require.NoError(t, s.ledger.WithAccountLock(ctx, account.ID, func(tx LedgerTx, a *models.Account) error {
			return tx.UpdateBalances(ctx, a.ID, dec("0.5"), dec("0.25"), testNow)
		}))

		require.NoError(t, s.ledger.WithAccountLock(ctx, account.ID, func(tx LedgerTx, a *models.Account) error {
			assertDecimal(t, "0.5", a.SavingsBalance)
			assertDecimal(t, "0.25", a.SpendingBalance)
			assert.Equal(t, "Ann", a.Name)
			return nil
		}))
	})
}

func TestStore_WithdrawalRequests(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		ann := createAccount(t, s, "p1", "Ann")
		cid := createAccount(t, s, "p2", "Cid")

		newRequest := func(accountID int64, amount string, at time.Time) *models.WithdrawalRequest {
			r := &models.WithdrawalRequest{
				AccountID: accountID,
				Amount:    dec(amount),
				Reason:    "bike",
				Status:    models.WithdrawalStatusPending,
				CreatedAt: at,
				UpdatedAt: at,
			}
			require.NoError(t, s.withdrawals.CreateWithdrawalRequest(ctx, r))
			require.NotZero(t, r.ID)
			return r
		}

		older := newRequest(ann.ID, "0.1", testNow)
		newer := newRequest(ann.ID, "0.2", testNow.Add(time.Minute))
		foreign := newRequest(cid.ID, "0.3", testNow)

		err := s.withdrawals.CreateWithdrawalRequest(ctx, &models.WithdrawalRequest{
			AccountID: 9999, Amount: dec("1"), Reason: "x", Status: models.WithdrawalStatusPending,
			CreatedAt: testNow, UpdatedAt: testNow,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		got, err := s.withdrawals.GetWithdrawalRequest(ctx, older.ID)
		require.NoError(t, err)
		assertDecimal(t, "0.1", got.Amount)
		assert.True(t, got.IsPending())

		_, err = s.withdrawals.GetWithdrawalRequest(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)

		pending, err := s.withdrawals.GetPendingByParent(ctx, "p1", 0)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, newer.ID, pending[0].ID)
		assert.Equal(t, older.ID, pending[1].ID)
		assert.Equal(t, "Ann", pending[0].ChildName)

		pending, err = s.withdrawals.GetPendingByParent(ctx, "p1", 1)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		require.NoError(t, s.ledger.WithAccountLock(ctx, ann.ID, func(tx LedgerTx, _ *models.Account) error {
			return tx.UpdateWithdrawalStatus(ctx, older.ID, models.WithdrawalStatusDenied, testNow.Add(time.Hour))
		}))

		err = s.ledger.WithAccountLock(ctx, ann.ID, func(tx LedgerTx, _ *models.Account) error {
			return tx.UpdateWithdrawalStatus(ctx, older.ID, models.WithdrawalStatusApproved, testNow.Add(time.Hour))
		})
		assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyDecided)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)

		pending, err = s.withdrawals.GetPendingByParent(ctx, "p1", 0)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, newer.ID, pending[0].ID)

		byAccount, err := s.withdrawals.GetByAccount(ctx, ann.ID, 0)
		require.NoError(t, err)
		require.Len(t, byAccount, 2)
		assert.Equal(t, models.WithdrawalStatusDenied, byAccount[1].Status)

		byAccount, err = s.withdrawals.GetByAccount(ctx, cid.ID, 0)
		require.NoError(t, err)
		require.Len(t, byAccount, 1)
		assert.Equal(t, foreign.ID, byAccount[0].ID)
	})
}

func TestStore_RequestIDIsRecordedOnce(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		account := createAccount(t, s, "p1", "Ann")
		request := &models.WithdrawalRequest{
			AccountID: account.ID, Amount: dec("0.1"), Reason: "bike", Status: models.WithdrawalStatusPending,
			CreatedAt: testNow, UpdatedAt: testNow,
		}
		require.NoError(t, s.withdrawals.CreateWithdrawalRequest(ctx, request))

		insert := func() error {
			return s.ledger.WithAccountLock(ctx, account.ID, func(tx LedgerTx, a *models.Account) error {
				return tx.InsertTransaction(ctx, &models.Transaction{
					AccountID:     a.ID,
					Type:          models.TransactionTypeSavingsWithdrawal,
					Amount:        dec("0.1"),
					SpendingDelta: dec("-0.1"),
					SavingsDelta:  decimal.Zero,
					Description:   "bike",
					Status:        models.TransactionStatusCompleted,
					RequestID:     &request.ID,
					CreatedAt:     testNow,
				})
			})
		}

		require.NoError(t, insert())
		assert.ErrorIs(t, insert(), apperrors.ErrRequestAlreadyDecided)

		txs, err := s.ledger.GetTransactionsByAccount(ctx, account.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		require.NotNil(t, txs[0].RequestID)
		assert.Equal(t, request.ID, *txs[0].RequestID)
	})
}

func TestStore_TransactionQueries(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		ann := createAccount(t, s, "p1", "Ann")
		ben := createAccount(t, s, "p1", "Ben")
		cid := createAccount(t, s, "p2", "Cid")

		record := func(accountID int64, txType string, at time.Time) {
			require.NoError(t, s.ledger.WithAccountLock(ctx, accountID, func(tx LedgerTx, a *models.Account) error {
				return tx.InsertTransaction(ctx, &models.Transaction{
					AccountID:     a.ID,
					Type:          txType,
					Amount:        dec("0.001"),
					SpendingDelta: dec("0.001"),
					SavingsDelta:  decimal.Zero,
					Description:   txType,
					Status:        models.TransactionStatusCompleted,
					CreatedAt:     at,
				})
			}))
		}

		for i := 0; i < 5; i++ {
			record(ann.ID, models.TransactionTypeAllowance, testNow.Add(time.Duration(i)*time.Minute))
		}
		record(ben.ID, models.TransactionTypeSavingsDeposit, testNow.Add(10*time.Minute))
		record(cid.ID, models.TransactionTypeAllowance, testNow.Add(20*time.Minute))

		tests := []struct {
			name      string
			limit     int
			offset    int
			wantCount int
			wantFirst time.Time
		}{
			{name: "default limit", limit: 0, offset: 0, wantCount: 5, wantFirst: testNow.Add(4 * time.Minute)},
			{name: "limit two", limit: 2, offset: 0, wantCount: 2, wantFirst: testNow.Add(4 * time.Minute)},
			{name: "offset skips newest", limit: 2, offset: 3, wantCount: 2, wantFirst: testNow.Add(time.Minute)},
			{name: "offset past end", limit: 10, offset: 50, wantCount: 0},
			{name: "negative offset", limit: 1, offset: -5, wantCount: 1, wantFirst: testNow.Add(4 * time.Minute)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				txs, err := s.ledger.GetTransactionsByAccount(ctx, ann.ID, tt.limit, tt.offset)
				require.NoError(t, err)
				require.Len(t, txs, tt.wantCount)
				if tt.wantCount > 0 {
					assert.True(t, tt.wantFirst.Equal(txs[0].CreatedAt))
				}
				for i := 1; i < len(txs); i++ {
					assert.False(t, txs[i].CreatedAt.After(txs[i-1].CreatedAt))
				}
			})
		}

		recent, err := s.ledger.GetRecentTransactionsByParent(ctx, "p1", 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, "Ben", recent[0].ChildName)
		assert.Equal(t, ben.ID, recent[0].AccountID)
		assert.Equal(t, "Ann", recent[1].ChildName)

		recent, err = s.ledger.GetRecentTransactionsByParent(ctx, "p1", 0)
		require.NoError(t, err)
		assert.Len(t, recent, 6)

		credited, err := s.ledger.AllowanceCredited(ctx, ann.ID, "2024-W10")
		require.NoError(t, err)
		assert.False(t, credited)
	})
}

func TestStore_AllowanceCycle(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		ann := createAccount(t, s, "p1", "Ann")
		ben := createAccount(t, s, "p1", "Ben")

		credit := func(accountID int64, cycle *string) error {
			return s.ledger.WithAccountLock(ctx, accountID, func(tx LedgerTx, a *models.Account) error {
				return tx.InsertTransaction(ctx, &models.Transaction{
					AccountID:      a.ID,
					Type:           models.TransactionTypeAllowance,
					Amount:         dec("0.0005"),
					SpendingDelta:  dec("0.0005"),
					SavingsDelta:   decimal.Zero,
					Description:    "allowance",
					Status:         models.TransactionStatusCompleted,
					AllowanceCycle: cycle,
					CreatedAt:      testNow,
				})
			})
		}
		cycle := func(v string) *string { return &v }

		require.NoError(t, credit(ann.ID, nil))
		require.NoError(t, credit(ann.ID, nil))

		credited, err := s.ledger.AllowanceCredited(ctx, ann.ID, "2024-W10")
		require.NoError(t, err)
		assert.False(t, credited)

		require.NoError(t, credit(ann.ID, cycle("2024-W10")))
		assert.ErrorIs(t, credit(ann.ID, cycle("2024-W10")), apperrors.ErrAllowanceCredited)
		require.NoError(t, credit(ann.ID, cycle("2024-W11")))
		require.NoError(t, credit(ben.ID, cycle("2024-W10")))

		credited, err = s.ledger.AllowanceCredited(ctx, ann.ID, "2024-W10")
		require.NoError(t, err)
		assert.True(t, credited)

		credited, err = s.ledger.AllowanceCredited(ctx, ben.ID, "2024-W11")
		require.NoError(t, err)
		assert.False(t, credited)

		txs, err := s.ledger.GetTransactionsByAccount(ctx, ann.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, txs, 4)
	})
}

func TestStore_BalanceLimit(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		account := createAccount(t, s, "p1", "Ann")

		tests := []struct {
			name     string
			spending string
			wantErr  error
		}{
			{name: "at the ceiling", spending: "99999999.99999999"},
			{name: "above the ceiling", spending: "100000000", wantErr: apperrors.ErrBalanceLimit},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := s.ledger.WithAccountLock(ctx, account.ID, func(tx LedgerTx, a *models.Account) error {
					return tx.UpdateBalances(ctx, a.ID, decimal.Zero, dec(tt.spending), testNow)
				})
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
					return
				}
				require.NoError(t, err)
			})
		}

		got, err := s.accounts.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		assertDecimal(t, "99999999.99999999", got.SpendingBalance)
	})
}

func TestStore_SumEffects(t *testing.T) {
	forEachStore(t, func(t *testing.T, s testStores) {
		ctx := context.Background()
		account := createAccount(t, s, "p1", "Ann")

		entries := []struct {
			txType   string
			amount   string
			spending string
			savings  string
		}{
			{models.TransactionTypeAllowance, "0.0014", "0.001", "0.0004"},
			{models.TransactionTypeSpending, "0.0002", "-0.0002", "0"},
			{models.TransactionTypeSavingsDeposit, "0.0005", "0", "0.0005"},
		}

		require.NoError(t, s.ledger.WithAccountLock(ctx, account.ID, func(tx LedgerTx, a *models.Account) error {
			for _, e := range entries {
				if err := tx.InsertTransaction(ctx, &models.Transaction{
					AccountID:     a.ID,
					Type:          e.txType,
					Amount:        dec(e.amount),
					SpendingDelta: dec(e.spending),
					SavingsDelta:  dec(e.savings),
					Description:   e.txType,
					Status:        models.TransactionStatusCompleted,
					CreatedAt:     testNow,
				}); err != nil {
					return err
				}
			}

			spending, savings, count, err := tx.SumEffects(ctx, a.ID)
			require.NoError(t, err)
			assertDecimal(t, "0.0008", spending)
			assertDecimal(t, "0.0009", savings)
			assert.Equal(t, 3, count)
			return nil
		}))
	})
}
