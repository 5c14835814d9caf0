package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/utils"
	"github.com/shopspring/decimal"
)

// MemoryStore keeps the whole ledger in process memory. It implements every repository
// interface with the same semantics as the Postgres implementations: one lock per account,
// all-or-nothing commits, read-after-write consistency for readers.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[string]models.User
	usersByLogin map[string]string

	accounts     map[int64]models.Account
	transactions []models.Transaction
	requests     map[int64]models.WithdrawalRequest
	locks        map[int64]chan struct{}

	nextAccountID     int64
	nextTransactionID int64
	nextRequestID     int64

	lockTimeout time.Duration

	// beforeCommit runs while the account lock is held, after fn succeeded and before
	// staged writes become visible. Tests use it to widen race windows.
	beforeCommit func(accountID int64)
}

var (
	_ UserRepository       = (*MemoryStore)(nil)
	_ AccountRepository    = (*MemoryStore)(nil)
	_ WithdrawalRepository = (*MemoryStore)(nil)
	_ LedgerRepository     = (*MemoryStore)(nil)
)

// NewMemoryStore returns an empty store. lockTimeout bounds how long WithAccountLock
// waits for a busy account; zero means wait until the context is done.
func NewMemoryStore(lockTimeout time.Duration) *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		usersByLogin: make(map[string]string),
		accounts:     make(map[int64]models.Account),
		requests:     make(map[int64]models.WithdrawalRequest),
		locks:        make(map[int64]chan struct{}),
		lockTimeout:  lockTimeout,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByLogin[user.Login]; exists {
		return apperrors.ErrUserAlreadyExists
	}
	if _, exists := s.users[user.ID]; exists {
		return apperrors.ErrUserAlreadyExists
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	s.usersByLogin[user.Login] = user.ID
	return nil
}

func (s *MemoryStore) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByLogin[login]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryStore) CreateAccount(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAccountID++
	account.ID = s.nextAccountID
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = account.CreatedAt
	}
	s.accounts[account.ID] = *account
	return nil
}

func (s *MemoryStore) GetAccount(_ context.Context, id int64) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &account, nil
}

func (s *MemoryStore) GetAccountsByParent(_ context.Context, parentID string) ([]models.Account, error) {
	return s.filterAccounts(func(a models.Account) bool { return a.ParentID == parentID }), nil
}

func (s *MemoryStore) GetAccountsByAllowanceDay(_ context.Context, day int) ([]models.Account, error) {
	return s.filterAccounts(func(a models.Account) bool {
		return a.AllowanceDay == day && a.WeeklyAllowance.IsPositive()
	}), nil
}

func (s *MemoryStore) filterAccounts(keep func(models.Account) bool) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0)
	for _, a := range s.accounts {
		if keep(a) {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
		}
		return accounts[i].ID < accounts[j].ID
	})
	return accounts
}

func (s *MemoryStore) UpdateAllowance(ctx context.Context, id int64, amount decimal.Decimal, day int, at time.Time) (*models.Account, error) {
	return s.updateAccount(ctx, id, func(a *models.Account) {
		a.WeeklyAllowance = amount
		a.AllowanceDay = day
		a.UpdatedAt = at
	})
}

func (s *MemoryStore) UpdateSpendingThreshold(ctx context.Context, id int64, threshold decimal.Decimal, at time.Time) (*models.Account, error) {
	return s.updateAccount(ctx, id, func(a *models.Account) {
		a.SpendingThreshold = threshold
		a.UpdatedAt = at
	})
}

// updateAccount takes the account lock like an UPDATE takes the row lock in Postgres.
func (s *MemoryStore) updateAccount(ctx context.Context, id int64, mutate func(a *models.Account)) (*models.Account, error) {
	if _, err := s.GetAccount(ctx, id); err != nil {
		return nil, err
	}
	release, err := s.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.accounts[id]
	mutate(&account)
	s.accounts[id] = account
	return &account, nil
}

func (s *MemoryStore) CreateWithdrawalRequest(_ context.Context, request *models.WithdrawalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[request.AccountID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	s.nextRequestID++
	request.ID = s.nextRequestID
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	if request.UpdatedAt.IsZero() {
		request.UpdatedAt = request.CreatedAt
	}
	s.requests[request.ID] = *request
	return nil
}

func (s *MemoryStore) GetWithdrawalRequest(_ context.Context, id int64) (*models.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &w, nil
}

func (s *MemoryStore) GetPendingByParent(_ context.Context, parentID string, limit int) ([]models.WithdrawalRequestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.WithdrawalRequestView, 0)
	for _, w := range s.requests {
		account := s.accounts[w.AccountID]
		if account.ParentID != parentID || !w.IsPending() {
			continue
		}
		views = append(views, models.WithdrawalRequestView{WithdrawalRequest: w, ChildName: account.Name})
	}
	sort.Slice(views, func(i, j int) bool {
		return newerFirst(views[i].CreatedAt, views[i].ID, views[j].CreatedAt, views[j].ID)
	})
	return truncate(views, ClampLimit(limit), 0), nil
}

func (s *MemoryStore) GetByAccount(_ context.Context, accountID int64, limit int) ([]models.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.WithdrawalRequest, 0)
	for _, w := range s.requests {
		if w.AccountID == accountID {
			requests = append(requests, w)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return newerFirst(requests[i].CreatedAt, requests[i].ID, requests[j].CreatedAt, requests[j].ID)
	})
	return truncate(requests, ClampLimit(limit), 0), nil
}

func (s *MemoryStore) GetTransactionsByAccount(_ context.Context, accountID int64, limit, offset int) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]models.Transaction, 0)
	for _, t := range s.transactions {
		if t.AccountID == accountID {
			transactions = append(transactions, t)
		}
	}
	sortTransactions(transactions)
	return truncate(transactions, ClampLimit(limit), clampOffset(offset)), nil
}

func (s *MemoryStore) GetRecentTransactionsByParent(_ context.Context, parentID string, limit int) ([]models.TransactionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.TransactionView, 0)
	for _, t := range s.transactions {
		account := s.accounts[t.AccountID]
		if account.ParentID == parentID {
			views = append(views, models.TransactionView{Transaction: t, ChildName: account.Name})
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return newerFirst(views[i].CreatedAt, views[i].ID, views[j].CreatedAt, views[j].ID)
	})
	return truncate(views, ClampLimit(limit), 0), nil
}

func (s *MemoryStore) AllowanceCredited(_ context.Context, accountID int64, cycle string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if sameCycle(t, accountID, cycle) {
			return true, nil
		}
	}
	return false, nil
}

func sameCycle(t models.Transaction, accountID int64, cycle string) bool {
	return t.AccountID == accountID && t.AllowanceCycle != nil && *t.AllowanceCycle == cycle
}

func (s *MemoryStore) WithAccountLock(ctx context.Context, accountID int64, fn LedgerFunc) error {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return err
	}

	release, err := s.acquire(ctx, accountID)
	if err != nil {
		return err
	}
	defer release()

	s.mu.RLock()
	snapshot := s.accounts[accountID]
	s.mu.RUnlock()

	tx := &memoryTx{
		store:     s,
		accountID: accountID,
		statuses:  make(map[int64]stagedStatus),
	}
	if err := fn(tx, &snapshot); err != nil {
		return err
	}

	if s.beforeCommit != nil {
		s.beforeCommit(accountID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx.apply()
	return nil
}

func (s *MemoryStore) acquire(ctx context.Context, accountID int64) (func(), error) {
	s.mu.Lock()
	lock, ok := s.locks[accountID]
	if !ok {
		lock = make(chan struct{}, 1)
		s.locks[accountID] = lock
	}
	s.mu.Unlock()

	var timeout <-chan time.Time
	if s.lockTimeout > 0 {
		timer := time.NewTimer(s.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case lock <- struct{}{}:
		return func() { <-lock }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timeout:
		return nil, fmt.Errorf("%w: account %d is locked", apperrors.ErrConflict, accountID)
	}
}

type stagedStatus struct {
	status string
	at     time.Time
}

type stagedBalances struct {
	savings  decimal.Decimal
	spending decimal.Decimal
	at       time.Time
}

// memoryTx buffers writes until WithAccountLock commits them.
type memoryTx struct {
	store     *MemoryStore
	accountID int64

	balances     *stagedBalances
	transactions []models.Transaction
	statuses     map[int64]stagedStatus
}

func (t *memoryTx) UpdateBalances(_ context.Context, accountID int64, savings, spending decimal.Decimal, at time.Time) error {
	if accountID != t.accountID {
		return fmt.Errorf("%w: account %d is not locked", apperrors.ErrInvalidState, accountID)
	}
	if savings.IsNegative() || spending.IsNegative() {
		return fmt.Errorf("%w: balances must not be negative", apperrors.ErrInvalidInput)
	}
	if !utils.WithinLimit(savings) || !utils.WithinLimit(spending) {
		return apperrors.ErrBalanceLimit
	}
	t.balances = &stagedBalances{savings: savings, spending: spending, at: at}
	return nil
}

func (t *memoryTx) InsertTransaction(_ context.Context, tr *models.Transaction) error {
	if tr.AccountID != t.accountID {
		return fmt.Errorf("%w: account %d is not locked", apperrors.ErrInvalidState, tr.AccountID)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if tr.RequestID != nil {
		for _, existing := range t.store.transactions {
			if existing.RequestID != nil && *existing.RequestID == *tr.RequestID {
				return apperrors.ErrRequestAlreadyDecided
			}
		}
	}
	if tr.AllowanceCycle != nil {
		for _, existing := range t.store.transactions {
			if sameCycle(existing, tr.AccountID, *tr.AllowanceCycle) {
				return apperrors.ErrAllowanceCredited
			}
		}
		for _, staged := range t.transactions {
			if sameCycle(staged, tr.AccountID, *tr.AllowanceCycle) {
				return apperrors.ErrAllowanceCredited
			}
		}
	}
	t.store.nextTransactionID++
	tr.ID = t.store.nextTransactionID
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now()
	}
	t.transactions = append(t.transactions, *tr)
	return nil
}

func (t *memoryTx) GetWithdrawalRequestForUpdate(_ context.Context, id int64) (*models.WithdrawalRequest, error) {
	t.store.mu.RLock()
	w, ok := t.store.requests[id]
	t.store.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	if staged, ok := t.statuses[id]; ok {
		w.Status, w.UpdatedAt = staged.status, staged.at
	}
	return &w, nil
}

func (t *memoryTx) UpdateWithdrawalStatus(ctx context.Context, id int64, status string, at time.Time) error {
	w, err := t.GetWithdrawalRequestForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if w.AccountID != t.accountID {
		return fmt.Errorf("%w: request %d belongs to another account", apperrors.ErrInvalidState, id)
	}
	if !w.IsPending() {
		return apperrors.ErrRequestAlreadyDecided
	}
	t.statuses[id] = stagedStatus{status: status, at: at}
	return nil
}

func (t *memoryTx) SumEffects(_ context.Context, accountID int64) (decimal.Decimal, decimal.Decimal, int, error) {
	spending, savings := decimal.Zero, decimal.Zero
	count := 0

	add := func(tr models.Transaction) {
		if tr.AccountID != accountID || tr.Status != models.TransactionStatusCompleted {
			return
		}
		spending = spending.Add(tr.SpendingDelta)
		savings = savings.Add(tr.SavingsDelta)
		count++
	}

	t.store.mu.RLock()
	for _, tr := range t.store.transactions {
		add(tr)
	}
	t.store.mu.RUnlock()

	for _, tr := range t.transactions {
		add(tr)
	}
	return spending, savings, count, nil
}

// apply must be called with store.mu held for writing.
func (t *memoryTx) apply() {
	s := t.store
	if t.balances != nil {
		account := s.accounts[t.accountID]
		account.SavingsBalance = t.balances.savings
		account.SpendingBalance = t.balances.spending
		account.UpdatedAt = t.balances.at
		s.accounts[t.accountID] = account
	}
	s.transactions = append(s.transactions, t.transactions...)
	for id, staged := range t.statuses {
		w := s.requests[id]
		w.Status = staged.status
		w.UpdatedAt = staged.at
		s.requests[id] = w
	}
}

func newerFirst(aAt time.Time, aID int64, bAt time.Time, bID int64) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID > bID
}

func sortTransactions(transactions []models.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return newerFirst(transactions[i].CreatedAt, transactions[i].ID, transactions[j].CreatedAt, transactions[j].ID)
	})
}

func truncate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
