package notify

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventWithdrawalRequested = "withdrawal.requested"
	EventWithdrawalDecided   = "withdrawal.decided"
	EventTransactionRecorded = "transaction.recorded"
)

// Event describes a committed ledger change. Events are published after the
// unit of work commits, so a consumer never sees a change that was rolled back.
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	AccountID     int64           `json:"child_id"`
	ParentID      string          `json:"parent_id,omitempty"`
	TransactionID int64           `json:"transaction_id,omitempty"`
	RequestID     int64           `json:"request_id,omitempty"`
	TxType        string          `json:"transaction_type,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

func (nopPublisher) Close() error { return nil }

type multiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher fans every event out to all publishers. A failing publisher
// does not stop delivery to the others.
func NewMultiPublisher(publishers ...Publisher) Publisher {
	switch len(publishers) {
	case 0:
		return NewNopPublisher()
	case 1:
		return publishers[0]
	}
	return &multiPublisher{publishers: publishers}
}

func (m *multiPublisher) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multiPublisher) Close() error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
