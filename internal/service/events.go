package service

import (
	"context"

	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/notify"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// publishEvent delivers an event for a change that is already committed.
// Delivery failures are logged only.
func publishEvent(ctx context.Context, publisher notify.Publisher, event notify.Event) {
	if publisher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.Log.Warn("failed to publish ledger event",
			zap.String("event", event.Type), zap.Int64("account_id", event.AccountID), zap.Error(err))
	}
}

func transactionEvent(t *models.Transaction, parentID string) notify.Event {
	event := notify.Event{
		Type:          notify.EventTransactionRecorded,
		AccountID:     t.AccountID,
		ParentID:      parentID,
		TransactionID: t.ID,
		TxType:        t.Type,
		Amount:        t.Amount,
		Status:        t.Status,
		OccurredAt:    t.CreatedAt,
	}
	if t.RequestID != nil {
		event.RequestID = *t.RequestID
	}
	return event
}

func withdrawalEvent(eventType string, w *models.WithdrawalRequest, parentID string) notify.Event {
	return notify.Event{
		Type:       eventType,
		AccountID:  w.AccountID,
		ParentID:   parentID,
		RequestID:  w.ID,
		Amount:     w.Amount,
		Status:     w.Status,
		OccurredAt: w.UpdatedAt,
	}
}
