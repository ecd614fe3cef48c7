package consumer

import (
	"context"
	"encoding/json"

	"restropay/internal/estimation"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ledgerChange is the common shape of absence, payment, and employee
// change events; invalidation only needs the employee.
type ledgerChange struct {
	EventType  string `json:"event_type"`
	EmployeeID string `json:"employee_id"`
	Change     string `json:"change"`
}

// ConsumeLedgerChanges drops cached salary estimations whenever an
// absence or payment record changes, or the employee itself is updated
// (a base salary correction). The reader is expected to subscribe to all
// three topics via GroupTopics.
func ConsumeLedgerChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	estimationService estimation.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.ledger_changes")
	log.Info("ledger change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("ledger change consumer stopped")
				return
			}
			log.Error("fetch ledger change message failed", zap.Error(err))
			continue
		}

		var event ledgerChange
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode ledger change event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EmployeeID == "" {
			log.Warn("ledger change event missing employee_id, skipping",
				zap.String("topic", msg.Topic),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := estimationService.InvalidateEmployee(ctx, event.EmployeeID); err != nil {
			log.Error("invalidate estimation cache failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit ledger change message failed", zap.Error(err))
			continue
		}

		log.Info("estimation cache invalidated from ledger change",
			zap.String("employee_id", event.EmployeeID),
			zap.String("event_type", event.EventType),
			zap.String("change", event.Change),
		)
	}
}
