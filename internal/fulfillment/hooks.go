package fulfillment

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
)

type EventKind string

const (
	EventOrderPlaced      EventKind = "order_placed"
	EventOrderAdvanced    EventKind = "order_advanced"
	EventOrderCancelled   EventKind = "order_cancelled"
	EventPaymentConfirmed EventKind = "payment_confirmed"
	EventProfileCreated   EventKind = "profile_created"
)

// Event то, что получает хук после успешного коммита.
type Event struct {
	Kind    EventKind
	Order   entities.Order
	Change  entities.StatusChange
	Profile entities.StaffProfile
}

// Hook побочный эффект после коммита (уведомления и т.п.).
// Ошибка хука логируется и не откатывает изменения.
type Hook func(ctx context.Context, e Event) error

// RunHooks вызывает хуки по порядку.
func RunHooks(ctx context.Context, logger *slog.Logger, e Event, hooks ...Hook) {
	for _, h := range hooks {
		if h == nil {
			continue
		}
		if err := h(ctx, e); err != nil {
			logger.ErrorContext(ctx, "post-commit hook failed",
				slog.String("event", string(e.Kind)),
				slog.Int64("order_id", e.Order.ID),
				slog.Any("error", err),
			)
		}
	}
}
