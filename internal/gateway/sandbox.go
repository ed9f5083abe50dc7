package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/google/uuid"
)

const (
	methodSandbox = "sandbox"
	sandboxPrefix = "sandbox_"
)

// Sandbox шлюз для локальной разработки: всегда принимает платёж.
// Подтверждение приходит отдельно, через топик платёжных событий.
type Sandbox struct {
	logger *slog.Logger
}

func NewSandbox(logger *slog.Logger) *Sandbox {
	return &Sandbox{logger: logger.With(slog.String("gateway", methodSandbox))}
}

func (s *Sandbox) Charge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error) {
	if req.Amount <= 0 {
		return entities.Charge{}, entities.NewValidationError("amount", "must be positive")
	}

	id := sandboxPrefix + uuid.NewString()
	s.logger.InfoContext(ctx, "sandbox charge accepted",
		slog.String("transaction_id", id),
		slog.Int64("amount", int64(req.Amount)),
		slog.String("idempotency_key", req.IdempotencyKey),
	)
	return entities.Charge{TransactionID: id, Method: methodSandbox}, nil
}

func (s *Sandbox) Cancel(ctx context.Context, transactionID string) error {
	if !strings.HasPrefix(transactionID, sandboxPrefix) {
		return entities.NewValidationError("transaction_id", "not a sandbox transaction")
	}
	s.logger.InfoContext(ctx, "sandbox charge cancelled", slog.String("transaction_id", transactionID))
	return nil
}
