package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"
)

type PaymentRepo interface {
	// PaymentByTransaction внутри транзакции блокирует строку платежа.
	PaymentByTransaction(ctx context.Context, transactionID string) (entities.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatus) error

	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, o entities.Order, from entities.OrderStatus) error
	SetCartStatus(ctx context.Context, cartID int64, status entities.CartStatus) error
}

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      PaymentRepo
	cache     OrderCache
	machine   fulfillment.Machine
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo PaymentRepo,
	cache OrderCache,
	machine fulfillment.Machine,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		machine:   machine,
	}
}

// UpdatePaymentStatus сохраняет статус платежа, пришедший от шлюза.
// Подтверждённый платёж переводит заказ из REQUESTED в PREPARING в той же транзакции.
// Повторная доставка того же статуса ничего не меняет.
func (s *paymentService) UpdatePaymentStatus(
	ctx context.Context,
	transactionID string,
	status entities.PaymentStatus,
	hooks ...fulfillment.Hook,
) (entities.Payment, error) {
	if !status.Valid() {
		return entities.Payment{}, entities.NewValidationError("status", "unknown payment status")
	}

	var (
		payment entities.Payment
		order   entities.Order
		change  entities.StatusChange
		applied bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.repo.PaymentByTransaction(ctx, transactionID)
		if err != nil {
			return err
		}

		if payment.Status == status {
			return nil
		}
		if payment.Status == entities.PaymentStatusCompleted {
			return entities.NewValidationError("status", "payment is already completed")
		}

		if err := s.repo.UpdatePaymentStatus(ctx, payment.ID, status); err != nil {
			return err
		}
		payment.Status = status

		if status != entities.PaymentStatusCompleted {
			return nil
		}

		order, err = s.repo.GetOrder(ctx, payment.OrderID)
		if err != nil {
			return err
		}
		from := order.Status
		change, applied = s.machine.ConfirmPayment(&order)
		if !applied {
			return nil
		}
		if err := s.repo.UpdateOrderStatus(ctx, order, from); err != nil {
			return err
		}
		return syncCartStatus(ctx, s.repo, order)
	})
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to update payment status: %w", err)
	}

	s.logger.InfoContext(ctx, "payment status updated",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(payment.Status)),
	)

	if applied {
		s.cache.Delete(order.ID)
		fulfillment.RunHooks(ctx, s.logger, fulfillment.Event{
			Kind:   fulfillment.EventPaymentConfirmed,
			Order:  order,
			Change: change,
		}, hooks...)
	}

	return payment, nil
}
