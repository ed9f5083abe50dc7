package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var paymentColumns = []string{"id", "order_id", "transaction_id", "status", "method", "amount", "created_at"}

func (r *postgresRepo) CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	query, args := r.qb.Insert("payments").
		Columns("order_id", "transaction_id", "status", "method", "amount", "created_at").
		Values(p.OrderID, p.TransactionID, p.Status, p.Method, p.Amount, p.CreatedAt).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &p.ID, query, args...); err != nil {
		// у заказа ровно один платёж
		if isUniqueViolationOn(err, "payments_order_id_key") {
			return entities.Payment{}, entities.NewValidationError("order_id", "order already has a payment")
		}
		if isUniqueViolation(err) {
			return entities.Payment{}, entities.NewValidationError("transaction_id", "payment already recorded")
		}
		return entities.Payment{}, fmt.Errorf("failed to save payment: %w", err)
	}
	return p, nil
}

// PaymentByTransaction ищет платёж по ID транзакции шлюза.
// Внутри транзакции строка платежа блокируется.
func (r *postgresRepo) PaymentByTransaction(ctx context.Context, transactionID string) (entities.Payment, error) {
	b := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"transaction_id": transactionID})
	query, args := forUpdate(ctx, b).MustSql()

	var payment Payment
	if err := r.getContext(ctx, &payment, query, args...); err != nil {
		err = notFound(err, entities.ErrPaymentNotFound)
		return entities.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return PaymentToEntity(payment), nil
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatus) error {
	query, args := r.qb.Update("payments").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrPaymentNotFound
	}
	return nil
}
