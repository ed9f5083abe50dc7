package fulfillment

import (
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
)

// Переходы, доступные кладовщику. Отмена сюда не входит.
var handlerTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusRequested:      {entities.OrderStatusPreparing},
	entities.OrderStatusPreparing:      {entities.OrderStatusShipped, entities.OrderStatusReadyForPickup},
	entities.OrderStatusShipped:        {entities.OrderStatusDelivered},
	entities.OrderStatusReadyForPickup: {entities.OrderStatusDelivered},
	entities.OrderStatusDelivered:      {},
}

// AllowedTransitions возвращает статусы, в которые кладовщик может перевести заказ из from.
func AllowedTransitions(from entities.OrderStatus) []entities.OrderStatus {
	next := handlerTransitions[from]
	out := make([]entities.OrderStatus, len(next))
	copy(out, next)
	return out
}

// CheckAdvance проверяет переход по таблице кладовщика.
func CheckAdvance(from, to entities.OrderStatus) error {
	if to == entities.OrderStatusCancelled {
		return &entities.TransitionError{From: from, To: to, Reason: "cancellation is an administrative action"}
	}
	if from == to {
		return &entities.TransitionError{From: from, To: to, Reason: "order is already in this status"}
	}
	for _, s := range handlerTransitions[from] {
		if s == to {
			return nil
		}
	}
	return &entities.TransitionError{From: from, To: to, Reason: "transition is not allowed"}
}

// CheckCancel проверяет административную отмену.
func CheckCancel(from entities.OrderStatus) error {
	if from.Terminal() {
		return &entities.TransitionError{From: from, To: entities.OrderStatusCancelled, Reason: "order is already closed"}
	}
	return nil
}

// Machine применяет переходы к заказу в памяти. Сохранение делает вызывающий код
// в той же транзакции, в которой заказ был прочитан.
type Machine struct {
	now func() time.Time
}

func NewMachine(now func() time.Time) Machine {
	if now == nil {
		now = time.Now
	}
	return Machine{now: now}
}

// Advance переход, инициированный кладовщиком.
func (m Machine) Advance(o *entities.Order, to entities.OrderStatus, actor entities.UserID) (entities.StatusChange, error) {
	if err := CheckAdvance(o.Status, to); err != nil {
		return entities.StatusChange{}, err
	}
	return m.apply(o, to, actor), nil
}

// Cancel административная отмена.
func (m Machine) Cancel(o *entities.Order, actor entities.UserID) (entities.StatusChange, error) {
	if err := CheckCancel(o.Status); err != nil {
		return entities.StatusChange{}, err
	}
	return m.apply(o, entities.OrderStatusCancelled, actor), nil
}

// ConfirmPayment единственный системный переход REQUESTED -> PREPARING после оплаты.
// Если заказ уже не в REQUESTED, ничего не делает и возвращает false.
func (m Machine) ConfirmPayment(o *entities.Order) (entities.StatusChange, bool) {
	if o.Status != entities.OrderStatusRequested {
		return entities.StatusChange{}, false
	}
	return m.apply(o, entities.OrderStatusPreparing, entities.SystemActor), true
}

func (m Machine) apply(o *entities.Order, to entities.OrderStatus, actor entities.UserID) entities.StatusChange {
	change := entities.StatusChange{
		Status:    to,
		ChangedAt: m.now().UTC(),
		Actor:     actor,
	}
	o.Status = to
	o.History = append(o.History, change)
	o.LastModifiedBy = actor
	o.UpdatedAt = change.ChangedAt
	return change
}
