package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"
)

type OrderRepo interface {
	// GetOrder внутри транзакции блокирует строку заказа.
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	// UpdateOrderStatus возвращает ErrStaleOrder, если статус в базе уже не from.
	UpdateOrderStatus(ctx context.Context, o entities.Order, from entities.OrderStatus) error
	SetAssignedHandler(ctx context.Context, orderID int64, handler *entities.HandlerID) error
	SetCartStatus(ctx context.Context, cartID int64, status entities.CartStatus) error

	HandlerOrders(ctx context.Context, handler entities.HandlerID) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	HandlerLoads(ctx context.Context) ([]entities.HandlerLoad, error)
}

type OrderCache interface {
	Get(id int64) (entities.Order, bool)
	Set(id int64, order entities.Order)
	Delete(id int64)
	Epoch() uint64
	SetIfUnchanged(id int64, order entities.Order, epoch uint64) bool
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     OrderCache
	machine   fulfillment.Machine
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	cache OrderCache,
	machine fulfillment.Machine,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		machine:   machine,
	}
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (entities.Order, error) {
	if order, ok := s.cache.Get(id); ok {
		return order.Clone(), nil
	}

	// смена статуса между чтением и записью в кэш сдвинет epoch
	epoch := s.cache.Epoch()
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.SetIfUnchanged(id, order.Clone(), epoch)
	return order, nil
}

// WarmUpCache загружает в кэш последние незавершённые заказы.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, o := range orders {
		s.cache.Set(o.ID, o.Clone())
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// AdvanceOrder переводит заказ в следующий статус от имени сотрудника склада.
// Администратор может двигать любой заказ, кладовщик только назначенный ему.
func (s *orderService) AdvanceOrder(
	ctx context.Context,
	id int64,
	to entities.OrderStatus,
	by entities.StaffProfile,
	hooks ...fulfillment.Hook,
) (entities.Order, error) {
	return s.transition(ctx, id, fulfillment.EventOrderAdvanced, func(o *entities.Order) (entities.StatusChange, error) {
		if by.Role != entities.RoleAdmin && !o.IsAssignedTo(by.ID) {
			return entities.StatusChange{}, entities.ErrNotAssigned
		}
		return s.machine.Advance(o, to, by.UserID)
	}, hooks...)
}

// CancelOrder отменяет заказ. Это отдельный административный путь, не через таблицу переходов.
func (s *orderService) CancelOrder(ctx context.Context, id int64, actor entities.UserID, hooks ...fulfillment.Hook) (entities.Order, error) {
	return s.transition(ctx, id, fulfillment.EventOrderCancelled, func(o *entities.Order) (entities.StatusChange, error) {
		return s.machine.Cancel(o, actor)
	}, hooks...)
}

// AssignHandler заново назначает заказ наименее загруженному кладовщику на смене.
func (s *orderService) AssignHandler(ctx context.Context, id int64) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return entities.NewValidationError("status", fmt.Sprintf("order is already %s", order.Status))
		}

		loads, err := s.repo.HandlerLoads(ctx)
		if err != nil {
			return err
		}
		handler, ok := fulfillment.PickHandler(loads)
		if !ok {
			return entities.NewValidationError("handler", "no warehouse handler on shift")
		}

		if err := s.repo.SetAssignedHandler(ctx, order.ID, &handler); err != nil {
			return err
		}
		order.AssignedHandler = &handler
		return nil
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to assign handler: %w", err)
	}

	s.cache.Delete(id)
	s.logger.InfoContext(ctx, "order assigned",
		slog.Int64("order_id", id),
		slog.Int64("handler_id", int64(*order.AssignedHandler)),
	)
	return order, nil
}

func (s *orderService) ListHandlerOrders(ctx context.Context, handler entities.HandlerID) ([]entities.Order, error) {
	orders, err := s.repo.HandlerOrders(ctx, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to list handler orders: %w", err)
	}
	return orders, nil
}

// transition читает заказ под блокировкой, применяет переход и записывает его
// с проверкой исходного статуса. Хуки вызываются после коммита.
func (s *orderService) transition(
	ctx context.Context,
	id int64,
	kind fulfillment.EventKind,
	apply func(o *entities.Order) (entities.StatusChange, error),
	hooks ...fulfillment.Hook,
) (entities.Order, error) {
	var (
		order  entities.Order
		change entities.StatusChange
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrder(ctx, id)
		if err != nil {
			return err
		}

		from := order.Status
		change, err = apply(&order)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateOrderStatus(ctx, order, from); err != nil {
			return err
		}
		return syncCartStatus(ctx, s.repo, order)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to change order status: %w", err)
	}

	s.cache.Delete(id)
	s.logger.InfoContext(ctx, "order status changed",
		slog.Int64("order_id", id),
		slog.String("status", string(order.Status)),
		slog.Int64("actor", int64(change.Actor)),
	)

	fulfillment.RunHooks(ctx, s.logger, fulfillment.Event{Kind: kind, Order: order, Change: change}, hooks...)
	return order, nil
}

type cartStatusSetter interface {
	SetCartStatus(ctx context.Context, cartID int64, status entities.CartStatus) error
}

func syncCartStatus(ctx context.Context, repo cartStatusSetter, order entities.Order) error {
	if order.CartID == nil {
		return nil
	}
	status, ok := order.Status.CartStatus()
	if !ok {
		return nil
	}
	return repo.SetCartStatus(ctx, *order.CartID, status)
}
