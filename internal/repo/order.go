package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var orderColumns = []string{
	"id", "customer_id", "cart_id", "status", "shipping_method", "shipping_address",
	"shipping_cost", "assigned_handler", "total", "last_modified_by", "created_at", "updated_at",
}

// CreateOrder сохраняет заказ вместе с позициями и историей статусов.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"customer_id", "cart_id", "status", "shipping_method", "shipping_address",
			"shipping_cost", "assigned_handler", "total", "last_modified_by", "created_at", "updated_at",
		).
		Values(
			o.Customer, nullInt64Ptr(o.CartID), o.Status, o.ShippingMethod, o.ShippingAddress,
			o.ShippingCost, nullHandlerID(o.AssignedHandler), o.Total, nullUserID(o.LastModifiedBy),
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &o.ID, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	if err := r.saveOrderItems(ctx, o.ID, o.Items); err != nil {
		return entities.Order{}, err
	}

	for _, change := range o.History {
		if err := r.saveStatusChange(ctx, o.ID, change); err != nil {
			return entities.Order{}, err
		}
	}

	return o, nil
}

// GetOrder возвращает заказ по ID. Внутри транзакции строка заказа блокируется.
func (r *postgresRepo) GetOrder(ctx context.Context, id int64) (entities.Order, error) {
	b := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	query, args := forUpdate(ctx, b).MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		err = notFound(err, entities.ErrOrderNotFound)
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.withDetails(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

// UpdateOrderStatus записывает переход из статуса from и последнюю запись истории.
// Если статус в базе уже не from, возвращается ErrStaleOrder.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, o entities.Order, from entities.OrderStatus) error {
	if len(o.History) == 0 {
		return fmt.Errorf("order %d has no status history", o.ID)
	}
	change := o.History[len(o.History)-1]

	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"status":           o.Status,
			"last_modified_by": nullUserID(o.LastModifiedBy),
			"updated_at":       o.UpdatedAt,
		}).
		Where(sq.Eq{"id": o.ID, "status": from}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrStaleOrder
	}

	return r.saveStatusChange(ctx, o.ID, change)
}

func (r *postgresRepo) SetAssignedHandler(ctx context.Context, orderID int64, handler *entities.HandlerID) error {
	query, args := r.qb.Update("orders").
		Set("assigned_handler", nullHandlerID(handler)).
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to assign handler: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// HandlerOrders возвращает заказы, назначенные кладовщику, начиная со старых.
func (r *postgresRepo) HandlerOrders(ctx context.Context, handler entities.HandlerID) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"assigned_handler": handler}).
		OrderBy("created_at", "id").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	return r.withDetails(ctx, orders)
}

// LatestOrders возвращает последние count незавершённых заказов.
func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.NotEq{"status": []entities.OrderStatus{entities.OrderStatusDelivered, entities.OrderStatusCancelled}}).
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	return r.withDetails(ctx, orders)
}

// HandlerLoads возвращает кладовщиков на смене с количеством активных заказов.
func (r *postgresRepo) HandlerLoads(ctx context.Context) ([]entities.HandlerLoad, error) {
	statuses := make([]string, len(entities.ActiveOrderStatuses))
	for i, s := range entities.ActiveOrderStatuses {
		statuses[i] = string(s)
	}

	query, args := r.qb.Select("sp.id AS handler_id", "COUNT(o.id) AS active_orders").
		From("staff_profiles sp").
		LeftJoin("orders o ON o.assigned_handler = sp.id AND o.status = ANY(?)", pq.Array(statuses)).
		Where(sq.Eq{"sp.role": entities.RoleWarehouseHandler, "sp.on_shift": true}).
		GroupBy("sp.id").
		OrderBy("sp.id").
		MustSql()

	var loads []HandlerLoad
	if err := r.selectContext(ctx, &loads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select handler loads: %w", err)
	}

	res := make([]entities.HandlerLoad, 0, len(loads))
	for _, l := range loads {
		res = append(res, entities.HandlerLoad{
			Handler:      entities.HandlerID(l.HandlerID),
			ActiveOrders: l.ActiveOrders,
		})
	}
	return res, nil
}

// withDetails подгружает позиции и историю сразу для всех заказов.
func (r *postgresRepo) withDetails(ctx context.Context, orders []Order) ([]entities.Order, error) {
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args := r.qb.Select(
		"id", "order_id AS parent_id", "product_id", "name", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[int64][]Item, len(ids))
	for _, it := range items {
		itemsMap[it.ParentID] = append(itemsMap[it.ParentID], it)
	}

	query, args = r.qb.Select("order_id", "status", "changed_at", "actor_id").
		From("order_status_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var history []StatusChange
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order history: %w", err)
	}
	historyMap := make(map[int64][]StatusChange, len(ids))
	for _, h := range history {
		historyMap[h.OrderID] = append(historyMap[h.OrderID], h)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID], historyMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) saveOrderItems(ctx context.Context, orderID int64, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "name", "quantity", "unit_price")
	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Name, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) saveStatusChange(ctx context.Context, orderID int64, change entities.StatusChange) error {
	query, args := r.qb.Insert("order_status_history").
		Columns("order_id", "status", "changed_at", "actor_id").
		Values(orderID, change.Status, change.ChangedAt, nullUserID(change.Actor)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save status change: %w", err)
	}
	return nil
}
