package entities

import (
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderStatusRequested      OrderStatus = "REQUESTED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// ActiveOrderStatuses статусы, которые учитываются при распределении нагрузки между кладовщиками.
var ActiveOrderStatuses = []OrderStatus{OrderStatusRequested, OrderStatusPreparing}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusRequested, OrderStatusPreparing, OrderStatusReadyForPickup,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CartStatus статус корзины, который отражает статус оформленного из неё заказа.
func (s OrderStatus) CartStatus() (CartStatus, bool) {
	switch s {
	case OrderStatusPreparing, OrderStatusReadyForPickup:
		return CartStatusInProgress, true
	case OrderStatusShipped:
		return CartStatusShipped, true
	case OrderStatusDelivered:
		return CartStatusDelivered, true
	case OrderStatusCancelled:
		return CartStatusCancelled, true
	}
	return "", false
}

// StatusChange запись в истории статусов заказа.
type StatusChange struct {
	Status    OrderStatus
	ChangedAt time.Time
	Actor     UserID
}

type Order struct {
	ID       int64
	Customer UserID
	CartID   *int64
	Status   OrderStatus

	Items []LineItem

	ShippingMethod  ShippingMethod
	ShippingAddress string
	ShippingCost    Money

	AssignedHandler *HandlerID
	History         []StatusChange

	Total          Money
	LastModifiedBy UserID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssignedTo сообщает, назначен ли заказ данному кладовщику.
func (o *Order) IsAssignedTo(id HandlerID) bool {
	return o.AssignedHandler != nil && *o.AssignedHandler == id
}

// Clone возвращает копию заказа, не разделяющую слайсы и указатели с оригиналом.
func (o Order) Clone() Order {
	out := o
	out.Items = slices.Clone(o.Items)
	out.History = slices.Clone(o.History)
	if o.CartID != nil {
		id := *o.CartID
		out.CartID = &id
	}
	if o.AssignedHandler != nil {
		h := *o.AssignedHandler
		out.AssignedHandler = &h
	}
	return out
}

// NewOrderFromCart материализует корзину в заказ: позиции копируются вместе с ценами.
func NewOrderFromCart(cart Cart, now time.Time) Order {
	cartID := cart.ID
	items := make([]LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		it.ID = 0
		items = append(items, it)
	}

	return Order{
		Customer:        cart.Owner,
		CartID:          &cartID,
		Status:          OrderStatusRequested,
		Items:           items,
		ShippingMethod:  cart.ShippingMethod,
		ShippingAddress: cart.ShippingAddress,
		ShippingCost:    cart.ShippingCost,
		History: []StatusChange{
			{Status: OrderStatusRequested, ChangedAt: now, Actor: cart.Owner},
		},
		Total:          cart.Total,
		LastModifiedBy: cart.Owner,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
