package handler

import (
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
)

// LineItem позиция корзины или заказа
type LineItem struct {
	ID        int64  `json:"id,omitempty"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// Cart корзина покупателя. Все суммы в CLP с НДС.
type Cart struct {
	ID              int64      `json:"id"`
	Status          string     `json:"status"`
	Items           []LineItem `json:"items"`
	Subtotal        int64      `json:"subtotal"`
	Tax             int64      `json:"tax"`
	ShippingMethod  string     `json:"shipping_method"`
	ShippingAddress string     `json:"shipping_address,omitempty"`
	ShippingCost    int64      `json:"shipping_cost"`
	Total           int64      `json:"total"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// StatusChange запись истории статусов. actor_id = null для системных переходов.
type StatusChange struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ActorID   *int64    `json:"actor_id"`
}

// Order заказ
type Order struct {
	ID              int64          `json:"id"`
	CustomerID      int64          `json:"customer_id"`
	Status          string         `json:"status"`
	Items           []LineItem     `json:"items"`
	ShippingMethod  string         `json:"shipping_method"`
	ShippingAddress string         `json:"shipping_address,omitempty"`
	ShippingCost    int64          `json:"shipping_cost"`
	Total           int64          `json:"total"`
	AssignedHandler *int64         `json:"assigned_handler"`
	History         []StatusChange `json:"history"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Payment платёж по заказу
type Payment struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// Receipt результат оформления заказа: точная сумма и сумма, списанная шлюзом.
type Receipt struct {
	Order   Order   `json:"order"`
	Payment Payment `json:"payment"`
	Total   int64   `json:"total"`
	Payable int64   `json:"payable"`
	Delta   int64   `json:"delta"`
}

// StaffProfile профиль сотрудника
type StaffProfile struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Role           string     `json:"role"`
	OnShift        bool       `json:"on_shift"`
	ShiftStartedAt *time.Time `json:"shift_started_at,omitempty"`
	ShiftEndedAt   *time.Time `json:"shift_ended_at,omitempty"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type ShippingRequest struct {
	Method  string `json:"method" validate:"required,oneof=PICKUP HOME_DELIVERY"`
	Address string `json:"address" validate:"required_if=Method HOME_DELIVERY,max=255"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=PREPARING READY_FOR_PICKUP SHIPPED DELIVERED"`
}

type CreateProfileRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Role   string `json:"role" validate:"required,oneof=CUSTOMER WAREHOUSE_HANDLER ACCOUNTANT ADMIN"`
}

// PaymentEvent статус платежа, который шлюз прислал через webhook.
type PaymentEvent struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=PENDING COMPLETED FAILED"`
}

func LineItemEntityToJSON(it entities.LineItem) LineItem {
	return LineItem{
		ID:        it.ID,
		ProductID: it.ProductID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: int64(it.UnitPrice),
		Subtotal:  int64(it.Subtotal()),
	}
}

func lineItemsToJSON(items []entities.LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemEntityToJSON(it))
	}
	return out
}

func CartEntityToJSON(c entities.Cart) Cart {
	return Cart{
		ID:              c.ID,
		Status:          string(c.Status),
		Items:           lineItemsToJSON(c.Items),
		Subtotal:        int64(c.Subtotal),
		Tax:             int64(c.Tax),
		ShippingMethod:  string(c.ShippingMethod),
		ShippingAddress: c.ShippingAddress,
		ShippingCost:    int64(c.ShippingCost),
		Total:           int64(c.Total),
		UpdatedAt:       c.UpdatedAt,
	}
}

func StatusChangeEntityToJSON(sc entities.StatusChange) StatusChange {
	out := StatusChange{
		Status:    string(sc.Status),
		ChangedAt: sc.ChangedAt,
	}
	if sc.Actor != entities.SystemActor {
		actor := int64(sc.Actor)
		out.ActorID = &actor
	}
	return out
}

func OrderEntityToJSON(o entities.Order) Order {
	history := make([]StatusChange, 0, len(o.History))
	for _, sc := range o.History {
		history = append(history, StatusChangeEntityToJSON(sc))
	}

	var handler *int64
	if o.AssignedHandler != nil {
		h := int64(*o.AssignedHandler)
		handler = &h
	}

	return Order{
		ID:              o.ID,
		CustomerID:      int64(o.Customer),
		Status:          string(o.Status),
		Items:           lineItemsToJSON(o.Items),
		ShippingMethod:  string(o.ShippingMethod),
		ShippingAddress: o.ShippingAddress,
		ShippingCost:    int64(o.ShippingCost),
		Total:           int64(o.Total),
		AssignedHandler: handler,
		History:         history,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func PaymentEntityToJSON(p entities.Payment) Payment {
	return Payment{
		ID:            p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		Method:        p.Method,
		Amount:        int64(p.Amount),
		CreatedAt:     p.CreatedAt,
	}
}

func ReceiptToJSON(r service.Receipt) Receipt {
	return Receipt{
		Order:   OrderEntityToJSON(r.Order),
		Payment: PaymentEntityToJSON(r.Payment),
		Total:   int64(r.Adjustment.Exact),
		Payable: int64(r.Adjustment.Payable),
		Delta:   int64(r.Adjustment.Delta),
	}
}

func StaffProfileEntityToJSON(p entities.StaffProfile) StaffProfile {
	return StaffProfile{
		ID:             int64(p.ID),
		UserID:         int64(p.UserID),
		Role:           string(p.Role),
		OnShift:        p.OnShift,
		ShiftStartedAt: p.ShiftStartedAt,
		ShiftEndedAt:   p.ShiftEndedAt,
	}
}
