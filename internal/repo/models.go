package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/pricing"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Brand string          `db:"brand"`
	Price decimal.Decimal `db:"price"`
	Stock int             `db:"stock"`
}

type Cart struct {
	ID              int64     `db:"id"`
	OwnerID         int64     `db:"owner_id"`
	Status          string    `db:"status"`
	Subtotal        int64     `db:"subtotal"`
	Tax             int64     `db:"tax"`
	Total           int64     `db:"total"`
	ShippingMethod  string    `db:"shipping_method"`
	ShippingAddress string    `db:"shipping_address"`
	ShippingCost    int64     `db:"shipping_cost"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Item строка cart_items или order_items, ParentID это cart_id или order_id.
type Item struct {
	ID        int64  `db:"id"`
	ParentID  int64  `db:"parent_id"`
	ProductID int64  `db:"product_id"`
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
}

type Order struct {
	ID              int64         `db:"id"`
	CustomerID      int64         `db:"customer_id"`
	CartID          sql.NullInt64 `db:"cart_id"`
	Status          string        `db:"status"`
	ShippingMethod  string        `db:"shipping_method"`
	ShippingAddress string        `db:"shipping_address"`
	ShippingCost    int64         `db:"shipping_cost"`
	AssignedHandler sql.NullInt64 `db:"assigned_handler"`
	Total           int64         `db:"total"`
	LastModifiedBy  sql.NullInt64 `db:"last_modified_by"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

type StatusChange struct {
	OrderID   int64         `db:"order_id"`
	Status    string        `db:"status"`
	ChangedAt time.Time     `db:"changed_at"`
	ActorID   sql.NullInt64 `db:"actor_id"`
}

type Payment struct {
	ID            int64     `db:"id"`
	OrderID       int64     `db:"order_id"`
	TransactionID string    `db:"transaction_id"`
	Status        string    `db:"status"`
	Method        string    `db:"method"`
	Amount        int64     `db:"amount"`
	CreatedAt     time.Time `db:"created_at"`
}

type StaffProfile struct {
	ID             int64        `db:"id"`
	UserID         int64        `db:"user_id"`
	Role           string       `db:"role"`
	OnShift        bool         `db:"on_shift"`
	ShiftStartedAt sql.NullTime `db:"shift_started_at"`
	ShiftEndedAt   sql.NullTime `db:"shift_ended_at"`
	CreatedAt      time.Time    `db:"created_at"`
}

type HandlerLoad struct {
	HandlerID    int64 `db:"handler_id"`
	ActiveOrders int   `db:"active_orders"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:    p.ID,
		Name:  p.Name,
		Brand: p.Brand,
		Price: pricing.ProductPrice(p.Price),
		Stock: p.Stock,
	}
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: entities.Money(i.UnitPrice),
	}
}

func itemsToEntity(items []Item) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	res := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		res = append(res, ItemToEntity(it))
	}
	return res
}

func CartToEntity(c Cart, items []Item) entities.Cart {
	return entities.Cart{
		ID:              c.ID,
		Owner:           entities.UserID(c.OwnerID),
		Status:          entities.CartStatus(c.Status),
		Items:           itemsToEntity(items),
		Subtotal:        entities.Money(c.Subtotal),
		Tax:             entities.Money(c.Tax),
		Total:           entities.Money(c.Total),
		ShippingMethod:  entities.ShippingMethod(c.ShippingMethod),
		ShippingAddress: c.ShippingAddress,
		ShippingCost:    entities.Money(c.ShippingCost),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func StatusChangeToEntity(s StatusChange) entities.StatusChange {
	return entities.StatusChange{
		Status:    entities.OrderStatus(s.Status),
		ChangedAt: s.ChangedAt,
		Actor:     entities.UserID(nullInt64ToInt(s.ActorID)),
	}
}

func OrderToEntity(o Order, items []Item, history []StatusChange) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		Customer:        entities.UserID(o.CustomerID),
		Status:          entities.OrderStatus(o.Status),
		Items:           itemsToEntity(items),
		ShippingMethod:  entities.ShippingMethod(o.ShippingMethod),
		ShippingAddress: o.ShippingAddress,
		ShippingCost:    entities.Money(o.ShippingCost),
		Total:           entities.Money(o.Total),
		LastModifiedBy:  entities.UserID(nullInt64ToInt(o.LastModifiedBy)),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	if o.CartID.Valid {
		id := o.CartID.Int64
		order.CartID = &id
	}
	if o.AssignedHandler.Valid {
		h := entities.HandlerID(o.AssignedHandler.Int64)
		order.AssignedHandler = &h
	}

	if len(history) > 0 {
		order.History = make([]entities.StatusChange, 0, len(history))
		for _, h := range history {
			order.History = append(order.History, StatusChangeToEntity(h))
		}
	}

	return order
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ID:            p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		Status:        entities.PaymentStatus(p.Status),
		Method:        p.Method,
		Amount:        entities.Money(p.Amount),
		CreatedAt:     p.CreatedAt,
	}
}

func StaffProfileToEntity(p StaffProfile) entities.StaffProfile {
	return entities.StaffProfile{
		ID:             entities.HandlerID(p.ID),
		UserID:         entities.UserID(p.UserID),
		Role:           entities.StaffRole(p.Role),
		OnShift:        p.OnShift,
		ShiftStartedAt: nullTimeToPtr(p.ShiftStartedAt),
		ShiftEndedAt:   nullTimeToPtr(p.ShiftEndedAt),
		CreatedAt:      p.CreatedAt,
	}
}

func nullInt64ToInt(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
