package entities

import "time"

// Money сумма в CLP, наименьшая неделимая единица, налог включён.
type Money int64

type UserID int64

// SystemActor используется для переходов, которые инициирует сама система.
const SystemActor UserID = 0

type CartStatus string

const (
	CartStatusActive     CartStatus = "ACTIVE"
	CartStatusPaid       CartStatus = "PAID"
	CartStatusInProgress CartStatus = "IN_PROGRESS"
	CartStatusShipped    CartStatus = "SHIPPED"
	CartStatusDelivered  CartStatus = "DELIVERED"
	CartStatusCancelled  CartStatus = "CANCELLED"
)

type ShippingMethod string

const (
	ShippingPickup        ShippingMethod = "PICKUP"
	ShippingHomeDelivery  ShippingMethod = "HOME_DELIVERY"
	DefaultShippingMethod                = ShippingPickup
)

func (m ShippingMethod) Valid() bool {
	return m == ShippingPickup || m == ShippingHomeDelivery
}

// LineItem позиция корзины или заказа. Цена фиксируется в момент добавления.
type LineItem struct {
	ID        int64
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice Money
}

func (li LineItem) Subtotal() Money {
	return Money(li.Quantity) * li.UnitPrice
}

func (li LineItem) Validate() error {
	if li.ProductID <= 0 {
		return NewValidationError("product_id", "must be positive")
	}
	if li.Quantity < 1 {
		return NewValidationError("quantity", "must be at least 1")
	}
	if li.UnitPrice < 1 {
		return NewValidationError("unit_price", "must be at least 1")
	}
	return nil
}

type Cart struct {
	ID     int64
	Owner  UserID
	Status CartStatus
	Items  []LineItem

	Subtotal Money
	Tax      Money
	Total    Money

	ShippingMethod  ShippingMethod
	ShippingAddress string
	ShippingCost    Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item возвращает позицию корзины по ID.
func (c *Cart) Item(itemID int64) (*LineItem, bool) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// ItemByProduct возвращает позицию корзины с данным товаром.
func (c *Cart) ItemByProduct(productID int64) (*LineItem, bool) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], true
		}
	}
	return nil, false
}

func (c *Cart) RemoveItem(itemID int64) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

type Product struct {
	ID    int64
	Name  string
	Brand string
	Price Money
	Stock int
}

func (p Product) Available() bool {
	return p.Stock > 0
}
