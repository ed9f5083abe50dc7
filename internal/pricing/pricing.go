package pricing

import (
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/shopspring/decimal"
)

// Rate налоговая ставка в виде дроби Num/Den.
type Rate struct {
	Num int64
	Den int64
}

// ChileanVAT НДС 19%, выделяемый из цены, которая уже включает налог.
var ChileanVAT = Rate{Num: 19, Den: 119}

// Tolerance допустимое расхождение subtotal+tax и total из-за округления.
const Tolerance entities.Money = 1

// RoundHalfUp делит num на den с округлением половины вверх. den > 0, num >= 0.
func RoundHalfUp(num, den int64) int64 {
	return (2*num + den) / (2 * den)
}

// FloorTo округляет value вниз до ближайшего кратного step.
func FloorTo(value, step int64) int64 {
	if step <= 0 {
		return value
	}
	q := value / step
	if value%step != 0 && value < 0 {
		q--
	}
	return q * step
}

// ProductPrice переводит цену каталога NUMERIC(10,2) в целые CLP.
func ProductPrice(price decimal.Decimal) entities.Money {
	return entities.Money(price.Round(0).IntPart())
}

type Totals struct {
	Subtotal     entities.Money
	Tax          entities.Money
	ShippingCost entities.Money
	Total        entities.Money
}

func (t Totals) Validate() error {
	switch {
	case t.Subtotal < 0:
		return entities.NewValidationError("subtotal", "must not be negative")
	case t.Tax < 0:
		return entities.NewValidationError("tax", "must not be negative")
	case t.ShippingCost < 0:
		return entities.NewValidationError("shipping_cost", "must not be negative")
	case t.Total < 0:
		return entities.NewValidationError("total", "must not be negative")
	}

	diff := t.Subtotal + t.Tax + t.ShippingCost - t.Total
	if diff < 0 {
		diff = -diff
	}
	if diff > Tolerance {
		return entities.NewValidationError("total", "does not match subtotal and tax")
	}
	return nil
}

// Apply записывает итоги в корзину.
func (t Totals) Apply(c *entities.Cart) {
	c.Subtotal = t.Subtotal
	c.Tax = t.Tax
	c.ShippingCost = t.ShippingCost
	c.Total = t.Total
}

type Calculator struct {
	rate Rate
}

func NewCalculator(rate Rate) Calculator {
	if rate.Den <= 0 {
		rate = ChileanVAT
	}
	return Calculator{rate: rate}
}

// Compute считает итоги по позициям. Цены позиций уже включают налог,
// поэтому налог выделяется из суммы товаров. Доставка в налоговую базу не входит.
func (c Calculator) Compute(items []entities.LineItem, method entities.ShippingMethod, shippingCost entities.Money) (Totals, error) {
	var goods entities.Money
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return Totals{}, err
		}
		goods += it.Subtotal()
	}

	tax := entities.Money(RoundHalfUp(int64(goods)*c.rate.Num, c.rate.Den))

	if method == entities.ShippingHomeDelivery {
		if shippingCost < 0 {
			return Totals{}, entities.NewValidationError("shipping_cost", "must not be negative")
		}
	} else {
		shippingCost = 0
	}

	t := Totals{
		Subtotal:     goods - tax,
		Tax:          tax,
		ShippingCost: shippingCost,
		Total:        goods + shippingCost,
	}
	if err := t.Validate(); err != nil {
		return Totals{}, err
	}
	return t, nil
}

// Recompute пересчитывает итоги корзины по её текущим позициям и способу доставки.
func (c Calculator) Recompute(cart *entities.Cart) error {
	t, err := c.Compute(cart.Items, cart.ShippingMethod, cart.ShippingCost)
	if err != nil {
		return err
	}
	t.Apply(cart)
	return nil
}
