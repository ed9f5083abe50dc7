package pricing

import "github.com/SergeyBogomolovv/ferremas-store/internal/entities"

const (
	DefaultGranularity entities.Money = 50
	DefaultMinimum     entities.Money = 50
)

// Adjustment сумма к оплате через шлюз и её отличие от точной суммы.
type Adjustment struct {
	Exact   entities.Money
	Payable entities.Money
	Delta   entities.Money
}

// Adjuster приводит сумму к шагу, который принимает платёжный шлюз.
// Округление всегда вниз, чтобы клиент не заплатил больше, чем видел.
type Adjuster struct {
	Granularity entities.Money
	Minimum     entities.Money
}

func NewAdjuster(granularity, minimum entities.Money) Adjuster {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	if minimum < 0 {
		minimum = 0
	}
	return Adjuster{Granularity: granularity, Minimum: minimum}
}

func (a Adjuster) Adjust(total entities.Money) (Adjustment, error) {
	if total < 0 {
		return Adjustment{}, entities.NewValidationError("total", "must not be negative")
	}

	payable := entities.Money(FloorTo(int64(total), int64(a.Granularity)))
	if payable < a.Minimum {
		return Adjustment{}, &entities.BelowMinimumError{Amount: payable, Minimum: a.Minimum}
	}

	return Adjustment{
		Exact:   total,
		Payable: payable,
		Delta:   payable - total,
	}, nil
}
