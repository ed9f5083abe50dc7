package entities

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type Payment struct {
	ID            int64
	OrderID       int64
	TransactionID string
	Status        PaymentStatus
	Method        string
	Amount        Money
	CreatedAt     time.Time
}

// ValidateAmount проверяет, что сумма платежа равна точной или скорректированной для шлюза сумме заказа.
func (p Payment) ValidateAmount(exact, payable Money) error {
	if p.Amount != exact && p.Amount != payable {
		return NewValidationError("amount", "must match order total or gateway-adjusted total")
	}
	return nil
}

// ChargeRequest запрос на списание к платёжному шлюзу.
type ChargeRequest struct {
	Amount         Money
	Currency       string
	IdempotencyKey string
	Customer       UserID
	Description    string
}

// Charge ответ платёжного шлюза.
type Charge struct {
	TransactionID string
	Method        string
}
