package entities

import "time"

// HandlerID идентификатор профиля сотрудника склада. Используется везде,
// где нужно сравнить назначенного кладовщика с текущим.
type HandlerID int64

type StaffRole string

const (
	RoleCustomer         StaffRole = "CUSTOMER"
	RoleWarehouseHandler StaffRole = "WAREHOUSE_HANDLER"
	RoleAccountant       StaffRole = "ACCOUNTANT"
	RoleAdmin            StaffRole = "ADMIN"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleWarehouseHandler, RoleAccountant, RoleAdmin:
		return true
	}
	return false
}

type StaffProfile struct {
	ID             HandlerID
	UserID         UserID
	Role           StaffRole
	OnShift        bool
	ShiftStartedAt *time.Time
	ShiftEndedAt   *time.Time
	CreatedAt      time.Time
}

// HandlerLoad количество активных заказов у кладовщика на смене.
type HandlerLoad struct {
	Handler      HandlerID
	ActiveOrders int
}
