package fulfillment

import "github.com/SergeyBogomolovv/ferremas-store/internal/entities"

// PickHandler выбирает кладовщика на смене с наименьшим числом активных заказов.
// При равенстве побеждает первый в списке. Пустой список означает, что назначать некого.
func PickHandler(loads []entities.HandlerLoad) (entities.HandlerID, bool) {
	if len(loads) == 0 {
		return 0, false
	}

	best := loads[0]
	for _, l := range loads[1:] {
		if l.ActiveOrders < best.ActiveOrders {
			best = l
		}
	}
	return best.Handler, true
}
