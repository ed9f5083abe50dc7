package entities_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderFromCart(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cart := entities.Cart{
		ID:     11,
		Owner:  7,
		Status: entities.CartStatusActive,
		Items: []entities.LineItem{
			{ID: 100, ProductID: 10, Name: "Taladro", Quantity: 2, UnitPrice: 1190},
			{ID: 101, ProductID: 20, Name: "Martillo", Quantity: 1, UnitPrice: 5000},
		},
		Subtotal:        5897,
		Tax:             1483,
		Total:           11370,
		ShippingMethod:  entities.ShippingHomeDelivery,
		ShippingAddress: "Av. Providencia 1234",
		ShippingCost:    3990,
	}

	order := entities.NewOrderFromCart(cart, now)

	assert.Equal(t, entities.UserID(7), order.Customer)
	require.NotNil(t, order.CartID)
	assert.Equal(t, int64(11), *order.CartID)
	assert.Equal(t, entities.OrderStatusRequested, order.Status)
	assert.Equal(t, entities.Money(11370), order.Total)
	assert.Equal(t, entities.ShippingHomeDelivery, order.ShippingMethod)
	assert.Equal(t, "Av. Providencia 1234", order.ShippingAddress)
	assert.Equal(t, entities.Money(3990), order.ShippingCost)
	assert.Nil(t, order.AssignedHandler)
	assert.Equal(t, now, order.CreatedAt)

	require.Len(t, order.Items, 2)
	for i, it := range order.Items {
		assert.Zero(t, it.ID, "order items get their own ids")
		assert.Equal(t, cart.Items[i].ProductID, it.ProductID)
		assert.Equal(t, cart.Items[i].UnitPrice, it.UnitPrice)
		assert.Equal(t, cart.Items[i].Quantity, it.Quantity)
	}

	require.Len(t, order.History, 1)
	assert.Equal(t, entities.StatusChange{Status: entities.OrderStatusRequested, ChangedAt: now, Actor: 7}, order.History[0])

	// позиции корзины не меняются
	assert.Equal(t, int64(100), cart.Items[0].ID)
}

func TestOrder_Clone(t *testing.T) {
	cartID := int64(11)
	handler := entities.HandlerID(3)
	order := entities.Order{
		ID:              5,
		CartID:          &cartID,
		Items:           []entities.LineItem{{ProductID: 10, Quantity: 1, UnitPrice: 1190}},
		History:         []entities.StatusChange{{Status: entities.OrderStatusRequested}},
		AssignedHandler: &handler,
	}

	clone := order.Clone()
	clone.Items[0].Quantity = 5
	clone.History = append(clone.History, entities.StatusChange{Status: entities.OrderStatusPreparing})
	*clone.CartID = 99
	*clone.AssignedHandler = 4

	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Len(t, order.History, 1)
	assert.Equal(t, int64(11), *order.CartID)
	assert.True(t, order.IsAssignedTo(3))
	assert.True(t, clone.IsAssignedTo(4))
}

func TestOrder_IsAssignedTo(t *testing.T) {
	var order entities.Order
	assert.False(t, order.IsAssignedTo(0))

	h := entities.HandlerID(3)
	order.AssignedHandler = &h
	assert.True(t, order.IsAssignedTo(3))
	assert.False(t, order.IsAssignedTo(4))
}

func TestOrderStatus_CartStatus(t *testing.T) {
	testCases := []struct {
		status entities.OrderStatus
		want   entities.CartStatus
		ok     bool
	}{
		{entities.OrderStatusRequested, "", false},
		{entities.OrderStatusPreparing, entities.CartStatusInProgress, true},
		{entities.OrderStatusReadyForPickup, entities.CartStatusInProgress, true},
		{entities.OrderStatusShipped, entities.CartStatusShipped, true},
		{entities.OrderStatusDelivered, entities.CartStatusDelivered, true},
		{entities.OrderStatusCancelled, entities.CartStatusCancelled, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			got, ok := tc.status.CartStatus()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, entities.OrderStatusDelivered.Terminal())
	assert.True(t, entities.OrderStatusCancelled.Terminal())
	assert.False(t, entities.OrderStatusShipped.Terminal())
	assert.False(t, entities.OrderStatus("LOST").Valid())
}

func TestLineItem_Validate(t *testing.T) {
	testCases := []struct {
		name  string
		item  entities.LineItem
		field string
	}{
		{name: "valid", item: entities.LineItem{ProductID: 1, Quantity: 1, UnitPrice: 1}},
		{name: "no product", item: entities.LineItem{Quantity: 1, UnitPrice: 1}, field: "product_id"},
		{name: "zero quantity", item: entities.LineItem{ProductID: 1, UnitPrice: 1}, field: "quantity"},
		{name: "free item", item: entities.LineItem{ProductID: 1, Quantity: 1}, field: "unit_price"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *entities.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
}

func TestPayment_ValidateAmount(t *testing.T) {
	assert.NoError(t, entities.Payment{Amount: 12345}.ValidateAmount(12345, 12300))
	assert.NoError(t, entities.Payment{Amount: 12300}.ValidateAmount(12345, 12300))
	assert.ErrorIs(t, entities.Payment{Amount: 12000}.ValidateAmount(12345, 12300), entities.ErrValidation)
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, entities.ErrNotAssigned, entities.ErrForbidden)
	assert.ErrorIs(t, entities.ErrOrderNotFound, entities.ErrNotFound)
	assert.False(t, errors.Is(entities.ErrOrderNotFound, entities.ErrCartNotFound))

	te := &entities.TransitionError{From: entities.OrderStatusDelivered, To: entities.OrderStatusCancelled, Reason: "order is closed"}
	assert.ErrorIs(t, te, entities.ErrIllegalTransition)
	assert.EqualError(t, te, "cannot move order from DELIVERED to CANCELLED: order is closed")

	bme := &entities.BelowMinimumError{Amount: 0, Minimum: 50}
	assert.ErrorIs(t, bme, entities.ErrBelowMinimumAmount)
}
