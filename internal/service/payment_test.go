package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
	mocks "github.com/SergeyBogomolovv/ferremas-store/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_UpdatePaymentStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache)

	pending := entities.Payment{ID: 9, OrderID: 1, TransactionID: "pi_1", Status: entities.PaymentStatusPending, Amount: 12300}
	requested := entities.Order{ID: 1, CartID: int64Ptr(5), Status: entities.OrderStatusRequested}

	testCases := []struct {
		name         string
		status       entities.PaymentStatus
		mockBehavior MockBehavior
		wantStatus   entities.PaymentStatus
		wantHooks    int
		wantErr      error
	}{
		{
			name:   "completed payment starts preparation",
			status: entities.PaymentStatusCompleted,
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().PaymentByTransaction(mock.Anything, "pi_1").Return(pending, nil)
				repo.EXPECT().UpdatePaymentStatus(mock.Anything, int64(9), entities.PaymentStatusCompleted).Return(nil)
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(requested, nil)
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					last := o.History[len(o.History)-1]
					return o.Status == entities.OrderStatusPreparing &&
						last.Actor == entities.SystemActor &&
						o.LastModifiedBy == entities.SystemActor
				}), entities.OrderStatusRequested).Return(nil)
				repo.EXPECT().SetCartStatus(mock.Anything, int64(5), entities.CartStatusInProgress).Return(nil)
				cache.EXPECT().Delete(int64(1)).Return()
			},
			wantStatus: entities.PaymentStatusCompleted,
			wantHooks:  1,
		},
		{
			name:   "repeated delivery is a no-op",
			status: entities.PaymentStatusCompleted,
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {
				done := pending
				done.Status = entities.PaymentStatusCompleted
				repo.EXPECT().PaymentByTransaction(mock.Anything, "pi_1").Return(done, nil)
			},
			wantStatus: entities.PaymentStatusCompleted,
		},
		{
			name:   "order already moved on",
			status: entities.PaymentStatusCompleted,
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().PaymentByTransaction(mock.Anything, "pi_1").Return(pending, nil)
				repo.EXPECT().UpdatePaymentStatus(mock.Anything, int64(9), entities.PaymentStatusCompleted).Return(nil)
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderStatusCancelled}, nil)
			},
			wantStatus: entities.PaymentStatusCompleted,
		},
		{
			name:   "failed payment leaves order alone",
			status: entities.PaymentStatusFailed,
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().PaymentByTransaction(mock.Anything, "pi_1").Return(pending, nil)
				repo.EXPECT().UpdatePaymentStatus(mock.Anything, int64(9), entities.PaymentStatusFailed).Return(nil)
			},
			wantStatus: entities.PaymentStatusFailed,
		},
		{
			name:   "completed payment cannot fail",
			status: entities.PaymentStatusFailed,
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {
				done := pending
				done.Status = entities.PaymentStatusCompleted
				repo.EXPECT().PaymentByTransaction(mock.Anything, "pi_1").Return(done, nil)
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:         "unknown status",
			status:       "REFUNDED",
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:   "unknown transaction",
			status: entities.PaymentStatusCompleted,
			mockBehavior: func(repo *mocks.MockPaymentRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().PaymentByTransaction(mock.Anything, "pi_1").
					Return(entities.Payment{}, entities.ErrPaymentNotFound)
			},
			wantErr: entities.ErrPaymentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPaymentRepo(t)
			cache := mocks.NewMockOrderCache(t)
			tc.mockBehavior(repo, cache)

			var events []fulfillment.Event
			svc := service.NewPaymentService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
			payment, err := svc.UpdatePaymentStatus(context.Background(), "pi_1", tc.status, recordHook(&events))

			assert.Len(t, events, tc.wantHooks)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, payment.Status)
			if tc.wantHooks > 0 {
				assert.Equal(t, fulfillment.EventPaymentConfirmed, events[0].Kind)
				assert.Equal(t, entities.OrderStatusPreparing, events[0].Order.Status)
			}
		})
	}
}
