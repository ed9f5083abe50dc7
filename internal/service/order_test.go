package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
	mocks "github.com/SergeyBogomolovv/ferremas-store/internal/service/mocks"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedMachine() fulfillment.Machine {
	return fulfillment.NewMachine(func() time.Time { return fixedNow })
}

func handlerPtr(id entities.HandlerID) *entities.HandlerID { return &id }

func int64Ptr(v int64) *int64 { return &v }

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache)

	cached := entities.Order{ID: 1, Status: entities.OrderStatusPreparing}

	testCases := []struct {
		name         string
		id           int64
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      error
	}{
		{
			name: "from cache",
			id:   1,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get(int64(1)).Return(cached, true)
			},
			want: cached,
		},
		{
			name: "cache miss",
			id:   1,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false)
				cache.EXPECT().Epoch().Return(uint64(4))
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(cached, nil)
				cache.EXPECT().SetIfUnchanged(int64(1), cached, uint64(4)).Return(true)
			},
			want: cached,
		},
		{
			name: "invalidated while reading",
			id:   1,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get(int64(1)).Return(entities.Order{}, false)
				cache.EXPECT().Epoch().Return(uint64(4))
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(cached, nil)
				cache.EXPECT().SetIfUnchanged(int64(1), cached, uint64(4)).Return(false)
			},
			want: cached,
		},
		{
			name: "not found",
			id:   2,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get(int64(2)).Return(entities.Order{}, false)
				cache.EXPECT().Epoch().Return(uint64(0))
				repo.EXPECT().GetOrder(mock.Anything, int64(2)).Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockOrderCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
			order, err := svc.GetOrder(context.Background(), tc.id)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
		})
	}
}

func TestOrderService_GetOrder_StaleReadNotCached(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	lru := cache.NewLRUCache[int64, entities.Order](10, time.Minute)

	stale := entities.Order{ID: 1, Status: entities.OrderStatusPreparing}
	repo.EXPECT().GetOrder(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (entities.Order, error) {
			// переход закоммитился и инвалидировал кэш, пока шло чтение
			lru.Delete(1)
			return stale, nil
		}).Once()

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, lru, fixedMachine())
	order, err := svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, stale, order)

	_, ok := lru.Get(1)
	assert.False(t, ok, "stale order must not be cached")
}

func TestOrderService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockOrderCache(t)

	orders := []entities.Order{{ID: 1}, {ID: 2}, {ID: 3}}
	repo.EXPECT().LatestOrders(mock.Anything, 3).Return(orders, nil)
	for _, o := range orders {
		cache.EXPECT().Set(o.ID, o).Return().Once()
	}

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
	require.NoError(t, svc.WarmUpCache(context.Background(), 3))
}

func TestOrderService_WarmUpCache_Error(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockOrderCache(t)
	repo.EXPECT().LatestOrders(mock.Anything, 10).Return(nil, errors.New("db down"))

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
	assert.Error(t, svc.WarmUpCache(context.Background(), 10))
}

func TestOrderService_AdvanceOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache)

	handler := entities.StaffProfile{ID: 3, UserID: 30, Role: entities.RoleWarehouseHandler, OnShift: true}
	admin := entities.StaffProfile{ID: 1, UserID: 10, Role: entities.RoleAdmin}

	preparing := func(assigned *entities.HandlerID) entities.Order {
		return entities.Order{
			ID:              1,
			CartID:          int64Ptr(5),
			Status:          entities.OrderStatusPreparing,
			AssignedHandler: assigned,
			History: []entities.StatusChange{
				{Status: entities.OrderStatusRequested, Actor: owner},
				{Status: entities.OrderStatusPreparing, Actor: entities.SystemActor},
			},
		}
	}

	testCases := []struct {
		name         string
		to           entities.OrderStatus
		by           entities.StaffProfile
		mockBehavior MockBehavior
		wantErr      error
		wantHooks    int
	}{
		{
			name: "assigned handler marks ready for pickup",
			to:   entities.OrderStatusReadyForPickup,
			by:   handler,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(preparing(handlerPtr(3)), nil)
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					last := o.History[len(o.History)-1]
					return o.Status == entities.OrderStatusReadyForPickup &&
						last.Actor == 30 && last.ChangedAt.Equal(fixedNow) &&
						o.LastModifiedBy == 30
				}), entities.OrderStatusPreparing).Return(nil)
				repo.EXPECT().SetCartStatus(mock.Anything, int64(5), entities.CartStatusInProgress).Return(nil)
				cache.EXPECT().Delete(int64(1)).Return()
			},
			wantHooks: 1,
		},
		{
			name: "admin may move unassigned order",
			to:   entities.OrderStatusShipped,
			by:   admin,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(preparing(nil), nil)
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything, entities.OrderStatusPreparing).Return(nil)
				repo.EXPECT().SetCartStatus(mock.Anything, int64(5), entities.CartStatusShipped).Return(nil)
				cache.EXPECT().Delete(int64(1)).Return()
			},
			wantHooks: 1,
		},
		{
			name: "other handler is rejected",
			to:   entities.OrderStatusShipped,
			by:   handler,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(preparing(handlerPtr(4)), nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name: "skipping a step is illegal",
			to:   entities.OrderStatusDelivered,
			by:   handler,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(preparing(handlerPtr(3)), nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name: "handler cannot cancel",
			to:   entities.OrderStatusCancelled,
			by:   handler,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(preparing(handlerPtr(3)), nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name: "concurrent change",
			to:   entities.OrderStatusShipped,
			by:   handler,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).Return(preparing(handlerPtr(3)), nil)
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything, entities.OrderStatusPreparing).
					Return(entities.ErrStaleOrder)
			},
			wantErr: entities.ErrStaleOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockOrderCache(t)
			tc.mockBehavior(repo, cache)

			var events []fulfillment.Event
			svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
			order, err := svc.AdvanceOrder(context.Background(), 1, tc.to, tc.by, recordHook(&events))

			assert.Len(t, events, tc.wantHooks)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.to, order.Status)
			assert.Equal(t, fulfillment.EventOrderAdvanced, events[0].Kind)
			assert.Equal(t, tc.to, events[0].Change.Status)
			assert.Equal(t, tc.by.UserID, events[0].Change.Actor)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	t.Run("shipped order is cancelled", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockOrderCache(t)

		repo.EXPECT().GetOrder(mock.Anything, int64(1)).
			Return(entities.Order{ID: 1, CartID: int64Ptr(5), Status: entities.OrderStatusShipped}, nil)
		repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
			return o.Status == entities.OrderStatusCancelled && o.LastModifiedBy == 10
		}), entities.OrderStatusShipped).Return(nil)
		repo.EXPECT().SetCartStatus(mock.Anything, int64(5), entities.CartStatusCancelled).Return(nil)
		cache.EXPECT().Delete(int64(1)).Return()

		var events []fulfillment.Event
		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
		order, err := svc.CancelOrder(context.Background(), 1, 10, recordHook(&events))

		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusCancelled, order.Status)
		require.Len(t, events, 1)
		assert.Equal(t, fulfillment.EventOrderCancelled, events[0].Kind)
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockOrderCache(t)

		repo.EXPECT().GetOrder(mock.Anything, int64(1)).
			Return(entities.Order{ID: 1, Status: entities.OrderStatusDelivered}, nil)

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
		_, err := svc.CancelOrder(context.Background(), 1, 10)
		assert.ErrorIs(t, err, entities.ErrIllegalTransition)
	})
}

func TestOrderService_AssignHandler(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantHandler  entities.HandlerID
		wantErr      error
	}{
		{
			name: "least loaded handler, ties by lowest id",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderStatusRequested}, nil)
				repo.EXPECT().HandlerLoads(mock.Anything).Return([]entities.HandlerLoad{
					{Handler: 2, ActiveOrders: 4},
					{Handler: 5, ActiveOrders: 1},
					{Handler: 7, ActiveOrders: 1},
				}, nil)
				repo.EXPECT().SetAssignedHandler(mock.Anything, int64(1), handlerPtr(5)).Return(nil)
				cache.EXPECT().Delete(int64(1)).Return()
			},
			wantHandler: 5,
		},
		{
			name: "nobody on shift",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderStatusPreparing}, nil)
				repo.EXPECT().HandlerLoads(mock.Anything).Return(nil, nil)
			},
			wantErr: entities.ErrValidation,
		},
		{
			name: "closed order",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				repo.EXPECT().GetOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderStatusCancelled}, nil)
			},
			wantErr: entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockOrderCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
			order, err := svc.AssignHandler(context.Background(), 1)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, order.AssignedHandler)
			assert.Equal(t, tc.wantHandler, *order.AssignedHandler)
		})
	}
}

func TestOrderService_ListHandlerOrders(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockOrderCache(t)

	orders := []entities.Order{{ID: 1, AssignedHandler: handlerPtr(3)}}
	repo.EXPECT().HandlerOrders(mock.Anything, entities.HandlerID(3)).Return(orders, nil)

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, fixedMachine())
	got, err := svc.ListHandlerOrders(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
