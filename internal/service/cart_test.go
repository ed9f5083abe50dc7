package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/pricing"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
	mocks "github.com/SergeyBogomolovv/ferremas-store/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	owner            entities.UserID = 7
	homeDeliveryCost entities.Money  = 3990
)

func TestCartService_AddItem(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCartRepo)

	drill := entities.Product{ID: 10, Name: "Taladro", Price: 1190, Stock: 5}

	testCases := []struct {
		name         string
		productID    int64
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
		wantItems    []entities.LineItem
		wantTotal    entities.Money
		wantTax      entities.Money
	}{
		{
			name:      "new product freezes current price",
			productID: 10,
			quantity:  2,
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().ActiveCart(mock.Anything, owner).
					Return(entities.Cart{ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup}, nil)
				repo.EXPECT().GetProduct(mock.Anything, int64(10)).Return(drill, nil)
				repo.EXPECT().AddCartItem(mock.Anything, int64(1), entities.LineItem{
					ProductID: 10, Name: "Taladro", Quantity: 2, UnitPrice: 1190,
				}).Return(int64(100), nil)
				repo.EXPECT().UpdateCart(mock.Anything, mock.Anything).Return(nil)
			},
			wantItems: []entities.LineItem{{ID: 100, ProductID: 10, Name: "Taladro", Quantity: 2, UnitPrice: 1190}},
			wantTotal: 2380,
			wantTax:   380,
		},
		{
			name:      "same product merges quantity and keeps frozen price",
			productID: 10,
			quantity:  2,
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().ActiveCart(mock.Anything, owner).Return(entities.Cart{
					ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup,
					Items: []entities.LineItem{{ID: 100, ProductID: 10, Name: "Taladro", Quantity: 1, UnitPrice: 1000}},
				}, nil)
				repo.EXPECT().GetProduct(mock.Anything, int64(10)).Return(drill, nil)
				repo.EXPECT().UpdateCartItem(mock.Anything, int64(1), entities.LineItem{
					ID: 100, ProductID: 10, Name: "Taladro", Quantity: 3, UnitPrice: 1000,
				}).Return(nil)
				repo.EXPECT().UpdateCart(mock.Anything, mock.Anything).Return(nil)
			},
			wantItems: []entities.LineItem{{ID: 100, ProductID: 10, Name: "Taladro", Quantity: 3, UnitPrice: 1000}},
			wantTotal: 3000,
			wantTax:   479,
		},
		{
			name:      "creates cart when user has none",
			productID: 10,
			quantity:  1,
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().ActiveCart(mock.Anything, owner).Return(entities.Cart{}, entities.ErrCartNotFound)
				repo.EXPECT().CreateCart(mock.Anything, owner).
					Return(entities.Cart{ID: 2, Owner: owner, ShippingMethod: entities.ShippingPickup}, nil)
				repo.EXPECT().GetProduct(mock.Anything, int64(10)).Return(drill, nil)
				repo.EXPECT().AddCartItem(mock.Anything, int64(2), mock.Anything).Return(int64(101), nil)
				repo.EXPECT().UpdateCart(mock.Anything, mock.Anything).Return(nil)
			},
			wantItems: []entities.LineItem{{ID: 101, ProductID: 10, Name: "Taladro", Quantity: 1, UnitPrice: 1190}},
			wantTotal: 1190,
			wantTax:   190,
		},
		{
			name:      "not enough stock",
			productID: 10,
			quantity:  6,
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().ActiveCart(mock.Anything, owner).
					Return(entities.Cart{ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup}, nil)
				repo.EXPECT().GetProduct(mock.Anything, int64(10)).Return(drill, nil)
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:      "unknown product",
			productID: 99,
			quantity:  1,
			mockBehavior: func(repo *mocks.MockCartRepo) {
				repo.EXPECT().ActiveCart(mock.Anything, owner).
					Return(entities.Cart{ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup}, nil)
				repo.EXPECT().GetProduct(mock.Anything, int64(99)).Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:         "zero quantity",
			productID:    10,
			quantity:     0,
			mockBehavior: func(repo *mocks.MockCartRepo) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCartRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
				pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

			cart, err := svc.AddItem(context.Background(), owner, tc.productID, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantItems, cart.Items)
			assert.Equal(t, tc.wantTotal, cart.Total)
			assert.Equal(t, tc.wantTax, cart.Tax)
			assert.Equal(t, cart.Total, cart.Subtotal+cart.Tax)
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	repo := mocks.NewMockCartRepo(t)
	repo.EXPECT().ActiveCart(mock.Anything, owner).Return(entities.Cart{
		ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup,
		Items: []entities.LineItem{{ID: 100, ProductID: 10, Quantity: 1, UnitPrice: 119}},
	}, nil)
	repo.EXPECT().GetProduct(mock.Anything, int64(10)).Return(entities.Product{ID: 10, Price: 119, Stock: 10}, nil)
	repo.EXPECT().UpdateCartItem(mock.Anything, int64(1), mock.MatchedBy(func(it entities.LineItem) bool {
		return it.ID == 100 && it.Quantity == 4
	})).Return(nil)
	repo.EXPECT().UpdateCart(mock.Anything, mock.MatchedBy(func(c entities.Cart) bool {
		return c.Total == 476 && c.Tax == 76 && c.Subtotal == 400
	})).Return(nil)

	svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
		pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

	cart, err := svc.UpdateItem(context.Background(), owner, 100, 4)
	require.NoError(t, err)
	assert.Equal(t, entities.Money(476), cart.Total)
}

func TestCartService_UpdateItem_Errors(t *testing.T) {
	cart := entities.Cart{
		ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup,
		Items: []entities.LineItem{{ID: 100, ProductID: 10, Quantity: 1, UnitPrice: 119}},
	}

	t.Run("unknown item", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		repo.EXPECT().ActiveCart(mock.Anything, owner).Return(cart, nil)

		svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
			pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

		_, err := svc.UpdateItem(context.Background(), owner, 555, 1)
		assert.ErrorIs(t, err, entities.ErrLineItemNotFound)
	})

	t.Run("quantity below one", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
			pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

		_, err := svc.UpdateItem(context.Background(), owner, 100, 0)
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "quantity", ve.Field)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	repo := mocks.NewMockCartRepo(t)
	repo.EXPECT().ActiveCart(mock.Anything, owner).Return(entities.Cart{
		ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup,
		Items: []entities.LineItem{
			{ID: 100, ProductID: 10, Quantity: 1, UnitPrice: 119},
			{ID: 101, ProductID: 11, Quantity: 2, UnitPrice: 238},
		},
	}, nil)
	repo.EXPECT().DeleteCartItem(mock.Anything, int64(1), int64(100)).Return(nil)
	repo.EXPECT().UpdateCart(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
		pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

	cart, err := svc.RemoveItem(context.Background(), owner, 100)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, entities.Money(476), cart.Total)
	assert.Equal(t, entities.Money(76), cart.Tax)
}

func TestCartService_SetShipping(t *testing.T) {
	base := entities.Cart{
		ID: 1, Owner: owner, ShippingMethod: entities.ShippingPickup,
		Items: []entities.LineItem{{ID: 100, ProductID: 10, Quantity: 1, UnitPrice: 1190}},
	}

	testCases := []struct {
		name         string
		method       entities.ShippingMethod
		address      string
		withRepo     bool
		wantErr      error
		wantShipping entities.Money
		wantTotal    entities.Money
	}{
		{
			name:         "home delivery adds configured cost",
			method:       entities.ShippingHomeDelivery,
			address:      "Av. Providencia 1234, Santiago",
			withRepo:     true,
			wantShipping: homeDeliveryCost,
			wantTotal:    1190 + homeDeliveryCost,
		},
		{
			name:      "pickup has no shipping cost",
			method:    entities.ShippingPickup,
			address:   "ignored",
			withRepo:  true,
			wantTotal: 1190,
		},
		{
			name:    "home delivery without address",
			method:  entities.ShippingHomeDelivery,
			wantErr: entities.ErrValidation,
		},
		{
			name:    "unknown method",
			method:  "DRONE",
			wantErr: entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCartRepo(t)
			if tc.withRepo {
				repo.EXPECT().ActiveCart(mock.Anything, owner).Return(base, nil)
				repo.EXPECT().UpdateCart(mock.Anything, mock.Anything).Return(nil)
			}

			svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
				pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

			cart, err := svc.SetShipping(context.Background(), owner, tc.method, tc.address)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.method, cart.ShippingMethod)
			assert.Equal(t, tc.wantShipping, cart.ShippingCost)
			assert.Equal(t, tc.wantTotal, cart.Total)
			assert.Equal(t, entities.Money(190), cart.Tax)
		})
	}
}

func TestCartService_GetCart(t *testing.T) {
	repo := mocks.NewMockCartRepo(t)
	repo.EXPECT().ActiveCart(mock.Anything, owner).Return(entities.Cart{}, entities.ErrCartNotFound)
	repo.EXPECT().CreateCart(mock.Anything, owner).Return(entities.Cart{ID: 3, Owner: owner}, nil)

	svc := service.NewCartService(discardLogger(), passthroughTx(t), repo,
		pricing.NewCalculator(pricing.ChileanVAT), homeDeliveryCost)

	cart, err := svc.GetCart(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cart.ID)
}
