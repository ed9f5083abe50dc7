package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/pricing"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"
)

type CartRepo interface {
	// ActiveCart внутри транзакции блокирует строку корзины.
	ActiveCart(ctx context.Context, owner entities.UserID) (entities.Cart, error)
	CreateCart(ctx context.Context, owner entities.UserID) (entities.Cart, error)
	UpdateCart(ctx context.Context, cart entities.Cart) error

	AddCartItem(ctx context.Context, cartID int64, item entities.LineItem) (int64, error)
	UpdateCartItem(ctx context.Context, cartID int64, item entities.LineItem) error
	DeleteCartItem(ctx context.Context, cartID, itemID int64) error

	GetProduct(ctx context.Context, id int64) (entities.Product, error)
}

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CartRepo
	calc      pricing.Calculator

	homeDeliveryCost entities.Money
}

func NewCartService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo CartRepo,
	calc pricing.Calculator,
	homeDeliveryCost entities.Money,
) *cartService {
	return &cartService{
		logger:           logger.With(slog.String("service", "cart")),
		txManager:        txManager,
		repo:             repo,
		calc:             calc,
		homeDeliveryCost: homeDeliveryCost,
	}
}

// GetCart возвращает активную корзину пользователя, создавая её при необходимости.
func (s *cartService) GetCart(ctx context.Context, owner entities.UserID) (entities.Cart, error) {
	return s.activeCart(ctx, owner)
}

// AddItem добавляет товар в корзину. Если товар уже есть, количество суммируется,
// а цена остаётся той, что была зафиксирована при первом добавлении.
func (s *cartService) AddItem(ctx context.Context, owner entities.UserID, productID int64, quantity int) (entities.Cart, error) {
	if quantity < 1 {
		return entities.Cart{}, entities.NewValidationError("quantity", "must be at least 1")
	}

	return s.mutate(ctx, owner, func(ctx context.Context, cart *entities.Cart) error {
		product, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return err
		}

		if existing, ok := cart.ItemByProduct(productID); ok {
			if existing.Quantity+quantity > product.Stock {
				return insufficientStock(product)
			}
			existing.Quantity += quantity
			return s.repo.UpdateCartItem(ctx, cart.ID, *existing)
		}

		if quantity > product.Stock {
			return insufficientStock(product)
		}
		item := entities.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}
		if err := item.Validate(); err != nil {
			return err
		}

		item.ID, err = s.repo.AddCartItem(ctx, cart.ID, item)
		if err != nil {
			return err
		}
		cart.Items = append(cart.Items, item)
		return nil
	})
}

// UpdateItem меняет количество позиции корзины.
func (s *cartService) UpdateItem(ctx context.Context, owner entities.UserID, itemID int64, quantity int) (entities.Cart, error) {
	if quantity < 1 {
		return entities.Cart{}, entities.NewValidationError("quantity", "must be at least 1")
	}

	return s.mutate(ctx, owner, func(ctx context.Context, cart *entities.Cart) error {
		item, ok := cart.Item(itemID)
		if !ok {
			return entities.ErrLineItemNotFound
		}

		product, err := s.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if quantity > product.Stock {
			return insufficientStock(product)
		}

		item.Quantity = quantity
		return s.repo.UpdateCartItem(ctx, cart.ID, *item)
	})
}

func (s *cartService) RemoveItem(ctx context.Context, owner entities.UserID, itemID int64) (entities.Cart, error) {
	return s.mutate(ctx, owner, func(ctx context.Context, cart *entities.Cart) error {
		if !cart.RemoveItem(itemID) {
			return entities.ErrLineItemNotFound
		}
		return s.repo.DeleteCartItem(ctx, cart.ID, itemID)
	})
}

// SetShipping выбирает способ доставки. Для доставки на дом нужен адрес,
// стоимость берётся из настроек магазина.
func (s *cartService) SetShipping(ctx context.Context, owner entities.UserID, method entities.ShippingMethod, address string) (entities.Cart, error) {
	if !method.Valid() {
		return entities.Cart{}, entities.NewValidationError("shipping_method", "must be PICKUP or HOME_DELIVERY")
	}
	if method == entities.ShippingHomeDelivery && address == "" {
		return entities.Cart{}, entities.NewValidationError("shipping_address", "required for home delivery")
	}

	return s.mutate(ctx, owner, func(ctx context.Context, cart *entities.Cart) error {
		cart.ShippingMethod = method
		cart.ShippingAddress = address
		cart.ShippingCost = 0
		if method == entities.ShippingHomeDelivery {
			cart.ShippingCost = s.homeDeliveryCost
		} else {
			cart.ShippingAddress = ""
		}
		return nil
	})
}

// mutate выполняет изменение корзины и пересчёт итогов в одной транзакции.
func (s *cartService) mutate(
	ctx context.Context,
	owner entities.UserID,
	fn func(ctx context.Context, cart *entities.Cart) error,
) (entities.Cart, error) {
	var cart entities.Cart
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		cart, err = s.activeCart(ctx, owner)
		if err != nil {
			return err
		}

		if err := fn(ctx, &cart); err != nil {
			return err
		}

		if err := s.calc.Recompute(&cart); err != nil {
			return err
		}
		return s.repo.UpdateCart(ctx, cart)
	})
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart updated",
		slog.Int64("cart_id", cart.ID),
		slog.Int64("total", int64(cart.Total)),
	)
	return cart, nil
}

func (s *cartService) activeCart(ctx context.Context, owner entities.UserID) (entities.Cart, error) {
	cart, err := s.repo.ActiveCart(ctx, owner)
	if errors.Is(err, entities.ErrCartNotFound) {
		cart, err = s.repo.CreateCart(ctx, owner)
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get active cart: %w", err)
	}
	return cart, nil
}

func insufficientStock(p entities.Product) error {
	return entities.NewValidationError("quantity", fmt.Sprintf("only %d units of %q in stock", p.Stock, p.Name))
}
