package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var cartColumns = []string{
	"id", "owner_id", "status", "subtotal", "tax", "total",
	"shipping_method", "shipping_address", "shipping_cost", "created_at", "updated_at",
}

// ActiveCart возвращает активную корзину пользователя вместе с позициями.
// Внутри транзакции строка корзины блокируется.
func (r *postgresRepo) ActiveCart(ctx context.Context, owner entities.UserID) (entities.Cart, error) {
	b := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.Eq{"owner_id": owner, "status": entities.CartStatusActive})
	query, args := forUpdate(ctx, b).MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		err = notFound(err, entities.ErrCartNotFound)
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.cartItems(ctx, cart.ID)
	if err != nil {
		return entities.Cart{}, err
	}

	return CartToEntity(cart, items), nil
}

// CreateCart создаёт активную корзину. Если параллельный запрос уже создал её,
// возвращается существующая.
func (r *postgresRepo) CreateCart(ctx context.Context, owner entities.UserID) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("owner_id", "status", "shipping_method").
		Values(owner, entities.CartStatusActive, entities.DefaultShippingMethod).
		Suffix("ON CONFLICT (owner_id) WHERE status = 'ACTIVE' DO NOTHING").
		Suffix("RETURNING " + joinColumns(cartColumns)).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return r.ActiveCart(ctx, owner)
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return CartToEntity(cart, nil), nil
}

// UpdateCart сохраняет итоги, доставку и статус корзины.
func (r *postgresRepo) UpdateCart(ctx context.Context, cart entities.Cart) error {
	query, args := r.qb.Update("carts").
		SetMap(map[string]any{
			"status":           cart.Status,
			"subtotal":         cart.Subtotal,
			"tax":              cart.Tax,
			"total":            cart.Total,
			"shipping_method":  cart.ShippingMethod,
			"shipping_address": cart.ShippingAddress,
			"shipping_cost":    cart.ShippingCost,
			"updated_at":       r.now().UTC(),
		}).
		Where(sq.Eq{"id": cart.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrCartNotFound
	}
	return nil
}

func (r *postgresRepo) AddCartItem(ctx context.Context, cartID int64, item entities.LineItem) (int64, error) {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "product_id", "name", "quantity", "unit_price").
		Values(cartID, item.ProductID, item.Name, item.Quantity, item.UnitPrice).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		if isUniqueViolation(err) {
			return 0, entities.NewValidationError("product_id", "product is already in the cart")
		}
		return 0, fmt.Errorf("failed to add cart item: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) UpdateCartItem(ctx context.Context, cartID int64, item entities.LineItem) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", item.Quantity).
		Where(sq.Eq{"id": item.ID, "cart_id": cartID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrLineItemNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteCartItem(ctx context.Context, cartID, itemID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"id": itemID, "cart_id": cartID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrLineItemNotFound
	}
	return nil
}

func (r *postgresRepo) cartItems(ctx context.Context, cartID int64) ([]Item, error) {
	query, args := r.qb.Select(
		"id", "cart_id AS parent_id", "product_id", "name", "quantity", "unit_price").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	return items, nil
}

// SetCartStatus переводит оформленную корзину в статус её заказа.
func (r *postgresRepo) SetCartStatus(ctx context.Context, cartID int64, status entities.CartStatus) error {
	query, args := r.qb.Update("carts").
		Set("status", status).
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"id": cartID}).
		Where(sq.NotEq{"status": entities.CartStatusActive}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update cart status: %w", err)
	}
	return nil
}
