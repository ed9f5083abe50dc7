package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "brand", "price", "stock").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	if err := r.getContext(ctx, &product, query, args...); err != nil {
		err = notFound(err, entities.ErrProductNotFound)
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// ReserveStock списывает остаток товара. Если товара не хватает, ничего не меняется.
func (r *postgresRepo) ReserveStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if n > 0 {
		return nil
	}

	// различаем отсутствующий товар и нехватку остатка
	if _, err := r.GetProduct(ctx, productID); err != nil {
		return err
	}
	return entities.NewValidationError("quantity", fmt.Sprintf("insufficient stock for product %d", productID))
}
