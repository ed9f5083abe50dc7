package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/pricing"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"

	"github.com/google/uuid"
)

type CheckoutRepo interface {
	ActiveCart(ctx context.Context, owner entities.UserID) (entities.Cart, error)
	UpdateCart(ctx context.Context, cart entities.Cart) error
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	ReserveStock(ctx context.Context, productID int64, quantity int) error

	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	HandlerLoads(ctx context.Context) ([]entities.HandlerLoad, error)
}

type PaymentGateway interface {
	Charge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error)
	Cancel(ctx context.Context, transactionID string) error
}

// Receipt результат оформления заказа.
type Receipt struct {
	Order      entities.Order
	Payment    entities.Payment
	Adjustment pricing.Adjustment
}

// checkoutNamespace пространство имён для ключей идемпотентности платежей.
var checkoutNamespace = uuid.MustParse("6f1c7b52-4c55-4f0e-9a43-3c1f6b7de0a1")

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CheckoutRepo
	gateway   PaymentGateway
	calc      pricing.Calculator
	adjuster  pricing.Adjuster
	currency  string
	now       func() time.Time
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo CheckoutRepo,
	gateway PaymentGateway,
	calc pricing.Calculator,
	adjuster pricing.Adjuster,
	currency string,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
		gateway:   gateway,
		calc:      calc,
		adjuster:  adjuster,
		currency:  currency,
		now:       time.Now,
	}
}

// Checkout оформляет активную корзину в заказ. Сумма к оплате проверяется
// до обращения к шлюзу, всё остальное сохраняется одной транзакцией.
func (s *checkoutService) Checkout(ctx context.Context, owner entities.UserID, hooks ...fulfillment.Hook) (Receipt, error) {
	cart, err := s.repo.ActiveCart(ctx, owner)
	if errors.Is(err, entities.ErrCartNotFound) {
		return Receipt{}, entities.NewValidationError("cart", "cart is empty")
	}
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to get cart: %w", err)
	}

	if len(cart.Items) == 0 {
		return Receipt{}, entities.NewValidationError("cart", "cart is empty")
	}
	if err := s.calc.Recompute(&cart); err != nil {
		return Receipt{}, err
	}

	adj, err := s.adjuster.Adjust(cart.Total)
	if err != nil {
		return Receipt{}, err
	}

	if err := s.checkStock(ctx, cart.Items); err != nil {
		return Receipt{}, err
	}

	charge, err := s.gateway.Charge(ctx, entities.ChargeRequest{
		Amount:         adj.Payable,
		Currency:       s.currency,
		IdempotencyKey: idempotencyKey(cart),
		Customer:       owner,
		Description:    fmt.Sprintf("Ferremas cart #%d", cart.ID),
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to charge payment gateway: %w", err)
	}

	var receipt Receipt
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repo.ActiveCart(ctx, owner)
		if err != nil {
			return err
		}
		if err := s.calc.Recompute(&locked); err != nil {
			return err
		}
		// корзину изменили, пока шла оплата
		if locked.ID != cart.ID || locked.Total != cart.Total {
			return entities.NewValidationError("cart", "cart changed during checkout")
		}

		for _, it := range locked.Items {
			if err := s.repo.ReserveStock(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}

		now := s.now().UTC()
		order := entities.NewOrderFromCart(locked, now)

		loads, err := s.repo.HandlerLoads(ctx)
		if err != nil {
			return err
		}
		if handler, ok := fulfillment.PickHandler(loads); ok {
			order.AssignedHandler = &handler
		}

		order, err = s.repo.CreateOrder(ctx, order)
		if err != nil {
			return err
		}

		payment := entities.Payment{
			OrderID:       order.ID,
			TransactionID: charge.TransactionID,
			Status:        entities.PaymentStatusPending,
			Method:        charge.Method,
			Amount:        adj.Payable,
			CreatedAt:     now,
		}
		if err := payment.ValidateAmount(adj.Exact, adj.Payable); err != nil {
			return err
		}
		payment, err = s.repo.CreatePayment(ctx, payment)
		if err != nil {
			return err
		}

		locked.Status = entities.CartStatusPaid
		if err := s.repo.UpdateCart(ctx, locked); err != nil {
			return err
		}

		receipt = Receipt{Order: order, Payment: payment, Adjustment: adj}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "checkout failed after gateway charge",
			slog.String("transaction_id", charge.TransactionID),
			slog.Any("error", err),
		)
		s.cancelCharge(ctx, charge.TransactionID)
		return Receipt{}, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", receipt.Order.ID),
		slog.Int64("total", int64(adj.Exact)),
		slog.Int64("payable", int64(adj.Payable)),
	)

	fulfillment.RunHooks(ctx, s.logger, fulfillment.Event{
		Kind:   fulfillment.EventOrderPlaced,
		Order:  receipt.Order,
		Change: receipt.Order.History[0],
	}, hooks...)

	return receipt, nil
}

// checkStock отклоняет корзину, если какой-то позиции не хватает на складе.
// Окончательное списание остатков всё равно идёт в транзакции через ReserveStock.
func (s *checkoutService) checkStock(ctx context.Context, items []entities.LineItem) error {
	for _, it := range items {
		product, err := s.repo.GetProduct(ctx, it.ProductID)
		if err != nil {
			return fmt.Errorf("failed to get product %d: %w", it.ProductID, err)
		}
		if product.Stock < it.Quantity {
			return insufficientStock(product)
		}
	}
	return nil
}

// cancelCharge отменяет платёж, под который не удалось создать заказ.
func (s *checkoutService) cancelCharge(ctx context.Context, transactionID string) {
	if err := s.gateway.Cancel(context.WithoutCancel(ctx), transactionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to cancel orphaned charge",
			slog.String("transaction_id", transactionID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.InfoContext(ctx, "orphaned charge cancelled", slog.String("transaction_id", transactionID))
}

// idempotencyKey одинаков для повторных попыток оплаты одной и той же корзины.
// Любое изменение корзины сдвигает updated_at и даёт новый ключ.
func idempotencyKey(cart entities.Cart) string {
	data := fmt.Sprintf("%d:%d:%d", cart.ID, cart.Total, cart.UpdatedAt.UnixNano())
	return uuid.NewSHA1(checkoutNamespace, []byte(data)).String()
}
