package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const methodStripe = "stripe"

type Stripe struct {
	logger *slog.Logger
	api    *client.API
}

func NewStripe(logger *slog.Logger, cfg config.Stripe) *Stripe {
	var backends *stripe.Backends
	if cfg.APIURL != "" {
		backends = &stripe.Backends{
			API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
				URL:               stripe.String(cfg.APIURL),
				MaxNetworkRetries: stripe.Int64(0),
				LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
			}),
		}
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, backends)

	return &Stripe{
		logger: logger.With(slog.String("gateway", methodStripe)),
		api:    api,
	}
}

// Charge создаёт PaymentIntent на сумму, уже приведённую к шагу шлюза.
// CLP в Stripe валюта без дробной части, сумма передаётся в песо.
func (s *Stripe) Charge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(req.Amount)),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	params.AddMetadata("customer_id", strconv.FormatInt(int64(req.Customer), 10))

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && serr.Type == stripe.ErrorTypeCard {
			return entities.Charge{}, entities.NewValidationError("payment", serr.Msg)
		}
		return entities.Charge{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.InfoContext(ctx, "payment intent created",
		slog.String("transaction_id", pi.ID),
		slog.Int64("amount", pi.Amount),
	)
	return entities.Charge{TransactionID: pi.ID, Method: methodStripe}, nil
}

// Cancel отменяет PaymentIntent, под который не удалось создать заказ.
func (s *Stripe) Cancel(ctx context.Context, transactionID string) error {
	params := &stripe.PaymentIntentCancelParams{
		CancellationReason: stripe.String("abandoned"),
	}
	params.Context = ctx

	if _, err := s.api.PaymentIntents.Cancel(transactionID, params); err != nil {
		return fmt.Errorf("failed to cancel payment intent %s: %w", transactionID, err)
	}

	s.logger.InfoContext(ctx, "payment intent cancelled", slog.String("transaction_id", transactionID))
	return nil
}
