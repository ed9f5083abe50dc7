package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/utils"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Kind string

const (
	KindWelcome          Kind = "welcome"
	KindPaymentConfirmed Kind = "payment_confirmed"
	KindSpecialOffer     Kind = "special_offer"
)

// Notification сообщение в топике уведомлений. Доставку (почта, push) делает другой сервис.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Recipient int64     `json:"recipient"`
	OrderID   int64     `json:"order_id,omitempty"`
	Total     int64     `json:"total,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Notifier struct {
	logger *slog.Logger
	writer Writer
	retry  utils.RetryConfig
	now    func() time.Time
}

func NewNotifier(logger *slog.Logger, writer Writer) *Notifier {
	return &Notifier{
		logger: logger.With(slog.String("service", "notify")),
		writer: writer,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
		},
		now: time.Now,
	}
}

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}
}

// Welcome хук на создание профиля сотрудника.
func (n *Notifier) Welcome() fulfillment.Hook {
	return func(ctx context.Context, e fulfillment.Event) error {
		return n.send(ctx, Notification{
			Kind:      KindWelcome,
			Recipient: int64(e.Profile.UserID),
			Role:      string(e.Profile.Role),
		})
	}
}

func (n *Notifier) PaymentConfirmed() fulfillment.Hook {
	return func(ctx context.Context, e fulfillment.Event) error {
		return n.send(ctx, Notification{
			Kind:      KindPaymentConfirmed,
			Recipient: int64(e.Order.Customer),
			OrderID:   e.Order.ID,
			Total:     int64(e.Order.Total),
		})
	}
}

// SpecialOffer отправляет предложение покупателю, когда заказ доставлен.
func (n *Notifier) SpecialOffer() fulfillment.Hook {
	return func(ctx context.Context, e fulfillment.Event) error {
		if e.Order.Status != entities.OrderStatusDelivered {
			return nil
		}
		return n.send(ctx, Notification{
			Kind:      KindSpecialOffer,
			Recipient: int64(e.Order.Customer),
			OrderID:   e.Order.ID,
		})
	}
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}

func (n *Notifier) send(ctx context.Context, msg Notification) error {
	msg.ID = uuid.NewString()
	msg.CreatedAt = n.now().UTC()

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	m := kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.Recipient, 10)),
		Value: value,
	}
	err = utils.Retry(ctx, n.retry, func() error {
		return n.writer.WriteMessages(ctx, m)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", msg.Kind, err)
	}

	n.logger.DebugContext(ctx, "notification published",
		slog.String("kind", string(msg.Kind)),
		slog.Int64("recipient", msg.Recipient),
	)
	return nil
}
