package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PaymentUpdater interface {
	UpdatePaymentStatus(ctx context.Context, transactionID string, status entities.PaymentStatus, hooks ...fulfillment.Hook) (entities.Payment, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentUpdater
	hooks    []fulfillment.Hook
}

// NewKafkaHandler читает статусы платежей, которые шлюз присылает через webhook-релей.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, payments PaymentUpdater, hooks ...fulfillment.Hook) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.PaymentsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return NewPaymentEventsHandler(logger, reader, dlq, payments, hooks...)
}

func NewPaymentEventsHandler(
	logger *slog.Logger,
	reader MessageReader,
	dlq MessageWriter,
	payments PaymentUpdater,
	hooks ...fulfillment.Hook,
) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: newValidator(),
		payments: payments,
		hooks:    hooks,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		paymentEventsInProgress.Inc()
		start := time.Now()

		if err := h.handlePaymentEvent(ctx, m); err != nil {
			paymentEventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// Повторы сделает сам kafka-go
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				paymentEventsInProgress.Dec()
				continue
			}
			paymentEventsDLQ.Inc()
		} else {
			paymentEventsProcessed.Inc()
		}

		paymentEventDuration.Observe(time.Since(start).Seconds())
		paymentEventsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	_, err := h.payments.UpdatePaymentStatus(ctx, event.TransactionID, entities.PaymentStatus(event.Status), h.hooks...)
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
