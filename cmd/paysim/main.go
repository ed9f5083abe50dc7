// paysim публикует статусы платежей в Kafka так же, как это делает webhook-релей шлюза.
// Удобно для локальной проверки оплаты заказов без Stripe.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

type paymentEvent struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func main() {
	var (
		txs      = flag.String("tx", "", "ID транзакций через запятую")
		status   = flag.String("status", string(entities.PaymentStatusCompleted), "PENDING, COMPLETED или FAILED")
		interval = flag.Duration("interval", 0, "пауза между событиями")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *txs == "" || !entities.PaymentStatus(*status).Valid() {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.New().Kafka
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.PaymentsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for _, tx := range strings.Split(*txs, ",") {
		tx = strings.TrimSpace(tx)
		if tx == "" {
			continue
		}

		data, _ := json.Marshal(paymentEvent{TransactionID: tx, Status: *status})
		if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(tx), Value: data}); err != nil {
			logger.Error("failed to publish payment event", slog.String("transaction_id", tx), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("payment event published", slog.String("transaction_id", tx), slog.String("status", *status))

		select {
		case <-time.After(*interval):
		case <-ctx.Done():
			return
		}
	}
}

func init() {
	godotenv.Load()
}
