package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/ferremas-store/internal/app"
	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/gateway"
	"github.com/SergeyBogomolovv/ferremas-store/internal/handler"
	"github.com/SergeyBogomolovv/ferremas-store/internal/notify"
	"github.com/SergeyBogomolovv/ferremas-store/internal/postgres"
	"github.com/SergeyBogomolovv/ferremas-store/internal/pricing"
	"github.com/SergeyBogomolovv/ferremas-store/internal/repo"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/cache"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Ferremas Store API
// @version         1.0
// @description     Корзина, оформление заказов и склад Ferremas. Суммы в CLP, цены включают НДС.
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[int64, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	calc := pricing.NewCalculator(pricing.Rate{Num: conf.Pricing.TaxNumerator, Den: conf.Pricing.TaxDenominator})
	adjuster := pricing.NewAdjuster(
		entities.Money(conf.Pricing.GatewayGranularity),
		entities.Money(conf.Pricing.GatewayMinimum),
	)
	machine := fulfillment.NewMachine(nil)

	notifier := notify.NewNotifier(logger, notify.NewKafkaWriter(conf.Kafka))

	cartService := service.NewCartService(logger, txManager, storeRepo, calc, entities.Money(conf.Pricing.HomeDeliveryCost))
	checkoutService := service.NewCheckoutService(logger, txManager, storeRepo, newGateway(logger, conf), calc, adjuster, conf.Pricing.Currency)
	orderService := service.NewOrderService(logger, txManager, storeRepo, orderCache, machine)
	paymentService := service.NewPaymentService(logger, txManager, storeRepo, orderCache, machine)
	staffService := service.NewStaffService(logger, txManager, storeRepo)

	handler.RegisterMetrics()

	httpHandler := handler.NewHTTPHandler(logger, cartService, checkoutService, orderService, staffService, handler.Hooks{
		OrderAdvanced:  []fulfillment.Hook{notifier.SpecialOffer()},
		ProfileCreated: []fulfillment.Hook{notifier.Welcome()},
	})
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, paymentService, notifier.PaymentConfirmed())

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(notifier)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// newGateway без ключа Stripe платежи проходят через sandbox.
func newGateway(logger *slog.Logger, conf config.Config) service.PaymentGateway {
	if conf.Stripe.SecretKey == "" {
		logger.Warn("stripe secret key is not set, using sandbox gateway")
		return gateway.NewSandbox(logger)
	}
	return gateway.NewStripe(logger, conf.Stripe)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
