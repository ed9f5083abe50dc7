package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Pricing Pricing `validate:"required"`

	Stripe Stripe
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID            string   `validate:"required"`
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	PaymentsTopic      string   `validate:"required"`
	NotificationsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Pricing параметры расчёта налога и ограничения платёжного шлюза.
type Pricing struct {
	TaxNumerator   int64  `validate:"gte=0"`
	TaxDenominator int64  `validate:"gt=0,gtefield=TaxNumerator"`
	Currency       string `validate:"required,iso4217"`

	GatewayGranularity int64 `validate:"gt=0"`
	GatewayMinimum     int64 `validate:"gte=0"`

	HomeDeliveryCost int64 `validate:"gte=0"`
}

// Stripe без ключа в development используется локальный sandbox-шлюз.
type Stripe struct {
	SecretKey string
	// APIURL подменяет api.stripe.com, например для stripe-mock.
	APIURL string `validate:"omitempty,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:5173"), ","),
		},

		Kafka: Kafka{
			GroupID:            env("KAFKA_GROUP_ID", "ferremas-store"),
			PaymentsTopic:      env("KAFKA_PAYMENTS_TOPIC", "payment-events"),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "ferremas"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		Pricing: Pricing{
			TaxNumerator:   int64(envInt("TAX_RATE_NUMERATOR", 19)),
			TaxDenominator: int64(envInt("TAX_RATE_DENOMINATOR", 119)),
			Currency:       env("CURRENCY", "CLP"),

			GatewayGranularity: int64(envInt("GATEWAY_GRANULARITY", 50)),
			GatewayMinimum:     int64(envInt("GATEWAY_MINIMUM", 50)),

			HomeDeliveryCost: int64(envInt("HOME_DELIVERY_COST", 3990)),
		},

		Stripe: Stripe{
			SecretKey: env("STRIPE_SECRET_KEY", ""),
			APIURL:    env("STRIPE_API_URL", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(stripeKeyRequired, Config{})
	return validate.Struct(c)
}

// в production платить через sandbox нельзя
func stripeKeyRequired(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.Env == "production" && c.Stripe.SecretKey == "" {
		sl.ReportError(c.Stripe.SecretKey, "Stripe.SecretKey", "SecretKey", "required_in_production", "")
	}
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
