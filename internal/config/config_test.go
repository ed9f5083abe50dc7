package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "ferremas")
	t.Setenv("POSTGRES_PASSWORD", "secret")
}

func TestNew_Defaults(t *testing.T) {
	validEnv(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, int64(19), conf.Pricing.TaxNumerator)
	assert.Equal(t, int64(119), conf.Pricing.TaxDenominator)
	assert.Equal(t, "CLP", conf.Pricing.Currency)
	assert.Equal(t, int64(50), conf.Pricing.GatewayGranularity)
	assert.Equal(t, int64(50), conf.Pricing.GatewayMinimum)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 5*time.Minute, conf.Cache.TTL)
}

func TestNew_FromEnv(t *testing.T) {
	validEnv(t)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("GATEWAY_GRANULARITY", "100")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, int64(100), conf.Pricing.GatewayGranularity)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, 5432, conf.Postgres.Port)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "unknown env", mutate: func(c *config.Config) { c.Env = "dev" }},
		{name: "missing db user", mutate: func(c *config.Config) { c.Postgres.User = "" }},
		{name: "bad currency", mutate: func(c *config.Config) { c.Pricing.Currency = "PESO" }},
		{name: "zero granularity", mutate: func(c *config.Config) { c.Pricing.GatewayGranularity = 0 }},
		{name: "tax rate above one", mutate: func(c *config.Config) { c.Pricing.TaxNumerator = 200 }},
		{name: "no stripe key in production", mutate: func(c *config.Config) { c.Env = "production" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			validEnv(t)
			conf := config.New()
			tc.mutate(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
