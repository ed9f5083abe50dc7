package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/ferremas-store/internal/config"
	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSandbox_Charge(t *testing.T) {
	g := gateway.NewSandbox(discardLogger())

	first, err := g.Charge(context.Background(), entities.ChargeRequest{Amount: 12300, Currency: "CLP"})
	require.NoError(t, err)
	second, err := g.Charge(context.Background(), entities.ChargeRequest{Amount: 12300, Currency: "CLP"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.TransactionID, "sandbox_"))
	assert.Equal(t, "sandbox", first.Method)
	assert.NotEqual(t, first.TransactionID, second.TransactionID)

	_, err = g.Charge(context.Background(), entities.ChargeRequest{Amount: 0})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestStripe_Charge(t *testing.T) {
	var (
		gotPath   string
		gotKey    string
		gotAmount string
		gotCurr   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		gotAmount = r.PostForm.Get("amount")
		gotCurr = r.PostForm.Get("currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":12300,"currency":"clp"}`))
	}))
	defer srv.Close()

	g := gateway.NewStripe(discardLogger(), config.Stripe{SecretKey: "sk_test_123", APIURL: srv.URL})

	charge, err := g.Charge(context.Background(), entities.ChargeRequest{
		Amount:         12300,
		Currency:       "CLP",
		IdempotencyKey: "key-1",
		Customer:       7,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.Charge{TransactionID: "pi_123", Method: "stripe"}, charge)
	assert.Equal(t, "/v1/payment_intents", gotPath)
	assert.Equal(t, "key-1", gotKey)
	assert.Equal(t, "12300", gotAmount)
	assert.Equal(t, "clp", gotCurr)
}

func TestStripe_Charge_CardDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	g := gateway.NewStripe(discardLogger(), config.Stripe{SecretKey: "sk_test_123", APIURL: srv.URL})

	_, err := g.Charge(context.Background(), entities.ChargeRequest{Amount: 12300, Currency: "CLP", IdempotencyKey: "key-2"})
	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "payment", ve.Field)
}

func TestSandbox_Cancel(t *testing.T) {
	g := gateway.NewSandbox(discardLogger())

	charge, err := g.Charge(context.Background(), entities.ChargeRequest{Amount: 12300, Currency: "CLP"})
	require.NoError(t, err)

	assert.NoError(t, g.Cancel(context.Background(), charge.TransactionID))
	assert.ErrorIs(t, g.Cancel(context.Background(), "pi_123"), entities.ErrValidation)
}

func TestStripe_Cancel(t *testing.T) {
	var (
		gotPath   string
		gotReason string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotReason = r.PostForm.Get("cancellation_reason")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"canceled"}`))
	}))
	defer srv.Close()

	g := gateway.NewStripe(discardLogger(), config.Stripe{SecretKey: "sk_test_123", APIURL: srv.URL})

	require.NoError(t, g.Cancel(context.Background(), "pi_123"))
	assert.Equal(t, "/v1/payment_intents/pi_123/cancel", gotPath)
	assert.Equal(t, "abandoned", gotReason)
}

func TestStripe_Cancel_AlreadyCaptured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"payment_intent_unexpected_state","message":"This PaymentIntent could not be canceled."}}`))
	}))
	defer srv.Close()

	g := gateway.NewStripe(discardLogger(), config.Stripe{SecretKey: "sk_test_123", APIURL: srv.URL})

	err := g.Cancel(context.Background(), "pi_123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrValidation)
}
