package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	txMocks "github.com/SergeyBogomolovv/ferremas-store/pkg/trm/mocks"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx выполняет callback без настоящей транзакции.
func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).
		Maybe()
	return tx
}

// recordHook запоминает события, с которыми его вызвали.
func recordHook(events *[]fulfillment.Event) fulfillment.Hook {
	return func(_ context.Context, e fulfillment.Event) error {
		*events = append(*events, e)
		return nil
	}
}
