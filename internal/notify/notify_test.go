package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/notify"
	mocks "github.com/SergeyBogomolovv/ferremas-store/internal/notify/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capture сохраняет опубликованные уведомления.
func capture(t *testing.T, w *mocks.MockWriter, out *[]notify.Notification, keys *[]string) {
	w.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			for _, m := range msgs {
				var n notify.Notification
				require.NoError(t, json.Unmarshal(m.Value, &n))
				*out = append(*out, n)
				*keys = append(*keys, string(m.Key))
			}
			return nil
		})
}

func TestNotifier_Hooks(t *testing.T) {
	delivered := entities.Order{ID: 5, Customer: 7, Status: entities.OrderStatusDelivered, Total: 12345}

	testCases := []struct {
		name      string
		hook      func(n *notify.Notifier) fulfillment.Hook
		event     fulfillment.Event
		wantKind  notify.Kind
		wantKey   string
		wantOrder int64
	}{
		{
			name: "welcome",
			hook: (*notify.Notifier).Welcome,
			event: fulfillment.Event{
				Kind:    fulfillment.EventProfileCreated,
				Profile: entities.StaffProfile{ID: 3, UserID: 30, Role: entities.RoleWarehouseHandler},
			},
			wantKind: notify.KindWelcome,
			wantKey:  "30",
		},
		{
			name: "payment confirmed",
			hook: (*notify.Notifier).PaymentConfirmed,
			event: fulfillment.Event{
				Kind:  fulfillment.EventPaymentConfirmed,
				Order: entities.Order{ID: 5, Customer: 7, Status: entities.OrderStatusPreparing, Total: 12345},
			},
			wantKind:  notify.KindPaymentConfirmed,
			wantKey:   "7",
			wantOrder: 5,
		},
		{
			name:      "special offer on delivery",
			hook:      (*notify.Notifier).SpecialOffer,
			event:     fulfillment.Event{Kind: fulfillment.EventOrderAdvanced, Order: delivered},
			wantKind:  notify.KindSpecialOffer,
			wantKey:   "7",
			wantOrder: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := mocks.NewMockWriter(t)
			var (
				sent []notify.Notification
				keys []string
			)
			capture(t, w, &sent, &keys)

			n := notify.NewNotifier(discardLogger(), w)
			require.NoError(t, tc.hook(n)(context.Background(), tc.event))

			require.Len(t, sent, 1)
			assert.Equal(t, tc.wantKind, sent[0].Kind)
			assert.Equal(t, tc.wantOrder, sent[0].OrderID)
			assert.NotEmpty(t, sent[0].ID)
			assert.False(t, sent[0].CreatedAt.IsZero())
			assert.Equal(t, []string{tc.wantKey}, keys)
		})
	}
}

func TestNotifier_SpecialOfferSkipsOtherStatuses(t *testing.T) {
	w := mocks.NewMockWriter(t)
	n := notify.NewNotifier(discardLogger(), w)

	for _, status := range []entities.OrderStatus{
		entities.OrderStatusPreparing,
		entities.OrderStatusShipped,
		entities.OrderStatusReadyForPickup,
	} {
		err := n.SpecialOffer()(context.Background(), fulfillment.Event{
			Kind:  fulfillment.EventOrderAdvanced,
			Order: entities.Order{ID: 5, Customer: 7, Status: status},
		})
		assert.NoError(t, err)
	}
}

func TestNotifier_RetriesThenFails(t *testing.T) {
	w := mocks.NewMockWriter(t)
	w.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker unavailable")).Times(3)

	n := notify.NewNotifier(discardLogger(), w)
	err := n.PaymentConfirmed()(context.Background(), fulfillment.Event{
		Kind:  fulfillment.EventPaymentConfirmed,
		Order: entities.Order{ID: 5, Customer: 7},
	})
	assert.ErrorContains(t, err, "broker unavailable")
}

func TestNotifier_Close(t *testing.T) {
	w := mocks.NewMockWriter(t)
	w.EXPECT().Close().Return(nil)

	assert.NoError(t, notify.NewNotifier(discardLogger(), w).Close())
}
