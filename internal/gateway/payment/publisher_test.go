package payment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_tickets/internal/gateway/payment/mocks"
	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func newTestPublisher(w writer) *Publisher {
	p := newPublisher(w, "payments", nopLogger{})
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return p
}

func TestMakePayment_PublishesKeyedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			if len(msgs) != 1 {
				t.Fatalf("want 1 message, got %d", len(msgs))
			}
			msg := msgs[0]
			if string(msg.Key) != "42" {
				t.Fatalf("key: want 42, got %q", msg.Key)
			}
			var req Request
			if err := json.Unmarshal(msg.Value, &req); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if req.AccountID != 42 || req.Amount != 80 || req.RequestID != "rid-1" {
				t.Fatalf("unexpected payload: %+v", req)
			}
			if !req.RequestedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
				t.Fatalf("unexpected requested_at: %v", req.RequestedAt)
			}
			if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != "rid-1" {
				t.Fatalf("unexpected headers: %+v", msg.Headers)
			}
			return nil
		})

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")
	if err := newTestPublisher(w).MakePayment(ctx, 42, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMakePayment_NoRequestID_NoHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			if len(msgs[0].Headers) != 0 {
				t.Fatalf("headers must be empty, got %+v", msgs[0].Headers)
			}
			return nil
		})

	if err := newTestPublisher(w).MakePayment(context.Background(), 1, 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMakePayment_WriteError_Wrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)

	boom := errors.New("broker unavailable")
	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(boom)

	err := newTestPublisher(w).MakePayment(context.Background(), 1, 25)
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped broker error, got %v", err)
	}
}

func TestClose_DelegatesToWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	w.EXPECT().Close().Return(nil)

	if err := newTestPublisher(w).Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
