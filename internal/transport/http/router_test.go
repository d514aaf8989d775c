package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports/mocks"
	rest "github.com/Gunvolt24/wb_tickets/internal/transport/http"
	"github.com/Gunvolt24/wb_tickets/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(svc *mocks.MockTicketPurchaser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return rest.NewRouter(rest.NewHandler(svc, noopLogger{}, time.Second), "")
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPurchase_OK_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTicketPurchaser(ctrl)

	svc.EXPECT().PurchaseTickets(gomock.Any(), int64(1),
		domain.NewTicketTypeRequest(domain.Adult, 2),
		domain.NewTicketTypeRequest(domain.Child, 2),
	).Return(nil)

	w := post(newRouter(svc), "/purchases",
		`{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":2},{"type":"CHILD","no_of_tickets":2}]}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID must be set")
	}
}

func TestPurchase_Rejected_422(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTicketPurchaser(ctrl)

	svc.EXPECT().PurchaseTickets(gomock.Any(), int64(1), gomock.Any()).
		Return(validate.Reject(validate.ReasonAdultRequired))

	w := post(newRouter(svc), "/purchases", `{"account_id":1,"tickets":[{"type":"CHILD","no_of_tickets":1}]}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d, body=%s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(body["error"], validate.ReasonAdultRequired) {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestPurchase_CollaboratorFailure_502(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTicketPurchaser(ctrl)

	svc.EXPECT().PurchaseTickets(gomock.Any(), int64(1), gomock.Any()).Return(errors.New("payment gateway down"))

	w := post(newRouter(svc), "/purchases", `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":1}]}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPurchase_Timeout_504(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTicketPurchaser(ctrl)

	svc.EXPECT().PurchaseTickets(gomock.Any(), int64(1), gomock.Any()).Return(context.DeadlineExceeded)

	w := post(newRouter(svc), "/purchases", `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":1}]}`)
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("want 504, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPurchase_BadJSON_400_NoServiceCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTicketPurchaser(ctrl)

	r := newRouter(svc)
	for _, body := range []string{
		`{`,
		`{"account_id":1,"tickets":[{"type":"SENIOR","no_of_tickets":1}]}`,
		`{"account_id":1,"tickets":[],"extra":true}`,
	} {
		if w := post(r, "/purchases", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: want 400, got %d", body, w.Code)
		}
	}
}

func TestQuote_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTicketPurchaser(ctrl)

	want := domain.Quote{AccountID: 1, Amount: 80, Seats: 4}
	svc.EXPECT().Quote(gomock.Any(), gomock.AssignableToTypeOf(&domain.PurchaseRequest{})).Return(want, nil)

	w := post(newRouter(svc), "/purchases/quote",
		`{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":2},{"type":"CHILD","no_of_tickets":2},{"type":"INFANT","no_of_tickets":1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Amount != 80 || got.Seats != 4 {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestNoRoute_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(mocks.NewMockTicketPurchaser(ctrl))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-route", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(mocks.NewMockTicketPurchaser(ctrl))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/purchases", http.NoBody))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", w.Code)
	}
}

func TestPing_And_Metrics_200(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(mocks.NewMockTicketPurchaser(ctrl))

	for _, path := range []string{"/ping", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Fatalf("%s: want 200 with body, got %d", path, w.Code)
		}
	}
}
