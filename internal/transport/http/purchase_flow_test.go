package rest_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	rest "github.com/Gunvolt24/wb_tickets/internal/transport/http"
	"github.com/Gunvolt24/wb_tickets/internal/usecase"
	"github.com/Gunvolt24/wb_tickets/pkg/validate"
	"github.com/gin-gonic/gin"
)

type call struct {
	op        string
	accountID int64
	value     int
}

// collaborators — оплата и бронирование, пишущие вызовы в общий журнал.
type collaborators struct {
	mu    sync.Mutex
	calls []call
}

func (c *collaborators) MakePayment(_ context.Context, accountID int64, amount int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call{"pay", accountID, amount})
	return nil
}

func (c *collaborators) ReserveSeat(_ context.Context, accountID int64, seats int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call{"reserve", accountID, seats})
	return nil
}

func TestPurchaseFlow_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		calls  []call
	}{
		{
			name:   "family",
			body:   `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":2},{"type":"CHILD","no_of_tickets":2},{"type":"INFANT","no_of_tickets":1}]}`,
			status: http.StatusNoContent,
			calls:  []call{{"pay", 1, 80}, {"reserve", 1, 4}},
		},
		{
			name:   "three adults",
			body:   `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":3}]}`,
			status: http.StatusNoContent,
			calls:  []call{{"pay", 1, 75}, {"reserve", 1, 3}},
		},
		{
			name:   "infants exceed adults",
			body:   `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":1},{"type":"INFANT","no_of_tickets":2}]}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "26 adults",
			body:   `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":26}]}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name: "quantities wrap past max int",
			body: `{"account_id":1,"tickets":[{"type":"ADULT","no_of_tickets":9223372036854775807},` +
				`{"type":"ADULT","no_of_tickets":9223372036854775807},{"type":"ADULT","no_of_tickets":4}]}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "invalid account",
			body:   `{"account_id":0,"tickets":[{"type":"ADULT","no_of_tickets":1}]}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "empty tickets",
			body:   `{"account_id":1,"tickets":[]}`,
			status: http.StatusUnprocessableEntity,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			collab := &collaborators{}
			svc := usecase.NewTicketService(validate.NewPurchaseValidator(), collab, collab, noopLogger{})
			r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, time.Second), "")

			w := post(r, "/purchases", tc.body)
			if w.Code != tc.status {
				t.Fatalf("want %d, got %d, body=%s", tc.status, w.Code, w.Body.String())
			}
			if len(collab.calls) != len(tc.calls) {
				t.Fatalf("want calls %v, got %v", tc.calls, collab.calls)
			}
			for i := range tc.calls {
				if collab.calls[i] != tc.calls[i] {
					t.Fatalf("call %d: want %v, got %v", i, tc.calls[i], collab.calls[i])
				}
			}
		})
	}
}
