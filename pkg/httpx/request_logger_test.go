package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Gunvolt24/wb_tickets/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type captureLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *captureLogger) Infof(_ context.Context, format string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, format)
}
func (l *captureLogger) Warnf(_ context.Context, format string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, format)
}
func (l *captureLogger) Errorf(context.Context, string, ...any) {}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &captureLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, path := range []string{"/ping", "/ok", "/fail"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	if len(log.infos) != 1 || !strings.HasPrefix(log.infos[0], "request ") {
		t.Fatalf("want exactly one info line (ping skipped), got %v", log.infos)
	}
	if len(log.warns) != 1 {
		t.Fatalf("5xx must be logged as warning, got %v", log.warns)
	}
}
