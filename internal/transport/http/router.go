package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_tickets/internal/domain"
	"github.com/Gunvolt24/wb_tickets/internal/ports"
	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_tickets/pkg/httpx"
	"github.com/Gunvolt24/wb_tickets/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// maxBodyBytes — ограничение размера тела запроса на покупку.
const maxBodyBytes = 64 << 10

type Handler struct {
	service        ports.TicketPurchaser
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewHandler — handlerTimeout <= 0 отключает таймаут обработчика.
func NewHandler(service ports.TicketPurchaser, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — маршруты API. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/purchases", h.purchaseTickets)
	r.POST("/purchases/quote", h.quotePurchase)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

// purchaseTickets — POST /purchases: 204 при успехе, тело не возвращается.
func (h *Handler) purchaseTickets(c *gin.Context) {
	req, ok := h.decodeRequest(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c, req.AccountID)
	defer cancel()

	if err := h.service.PurchaseTickets(ctx, req.AccountID, req.Tickets...); err != nil {
		h.writeError(ctx, c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// quotePurchase — POST /purchases/quote: сумма и места без оплаты и бронирования.
func (h *Handler) quotePurchase(c *gin.Context) {
	req, ok := h.decodeRequest(c)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c, req.AccountID)
	defer cancel()

	quote, err := h.service.Quote(ctx, req)
	if err != nil {
		h.writeError(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// decodeRequest — строгий разбор тела; при ошибке сам пишет 400.
func (h *Handler) decodeRequest(c *gin.Context) (*domain.PurchaseRequest, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return nil, false
	}
	req, err := validate.DecodePurchaseRequest(raw)
	if err != nil {
		h.log.Warnf(c.Request.Context(), "bad purchase body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return req, true
}

func (h *Handler) requestContext(c *gin.Context, accountID int64) (context.Context, context.CancelFunc) {
	ctx := ctxmeta.WithAccountID(c.Request.Context(), accountID)
	if h.handlerTimeout > 0 {
		return context.WithTimeout(ctx, h.handlerTimeout)
	}
	return context.WithCancel(ctx)
}

// writeError — отказ по правилам → 422, таймаут → 504, сбой внешнего сервиса → 502.
func (h *Handler) writeError(ctx context.Context, c *gin.Context, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalidPurchase):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Errorf(ctx, "purchase timed out: %v", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "timeout"})
	default:
		h.log.Errorf(ctx, "purchase failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service failed"})
	}
}
