package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_tickets/pkg/httpx"
	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/Gunvolt24/wb_tickets/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// handleMessage обрабатывает одно сообщение. false — остановка во время обработки, коммитить нельзя.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctx = ctxmeta.WithRequestID(ctx, messageRequestID(msg))

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.PurchaseFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case ctx.Err() != nil:
		c.log.Warnf(ctx, "shutdown during processing offset=%d: %v (not committed)", msg.Offset, err)
		return false
	case errors.Is(err, validate.ErrInvalidPurchase):
		// Отказ по правилам: повтор дал бы тот же результат
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "purchase rejected offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		// Сбой оплаты/бронирования: без повтора, оплата могла уже пройти
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "purchase failed offset=%d: %v (skipped, no retry)", msg.Offset, err)
		return true
	}
}

// messageRequestID — X-Request-ID из заголовков сообщения, иначе partition/offset.
func messageRequestID(msg *kafka.Message) string {
	for _, h := range msg.Headers {
		if strings.EqualFold(h.Key, httpx.HeaderRequestID) && len(h.Value) > 0 {
			return string(h.Value)
		}
	}
	return fmt.Sprintf("kafka-%d-%d", msg.Partition, msg.Offset)
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайная.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
