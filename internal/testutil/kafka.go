//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Topics — пара топиков сервиса: входящие покупки и исходящие команды оплаты.
type Topics struct {
	Purchases string
	Payments  string
	Group     string
}

// NewTopics — уникальные имена для одного теста: prefix-purchases-<ts>, prefix-payments-<ts>.
func NewTopics(prefix string) Topics {
	ts := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	return Topics{
		Purchases: fmt.Sprintf("%s-purchases-%s", prefix, ts),
		Payments:  fmt.Sprintf("%s-payments-%s", prefix, ts),
		Group:     fmt.Sprintf("%s-tickets-%s", prefix, ts),
	}
}

// EnsureTopics — создаёт топики на контроллере и ждёт их в метаданных.
// Уже существующий топик не ошибка.
func EnsureTopics(ctx context.Context, broker string, topics ...string) error {
	addr := bootstrapAddr(broker)

	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("find controller: %w", err)
	}
	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer admin.Close()

	cfgs := make([]kafka.TopicConfig, 0, len(topics))
	for _, t := range topics {
		cfgs = append(cfgs, kafka.TopicConfig{Topic: t, NumPartitions: 1, ReplicationFactor: 1})
	}
	if err := admin.CreateTopics(cfgs...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) &&
		!strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return fmt.Errorf("create topics %v: %w", topics, err)
	}

	for _, t := range topics {
		if err := waitTopic(ctx, addr, t); err != nil {
			return err
		}
	}
	return nil
}

// bootstrapAddr — первый адрес из списка, без схемы "PLAINTEXT://".
func bootstrapAddr(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if u, err := url.Parse(first); err == nil && strings.Contains(first, "://") && u.Host != "" {
		return u.Host
	}
	return first
}

func waitTopic(ctx context.Context, broker, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		c, err := kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			parts, perr := c.ReadPartitions(topic)
			_ = c.Close()
			if perr == nil && len(parts) > 0 {
				return nil
			}
			err = perr
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, errors.Join(ctx.Err(), lastErr))
		case <-tick.C:
		}
	}
}
