//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/wb_tickets/internal/repo/postgres"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// lifecycle — пишет в лог старт и остановку контейнера с ролью (seats-db, broker).
func lifecycle(role string) tc.ContainerLifecycleHooks {
	short := func(c tc.Container) string {
		id := c.GetContainerID()
		if len(id) > 12 {
			return id[:12]
		}
		return id
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				tcLogger.Printf("%s: pulling %s", role, req.Image)
				return nil
			},
		},
		PostReadies: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				tcLogger.Printf("%s: ready id=%s", role, short(c))
				return nil
			},
		},
		PostTerminates: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				tcLogger.Printf("%s: terminated id=%s", role, short(c))
				return nil
			},
		},
	}
}

// SeatsDB — Postgres с накатанной схемой броней.
type SeatsDB struct {
	Pool *pgxpool.Pool
	DSN  string
}

// StartSeatsDB — поднимает Postgres, применяет миграции и открывает пул через pgrepo.NewPool.
func StartSeatsDB(ctx context.Context) (*SeatsDB, func(context.Context) error, error) {
	pg, err := postgres.Run(ctx, "postgres:16-alpine",
		tc.WithLifecycleHooks(lifecycle("seats-db")),
		postgres.WithDatabase("tickets"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	fail := func(step string, err error) (*SeatsDB, func(context.Context) error, error) {
		_ = pg.Terminate(context.Background())
		return nil, nil, fmt.Errorf("%s: %w", step, err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail("connection string", err)
	}
	if err := MigrateSeatReservations(ctx, dsn); err != nil {
		return fail("migrate", err)
	}
	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		return fail("open pool", err)
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &SeatsDB{Pool: pool, DSN: dsn}, stop, nil
}

// Broker — Redpanda вместо Kafka; Prefix отделяет топики разных прогонов.
type Broker struct {
	Brokers []string
	Prefix  string
}

// StartBroker — поднимает Redpanda и отдаёт seed-адрес.
func StartBroker(ctx context.Context, prefix string) (*Broker, func(context.Context) error, error) {
	rp, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(lifecycle("broker")),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &Broker{Brokers: []string{seed}, Prefix: prefix}, stop, nil
}

// Topics — создаёт пару purchases/payments для одного теста и ждёт их готовности.
func (b *Broker) Topics(ctx context.Context, name string) (Topics, error) {
	tp := NewTopics(b.Prefix + "-" + name)
	if err := EnsureTopics(ctx, b.Brokers[0], tp.Purchases, tp.Payments); err != nil {
		return Topics{}, err
	}
	return tp, nil
}
