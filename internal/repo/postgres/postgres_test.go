package postgres_test

import (
	"context"
	"strings"
	"testing"

	pgrepo "github.com/Gunvolt24/wb_tickets/internal/repo/postgres"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	pool, err := pgrepo.NewPool(context.Background(), "host=localhost port=notaport", 1)
	if err == nil {
		pool.Close()
		t.Fatalf("expected error for invalid dsn")
	}
	if !strings.Contains(err.Error(), "parse postgres dsn") {
		t.Fatalf("unexpected error: %v", err)
	}
}
