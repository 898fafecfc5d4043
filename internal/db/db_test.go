package db

import (
	"context"
	"os"
	"testing"
	"time"
)

// Integration test; runs only when DATABASE_URL points at a live database.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	// The schema bootstrap is idempotent; the cart table must exist after it.
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'cart_data')`,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("schema check failed: %v", err)
	}
	if !exists {
		t.Error("cart_data table missing after bootstrap")
	}
}
