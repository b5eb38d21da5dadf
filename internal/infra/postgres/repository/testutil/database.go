// Package testutil starts a disposable PostgreSQL for repository tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"

	"github.com/aliskhannn/rebuzzle-bot/internal/infra/postgres"
)

// TestDatabase is a migrated PostgreSQL container.
type TestDatabase struct {
	Container *tcpostgres.PostgresContainer
	Pool      *pgxpool.Pool
	URL       string
}

// SetupTestDatabase starts a container and applies migrations. The test is
// skipped under -short or when no container runtime is reachable.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	if testing.Short() {
		t.Skip("repository tests need a container runtime")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("rebuzzle_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		tcpostgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{"test": "rebuzzle-repository"}),
	)
	require.NoError(t, err)

	db := &TestDatabase{Container: container}
	t.Cleanup(func() { db.cleanup(t) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.MigrateUp(url, zap.NewNop()))

	pool, err := postgres.NewPool(ctx, url, postgres.PoolConfig{MaxConns: 5, MaxConnLifetime: time.Minute})
	require.NoError(t, err)

	db.Pool = pool
	db.URL = url
	return db
}

func (td *TestDatabase) cleanup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.Pool != nil {
		td.Pool.Close()
	}
	if err := td.Container.Terminate(ctx); err != nil {
		t.Logf("terminate test container: %v", err)
	}
}
