package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/config"
)

func TestNewPostgres_RejectsMissingDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, pg)
}

func TestNewPostgres_RejectsMalformedDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.PostgresConfig{DSN: "postgres://%zz"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse postgres dsn")
}

func TestNilHandlesReportUnavailable(t *testing.T) {
	var pg *Postgres
	assert.Error(t, pg.Ping(context.Background()))
	assert.Nil(t, pg.PoolHandle())

	var r *Redis
	assert.Error(t, r.Ping(context.Background()))
	_, _, err := r.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestRunMigrations_RequiresPool(t *testing.T) {
	assert.Error(t, RunMigrations(nil, zap.NewNop()))
}

func TestEmbeddedMigrationsPaired(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, 2, ups)
	assert.Equal(t, ups, downs)
}
