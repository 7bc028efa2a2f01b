package persist

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hackgame/arena/internal/config"
)

// testDB connects to the database named by ARENA_TEST_DSN and migrates it.
func testDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("ARENA_TEST_DSN")
	if dsn == "" {
		t.Skip("ARENA_TEST_DSN not set")
	}
	ctx := context.Background()
	db, err := NewDB(ctx, config.DatabaseConfig{DSN: dsn, MaxOpenConns: 2}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, RunMigrations(ctx, db.Pool))
	return db
}

func TestMatchRepo_SaveLoad(t *testing.T) {
	db := testDB(t)
	repo := NewMatchRepo(db)
	ctx := context.Background()

	start := time.Now().Add(-time.Minute).UTC().Truncate(time.Millisecond)
	row := &MatchRow{
		Level:           "levels/level1.json",
		Winner:          "player",
		Frames:          3600,
		Duration:        time.Minute,
		PlayerHP:        2,
		EnemyHP:         0,
		Kills:           3,
		BlocksDestroyed: 11,
		StartedAt:       start,
		EndedAt:         start.Add(time.Minute),
	}
	require.NoError(t, repo.Save(ctx, row))
	require.NotEqual(t, uuid.Nil, row.ID)

	got, err := repo.Load(ctx, row.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, row.Winner, got.Winner)
	assert.Equal(t, row.Frames, got.Frames)
	assert.Equal(t, row.Duration, got.Duration)
	assert.Equal(t, row.BlocksDestroyed, got.BlocksDestroyed)
	assert.True(t, row.StartedAt.Equal(got.StartedAt))

	recent, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, recent)

	missing, err := repo.Load(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
