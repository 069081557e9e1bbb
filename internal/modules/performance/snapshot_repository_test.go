package performance

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSnapshotRepo(t *testing.T) *SnapshotRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSnapshotRepository(db, zerolog.New(nil).Level(zerolog.Disabled))
	require.NoError(t, repo.Init())
	return repo
}

func TestSnapshotRepository_RecordAndLatest(t *testing.T) {
	repo := setupSnapshotRepo(t)

	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-27", TotalValue: 9800, TotalCost: 9000, RecordedAt: 1}))
	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-28", TotalValue: 9900, TotalCost: 9000, RecordedAt: 2}))
	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-29", TotalValue: 10000, TotalCost: 9000, RecordedAt: 3}))

	latest, err := repo.Latest(2)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	assert.Equal(t, "2026-08-29", latest[0].Date)
	assert.Equal(t, "2026-08-28", latest[1].Date)
	assert.InDelta(t, 10000.0, latest[0].TotalValue, 0.001)
	assert.InDelta(t, 9000.0, latest[0].TotalCost, 0.001)
}

func TestSnapshotRepository_LatestAll(t *testing.T) {
	repo := setupSnapshotRepo(t)

	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-28", TotalValue: 9900, RecordedAt: 1}))
	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-29", TotalValue: 10000, RecordedAt: 2}))

	all, err := repo.Latest(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSnapshotRepository_SameDayOverwrites(t *testing.T) {
	repo := setupSnapshotRepo(t)

	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-29", TotalValue: 10000, RecordedAt: 1}))
	require.NoError(t, repo.Record(Snapshot{Date: "2026-08-29", TotalValue: 10250, RecordedAt: 2}))

	latest, err := repo.Latest(0)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.InDelta(t, 10250.0, latest[0].TotalValue, 0.001)
}

func TestSnapshotRepository_EmptyTable(t *testing.T) {
	repo := setupSnapshotRepo(t)

	latest, err := repo.Latest(5)
	require.NoError(t, err)
	assert.Empty(t, latest)
}
