package holdings

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))
	require.NoError(t, repo.Init())
	return repo
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupRepo(t)

	created, err := repo.Create(Holding{
		Symbol:       "AAPL",
		Name:         "Apple Inc.",
		Type:         "Stocks", // free-form input, normalized on write
		Shares:       10,
		AvgCost:      150,
		CurrentPrice: 180,
		Sector:       "Technology",
		Platform:     "Fidelity",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "stock", created.Type)
	assert.InDelta(t, 1800.0, created.TotalValue, 0.001)
	assert.InDelta(t, 1500.0, created.TotalCost, 0.001)
	assert.InDelta(t, 300.0, created.GainLoss, 0.001)
	assert.InDelta(t, 20.0, created.GainLossPercent, 0.001)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Technology", got.Sector)
	assert.Equal(t, "Fidelity", got.Platform)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_ListOrderedByValue(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Create(Holding{Symbol: "SMALL", Type: "stock", Shares: 1, CurrentPrice: 100})
	require.NoError(t, err)
	_, err = repo.Create(Holding{Symbol: "BIG", Type: "stock", Shares: 10, CurrentPrice: 100})
	require.NoError(t, err)
	_, err = repo.Create(Holding{Symbol: "MID", Type: "crypto", Shares: 5, CurrentPrice: 100})
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "BIG", all[0].Symbol)
	assert.Equal(t, "MID", all[1].Symbol)
	assert.Equal(t, "SMALL", all[2].Symbol)
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := setupRepo(t)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_Update(t *testing.T) {
	repo := setupRepo(t)

	created, err := repo.Create(Holding{Symbol: "BTC", Type: "crypto", Shares: 1, AvgCost: 30000, CurrentPrice: 30000})
	require.NoError(t, err)

	created.CurrentPrice = 45000
	updated, err := repo.Update(*created)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.InDelta(t, 45000.0, updated.TotalValue, 0.001)
	assert.InDelta(t, 50.0, updated.GainLossPercent, 0.001)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 45000.0, got.TotalValue, 0.001)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := setupRepo(t)

	updated, err := repo.Update(Holding{ID: "ghost", Symbol: "X", Type: "stock"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepo(t)

	created, err := repo.Create(Holding{Symbol: "GONE", Type: "stock", Shares: 1, CurrentPrice: 1})
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestHolding_Recalculate(t *testing.T) {
	h := Holding{Shares: 4, AvgCost: 25, CurrentPrice: 30}
	h.recalculate()

	assert.InDelta(t, 120.0, h.TotalValue, 0.001)
	assert.InDelta(t, 100.0, h.TotalCost, 0.001)
	assert.InDelta(t, 20.0, h.GainLoss, 0.001)
	assert.InDelta(t, 20.0, h.GainLossPercent, 0.001)
}

func TestHolding_RecalculateZeroCost(t *testing.T) {
	h := Holding{Shares: 2, AvgCost: 0, CurrentPrice: 10}
	h.recalculate()

	assert.InDelta(t, 20.0, h.GainLoss, 0.001)
	assert.Zero(t, h.GainLossPercent)
}
