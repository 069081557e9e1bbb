package holdings

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository handles holdings database operations.
// Database: portfolio.db (holdings table)
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new holdings repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "holdings").Logger(),
	}
}

// Init creates the holdings table if it does not exist
func (r *Repository) Init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS holdings (
			id TEXT PRIMARY KEY,
			symbol TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			shares REAL NOT NULL,
			avg_cost REAL NOT NULL,
			current_price REAL NOT NULL,
			total_value REAL NOT NULL,
			total_cost REAL NOT NULL,
			gain_loss REAL NOT NULL,
			gain_loss_percent REAL NOT NULL,
			sector TEXT,
			platform TEXT,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create holdings table: %w", err)
	}
	return nil
}

// List returns all holdings ordered by total value (descending)
func (r *Repository) List() ([]Holding, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, name, type, shares, avg_cost, current_price,
		       total_value, total_cost, gain_loss, gain_loss_percent,
		       COALESCE(sector, ''), COALESCE(platform, ''), updated_at
		FROM holdings
		ORDER BY total_value DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []Holding
	for rows.Next() {
		var h Holding
		if err := rows.Scan(
			&h.ID, &h.Symbol, &h.Name, &h.Type, &h.Shares, &h.AvgCost,
			&h.CurrentPrice, &h.TotalValue, &h.TotalCost, &h.GainLoss,
			&h.GainLossPercent, &h.Sector, &h.Platform, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// Get returns a holding by ID, or nil if it does not exist
func (r *Repository) Get(id string) (*Holding, error) {
	var h Holding
	err := r.db.QueryRow(`
		SELECT id, symbol, name, type, shares, avg_cost, current_price,
		       total_value, total_cost, gain_loss, gain_loss_percent,
		       COALESCE(sector, ''), COALESCE(platform, ''), updated_at
		FROM holdings WHERE id = ?
	`, id).Scan(
		&h.ID, &h.Symbol, &h.Name, &h.Type, &h.Shares, &h.AvgCost,
		&h.CurrentPrice, &h.TotalValue, &h.TotalCost, &h.GainLoss,
		&h.GainLossPercent, &h.Sector, &h.Platform, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding %s: %w", id, err)
	}
	return &h, nil
}

// Create inserts a new holding. The asset type is normalized and the derived
// value fields recomputed before the write. Returns the stored holding.
func (r *Repository) Create(h Holding) (*Holding, error) {
	h.ID = uuid.NewString()
	h.Type = NormalizeAssetType(h.Type)
	h.recalculate()
	h.UpdatedAt = time.Now().Unix()

	_, err := r.db.Exec(`
		INSERT INTO holdings
			(id, symbol, name, type, shares, avg_cost, current_price,
			 total_value, total_cost, gain_loss, gain_loss_percent,
			 sector, platform, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		h.ID, h.Symbol, h.Name, h.Type, h.Shares, h.AvgCost, h.CurrentPrice,
		h.TotalValue, h.TotalCost, h.GainLoss, h.GainLossPercent,
		h.Sector, h.Platform, h.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	r.log.Info().Str("symbol", h.Symbol).Str("type", h.Type).Msg("Holding created")
	return &h, nil
}

// Update replaces a holding's mutable fields. The asset type is normalized
// and the derived value fields recomputed before the write.
func (r *Repository) Update(h Holding) (*Holding, error) {
	h.Type = NormalizeAssetType(h.Type)
	h.recalculate()
	h.UpdatedAt = time.Now().Unix()

	res, err := r.db.Exec(`
		UPDATE holdings SET
			symbol = ?, name = ?, type = ?, shares = ?, avg_cost = ?,
			current_price = ?, total_value = ?, total_cost = ?,
			gain_loss = ?, gain_loss_percent = ?, sector = ?, platform = ?,
			updated_at = ?
		WHERE id = ?
	`,
		h.Symbol, h.Name, h.Type, h.Shares, h.AvgCost, h.CurrentPrice,
		h.TotalValue, h.TotalCost, h.GainLoss, h.GainLossPercent,
		h.Sector, h.Platform, h.UpdatedAt, h.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update holding %s: %w", h.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return &h, nil
}

// Delete removes a holding. Returns false if it did not exist.
func (r *Repository) Delete(id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM holdings WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete holding %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return affected > 0, nil
}
