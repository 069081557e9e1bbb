package performance

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotRepository persists daily portfolio value snapshots.
// Snapshots are msgpack blobs keyed by date so the row format can evolve
// without schema migrations.
// Database: history.db (daily_snapshots table)
type SnapshotRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sql.DB, log zerolog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:  db,
		log: log.With().Str("repository", "snapshots").Logger(),
	}
}

// Init creates the daily_snapshots table if it does not exist
func (r *SnapshotRepository) Init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_snapshots (
			date TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create daily_snapshots table: %w", err)
	}
	return nil
}

// Record upserts the snapshot for its date. Re-recording the same day
// overwrites the earlier value, so the job can run more than once a day.
func (r *SnapshotRepository) Record(s Snapshot) error {
	blob, err := msgpack.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT OR REPLACE INTO daily_snapshots (date, data, created_at)
		VALUES (?, ?, ?)
	`, s.Date, blob, s.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to store snapshot for %s: %w", s.Date, err)
	}

	r.log.Debug().Str("date", s.Date).Float64("total_value", s.TotalValue).Msg("Snapshot recorded")
	return nil
}

// Latest returns up to n snapshots, most recent first. n <= 0 means all.
func (r *SnapshotRepository) Latest(n int) ([]Snapshot, error) {
	query := "SELECT data FROM daily_snapshots ORDER BY date DESC"
	args := []interface{}{}
	if n > 0 {
		query += " LIMIT ?"
		args = append(args, n)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		var s Snapshot
		if err := msgpack.Unmarshal(blob, &s); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
