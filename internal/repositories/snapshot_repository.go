package repositories

import (
	"database/sql"
	"encoding/json"
	"time"
)

// SnapshotRepository persists store snapshots in the snapshots table
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{
		db: db,
	}
}

// Save writes the snapshot for a slot, replacing any previous one
func (r *SnapshotRepository) Save(slot string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO snapshots (slot, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`

	_, err = r.db.Exec(query, slot, string(data), time.Now().UTC())
	return err
}

// Load reads the snapshot for a slot into v; false when the slot is empty
func (r *SnapshotRepository) Load(slot string, v interface{}) (bool, error) {
	query := `SELECT data FROM snapshots WHERE slot = ?`

	var data string
	err := r.db.QueryRow(query, slot).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, err
	}

	return true, nil
}
