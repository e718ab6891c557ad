package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps all runs in a single database file. Relaxed states are
// stored as a JSON payload alongside the run row.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveRun(meta RunRecord, states []StateRecord) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}

	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	meta.ID = runID
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	payload, err := json.Marshal(states)
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO runs (
			id, timestamp, dimension, domain, states, workers,
			network_seed, generator_seed, max_iterations, max_unstable_units,
			elapsed_seconds, stable_count, mean_final_energy, payload
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, meta.ID, meta.Timestamp.Format(time.RFC3339Nano), meta.Dimension, meta.Domain,
		meta.States, meta.Workers, meta.NetworkSeed, meta.GeneratorSeed,
		meta.MaxIterations, meta.MaxUnstableUnits, meta.ElapsedSeconds,
		meta.StableCount, meta.MeanFinalEnergy, payload)
	if err != nil {
		return "", err
	}
	return runID, nil
}

func (s *SQLiteStore) ListRuns() ([]RunRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, timestamp, dimension, domain, states, workers,
			network_seed, generator_seed, max_iterations, max_unstable_units,
			elapsed_seconds, stable_count, mean_final_energy
		FROM runs ORDER BY timestamp
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]RunRecord, 0)
	for rows.Next() {
		meta, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *meta)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) LoadRun(runID string) (*RunRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`
		SELECT id, timestamp, dimension, domain, states, workers,
			network_seed, generator_seed, max_iterations, max_unstable_units,
			elapsed_seconds, stable_count, mean_final_energy
		FROM runs WHERE id = ?
	`, runID)
	return scanRun(row.Scan)
}

func (s *SQLiteStore) LoadStates(runID string) ([]StateRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var payload []byte
	if err := db.QueryRow(`SELECT payload FROM runs WHERE id = ?`, runID).Scan(&payload); err != nil {
		return nil, err
	}

	var states []StateRecord
	if err := json.Unmarshal(payload, &states); err != nil {
		return nil, fmt.Errorf("decode states for %s: %w", runID, err)
	}
	return states, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func scanRun(scan func(dest ...any) error) (*RunRecord, error) {
	var meta RunRecord
	var stamp string
	err := scan(&meta.ID, &stamp, &meta.Dimension, &meta.Domain, &meta.States,
		&meta.Workers, &meta.NetworkSeed, &meta.GeneratorSeed, &meta.MaxIterations,
		&meta.MaxUnstableUnits, &meta.ElapsedSeconds, &meta.StableCount, &meta.MeanFinalEnergy)
	if err != nil {
		return nil, err
	}
	meta.Timestamp, err = time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp for %s: %w", meta.ID, err)
	}
	return &meta, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			timestamp TEXT NOT NULL,
			dimension INTEGER NOT NULL,
			domain TEXT NOT NULL,
			states INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			network_seed INTEGER NOT NULL,
			generator_seed INTEGER NOT NULL,
			max_iterations INTEGER NOT NULL,
			max_unstable_units INTEGER NOT NULL,
			elapsed_seconds REAL NOT NULL,
			stable_count INTEGER NOT NULL,
			mean_final_energy REAL NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
