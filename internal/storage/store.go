package storage

import "time"

// RunRecord is the metadata kept for one batch relaxation run.
type RunRecord struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	Dimension        int       `json:"dimension"`
	Domain           string    `json:"domain"`
	States           int       `json:"states"`
	Workers          int       `json:"workers"`
	NetworkSeed      int64     `json:"network_seed"`
	GeneratorSeed    int64     `json:"generator_seed"`
	MaxIterations    int       `json:"max_iterations"`
	MaxUnstableUnits int       `json:"max_unstable_units"`
	ElapsedSeconds   float64   `json:"elapsed_seconds"`
	StableCount      int       `json:"stable_count"`
	MeanFinalEnergy  float64   `json:"mean_final_energy"`
}

// StateRecord is one relaxed state with its final energy and stability
// verdict, keyed by the state's position in the input batch.
type StateRecord struct {
	Index  int       `json:"index"`
	Values []float64 `json:"values"`
	Energy float64   `json:"energy"`
	Stable bool      `json:"stable"`
}

// Store persists relaxation runs. Implementations generate the run ID on
// save and return it.
type Store interface {
	Init() error
	SaveRun(meta RunRecord, states []StateRecord) (string, error)
	ListRuns() ([]RunRecord, error)
	LoadRun(runID string) (*RunRecord, error)
	LoadStates(runID string) ([]StateRecord, error)
	Close() error
}
