package storage

import (
	"fmt"
	"path/filepath"
)

// NewStore builds a store of the given kind rooted at dataDir. An empty
// kind selects the file store.
func NewStore(kind, dataDir string) (Store, error) {
	switch kind {
	case "", "file":
		return NewFileStore(dataDir), nil
	case "sqlite":
		return NewSQLiteStore(filepath.Join(dataDir, "runs.db")), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
