// Package store implements the SQLite-backed record store for garagelog.
// Attach loads vehicles.csv and services.csv into an SQLite database used for
// lookups, search, ordering and aggregation; every mutation updates SQLite
// first and then rewrites the affected CSV atomically, so the flat files in
// the data directory always reflect the last completed operation.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gearbox-labs/garagelog/internal/qr"
	"github.com/gearbox-labs/garagelog/pkg/types"
)

// dbFileName is the scratch database rebuilt from CSV on each Attach.
const dbFileName = "garagelog.db"

// Backend implements types.Store using SQLite as the query engine and the
// CSV collections as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	dataDir  string
	log      *zap.Logger

	// lastServiceSeq is the highest numeric suffix ever issued or loaded
	// in this session. The next service ID is always lastServiceSeq+1,
	// so deleting rows never recycles an ID.
	lastServiceSeq int
}

// NewBackend creates a detached backend. A nil logger disables logging.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log}
}

// Attach initializes the backend with the given configuration. Creates the
// data directory if needed, rebuilds the SQLite database from the CSV files,
// and seeds the service-ID sequence. Returns ErrAlreadyAttached if attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.MkdirAll(qr.Dir(dataDir), 0o755); err != nil {
		return fmt.Errorf("creating qr dir: %w", err)
	}

	// The database is scratch state; the CSVs are authoritative.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir

	if err := b.loadCSV(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("loading collections: %w", err)
	}
	if err := b.seedServiceSeq(); err != nil {
		db.Close()
		b.db = nil
		return err
	}

	b.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach all operations return
// ErrStoreDetached. The CSVs were rewritten after every mutation, so there is
// nothing to flush.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// ensureAttached must be called with b.mu held.
func (b *Backend) ensureAttached() error {
	if !b.attached {
		return types.ErrStoreDetached
	}
	return nil
}

// seedServiceSeq scans the loaded service IDs for the highest numeric suffix.
// IDs that do not parse are ignored for sequencing but kept as rows.
func (b *Backend) seedServiceSeq() error {
	rows, err := b.db.Query("SELECT service_id FROM services")
	if err != nil {
		return fmt.Errorf("reading service ids: %w", err)
	}
	defer rows.Close()

	b.lastServiceSeq = 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning service id: %w", err)
		}
		n, err := types.ParseServiceID(id)
		if err != nil {
			b.log.Warn("unparsable service id, excluded from sequencing",
				zap.String("service_id", id))
			continue
		}
		if n > b.lastServiceSeq {
			b.lastServiceSeq = n
		}
	}
	return rows.Err()
}
