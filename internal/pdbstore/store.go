// Package pdbstore keeps a small sqlite audit trail of PDB builds: which
// encoder was built, how big its image was, how deep the fill went, how
// long it took, and the new-cube count at each depth iteration. The byte
// tables themselves never go through sqlite (see SPEC_FULL.md §1) — this
// is metadata only, grounded on SeamusWaldron/gocube_ble_library's use of
// modernc.org/sqlite as the pure-Go, cgo-free driver.
package pdbstore

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a sqlite database holding build-history rows.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the audit database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("pdbstore: opening %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS builds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			encoder_name TEXT NOT NULL,
			image_size INTEGER NOT NULL,
			max_depth INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			built_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS build_iterations (
			build_id INTEGER NOT NULL REFERENCES builds(id),
			depth INTEGER NOT NULL,
			new_cubes INTEGER NOT NULL,
			PRIMARY KEY (build_id, depth)
		);
	`)
	return err
}

// IterationStat is one target-depth iteration of a PDB build.
type IterationStat struct {
	Depth    int
	NewCubes int64
}

// RecordBuild inserts one build's summary plus its per-iteration history.
func (s *Store) RecordBuild(encoderName string, imageSize, maxDepth int, duration time.Duration, iterations []IterationStat) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(
		`INSERT INTO builds (encoder_name, image_size, max_depth, duration_ms) VALUES (?, ?, ?, ?)`,
		encoderName, imageSize, maxDepth, duration.Milliseconds(),
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	buildID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, it := range iterations {
		if _, err := tx.Exec(
			`INSERT INTO build_iterations (build_id, depth, new_cubes) VALUES (?, ?, ?)`,
			buildID, it.Depth, it.NewCubes,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
