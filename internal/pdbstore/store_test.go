package pdbstore

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordBuildAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builds.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	err = s.RecordBuild("corners", 88179840, 11, 42*time.Second, []IterationStat{
		{Depth: 0, NewCubes: 1},
		{Depth: 1, NewCubes: 18},
		{Depth: 2, NewCubes: 243},
	})
	if err != nil {
		t.Fatalf("RecordBuild: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening the same file must not fail migration on an existing schema.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	var count int
	if err := s2.db.QueryRow(`SELECT COUNT(*) FROM builds`).Scan(&count); err != nil {
		t.Fatalf("counting builds: %v", err)
	}
	if count != 1 {
		t.Fatalf("builds count = %d, want 1", count)
	}

	var iterCount int
	if err := s2.db.QueryRow(`SELECT COUNT(*) FROM build_iterations`).Scan(&iterCount); err != nil {
		t.Fatalf("counting iterations: %v", err)
	}
	if iterCount != 3 {
		t.Fatalf("iteration count = %d, want 3", iterCount)
	}
}

func TestRecordBuildEmptyIterations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builds.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.RecordBuild("middle-lower", 42577920, 10, time.Minute, nil); err != nil {
		t.Fatalf("RecordBuild with no iterations: %v", err)
	}
}
