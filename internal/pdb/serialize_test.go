package pdb

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleTable(n int) []OptionU8 {
	t := make([]OptionU8, n)
	for i := range t {
		t[i] = OptionU8(i % 20)
	}
	return t
}

func TestSaveLoadTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.bin")
	want := sampleTable(100)
	if err := SaveTable(path, KindCorners, want); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}
	kind, got, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if kind != KindCorners {
		t.Fatalf("kind = %d, want %d", kind, KindCorners)
	}
	if len(got) != len(want) {
		t.Fatalf("table length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("table[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadTableRejectsCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.bin")
	if err := SaveTable(path, KindCorners, sampleTable(50)); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw[len(raw)-1] ^= 0xFF // flip a byte inside the trailing checksum
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadTable(path); err == nil {
		t.Fatal("expected LoadTable to reject a corrupted checksum")
	}
}

func TestSaveLoadKorfRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korf.bin")
	corners, lower, upper := sampleTable(10), sampleTable(20), sampleTable(30)
	if err := SaveKorf(path, corners, lower, upper); err != nil {
		t.Fatalf("SaveKorf: %v", err)
	}
	gotCorners, gotLower, gotUpper, err := LoadKorf(path)
	if err != nil {
		t.Fatalf("LoadKorf: %v", err)
	}
	if len(gotCorners) != len(corners) || len(gotLower) != len(lower) || len(gotUpper) != len(upper) {
		t.Fatal("LoadKorf returned mismatched table lengths")
	}
}
