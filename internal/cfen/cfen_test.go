package cfen

import (
	"strings"
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

func TestGenerateSolvedCube(t *testing.T) {
	got := Generate(cube.NewSolvedCube())
	want := "WG|W9/R9/G9/Y9/O9/B9"
	if got != want {
		t.Fatalf("Generate(solved) = %q, want %q", got, want)
	}
}

func TestParseRoundTripsSolvedCube(t *testing.T) {
	text := Generate(cube.NewSolvedCube())
	state, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if !got.Equal(cube.NewSolvedCube()) {
		t.Fatalf("round trip did not reproduce the solved cube")
	}
}

func TestParseRoundTripsScrambledCube(t *testing.T) {
	moves, err := cube.CompileSequence("R1 U1 F2 L3 D1")
	if err != nil {
		t.Fatal(err)
	}
	want := cube.NewSolvedCube().ApplyAll(moves)

	text := Generate(want)
	state, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("round trip did not reproduce the scrambled cube")
	}
}

func TestParseRejectsMalformedCFEN(t *testing.T) {
	cases := []string{
		"WG|W9/R9/G9/Y9/O9",          // too few faces
		"W|W9/R9/G9/Y9/O9/B9",        // orientation not 2 chars
		"WG|W9/R9/G9/Y9/O9/B8",       // short face
		"WG|W9/R9/G9/Y9/O9/X9",       // unknown color
		"no-pipe-here",               // missing separator
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", c)
		}
	}
}

func TestMatchesWildcard(t *testing.T) {
	// A run-length '?' spanning the whole back face matches any back face.
	text := "WG|W9/R9/G9/Y9/O9/?9"
	state, perr := Parse(text)
	if perr != nil {
		t.Fatalf("Parse: %v", perr)
	}
	moves, cerr := cube.CompileSequence("B1")
	if cerr != nil {
		t.Fatal(cerr)
	}
	scrambled := cube.NewSolvedCube().ApplyAll(moves)
	if !state.Matches(scrambled) {
		t.Fatalf("pattern with wildcard back face should match any back face")
	}
	if !strings.Contains(text, "?9") {
		t.Fatalf("sanity: expected wildcard run-length token in %q", text)
	}
}

func TestMatchesRejectsMismatch(t *testing.T) {
	state, err := Parse(Generate(cube.NewSolvedCube()))
	if err != nil {
		t.Fatal(err)
	}
	moves, err := cube.CompileSequence("R1")
	if err != nil {
		t.Fatal(err)
	}
	scrambled := cube.NewSolvedCube().ApplyAll(moves)
	if state.Matches(scrambled) {
		t.Fatalf("solved pattern should not match a scrambled cube")
	}
}
