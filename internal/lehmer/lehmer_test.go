package lehmer

import (
	"math/rand"
	"testing"
)

// permutations generates every ordered k-subset of [0,n) by recursive
// selection without replacement. Used for the n=8 exhaustive checks and the
// small n=5 full-permutation check;
// n=12 is checked by sampling instead (12P8 alone is ~20M, too slow to
// enumerate on every test run).
func permutations(n, k int) [][]int {
	var out [][]int
	used := make([]bool, n)
	cur := make([]int, 0, k)
	var rec func()
	rec = func() {
		if len(cur) == k {
			cp := make([]int, k)
			copy(cp, cur)
			out = append(out, cp)
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	rec()
	return out
}

func TestExhaustiveRoundTripN8(t *testing.T) {
	for _, k := range []int{6, 7, 8} {
		perms := permutations(8, k)
		want := NbPartialPermutations(k, 8)
		if len(perms) != want {
			t.Fatalf("k=%d n=8: generated %d permutations, NbPartialPermutations says %d", k, len(perms), want)
		}
		seen := make([]bool, want)
		for _, p := range perms {
			idx := PartialEncode(p, 8)
			if idx < 0 || idx >= want {
				t.Fatalf("k=%d n=8: encode(%v) = %d out of range [0,%d)", k, p, idx, want)
			}
			if seen[idx] {
				t.Fatalf("k=%d n=8: index %d produced by two different permutations", k, idx)
			}
			seen[idx] = true

			back := PartialDecode(idx, k, 8)
			for i := range p {
				if back[i] != p[i] {
					t.Fatalf("k=%d n=8: decode(encode(%v))=%v", k, p, back)
				}
			}
		}
	}
}

func TestSampledRoundTripN12(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, k := range []int{6, 7, 8} {
		n := 12
		maxIdx := NbPartialPermutations(k, n)
		for trial := 0; trial < 2000; trial++ {
			perm := make([]int, 0, k)
			used := make([]bool, n)
			for len(perm) < k {
				v := rng.Intn(n)
				if used[v] {
					continue
				}
				used[v] = true
				perm = append(perm, v)
			}
			idx := PartialEncode(perm, n)
			if idx < 0 || idx >= maxIdx {
				t.Fatalf("k=%d n=12: encode(%v)=%d out of range [0,%d)", k, perm, idx, maxIdx)
			}
			back := PartialDecode(idx, k, n)
			for i := range perm {
				if back[i] != perm[i] {
					t.Fatalf("k=%d n=12: decode(encode(%v))=%v", k, perm, back)
				}
			}
		}
	}
}

func TestFullPermutationEncodeDecode(t *testing.T) {
	for _, p := range permutations(5, 5) {
		idx := Encode(p)
		back := Decode(idx, 5)
		for i := range p {
			if back[i] != p[i] {
				t.Fatalf("decode(encode(%v))=%v", p, back)
			}
		}
	}
}

func TestNbPermutations(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 6, 8: 40320, 12: 479001600}
	for n, want := range cases {
		if got := NbPermutations(n); got != want {
			t.Fatalf("NbPermutations(%d) = %d, want %d", n, got, want)
		}
	}
}
