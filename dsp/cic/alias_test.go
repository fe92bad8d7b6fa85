package cic

import (
	"errors"
	"math"
	"testing"
)

func responseDB(p Params, points int, t *testing.T) []float64 {
	t.Helper()

	resp, err := Response(p, points)
	if err != nil {
		t.Fatalf("Response failed: %v", err)
	}

	out := make([]float64, len(resp))
	for i, v := range resp {
		out[i] = 20 * math.Log10(math.Max(v, 1e-12))
	}

	return out
}

func TestLocateAliasingDCAlwaysKept(t *testing.T) {
	params := []Params{
		{Stages: 3, Decimation: 10, DifferentialDelay: 1},
		{Stages: 5, Decimation: 4, DifferentialDelay: 2},
		{Stages: 1, Decimation: 64, DifferentialDelay: 1},
	}

	for _, p := range params {
		db := responseDB(p, 1000, t)

		overlap, err := LocateAliasing(db, p.Decimation)
		if err != nil {
			t.Fatalf("LocateAliasing failed: %v", err)
		}

		if len(overlap.Kept) == 0 || overlap.Kept[0] != 0 {
			t.Fatalf("R=%d: index 0 not kept: %v", p.Decimation, overlap.Kept)
		}
	}
}

func TestLocateAliasingRegionSize(t *testing.T) {
	p := Params{Stages: 3, Decimation: 10, DifferentialDelay: 1}
	db := responseDB(p, 1000, t)

	overlap, err := LocateAliasing(db, p.Decimation)
	if err != nil {
		t.Fatalf("LocateAliasing failed: %v", err)
	}

	if want := 2 * 1000 / p.Decimation; overlap.Region != want {
		t.Fatalf("Region = %d, want %d", overlap.Region, want)
	}

	for _, idx := range overlap.Kept {
		if idx < 0 || idx >= overlap.Region {
			t.Fatalf("kept index %d outside region [0, %d)", idx, overlap.Region)
		}
	}
}

func TestLocateAliasingKeptMatchesComparison(t *testing.T) {
	p := Params{Stages: 3, Decimation: 10, DifferentialDelay: 1}
	db := responseDB(p, 1000, t)

	overlap, err := LocateAliasing(db, p.Decimation)
	if err != nil {
		t.Fatalf("LocateAliasing failed: %v", err)
	}

	isKept := make(map[int]bool, len(overlap.Kept))
	for _, idx := range overlap.Kept {
		isKept[idx] = true
	}

	for i := 1; i < overlap.Region; i++ {
		want := db[i] >= db[overlap.Region-1-i]
		if isKept[i] != want {
			t.Fatalf("bin %d kept = %v, want %v", i, isKept[i], want)
		}
	}
}

func TestLocateAliasingRejectsInvalidInput(t *testing.T) {
	if _, err := LocateAliasing(nil, 10); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("error = %v, want ErrEmptyResponse", err)
	}

	if _, err := LocateAliasing([]float64{0, -1}, 0); err == nil {
		t.Fatal("expected error for zero decimation")
	}
}
