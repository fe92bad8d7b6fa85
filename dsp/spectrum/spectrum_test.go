package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{1, complex(3, 4), complex(0, -2)}

	got := Magnitude(in)
	want := []float64{1, 5, 2}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("mag[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if Magnitude(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestDB(t *testing.T) {
	got := DB([]float64{1, 10, 0.1})
	want := []float64{0, 20, -20}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("db[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if v := DB([]float64{0})[0]; !math.IsInf(v, -1) {
		t.Fatalf("DB(0) = %v, want -Inf", v)
	}
}

func TestDBFloor(t *testing.T) {
	got := DBFloor([]float64{1, 1e-6, 0}, -80)

	if got[0] != 0 {
		t.Fatalf("db[0] = %v, want 0", got[0])
	}

	if got[1] != -80 {
		t.Fatalf("db[1] = %v, want clamped -80", got[1])
	}

	if got[2] != -80 {
		t.Fatalf("db[2] = %v, want clamped -80", got[2])
	}
}
