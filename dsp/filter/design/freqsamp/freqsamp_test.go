package freqsamp

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-cic/dsp/window"
)

// responseAt evaluates the filter's magnitude response at normalized
// frequency f in [0, 1] (1 = Nyquist).
func responseAt(taps []float64, f float64) float64 {
	w := math.Pi * f

	var h complex128
	for n, c := range taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(n)))
	}

	return cmplx.Abs(h)
}

func TestDesignTapCountAndSymmetry(t *testing.T) {
	freqs := []float64{0, 0.3, 0.5, 1}
	mags := []float64{1, 1, 0, 0}

	for _, order := range []int{16, 31, 32, 63} {
		taps, err := Design(order, freqs, mags, nil)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if len(taps) != order+1 {
			t.Fatalf("order %d: len = %d, want %d", order, len(taps), order+1)
		}

		for i := range taps {
			if d := math.Abs(taps[i] - taps[len(taps)-1-i]); d > 1e-9 {
				t.Fatalf("order %d: taps not symmetric at %d: diff %v", order, i, d)
			}
		}
	}
}

func TestDesignLowpassResponse(t *testing.T) {
	freqs := []float64{0, 0.3, 0.5, 1}
	mags := []float64{1, 1, 0, 0}

	win, err := window.Chebyshev(64, 50)
	if err != nil {
		t.Fatalf("window: %v", err)
	}

	taps, err := Design(63, freqs, mags, win)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	for _, f := range []float64{0, 0.1, 0.2} {
		if got := responseAt(taps, f); math.Abs(got-1) > 0.05 {
			t.Fatalf("passband response at %v = %v, want ~1", f, got)
		}
	}

	for f := 0.7; f <= 1; f += 0.05 {
		db := 20 * math.Log10(responseAt(taps, f))
		if db > -45 {
			t.Fatalf("stopband response at %v = %v dB, want <= -45", f, db)
		}
	}
}

func TestDesignAllpassIsDelayedImpulse(t *testing.T) {
	freqs := []float64{0, 1}
	mags := []float64{1, 1}

	taps, err := Design(32, freqs, mags, nil)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	center := 16
	if math.Abs(taps[center]-1) > 1e-6 {
		t.Fatalf("taps[%d] = %v, want ~1", center, taps[center])
	}

	for i, v := range taps {
		if i != center && math.Abs(v) > 1e-6 {
			t.Fatalf("taps[%d] = %v, want ~0", i, v)
		}
	}
}

func TestDesignIsDeterministic(t *testing.T) {
	freqs := []float64{0, 0.25, 0.4, 1}
	mags := []float64{1, 1.2, 0, 0}

	a, err := Design(41, freqs, mags, nil)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	b, err := Design(41, freqs, mags, nil)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("taps differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDesignWindowKeepsTapCount(t *testing.T) {
	freqs := []float64{0, 0.3, 0.5, 1}
	mags := []float64{1, 1, 0, 0}

	win, err := window.KaiserForAttenuation(22, 50)
	if err != nil {
		t.Fatalf("window: %v", err)
	}

	taps, err := Design(21, freqs, mags, win)
	if err != nil {
		t.Fatalf("Design failed: %v", err)
	}

	if len(taps) != 22 {
		t.Fatalf("len = %d, want 22", len(taps))
	}
}

func TestDesignValidation(t *testing.T) {
	tests := []struct {
		name  string
		order int
		freqs []float64
		mags  []float64
		win   []float64
		want  error
	}{
		{"length mismatch", 10, []float64{0, 1}, []float64{1}, nil, ErrLengthMismatch},
		{"too few points", 10, []float64{0}, []float64{1}, nil, ErrTooFewPoints},
		{"non-monotonic", 10, []float64{0, 0.5, 0.5, 1}, []float64{1, 1, 0, 0}, nil, ErrNonMonotonic},
		{"bad domain start", 10, []float64{0.1, 1}, []float64{1, 0}, nil, ErrDomain},
		{"bad domain end", 10, []float64{0, 0.9}, []float64{1, 0}, nil, ErrDomain},
		{"window length", 10, []float64{0, 1}, []float64{1, 0}, make([]float64, 5), ErrWindowLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Design(tt.order, tt.freqs, tt.mags, tt.win)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Design(-1, []float64{0, 1}, []float64{1, 0}, nil); err == nil {
		t.Fatal("expected error for negative order")
	}
}
