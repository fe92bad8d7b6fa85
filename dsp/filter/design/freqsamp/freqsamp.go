package freqsamp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the designer. Malformed specifications are programmer
// errors; there is no runtime recovery.
var (
	ErrLengthMismatch = errors.New("freqsamp: frequency and magnitude vectors must have same length")
	ErrTooFewPoints   = errors.New("freqsamp: need at least two frequency samples")
	ErrNonMonotonic   = errors.New("freqsamp: frequency axis must be strictly increasing")
	ErrDomain         = errors.New("freqsamp: frequency axis must start at 0 and end at 1")
	ErrWindowLength   = errors.New("freqsamp: window length must equal order+1")
)

// Design synthesizes order+1 real FIR coefficients whose frequency
// response approximates the magnitude specification (freqs, mags).
//
// freqs holds normalized frequencies over [0, 1] with 1 = Nyquist,
// strictly increasing, starting at 0 and ending at 1. mags holds the
// desired linear magnitude at each frequency. win, if non-nil, must hold
// order+1 coefficients and is multiplied onto the taps; it never changes
// the coefficient count.
//
// The result is linear phase: symmetric taps centered on order/2.
func Design(order int, freqs, mags, win []float64) ([]float64, error) {
	if order < 0 {
		return nil, fmt.Errorf("freqsamp: order must be >= 0: %d", order)
	}

	if len(freqs) != len(mags) {
		return nil, ErrLengthMismatch
	}

	if len(freqs) < 2 {
		return nil, ErrTooFewPoints
	}

	if freqs[0] != 0 || freqs[len(freqs)-1] != 1 {
		return nil, ErrDomain
	}

	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			return nil, ErrNonMonotonic
		}
	}

	taps := order + 1
	if win != nil && len(win) != taps {
		return nil, ErrWindowLength
	}

	// Dense uniform grid: fftSize/2+1 half-spectrum points, at least 4x
	// the tap count so the sampling is dense relative to the filter.
	fftSize := nextPowerOf2(8 * taps)
	half := fftSize / 2
	delay := float64(order) / 2

	bins := make([]complex128, fftSize)

	pos := 0
	for k := 0; k <= half; k++ {
		f := float64(k) / float64(half)
		a := interpolate(freqs, mags, f, &pos)
		phase := -2 * math.Pi * float64(k) * delay / float64(fftSize)
		bins[k] = complex(a, 0) * cmplx.Exp(complex(0, phase))
	}

	// Exact conjugate symmetry keeps the inverse transform real. The
	// Nyquist bin must be self-conjugate: for odd tap counts its phase is
	// already real; even-length symmetric filters are zero there anyway.
	if taps%2 == 0 {
		bins[half] = 0
	} else {
		bins[half] = complex(real(bins[half]), 0)
	}

	for k := half + 1; k < fftSize; k++ {
		bins[k] = cmplx.Conj(bins[fftSize-k])
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("freqsamp: failed to create FFT plan: %w", err)
	}

	impulse := make([]complex128, fftSize)
	if err := plan.Inverse(impulse, bins); err != nil {
		return nil, fmt.Errorf("freqsamp: inverse FFT failed: %w", err)
	}

	out := make([]float64, taps)
	for i := range out {
		out[i] = real(impulse[i])
	}

	if win != nil {
		vecmath.MulBlockInPlace(out, win)
	}

	return out, nil
}

// interpolate evaluates the piecewise-linear specification at x. pos
// carries the current segment index across calls with increasing x.
func interpolate(freqs, mags []float64, x float64, pos *int) float64 {
	for *pos < len(freqs)-2 && freqs[*pos+1] < x {
		*pos++
	}

	lo, hi := freqs[*pos], freqs[*pos+1]
	if hi == lo {
		return mags[*pos]
	}

	t := (x - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}

	if t > 1 {
		t = 1
	}

	return mags[*pos] + t*(mags[*pos+1]-mags[*pos])
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
