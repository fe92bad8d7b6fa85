package ciccomp

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cic/dsp/cic"
	"github.com/cwbudde/algo-cic/dsp/spectrum"
)

// Verification holds the cascaded-response artifacts computed after a
// design: the FIR's own response, the CIC mainlobe at the decimated rate,
// and their product, all on a shared frequency axis.
type Verification struct {
	// Frequencies is the Hz axis at the decimated rate, covering
	// [0, outputRate/2).
	Frequencies []float64

	// FIRMagnitude and FIRDB describe the compensation filter alone.
	FIRMagnitude []float64
	FIRDB        []float64

	// CICMainlobeDB is the CIC mainlobe recomputed on the decimated axis,
	// DC forced to 1 (0 dB).
	CICMainlobeDB []float64

	// Cascade and CascadeDB hold the elementwise product of the CIC
	// mainlobe and FIR magnitudes: the verification artifact.
	Cascade   []float64
	CascadeDB []float64

	// PassbandRippleDB is the largest deviation of CascadeDB from 0 dB
	// over [0, PassbandEdge].
	PassbandRippleDB float64
}

// verifyCascade computes the FIR response over at least points
// positive-frequency bins (via a length-2*points transform rounded up to a
// power of two), multiplies it against the CIC mainlobe on the same grid,
// and measures the passband flatness.
func verifyCascade(p cic.Params, taps []float64, points int, outputRate, passbandEdge, floorDB float64) (Verification, error) {
	fftSize := nextPowerOf2(2 * points)
	bins := fftSize / 2

	if fftSize < len(taps) {
		fftSize = nextPowerOf2(2 * len(taps))
		bins = fftSize / 2
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Verification{}, fmt.Errorf("ciccomp: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range taps {
		padded[i] = complex(v, 0)
	}

	full := make([]complex128, fftSize)
	if err := plan.Forward(full, padded); err != nil {
		return Verification{}, fmt.Errorf("ciccomp: forward FFT failed: %w", err)
	}

	firMag := spectrum.Magnitude(full[:bins])

	mainlobe := make([]float64, bins)
	freqs := make([]float64, bins)

	for k := range mainlobe {
		f := float64(k) / float64(bins)
		mainlobe[k] = p.NormalizedMagnitude(f / (2 * float64(p.Decimation)))
		freqs[k] = f * outputRate / 2
	}

	cascade := make([]float64, bins)
	vecmath.MulBlock(cascade, mainlobe, firMag)

	v := Verification{
		Frequencies:   freqs,
		FIRMagnitude:  firMag,
		FIRDB:         spectrum.DBFloor(firMag, floorDB),
		CICMainlobeDB: spectrum.DBFloor(mainlobe, floorDB),
		Cascade:       cascade,
		CascadeDB:     spectrum.DBFloor(cascade, floorDB),
	}

	for k, hz := range freqs {
		if hz > passbandEdge {
			break
		}

		dev := math.Abs(20 * math.Log10(cascade[k]))
		if dev > v.PassbandRippleDB {
			v.PassbandRippleDB = dev
		}
	}

	return v, nil
}

// firMagnitudeAt evaluates the filter's magnitude response at normalized
// frequency f in [0, 1] (1 = Nyquist).
func firMagnitudeAt(taps []float64, f float64) float64 {
	w := math.Pi * f

	var h complex128
	for n, c := range taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(n)))
	}

	return cmplx.Abs(h)
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
