package ciccomp

import (
	"github.com/cwbudde/algo-cic/dsp/cic"
)

// designGrid returns the frequency-sampling axis for the given FIR order:
// 4*(order+1) uniform points over [0, 1], normalized to the decimated
// Nyquist frequency. The density keeps the sampling fine relative to the
// tap count.
func designGrid(order int) []float64 {
	points := 4 * (order + 1)

	out := make([]float64, points)
	for i := range out {
		out[i] = float64(i) / float64(points-1)
	}

	return out
}

// inverseTarget builds the FIR design target on the given grid: the
// reciprocal of the normalized CIC mainlobe droop over the passband,
// reaching zero beyond it. Index 0 is forced to 1, removing the 0/0 form
// of the general inversion formula.
//
// The window smears the synthesized response by roughly its mainlobe
// width, so the inverse values are held one such width past the passband
// edge before ramping to zero; this keeps [0, passFraction] flat instead
// of turning the edge into the -6 dB point. The zero region tells the
// designer "don't care / suppress"; the compensator's own rolloff plus
// the CIC stopband covers it.
func inverseTarget(p cic.Params, freqs []float64, passFraction float64) []float64 {
	// Approximate window mainlobe half-width in decimated-Nyquist units.
	transition := 4 / float64(len(freqs)/4)

	holdEnd := passFraction + transition
	if holdEnd > 1 {
		holdEnd = 1
	}

	rampEnd := holdEnd + transition
	if rampEnd > 1 {
		rampEnd = 1
	}

	edge := 1 / p.NormalizedMagnitude(holdEnd/(2*float64(p.Decimation)))

	out := make([]float64, len(freqs))
	out[0] = 1

	for i := 1; i < len(freqs); i++ {
		f := freqs[i]

		switch {
		case f <= holdEnd:
			// freqs are decimated-Nyquist units; the CIC runs at the
			// pre-decimation rate, f/(2R) cycles per input sample.
			out[i] = 1 / p.NormalizedMagnitude(f/(2*float64(p.Decimation)))
		case f < rampEnd:
			out[i] = edge * (rampEnd - f) / (rampEnd - holdEnd)
		default:
			out[i] = 0
		}
	}

	return out
}
