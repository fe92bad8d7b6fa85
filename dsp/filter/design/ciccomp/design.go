package ciccomp

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cic/dsp/cic"
	"github.com/cwbudde/algo-cic/dsp/filter/design/freqsamp"
	"github.com/cwbudde/algo-cic/dsp/spectrum"
)

// Result holds one complete compensation design. All vectors are created
// once and read-only afterward; the coefficient slice is the design's
// deliverable, everything else exists for reporting and plotting.
type Result struct {
	// Coefficients holds the Order+1 compensation taps, scaled for unity
	// gain at DC.
	Coefficients []float64

	// OutputRate is the post-decimation sample rate in Hz.
	OutputRate float64

	// PassbandFraction is the passband edge as a fraction of the decimated
	// Nyquist frequency, in (0, 1).
	PassbandFraction float64

	// CICFrequencies and CICResponseDB sample the pre-decimation CIC
	// response over [0, SampleRate/2).
	CICFrequencies []float64
	CICResponseDB  []float64

	// DesignFrequencies, Target, and Achieved compare the inverse design
	// target with the synthesized filter's actual magnitude on the
	// frequency-sampling grid (normalized to the decimated Nyquist).
	DesignFrequencies []float64
	Target            []float64
	Achieved          []float64

	// Verification holds the cascaded-response check.
	Verification Verification

	// Aliasing marks the pre-decimation mainlobe bins that dominate their
	// own post-decimation alias.
	Aliasing cic.AliasOverlap

	// EquivalentTaps is the estimated length of a conventional equiripple
	// lowpass meeting the same constraints, for the summary.
	EquivalentTaps int
}

// Design runs the full compensation pipeline for cfg. It is a pure
// function of its parameters: identical configs yield identical results.
// The passband precondition is checked before any numeric work; on
// violation it returns ErrPassbandEdge and no partial output.
func Design(cfg Config) (*Result, error) {
	cfg = normalizeConfig(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := cfg.cicParams()
	outputRate := cfg.SampleRate / float64(cfg.Decimation)
	passFraction := cfg.PassbandEdge / (outputRate / 2)

	resp, err := cic.Response(p, cfg.FreqPoints)
	if err != nil {
		return nil, err
	}

	cicDB := spectrum.DBFloor(resp, cfg.FloorDB)

	aliasing, err := cic.LocateAliasing(cicDB, cfg.Decimation)
	if err != nil {
		return nil, err
	}

	freqs := designGrid(cfg.Order)
	target := inverseTarget(p, freqs, passFraction)

	win, err := cfg.Window(cfg.Order+1, cfg.SidelobeDB)
	if err != nil {
		return nil, fmt.Errorf("ciccomp: window construction failed: %w", err)
	}

	taps, err := freqsamp.Design(cfg.Order, freqs, target, win)
	if err != nil {
		return nil, err
	}

	normalizeDC(taps)

	achieved := make([]float64, len(freqs))
	for i, f := range freqs {
		achieved[i] = firMagnitudeAt(taps, f)
	}

	ver, err := verifyCascade(p, taps, cfg.FreqPoints, outputRate, cfg.PassbandEdge, cfg.FloorDB)
	if err != nil {
		return nil, err
	}

	est := cfg.EstimateTaps(cfg.PassbandEdge, stopbandEdgeHz(freqs, target, outputRate), estimateRippleDB, cfg.SidelobeDB, outputRate)

	return &Result{
		Coefficients:      taps,
		OutputRate:        outputRate,
		PassbandFraction:  passFraction,
		CICFrequencies:    cic.FrequencyGrid(cfg.FreqPoints, cfg.SampleRate),
		CICResponseDB:     cicDB,
		DesignFrequencies: freqs,
		Target:            target,
		Achieved:          achieved,
		Verification:      ver,
		Aliasing:          aliasing,
		EquivalentTaps:    est,
	}, nil
}

// normalizeDC scales the taps for exactly unity gain at DC. The CIC
// mainlobe is normalized to 1 there, so this pins the cascaded response
// to 0 dB at zero frequency.
func normalizeDC(taps []float64) {
	var sum float64
	for _, v := range taps {
		sum += v
	}

	if sum == 0 {
		return
	}

	vecmath.ScaleBlock(taps, taps, 1/sum)
}

// stopbandEdgeHz returns the first zeroed target frequency in Hz: the
// point by which the equivalent conventional lowpass must reach its
// stopband.
func stopbandEdgeHz(freqs, target []float64, outputRate float64) float64 {
	for i := 1; i < len(target); i++ {
		if target[i] == 0 {
			return freqs[i] * outputRate / 2
		}
	}

	return outputRate / 2
}
