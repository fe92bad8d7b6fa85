package ciccomp

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cic/dsp/cic"
	"github.com/cwbudde/algo-cic/dsp/window"
)

// ErrPassbandEdge reports a passband edge at or above the decimated
// Nyquist frequency (0.5 * SampleRate / Decimation). The design aborts
// with no output.
var ErrPassbandEdge = errors.New("ciccomp: passband edge must be below half the decimated sample rate")

// WindowFunc builds a window of the given length whose sidelobes meet the
// given attenuation in dB. Any standard equiripple construction satisfies
// the contract.
type WindowFunc func(length int, attenDB float64) ([]float64, error)

// TapEstimateFunc estimates the tap count of a conventional equiripple
// lowpass FIR meeting the given constraints. It is consulted for the
// design summary only and never influences the compensation filter.
type TapEstimateFunc func(passEdgeHz, stopEdgeHz, passRippleDB, stopAttenDB, sampleRateHz float64) int

const (
	defaultFreqPoints = 1000
	defaultSidelobeDB = 50
	defaultFloorDB    = -80

	// Passband ripple assumed when sizing the equivalent conventional FIR.
	estimateRippleDB = 0.1
)

// Config holds one complete compensation design parameter set.
type Config struct {
	// CIC filter under compensation.
	Stages            int // M
	Decimation        int // R
	DifferentialDelay int // N

	// SampleRate is the pre-decimation input rate in Hz.
	SampleRate float64

	// PassbandEdge is the corrected passband edge in Hz. It must stay
	// strictly below 0.5*SampleRate/Decimation.
	PassbandEdge float64

	// Order is the FIR order; the design produces Order+1 taps.
	Order int

	// FreqPoints sets the analysis grid density. Defaults to 1000.
	FreqPoints int

	// SidelobeDB is the window sidelobe attenuation target. Defaults to 50.
	SidelobeDB float64

	// FloorDB clamps reported dB vectors for display. Defaults to -80.
	FloorDB float64

	// Window builds the shaping window. Defaults to window.Chebyshev.
	Window WindowFunc

	// EstimateTaps sizes the equivalent conventional lowpass FIR for the
	// summary. Defaults to HerrmannEstimate.
	EstimateTaps TapEstimateFunc
}

func (cfg Config) cicParams() cic.Params {
	return cic.Params{
		Stages:            cfg.Stages,
		Decimation:        cfg.Decimation,
		DifferentialDelay: cfg.DifferentialDelay,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.FreqPoints <= 0 {
		cfg.FreqPoints = defaultFreqPoints
	}

	if cfg.SidelobeDB <= 0 {
		cfg.SidelobeDB = defaultSidelobeDB
	}

	if cfg.FloorDB >= 0 {
		cfg.FloorDB = defaultFloorDB
	}

	if cfg.Window == nil {
		cfg.Window = window.Chebyshev
	}

	if cfg.EstimateTaps == nil {
		cfg.EstimateTaps = HerrmannEstimate
	}

	return cfg
}

// validate checks the full parameter set, including the hard passband
// precondition, before any numeric work happens.
func (cfg Config) validate() error {
	if err := cfg.cicParams().Validate(); err != nil {
		return err
	}

	if cfg.SampleRate <= 0 {
		return fmt.Errorf("ciccomp: sample rate must be > 0: %f", cfg.SampleRate)
	}

	if cfg.PassbandEdge <= 0 {
		return fmt.Errorf("ciccomp: passband edge must be > 0: %f", cfg.PassbandEdge)
	}

	if cfg.Order < 0 {
		return fmt.Errorf("ciccomp: FIR order must be >= 0: %d", cfg.Order)
	}

	if cfg.PassbandEdge >= 0.5*cfg.SampleRate/float64(cfg.Decimation) {
		return ErrPassbandEdge
	}

	return nil
}
