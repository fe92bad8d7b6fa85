package cic

import (
	"fmt"
	"math"
)

// Params describes a CIC decimation filter: Stages cascaded
// integrator/comb pairs, a rate change of Decimation, and a comb
// differential delay of DifferentialDelay samples.
type Params struct {
	Stages            int
	Decimation        int
	DifferentialDelay int
}

// Validate checks that the parameter set describes a realizable filter.
func (p Params) Validate() error {
	if p.Stages <= 0 {
		return fmt.Errorf("cic: stages must be > 0: %d", p.Stages)
	}

	if p.Decimation <= 0 {
		return fmt.Errorf("cic: decimation factor must be > 0: %d", p.Decimation)
	}

	if p.DifferentialDelay <= 0 {
		return fmt.Errorf("cic: differential delay must be > 0: %d", p.DifferentialDelay)
	}

	return nil
}

// Gain returns the DC gain (R*N)^M.
func (p Params) Gain() float64 {
	return math.Pow(float64(p.Decimation*p.DifferentialDelay), float64(p.Stages))
}

// Magnitude evaluates |H(f)| at normalized frequency f in cycles per input
// sample. The removable singularity at f = 0 (and at every integer f, by
// periodicity) is replaced by the exact limit (R*N)^M.
func (p Params) Magnitude(f float64) float64 {
	den := math.Sin(math.Pi * f)
	if den == 0 {
		return p.Gain()
	}

	num := math.Sin(math.Pi * f * float64(p.Decimation*p.DifferentialDelay))

	return math.Pow(math.Abs(num/den), float64(p.Stages))
}

// NormalizedMagnitude returns Magnitude(f) scaled so the DC value is 1.
func (p Params) NormalizedMagnitude(f float64) float64 {
	return p.Magnitude(f) / p.Gain()
}

// Response samples the normalized magnitude response at points frequencies
// f_i = 0.5*i/points, covering [0, 0.5) at the pre-decimation rate.
// The DC entry is exactly 1 and is the global maximum.
func Response(p Params, points int) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if points <= 0 {
		return nil, fmt.Errorf("cic: response points must be > 0: %d", points)
	}

	out := make([]float64, points)
	for i := range out {
		out[i] = p.NormalizedMagnitude(0.5 * float64(i) / float64(points))
	}

	return out, nil
}

// FrequencyGrid returns the Hz axis matching Response: points samples over
// [0, sampleRate/2).
func FrequencyGrid(points int, sampleRate float64) []float64 {
	if points <= 0 || sampleRate <= 0 {
		return nil
	}

	out := make([]float64, points)
	for i := range out {
		out[i] = 0.5 * sampleRate * float64(i) / float64(points)
	}

	return out
}
