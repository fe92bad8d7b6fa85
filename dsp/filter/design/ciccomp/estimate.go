package ciccomp

import "math"

// HerrmannEstimate returns the Herrmann-Rabiner-Chan estimate of the tap
// count a Parks-McClellan equiripple lowpass needs for the given passband
// edge, stopband edge, passband ripple (dB peak), stopband attenuation
// (dB), and sample rate. It is the closed form behind the usual remezord
// routines and serves as the default TapEstimateFunc.
func HerrmannEstimate(passEdgeHz, stopEdgeHz, passRippleDB, stopAttenDB, sampleRateHz float64) int {
	if sampleRateHz <= 0 || stopEdgeHz <= passEdgeHz || passEdgeHz < 0 {
		return 0
	}

	// Convert dB specs to linear ripples.
	r := math.Pow(10, passRippleDB/20)
	dp := (r - 1) / (r + 1)
	ds := math.Pow(10, -stopAttenDB/20)

	if dp <= 0 || ds <= 0 {
		return 0
	}

	lp := math.Log10(dp)
	ls := math.Log10(ds)

	dinf := (0.005309*lp*lp+0.07114*lp-0.4761)*ls -
		(0.00266*lp*lp + 0.5941*lp + 0.4278)
	f := 11.01217 + 0.51244*(lp-ls)

	df := (stopEdgeHz - passEdgeHz) / sampleRateHz

	n := dinf/df - f*df + 1
	if n < 1 {
		return 1
	}

	return int(math.Ceil(n))
}
