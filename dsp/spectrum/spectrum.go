package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)

	return out
}

// DB converts linear magnitudes to 20*log10 decibels. Non-positive inputs
// map to -Inf.
func DB(mag []float64) []float64 {
	if len(mag) == 0 {
		return nil
	}

	out := make([]float64, len(mag))
	for i, v := range mag {
		out[i] = 20 * math.Log10(v)
	}

	return out
}

// DBFloor converts linear magnitudes to decibels, clamping at floorDB.
// The clamp is a display convention; it never feeds back into design math.
func DBFloor(mag []float64, floorDB float64) []float64 {
	if len(mag) == 0 {
		return nil
	}

	out := make([]float64, len(mag))
	for i, v := range mag {
		db := 20 * math.Log10(v)
		if db < floorDB || math.IsNaN(db) {
			db = floorDB
		}

		out[i] = db
	}

	return out
}
