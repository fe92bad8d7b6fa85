// Package window provides tapering windows parameterized by sidelobe
// attenuation, for shaping frequency-sampling FIR designs.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Chebyshev returns Dolph-Chebyshev window coefficients of the given size.
// The window's frequency-domain sidelobes are equiripple at -sidelobeDB
// relative to the mainlobe. Coefficients are normalized to a peak of 1.
func Chebyshev(size int, sidelobeDB float64) ([]float64, error) {
	if size <= 0 || sidelobeDB <= 0 {
		return nil, validateParams(size, sidelobeDB)
	}

	if size == 1 {
		return []float64{1}, nil
	}

	order := size - 1
	ripple := math.Pow(10, sidelobeDB/20)
	x0 := math.Cosh(math.Acosh(ripple) / float64(order))
	center := float64(order) / 2

	// Inverse DFT of the sampled Chebyshev polynomial spectrum, centered
	// for linear phase. O(size^2), which is fine at filter-design lengths.
	out := make([]float64, size)
	for n := range out {
		sum := ripple
		for k := 1; k <= (size-1)/2; k++ {
			wk := chebyshevEval(order, x0*math.Cos(math.Pi*float64(k)/float64(size)))
			sum += 2 * wk * math.Cos(2*math.Pi*float64(k)*(float64(n)-center)/float64(size))
		}

		out[n] = sum
	}

	normalizePeak(out)

	return out, nil
}

// KaiserForAttenuation returns Kaiser window coefficients whose beta is
// chosen by Kaiser's empirical formula to reach the requested stopband
// attenuation in dB. Coefficients are normalized to a peak of 1.
func KaiserForAttenuation(size int, attenDB float64) ([]float64, error) {
	if size <= 0 || attenDB <= 0 {
		return nil, validateParams(size, attenDB)
	}

	beta := kaiserBeta(attenDB)

	out := make([]float64, size)
	for n := range out {
		x := samplePosition(n, size)
		out[n] = kaiserAt(x, beta)
	}

	return out, nil
}

// Apply multiplies samples with coefficients and returns a new slice.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyInPlace multiplies samples with coefficients in place.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// kaiserBeta maps stopband attenuation in dB to the Kaiser beta parameter.
func kaiserBeta(attenDB float64) float64 {
	switch {
	case attenDB > 50:
		return 0.1102 * (attenDB - 8.7)
	case attenDB >= 21:
		return 0.5842*math.Pow(attenDB-21, 0.4) + 0.07886*(attenDB-21)
	default:
		return 0
	}
}

// chebyshevEval evaluates the order-th Chebyshev polynomial, extended
// beyond [-1, 1] via the hyperbolic form.
func chebyshevEval(order int, x float64) float64 {
	switch {
	case x > 1:
		return math.Cosh(float64(order) * math.Acosh(x))
	case x < -1:
		v := math.Cosh(float64(order) * math.Acosh(-x))
		if order%2 != 0 {
			return -v
		}

		return v
	default:
		return math.Cos(float64(order) * math.Acos(x))
	}
}

func normalizePeak(coeffs []float64) {
	peak := 0.0
	for _, v := range coeffs {
		if v > peak {
			peak = v
		}
	}

	if peak == 0 {
		return
	}

	for i := range coeffs {
		coeffs[i] /= peak
	}
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
