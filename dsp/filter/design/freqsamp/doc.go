// Package freqsamp designs FIR filters by frequency sampling.
//
// The caller specifies desired magnitude at a set of frequency samples
// over [0, 1] (1 = Nyquist). The designer interpolates that specification
// onto a dense uniform grid, attaches linear phase, and inverse-transforms
// it into a real, symmetric tap sequence of the requested length. An
// optional window controls sidelobe leakage from the piecewise-linear
// target.
//
// This is a single closed-form synthesis with no optimization loop. For
// equiripple designs use a Parks-McClellan implementation instead.
package freqsamp
