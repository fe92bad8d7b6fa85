// Package ciccomp designs FIR filters that compensate the passband droop
// of CIC decimation filters.
//
// A CIC filter's sin(x)/sin(x)-style mainlobe droops across the wanted
// passband. This package builds a design target equal to the reciprocal of
// that droop, synthesizes compensation taps with the frequency-sampling
// method (dsp/filter/design/freqsamp) under an equiripple window
// (dsp/window), and verifies the cascaded CIC-plus-FIR response for
// passband flatness.
//
// [Design] is a pure function of its [Config]: identical parameters yield
// identical coefficients, and a passband edge at or above the decimated
// Nyquist frequency aborts before any numeric work with
// [ErrPassbandEdge].
package ciccomp
