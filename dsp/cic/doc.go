// Package cic models the magnitude response of cascaded-integrator-comb
// (CIC) decimation filters.
//
// A CIC filter with M stages, rate change R, and differential delay N has
// the closed-form magnitude response
//
//	|H(f)| = |sin(pi*f*R*N) / sin(pi*f)|^M
//
// with f in cycles per input sample. The package evaluates this response
// (including the exact DC limit), samples it over the first Nyquist zone,
// and locates which mainlobe bins dominate their own post-decimation
// aliases. It provides analysis only; compensation filter design lives in
// dsp/filter/design/ciccomp.
package cic
