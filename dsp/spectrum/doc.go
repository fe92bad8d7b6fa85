// Package spectrum provides magnitude extraction and decibel conversion
// for complex frequency-response bins.
//
// Magnitude uses SIMD-backed kernels from algo-vecmath. The decibel
// helpers exist for reporting and plotting; design math downstream always
// consumes the linear vectors.
package spectrum
