package cic

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when an aliasing analysis receives no data.
var ErrEmptyResponse = errors.New("cic: response must not be empty")

// AliasOverlap identifies mainlobe bins whose forward response dominates
// their own post-decimation alias.
type AliasOverlap struct {
	// Region is the number of leading response bins that fold back onto
	// the first Nyquist zone after decimation.
	Region int

	// Kept lists the region indices where the forward level meets or
	// exceeds the level of the mirrored alias. Index 0 is always present.
	Kept []int
}

// LocateAliasing inspects the folded mainlobe of a pre-decimation response.
//
// responseDB is the full-rate magnitude response in dB sampled over
// [0, sampleRate/2); decimation is the rate-change factor R. The first
// 2*len(responseDB)/R bins fold back after decimation; reversing that
// sub-vector gives the aliased image. Bin i >= 1 is kept when
// responseDB[i] >= image[i], meaning the alias is not the dominant
// artifact there. The DC bin is kept by convention.
//
// The result is diagnostic only and feeds no design computation.
func LocateAliasing(responseDB []float64, decimation int) (AliasOverlap, error) {
	if len(responseDB) == 0 {
		return AliasOverlap{}, ErrEmptyResponse
	}

	if decimation <= 0 {
		return AliasOverlap{}, fmt.Errorf("cic: decimation factor must be > 0: %d", decimation)
	}

	region := 2 * len(responseDB) / decimation
	if region > len(responseDB) {
		region = len(responseDB)
	}

	if region < 1 {
		region = 1
	}

	kept := []int{0}

	for i := 1; i < region; i++ {
		if responseDB[i] >= responseDB[region-1-i] {
			kept = append(kept, i)
		}
	}

	return AliasOverlap{Region: region, Kept: kept}, nil
}
